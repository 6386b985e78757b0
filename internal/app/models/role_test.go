package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("Trims And Uppercases", func(t *testing.T) {
		role, err := ParseRole("  pharmacist ")
		assert.NoError(t, err)
		assert.Equal(t, RolePharmacist, role)
	})

	t.Run("Rejects Unknown Role", func(t *testing.T) {
		_, err := ParseRole("nurse")
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("Dashboard Path", func(t *testing.T) {
		assert.Equal(t, "/doctor/dashboard", RoleDoctor.DashboardPath())
		assert.Equal(t, "/setup/admin", RoleAdmin.SetupPath())
	})
}

func TestParseRefillStatus(t *testing.T) {
	for _, status := range RefillStatuses() {
		parsed, err := ParseRefillStatus(" " + string(status) + " ")
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseRefillStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrUnknownRefillStatus)

	assert.True(t, IsPendingRefillStatus(RefillStatusReady))
	assert.False(t, IsPendingRefillStatus(RefillStatusDispensed))
}

func TestUserDisplayNameAndMerge(t *testing.T) {
	user := &User{Email: "jane.doe@example.com"}
	assert.Equal(t, "jane.doe", user.DisplayName("Doctor"))

	user.Merge(&User{Name: "Jane", Role: RoleDoctor, Specialization: "Cardiology"})
	assert.Equal(t, "Jane", user.DisplayName("Doctor"))
	assert.Equal(t, RoleDoctor, user.Role)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Cardiology", user.Specialization)

	user.Enabled = true
	user.Merge(&User{ID: "u-1", Enabled: false})
	assert.False(t, user.Enabled)
	user.Merge(&User{ID: "u-1", Enabled: true})
	assert.True(t, user.Enabled)

	var missing *User
	assert.Equal(t, "Doctor", missing.DisplayName("Doctor"))
	assert.False(t, missing.HasRole())
}

func TestCanRequestRefill(t *testing.T) {
	prescription := Prescription{ID: "rx-1", RefillsRemaining: 2}

	assert.Equal(t, RefillStatusNone, LatestRefillStatus(nil, "rx-1"))
	assert.True(t, CanRequestRefill(prescription, nil))

	inFlight := []RefillRequest{
		{Prescription: &Prescription{ID: "rx-1"}, Status: RefillStatusProcessing},
		{Prescription: &Prescription{ID: "rx-1"}, Status: RefillStatusDispensed},
	}
	assert.Equal(t, "PROCESSING", LatestRefillStatus(inFlight, "rx-1"))
	assert.False(t, CanRequestRefill(prescription, inFlight))

	done := []RefillRequest{{Prescription: &Prescription{ID: "rx-1"}, Status: RefillStatusDispensed}}
	assert.True(t, CanRequestRefill(prescription, done))

	prescription.RefillsRemaining = 0
	assert.False(t, CanRequestRefill(prescription, done))
}
