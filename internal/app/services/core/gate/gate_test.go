package gate

import (
	"fmt"
	"medtrack-portal/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		required []models.Role
		want     Decision
	}{
		{
			name:     "No User Goes To Login",
			user:     nil,
			required: []models.Role{models.RolePatient},
			want:     Decision{Outcome: RedirectLogin, Location: "/login"},
		},
		{
			name: "No User Without Required Roles Goes To Login",
			user: nil,
			want: Decision{Outcome: RedirectLogin, Location: "/login"},
		},
		{
			name:     "User Without Role Goes To Role Selection",
			user:     &models.User{ID: "u1"},
			required: []models.Role{models.RoleAdmin},
			want:     Decision{Outcome: RedirectRoleSelection, Location: "/role-selection"},
		},
		{
			name:     "Doctor On Patient Route Goes To Doctor Dashboard",
			user:     &models.User{ID: "u1", Role: models.RoleDoctor},
			required: []models.Role{models.RolePatient},
			want:     Decision{Outcome: RedirectDashboard, Location: "/doctor/dashboard"},
		},
		{
			name:     "Allowed Role Renders",
			user:     &models.User{ID: "u1", Role: models.RolePharmacist},
			required: []models.Role{models.RolePharmacist, models.RoleAdmin},
			want:     Decision{Outcome: Render},
		},
		{
			name: "Any Role Renders Without Requirement",
			user: &models.User{ID: "u1", Role: models.RoleAdmin},
			want: Decision{Outcome: Render},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.user, tt.required...))
		})
	}
}

func TestDecideAllRolePairs(t *testing.T) {
	for _, role := range models.Roles() {
		for _, required := range models.Roles() {
			t.Run(fmt.Sprintf("%s on %s route", role, required), func(t *testing.T) {
				decision := Decide(&models.User{ID: "u1", Role: role}, required)
				if role == required {
					assert.Equal(t, Render, decision.Outcome)
					assert.Empty(t, decision.Location)
					return
				}
				assert.Equal(t, RedirectDashboard, decision.Outcome)
				assert.Equal(t, role.DashboardPath(), decision.Location)
			})
		}
	}
}

func TestPostAuthPath(t *testing.T) {
	assert.Equal(t, "/login", PostAuthPath(nil))
	assert.Equal(t, "/role-selection", PostAuthPath(&models.User{ID: "u1"}))
	assert.Equal(t, "/pharmacist/dashboard", PostAuthPath(&models.User{ID: "u1", Role: models.RolePharmacist}))
}
