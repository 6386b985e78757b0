package utils

import (
	"medtrack-portal/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: "  JANE@Example.COM  ", Password: " secret "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, " secret ", request.Password, "password should be left untouched")
}

func TestSanitizeCreateReminderRequest(t *testing.T) {
	t.Run("Comma Separated Times", func(t *testing.T) {
		request := &requests.CreateReminder{Times: []string{"08:00, 14:00", " ", "20:00"}}

		SanitizeCreateReminderRequest(request)

		assert.Equal(t, []string{"08:00", "14:00", "20:00"}, request.Times)
	})

	t.Run("Blank Times Removed", func(t *testing.T) {
		request := &requests.CreateReminder{Times: []string{"", "  "}}

		SanitizeCreateReminderRequest(request)

		assert.Empty(t, request.Times)
	})
}

func TestSanitizeCreatePrescriptionRequest(t *testing.T) {
	request := &requests.CreatePrescription{
		PatientID: " p1 ",
		Medications: []requests.MedicationInput{
			{Name: "  Amoxicillin "},
			{Name: "   "},
		},
	}

	SanitizeCreatePrescriptionRequest(request)

	assert.Equal(t, "p1", request.PatientID)
	assert.Len(t, request.Medications, 1, "rows without a name should be dropped")
	assert.Equal(t, "Amoxicillin", request.Medications[0].Name)
}
