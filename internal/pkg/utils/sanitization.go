package utils

import (
	"medtrack-portal/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeSignupRequest(request *requests.Signup) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeForgotPasswordRequest(request *requests.ForgotPassword) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeResetPasswordRequest(request *requests.ResetPassword) {
	request.Token = strings.TrimSpace(request.Token)
}

func SanitizePatientProfileRequest(request *requests.PatientProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.DateOfBirth = strings.TrimSpace(request.DateOfBirth)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeMedicalInfoRequest(request *requests.MedicalInfo) {
	request.MedicalHistory = strings.TrimSpace(request.MedicalHistory)
	request.Allergies = strings.TrimSpace(request.Allergies)
	request.EmergencyContact = strings.TrimSpace(request.EmergencyContact)
}

func SanitizePharmacistProfileRequest(request *requests.PharmacistProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.LicenseNumber = strings.TrimSpace(request.LicenseNumber)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeDoctorProfileRequest(request *requests.DoctorProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Specialization = strings.TrimSpace(request.Specialization)
	request.LicenseNumber = strings.TrimSpace(request.LicenseNumber)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeAdminProfileRequest(request *requests.AdminProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeRoleSetupRequest(request *requests.RoleSetup) {
	request.Role = strings.ToUpper(strings.TrimSpace(request.Role))
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.LicenseNumber = strings.TrimSpace(request.LicenseNumber)
	request.Specialization = strings.TrimSpace(request.Specialization)
}

func SanitizeCreateReminderRequest(request *requests.CreateReminder) {
	request.MedicineName = strings.TrimSpace(request.MedicineName)
	request.Dosage = strings.TrimSpace(request.Dosage)
	request.StartDate = strings.TrimSpace(request.StartDate)
	request.EndDate = strings.TrimSpace(request.EndDate)
	request.Times = SplitNonEmpty(request.Times)
}

// SanitizeCreatePrescriptionRequest drops medication rows without a name.
func SanitizeCreatePrescriptionRequest(request *requests.CreatePrescription) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	medications := make([]requests.MedicationInput, 0, len(request.Medications))
	for _, medication := range request.Medications {
		medication.Name = strings.TrimSpace(medication.Name)
		if medication.Name == "" {
			continue
		}
		medications = append(medications, medication)
	}
	request.Medications = medications
}

func SanitizeInventoryItemRequest(request *requests.InventoryItem) {
	request.MedicineName = strings.TrimSpace(request.MedicineName)
	request.BatchNumber = strings.TrimSpace(request.BatchNumber)
	request.Status = strings.ToUpper(strings.TrimSpace(request.Status))
}

func SanitizeUpdateOrderStatusRequest(request *requests.UpdateOrderStatus) {
	request.Status = strings.ToUpper(strings.TrimSpace(request.Status))
}

// SplitNonEmpty trims every value, splits comma separated entries and drops
// blanks.
func SplitNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
