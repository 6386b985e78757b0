package requests

import "medtrack-portal/internal/pkg/constvars"

// Profile is the union of profile fields across roles. Each role form
// validates its own subset.
type Profile struct {
	Role             string `json:"role,omitempty"`
	Name             string `json:"name,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	Specialization   string `json:"specialization,omitempty"`
	ProfileImage     string `json:"profileImage,omitempty"`
}

type PatientProfile struct {
	Name         string `validate:"required"`
	PhoneNumber  string `validate:"required,min=8"`
	DateOfBirth  string
	Address      string
	ProfileImage string
}

func (r *PatientProfile) ValidationMessages() map[string]string {
	return map[string]string{
		"Name.required":        constvars.ErrClientPatientNameRequired,
		"PhoneNumber.required": constvars.ErrClientPhoneRequired,
		"PhoneNumber.min":      constvars.ErrClientPhoneTooShort,
	}
}

func (r *PatientProfile) ToProfile() *Profile {
	return &Profile{
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		DateOfBirth:  r.DateOfBirth,
		Address:      r.Address,
		ProfileImage: r.ProfileImage,
	}
}

type MedicalInfo struct {
	MedicalHistory   string `json:"medicalHistory"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergencyContact"`
}

type PharmacistProfile struct {
	Name          string `validate:"required"`
	LicenseNumber string `validate:"required"`
	PhoneNumber   string `validate:"omitempty,min=8"`
	Address       string
	ProfileImage  string
}

func (r *PharmacistProfile) ValidationMessages() map[string]string {
	return map[string]string{
		"Name.required":          constvars.ErrClientPatientNameRequired,
		"LicenseNumber.required": constvars.ErrClientLicenseNumberRequired,
		"PhoneNumber.min":        constvars.ErrClientPharmacistPhoneTooShort,
	}
}

func (r *PharmacistProfile) ToProfile() *Profile {
	return &Profile{
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		ProfileImage:  r.ProfileImage,
	}
}

type DoctorProfile struct {
	Name           string `validate:"required"`
	Specialization string
	LicenseNumber  string
	PhoneNumber    string `validate:"omitempty,min=8"`
	Address        string
	ProfileImage   string
}

func (r *DoctorProfile) ValidationMessages() map[string]string {
	return map[string]string{
		"Name.required":   constvars.ErrClientPatientNameRequired,
		"PhoneNumber.min": constvars.ErrClientPharmacistPhoneTooShort,
	}
}

func (r *DoctorProfile) ToProfile() *Profile {
	return &Profile{
		Name:           r.Name,
		Specialization: r.Specialization,
		LicenseNumber:  r.LicenseNumber,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		ProfileImage:   r.ProfileImage,
	}
}

type AdminProfile struct {
	Name         string `validate:"required"`
	PhoneNumber  string `validate:"omitempty,min=8"`
	Address      string
	ProfileImage string
}

func (r *AdminProfile) ValidationMessages() map[string]string {
	return map[string]string{
		"Name.required":   constvars.ErrClientPatientNameRequired,
		"PhoneNumber.min": constvars.ErrClientPharmacistPhoneTooShort,
	}
}

func (r *AdminProfile) ToProfile() *Profile {
	return &Profile{
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		ProfileImage: r.ProfileImage,
	}
}

// RoleSetup completes the onboarding of a freshly signed up account.
type RoleSetup struct {
	Role             string `validate:"required,role"`
	PhoneNumber      string
	DateOfBirth      string
	Address          string
	EmergencyContact string
	MedicalHistory   string
	Allergies        string
	LicenseNumber    string
	Specialization   string
}

func (r *RoleSetup) ValidationMessages() map[string]string {
	return map[string]string{
		"Role.required": constvars.ErrClientInvalidRole,
		"Role.role":     constvars.ErrClientInvalidRole,
	}
}

func (r *RoleSetup) ToProfile() *Profile {
	return &Profile{
		Role:             r.Role,
		PhoneNumber:      r.PhoneNumber,
		DateOfBirth:      r.DateOfBirth,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		MedicalHistory:   r.MedicalHistory,
		Allergies:        r.Allergies,
		LicenseNumber:    r.LicenseNumber,
		Specialization:   r.Specialization,
	}
}
