package models

import "strings"

type User struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Email            string `json:"email"`
	Role             Role   `json:"role,omitempty"`
	Enabled          bool   `json:"enabled"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Address          string `json:"address,omitempty"`
	ProfileImage     string `json:"profileImage,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	Specialization   string `json:"specialization,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

func (u *User) GetID() string {
	if u == nil {
		return ""
	}
	return u.ID
}

func (u *User) HasRole() bool {
	return u != nil && u.Role != ""
}

// DisplayName falls back to the local part of the email when no name is set.
func (u *User) DisplayName(fallback string) string {
	if u == nil {
		return fallback
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	if local, _, found := strings.Cut(u.Email, "@"); found && local != "" {
		return local
	}
	return fallback
}

// Merge copies the non-empty fields of update into u, the way a profile
// response is folded into the stored session user. Enabled always follows
// update.
func (u *User) Merge(update *User) {
	if update == nil {
		return
	}
	mergeString(&u.ID, update.ID)
	mergeString(&u.Name, update.Name)
	mergeString(&u.Email, update.Email)
	mergeString(&u.PhoneNumber, update.PhoneNumber)
	mergeString(&u.DateOfBirth, update.DateOfBirth)
	mergeString(&u.Address, update.Address)
	mergeString(&u.ProfileImage, update.ProfileImage)
	mergeString(&u.MedicalHistory, update.MedicalHistory)
	mergeString(&u.Allergies, update.Allergies)
	mergeString(&u.EmergencyContact, update.EmergencyContact)
	mergeString(&u.LicenseNumber, update.LicenseNumber)
	mergeString(&u.Specialization, update.Specialization)
	mergeString(&u.UpdatedAt, update.UpdatedAt)
	if update.Role != "" {
		u.Role = update.Role
	}
	u.Enabled = update.Enabled
}

func mergeString(target *string, value string) {
	if value != "" {
		*target = value
	}
}
