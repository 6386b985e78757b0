package models

import (
	"errors"
	"strings"
)

type Role string

const (
	RolePatient    Role = "PATIENT"
	RoleDoctor     Role = "DOCTOR"
	RolePharmacist Role = "PHARMACIST"
	RoleAdmin      Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

// Roles lists every role in the order they are offered on role selection.
func Roles() []Role {
	return []Role{RolePatient, RoleDoctor, RolePharmacist, RoleAdmin}
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", ErrUnknownRole
	}
	return role, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor, RolePharmacist, RoleAdmin:
		return true
	}
	return false
}

func (r Role) Lower() string {
	return strings.ToLower(string(r))
}

func (r Role) DashboardPath() string {
	return "/" + r.Lower() + "/dashboard"
}

func (r Role) SetupPath() string {
	return "/setup/" + r.Lower()
}

func (r Role) Label() string {
	switch r {
	case RolePatient:
		return "Patient"
	case RoleDoctor:
		return "Doctor"
	case RolePharmacist:
		return "Pharmacist"
	case RoleAdmin:
		return "Administrator"
	}
	return string(r)
}
