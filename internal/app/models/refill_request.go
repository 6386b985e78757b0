package models

import (
	"errors"
	"strings"
)

type RefillStatus string

const (
	RefillStatusRequested  RefillStatus = "REQUESTED"
	RefillStatusProcessing RefillStatus = "PROCESSING"
	RefillStatusReady      RefillStatus = "READY"
	RefillStatusDispensed  RefillStatus = "DISPENSED"
	RefillStatusRejected   RefillStatus = "REJECTED"
)

var ErrUnknownRefillStatus = errors.New("unknown refill status")

// RefillStatuses is the vocabulary a pharmacist may move an order to. No
// transition order is enforced.
func RefillStatuses() []RefillStatus {
	return []RefillStatus{
		RefillStatusRequested,
		RefillStatusProcessing,
		RefillStatusReady,
		RefillStatusDispensed,
		RefillStatusRejected,
	}
}

func ParseRefillStatus(value string) (RefillStatus, error) {
	status := RefillStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range RefillStatuses() {
		if status == known {
			return status, nil
		}
	}
	return "", ErrUnknownRefillStatus
}

func IsPendingRefillStatus(status RefillStatus) bool {
	switch status {
	case RefillStatusRequested, RefillStatusProcessing, RefillStatusReady:
		return true
	}
	return false
}

type RefillRequest struct {
	ID           string        `json:"id,omitempty"`
	Patient      *Reference    `json:"patient,omitempty"`
	Pharmacist   *Reference    `json:"pharmacist,omitempty"`
	Prescription *Prescription `json:"prescription,omitempty"`
	Status       RefillStatus  `json:"status,omitempty"`
	Note         string        `json:"note,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
}
