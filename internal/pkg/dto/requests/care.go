package requests

import "medtrack-portal/internal/pkg/constvars"

type CreateReminder struct {
	MedicineName string   `validate:"required"`
	Dosage       string   `validate:"required"`
	StartDate    string   `validate:"required"`
	Times        []string `validate:"min=1,dive,clocktime"`
	Frequency    string
	EndDate      string
	Instructions string
}

func (r *CreateReminder) ValidationMessages() map[string]string {
	return map[string]string{
		"MedicineName.required": constvars.ErrClientReminderMedicineRequired,
		"Dosage.required":       constvars.ErrClientReminderDosageRequired,
		"StartDate.required":    constvars.ErrClientReminderStartRequired,
		"Times.min":             constvars.ErrClientReminderTimeRequired,
	}
}

type MedicationInput struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	TimeOfDay    string `json:"timeOfDay"`
	Instructions string `json:"instructions"`
}

type CreatePrescription struct {
	PatientID   string            `validate:"required"`
	Medications []MedicationInput `validate:"min=1,dive"`
	Diagnosis   string
	Notes       string
	RefillLimit int `validate:"gte=0"`
	ValidUntil  string
}

func (r *CreatePrescription) ValidationMessages() map[string]string {
	return map[string]string{
		"PatientID.required": constvars.ErrClientPrescriptionPatientNeeded,
		"Medications.min":    constvars.ErrClientPrescriptionMedsNeeded,
		"Name.required":      constvars.ErrClientPrescriptionMedsNeeded,
		"RefillLimit.gte":    "Refill limit cannot be negative.",
	}
}

type InventoryItem struct {
	MedicineName string  `validate:"required"`
	BatchNumber  string
	Quantity     int     `validate:"gte=0"`
	Price        float64 `validate:"gte=0"`
	ExpiryDate   string
	Status       string `validate:"omitempty,oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK EXPIRED"`
}

func (r *InventoryItem) ValidationMessages() map[string]string {
	return map[string]string{
		"MedicineName.required": constvars.ErrClientInventoryMedicineRequired,
		"Quantity.gte":          "Quantity cannot be negative.",
		"Price.gte":             "Price cannot be negative.",
	}
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,refillstatus"`
}

func (r *UpdateOrderStatus) ValidationMessages() map[string]string {
	return map[string]string{
		"Status.required":     constvars.ErrClientInvalidRefillStatus,
		"Status.refillstatus": constvars.ErrClientInvalidRefillStatus,
	}
}

type RefillRequestNote struct {
	Note string `json:"note,omitempty"`
}

// LogDose records a taken dose; an empty ScheduledAt means "now" on the API
// side.
type LogDose struct {
	ScheduledAt string `json:"scheduledAt,omitempty"`
}
