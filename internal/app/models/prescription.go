package models

const (
	PrescriptionStatusActive    = "ACTIVE"
	PrescriptionStatusCompleted = "COMPLETED"
	PrescriptionStatusCancelled = "CANCELLED"

	RefillStatusNone = "NONE"
)

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	TimeOfDay    string `json:"timeOfDay,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Prescription struct {
	ID               string       `json:"id,omitempty"`
	Patient          *Reference   `json:"patient,omitempty"`
	Doctor           *Reference   `json:"doctor,omitempty"`
	Medications      []Medication `json:"medications"`
	Diagnosis        string       `json:"diagnosis,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	Status           string       `json:"status,omitempty"`
	RefillLimit      int          `json:"refillLimit"`
	RefillsRemaining int          `json:"refillsRemaining"`
	DoctorApproved   bool         `json:"doctorApproved"`
	CreatedAt        string       `json:"createdAt,omitempty"`
	ValidUntil       *string      `json:"validUntil"`
}

// PrescriptionStatuses are the statuses a doctor may set.
func PrescriptionStatuses() []string {
	return []string{PrescriptionStatusActive, PrescriptionStatusCompleted, PrescriptionStatusCancelled}
}

func (p *Prescription) IsActive() bool {
	return p.Status == PrescriptionStatusActive
}

// FirstMedicationName is the name shown in prescription tables.
func (p *Prescription) FirstMedicationName() string {
	if len(p.Medications) == 0 {
		return ""
	}
	return p.Medications[0].Name
}

// LatestRefillStatus is the status of the first refill request filed for
// prescriptionID, or "NONE". refills is expected newest first.
func LatestRefillStatus(refills []RefillRequest, prescriptionID string) string {
	for _, refill := range refills {
		if refill.Prescription != nil && refill.Prescription.ID == prescriptionID {
			return string(refill.Status)
		}
	}
	return RefillStatusNone
}

// CanRequestRefill reports whether a new refill may be filed: no request is
// in flight and refills remain.
func CanRequestRefill(prescription Prescription, refills []RefillRequest) bool {
	status := RefillStatus(LatestRefillStatus(refills, prescription.ID))
	return !IsPendingRefillStatus(status) && prescription.RefillsRemaining > 0
}
