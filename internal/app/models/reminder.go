package models

type Reminder struct {
	ID           string     `json:"id,omitempty"`
	Patient      *Reference `json:"patient,omitempty"`
	MedicineName string     `json:"medicineName"`
	Dosage       string     `json:"dosage,omitempty"`
	Frequency    string     `json:"frequency,omitempty"`
	Times        []string   `json:"times"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      *string    `json:"endDate"`
	Instructions string     `json:"instructions,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    string     `json:"createdAt,omitempty"`
}

// ReminderFrequencies are the choices offered on the reminder form.
func ReminderFrequencies() []string {
	return []string{"Daily", "Twice Daily", "Three Times Daily", "Weekly", "Custom"}
}
