package models

type Notification struct {
	ID            string     `json:"id"`
	Recipient     *Reference `json:"recipient,omitempty"`
	Sender        *Reference `json:"sender,omitempty"`
	Type          string     `json:"type,omitempty"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	ReferenceType string     `json:"referenceType,omitempty"`
	ReferenceID   string     `json:"referenceId,omitempty"`
	Read          bool       `json:"read"`
	CreatedAt     string     `json:"createdAt,omitempty"`
}

// ReminderCreatedEvent is published when a patient schedules a reminder.
type ReminderCreatedEvent struct {
	Type         string   `json:"type"`
	PatientID    string   `json:"patientId"`
	ReminderID   string   `json:"reminderId"`
	MedicineName string   `json:"medicineName"`
	Times        []string `json:"times"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	OccurredAt   string   `json:"occurredAt"`
}
