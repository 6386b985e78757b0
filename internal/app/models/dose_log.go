package models

const (
	DoseStatusTaken  = "TAKEN"
	DoseStatusMissed = "MISSED"
)

type DoseLog struct {
	ID          string     `json:"id,omitempty"`
	Patient     *Reference `json:"patient,omitempty"`
	Reminder    *Reminder  `json:"reminder,omitempty"`
	ScheduledAt string     `json:"scheduledAt,omitempty"`
	TakenAt     string     `json:"takenAt,omitempty"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
}
