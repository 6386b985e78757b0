package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
)

type PatientAPIClient interface {
	GetDashboardStats(ctx context.Context) (*models.PatientDashboardStats, error)
	GetPrescriptions(ctx context.Context) ([]models.Prescription, error)
	GetPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	CreateRefillRequest(ctx context.Context, prescriptionID string, request *requests.RefillRequestNote) (*models.RefillRequest, error)
	GetRefillRequests(ctx context.Context) ([]models.RefillRequest, error)
	GetReminders(ctx context.Context) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, reminderID string, reminder *models.Reminder) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID string) error
	LogDose(ctx context.Context, reminderID string, request *requests.LogDose) (*models.DoseLog, error)
	GetAnalytics(ctx context.Context) (*models.PatientAnalytics, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error)
	UpdateMedicalInfo(ctx context.Context, request *requests.MedicalInfo) (*models.User, error)
}

type PatientUsecase interface {
	Dashboard(ctx context.Context) (*models.PatientDashboard, error)
	Prescriptions(ctx context.Context) ([]models.Prescription, []models.RefillRequest, error)
	RequestRefill(ctx context.Context, prescriptionID string) error
	Reminders(ctx context.Context) ([]models.Reminder, []models.Prescription, error)
	CreateReminder(ctx context.Context, session *models.Session, request *requests.CreateReminder) (*models.Reminder, error)
	ToggleReminder(ctx context.Context, reminderID string) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID string) error
	LogDose(ctx context.Context, reminderID string) (*models.DoseLog, error)
	Analytics(ctx context.Context) (*models.PatientAnalytics, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.PatientProfile, medicalInfo *requests.MedicalInfo) (*models.User, error)
}
