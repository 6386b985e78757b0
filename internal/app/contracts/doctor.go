package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
	"time"
)

type DoctorAPIClient interface {
	GetDashboardStats(ctx context.Context) (*models.DoctorDashboardStats, error)
	GetPatients(ctx context.Context) ([]models.User, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.User, error)
	SearchPatients(ctx context.Context, query string) ([]models.User, error)
	GetPrescriptions(ctx context.Context) ([]models.Prescription, error)
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (*models.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
	GetAnalytics(ctx context.Context) (*models.DoctorAnalytics, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error)
}

type DoctorUsecase interface {
	Dashboard(ctx context.Context, session *models.Session) (*models.DoctorDashboard, error)
	Patients(ctx context.Context, query string) ([]models.User, error)
	Patient(ctx context.Context, patientID string) (*models.User, error)
	Prescriptions(ctx context.Context) ([]models.Prescription, []models.User, error)
	CreatePrescription(ctx context.Context, request *requests.CreatePrescription) (*models.Prescription, error)
	UpdatePrescriptionStatus(ctx context.Context, prescriptionID, status string) (*models.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
	Analytics(ctx context.Context, now time.Time) (*models.DoctorAnalyticsView, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.DoctorProfile) (*models.User, error)
}
