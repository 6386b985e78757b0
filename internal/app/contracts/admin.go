package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
)

// RecordBackend is the fetch/create/update/remove quartet behind each tab
// of the admin record editor. kind is the tab key, e.g. "doseLogs".
type RecordBackend interface {
	ListRecords(ctx context.Context, kind string) ([]models.Record, error)
	CreateRecord(ctx context.Context, kind string, payload models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, kind, recordID string, payload models.Record) (models.Record, error)
	DeleteRecord(ctx context.Context, kind, recordID string) error
}

type AdminAPIClient interface {
	RecordBackend
	GetDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error)
	GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error)
}

type AdminUsecase interface {
	Dashboard(ctx context.Context) (*models.AdminDashboard, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.AdminProfile) (*models.User, error)
}
