package admins

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type adminUsecase struct {
	AdminAPI contracts.AdminAPIClient
	Log      *zap.Logger
}

func NewAdminUsecase(adminAPI contracts.AdminAPIClient, logger *zap.Logger) contracts.AdminUsecase {
	return &adminUsecase{
		AdminAPI: adminAPI,
		Log:      logger,
	}
}

func (uc *adminUsecase) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("adminUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	stats, err := uc.AdminAPI.GetDashboardStats(ctx)
	if err != nil {
		uc.Log.Error("adminUsecase.Dashboard error fetching dashboard stats",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &models.AdminDashboard{
		Stats:         *stats,
		RecentRefills: stats.RecentRefills(),
	}, nil
}

func (uc *adminUsecase) Profile(ctx context.Context) (*models.User, error) {
	uc.Log.Info("adminUsecase.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.AdminAPI.GetProfile(ctx)
}

func (uc *adminUsecase) UpdateProfile(ctx context.Context, request *requests.AdminProfile) (*models.User, error) {
	uc.Log.Info("adminUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.AdminAPI.UpdateProfile(ctx, request.ToProfile())
}
