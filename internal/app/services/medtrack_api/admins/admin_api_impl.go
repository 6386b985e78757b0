package admins

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// recordPaths maps each control center tab to its admin collection.
var recordPaths = map[string]string{
	constvars.RecordKindUsers:         constvars.APIAdminUsers,
	constvars.RecordKindPrescriptions: constvars.APIAdminPrescriptions,
	constvars.RecordKindReminders:     constvars.APIAdminReminders,
	constvars.RecordKindInventory:     constvars.APIAdminInventory,
	constvars.RecordKindRefills:       constvars.APIAdminRefillRequests,
	constvars.RecordKindDoseLogs:      constvars.APIAdminDoseLogs,
	constvars.RecordKindNotifications: constvars.APIAdminNotifications,
}

type adminAPIClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewAdminAPIClient(api contracts.APIClient, logger *zap.Logger) contracts.AdminAPIClient {
	return &adminAPIClient{
		API: api,
		Log: logger,
	}
}

func collectionPath(kind string) (string, error) {
	path, ok := recordPaths[kind]
	if !ok {
		return "", exceptions.ErrUnknownRecordKind(kind)
	}
	return path, nil
}

func (c *adminAPIClient) ListRecords(ctx context.Context, kind string) ([]models.Record, error) {
	c.Log.Info("adminAPIClient.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordKindKey, kind),
	)

	path, err := collectionPath(kind)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	err = c.API.Do(ctx, constvars.MethodGet, path, nil, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *adminAPIClient) CreateRecord(ctx context.Context, kind string, payload models.Record) (models.Record, error) {
	c.Log.Info("adminAPIClient.CreateRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordKindKey, kind),
	)

	path, err := collectionPath(kind)
	if err != nil {
		return nil, err
	}

	created := models.Record{}
	err = c.API.Do(ctx, constvars.MethodPost, path, payload, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *adminAPIClient) UpdateRecord(ctx context.Context, kind, recordID string, payload models.Record) (models.Record, error) {
	c.Log.Info("adminAPIClient.UpdateRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordKindKey, kind),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	path, err := collectionPath(kind)
	if err != nil {
		return nil, err
	}

	updated := models.Record{}
	err = c.API.Do(ctx, constvars.MethodPut, utils.BuildResourcePath(path, recordID), payload, &updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *adminAPIClient) DeleteRecord(ctx context.Context, kind, recordID string) error {
	c.Log.Info("adminAPIClient.DeleteRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordKindKey, kind),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	path, err := collectionPath(kind)
	if err != nil {
		return err
	}
	return c.API.Do(ctx, constvars.MethodDelete, utils.BuildResourcePath(path, recordID), nil, nil)
}

func (c *adminAPIClient) GetDashboardStats(ctx context.Context) (*models.AdminDashboardStats, error) {
	c.Log.Info("adminAPIClient.GetDashboardStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	stats := new(models.AdminDashboardStats)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIAdminDashboard, nil, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *adminAPIClient) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	c.Log.Info("adminAPIClient.GetUsersByRole called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, string(role)),
	)

	var users []models.User
	err := c.API.Do(ctx, constvars.MethodGet, utils.BuildQueryPath(constvars.APIAdminUsers, "role", string(role)), nil, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *adminAPIClient) GetProfile(ctx context.Context) (*models.User, error) {
	c.Log.Info("adminAPIClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIAdminProfile, nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *adminAPIClient) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	c.Log.Info("adminAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIAdminProfile, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
