package pharmacists

import (
	"context"
	"fmt"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/utils"
	"net/url"

	"go.uber.org/zap"
)

type pharmacistAPIClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewPharmacistAPIClient(api contracts.APIClient, logger *zap.Logger) contracts.PharmacistAPIClient {
	return &pharmacistAPIClient{
		API: api,
		Log: logger,
	}
}

func (c *pharmacistAPIClient) GetDashboardStats(ctx context.Context) (*models.PharmacistDashboardStats, error) {
	c.Log.Info("pharmacistAPIClient.GetDashboardStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	stats := new(models.PharmacistDashboardStats)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPharmacistDashboard, nil, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *pharmacistAPIClient) GetInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return c.getItems(ctx, "GetInventory", constvars.APIPharmacistInventory)
}

func (c *pharmacistAPIClient) GetLowStockAlerts(ctx context.Context) ([]models.InventoryItem, error) {
	return c.getItems(ctx, "GetLowStockAlerts", constvars.APIPharmacistLowStockAlerts)
}

func (c *pharmacistAPIClient) GetExpiringAlerts(ctx context.Context) ([]models.InventoryItem, error) {
	return c.getItems(ctx, "GetExpiringAlerts", constvars.APIPharmacistExpiringAlerts)
}

func (c *pharmacistAPIClient) getItems(ctx context.Context, method, path string) ([]models.InventoryItem, error) {
	c.Log.Info("pharmacistAPIClient."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var items []models.InventoryItem
	err := c.API.Do(ctx, constvars.MethodGet, path, nil, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *pharmacistAPIClient) GetInventoryItem(ctx context.Context, itemID string) (*models.InventoryItem, error) {
	c.Log.Info("pharmacistAPIClient.GetInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, itemID),
	)

	item := new(models.InventoryItem)
	err := c.API.Do(ctx, constvars.MethodGet, utils.BuildResourcePath(constvars.APIPharmacistInventory, itemID), nil, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *pharmacistAPIClient) AddInventoryItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	c.Log.Info("pharmacistAPIClient.AddInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	created := new(models.InventoryItem)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIPharmacistInventory, item, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *pharmacistAPIClient) UpdateInventoryItem(ctx context.Context, itemID string, item *models.InventoryItem) (*models.InventoryItem, error) {
	c.Log.Info("pharmacistAPIClient.UpdateInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, itemID),
	)

	updated := new(models.InventoryItem)
	err := c.API.Do(ctx, constvars.MethodPut, utils.BuildResourcePath(constvars.APIPharmacistInventory, itemID), item, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *pharmacistAPIClient) DeleteInventoryItem(ctx context.Context, itemID string) error {
	c.Log.Info("pharmacistAPIClient.DeleteInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, itemID),
	)
	return c.API.Do(ctx, constvars.MethodDelete, utils.BuildResourcePath(constvars.APIPharmacistInventory, itemID), nil, nil)
}

func (c *pharmacistAPIClient) GetPendingOrders(ctx context.Context) ([]models.RefillRequest, error) {
	c.Log.Info("pharmacistAPIClient.GetPendingOrders called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var orders []models.RefillRequest
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPharmacistPendingOrders, nil, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *pharmacistAPIClient) FulfillOrder(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*models.RefillRequest, error) {
	c.Log.Info("pharmacistAPIClient.FulfillOrder called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, orderID),
		zap.String("status", request.Status),
	)

	order := new(models.RefillRequest)
	path := fmt.Sprintf(constvars.APIPharmacistFulfillOrderPath, url.PathEscape(orderID))
	err := c.API.Do(ctx, constvars.MethodPut, path, request, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (c *pharmacistAPIClient) GetAnalytics(ctx context.Context) (*models.PharmacistAnalytics, error) {
	c.Log.Info("pharmacistAPIClient.GetAnalytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	analytics := new(models.PharmacistAnalytics)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPharmacistAnalytics, nil, analytics)
	if err != nil {
		return nil, err
	}
	return analytics, nil
}

func (c *pharmacistAPIClient) GetProfile(ctx context.Context) (*models.User, error) {
	c.Log.Info("pharmacistAPIClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPharmacistProfile, nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *pharmacistAPIClient) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	c.Log.Info("pharmacistAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIPharmacistProfile, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *pharmacistAPIClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	c.Log.Info("pharmacistAPIClient.GetNotifications called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var notifications []models.Notification
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPharmacistNotifications, nil, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *pharmacistAPIClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	c.Log.Info("pharmacistAPIClient.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, notificationID),
	)
	path := fmt.Sprintf(constvars.APIPharmacistNotificationRead, url.PathEscape(notificationID))
	return c.API.Do(ctx, constvars.MethodPut, path, nil, nil)
}
