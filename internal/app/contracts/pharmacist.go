package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
)

type PharmacistAPIClient interface {
	GetDashboardStats(ctx context.Context) (*models.PharmacistDashboardStats, error)
	GetInventory(ctx context.Context) ([]models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, itemID string) (*models.InventoryItem, error)
	AddInventoryItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, itemID string, item *models.InventoryItem) (*models.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, itemID string) error
	GetPendingOrders(ctx context.Context) ([]models.RefillRequest, error)
	FulfillOrder(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*models.RefillRequest, error)
	GetAnalytics(ctx context.Context) (*models.PharmacistAnalytics, error)
	GetLowStockAlerts(ctx context.Context) ([]models.InventoryItem, error)
	GetExpiringAlerts(ctx context.Context) ([]models.InventoryItem, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

type PharmacistUsecase interface {
	Dashboard(ctx context.Context) (*models.PharmacistDashboard, error)
	UpdateOrderStatus(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*models.RefillRequest, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	Inventory(ctx context.Context) ([]models.InventoryItem, []models.RefillRequest, error)
	SaveInventoryItem(ctx context.Context, itemID string, request *requests.InventoryItem) (*models.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, itemID string) error
	Alerts(ctx context.Context) (lowStock []models.InventoryItem, expiring []models.InventoryItem, err error)
	Analytics(ctx context.Context) (*models.PharmacistAnalyticsView, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, request *requests.PharmacistProfile) (*models.User, error)
}
