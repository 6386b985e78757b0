package pharmacists

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/analytics"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type pharmacistUsecase struct {
	PharmacistAPI contracts.PharmacistAPIClient
	Log           *zap.Logger
}

func NewPharmacistUsecase(pharmacistAPI contracts.PharmacistAPIClient, logger *zap.Logger) contracts.PharmacistUsecase {
	return &pharmacistUsecase{
		PharmacistAPI: pharmacistAPI,
		Log:           logger,
	}
}

func (uc *pharmacistUsecase) Dashboard(ctx context.Context) (*models.PharmacistDashboard, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("pharmacistUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		stats         *models.PharmacistDashboardStats
		orders        []models.RefillRequest
		notifications []models.Notification
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats, err = uc.PharmacistAPI.GetDashboardStats(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		orders, err = uc.PharmacistAPI.GetPendingOrders(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		notifications, err = uc.PharmacistAPI.GetNotifications(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("pharmacistUsecase.Dashboard error fetching dashboard data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(notifications) > constvars.PharmacistNotificationPreviewSize {
		notifications = notifications[:constvars.PharmacistNotificationPreviewSize]
	}
	return &models.PharmacistDashboard{
		Stats:         *stats,
		PendingOrders: PendingOnly(orders),
		Notifications: notifications,
		Statuses:      models.RefillStatuses(),
	}, nil
}

// PendingOnly keeps the orders still awaiting the pharmacist.
func PendingOnly(orders []models.RefillRequest) []models.RefillRequest {
	pending := make([]models.RefillRequest, 0, len(orders))
	for _, order := range orders {
		if models.IsPendingRefillStatus(order.Status) {
			pending = append(pending, order)
		}
	}
	return pending
}

// UpdateOrderStatus moves an order to any status of the vocabulary. Unknown
// statuses never reach the API.
func (uc *pharmacistUsecase) UpdateOrderStatus(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*models.RefillRequest, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("pharmacistUsecase.UpdateOrderStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, orderID),
	)

	status, err := models.ParseRefillStatus(request.Status)
	if err != nil {
		return nil, exceptions.ErrInvalidRefillStatus(err)
	}
	request.Status = string(status)

	order, err := uc.PharmacistAPI.FulfillOrder(ctx, orderID, request)
	if err != nil {
		uc.Log.Error("pharmacistUsecase.UpdateOrderStatus error fulfilling order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return order, nil
}

func (uc *pharmacistUsecase) MarkNotificationRead(ctx context.Context, notificationID string) error {
	uc.Log.Info("pharmacistUsecase.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, notificationID),
	)
	return uc.PharmacistAPI.MarkNotificationRead(ctx, notificationID)
}

func (uc *pharmacistUsecase) Inventory(ctx context.Context) ([]models.InventoryItem, []models.RefillRequest, error) {
	uc.Log.Info("pharmacistUsecase.Inventory called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		items  []models.InventoryItem
		orders []models.RefillRequest
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		items, err = uc.PharmacistAPI.GetInventory(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		orders, err = uc.PharmacistAPI.GetPendingOrders(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return items, orders, nil
}

// SaveInventoryItem adds the item when itemID is empty and updates it
// otherwise. The expiry date covers the whole chosen day.
func (uc *pharmacistUsecase) SaveInventoryItem(ctx context.Context, itemID string, request *requests.InventoryItem) (*models.InventoryItem, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("pharmacistUsecase.SaveInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, itemID),
	)

	item := &models.InventoryItem{
		MedicineName: request.MedicineName,
		BatchNumber:  request.BatchNumber,
		Quantity:     request.Quantity,
		Price:        request.Price,
		Status:       request.Status,
	}
	if request.ExpiryDate != "" {
		expiryDate := request.ExpiryDate + constvars.ReminderEndTimeSuffix
		item.ExpiryDate = &expiryDate
	}

	if itemID == "" {
		return uc.PharmacistAPI.AddInventoryItem(ctx, item)
	}

	// The form carries no pharmacist or timestamps; keep the stored ones.
	existing, err := uc.PharmacistAPI.GetInventoryItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.ID = itemID
	item.Pharmacist = existing.Pharmacist
	item.CreatedAt = existing.CreatedAt
	return uc.PharmacistAPI.UpdateInventoryItem(ctx, itemID, item)
}

func (uc *pharmacistUsecase) DeleteInventoryItem(ctx context.Context, itemID string) error {
	uc.Log.Info("pharmacistUsecase.DeleteInventoryItem called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, itemID),
	)
	return uc.PharmacistAPI.DeleteInventoryItem(ctx, itemID)
}

func (uc *pharmacistUsecase) Alerts(ctx context.Context) ([]models.InventoryItem, []models.InventoryItem, error) {
	uc.Log.Info("pharmacistUsecase.Alerts called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var lowStock, expiring []models.InventoryItem
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		lowStock, err = uc.PharmacistAPI.GetLowStockAlerts(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		expiring, err = uc.PharmacistAPI.GetExpiringAlerts(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return lowStock, expiring, nil
}

func (uc *pharmacistUsecase) Analytics(ctx context.Context) (*models.PharmacistAnalyticsView, error) {
	uc.Log.Info("pharmacistUsecase.Analytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		summary *models.PharmacistAnalytics
		items   []models.InventoryItem
		orders  []models.RefillRequest
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		summary, err = uc.PharmacistAPI.GetAnalytics(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		items, err = uc.PharmacistAPI.GetInventory(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		orders, err = uc.PharmacistAPI.GetPendingOrders(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &models.PharmacistAnalyticsView{
		Summary:           *summary,
		StockDistribution: analytics.StockDistribution(items),
		RefillStatus:      analytics.RefillStatusDistribution(orders),
	}, nil
}

func (uc *pharmacistUsecase) Profile(ctx context.Context) (*models.User, error) {
	uc.Log.Info("pharmacistUsecase.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.PharmacistAPI.GetProfile(ctx)
}

func (uc *pharmacistUsecase) UpdateProfile(ctx context.Context, request *requests.PharmacistProfile) (*models.User, error) {
	uc.Log.Info("pharmacistUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.PharmacistAPI.UpdateProfile(ctx, request.ToProfile())
}
