package controllers

import (
	"fmt"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	pharmacistDashboardPath = "/pharmacist/dashboard"
	pharmacistInventoryPath = "/pharmacist/inventory"
	pharmacistProfilePath   = "/pharmacist/profile"
)

type PharmacistController struct {
	*BaseController
	PharmacistUsecase contracts.PharmacistUsecase
}

func NewPharmacistController(base *BaseController, pharmacistUsecase contracts.PharmacistUsecase) *PharmacistController {
	return &PharmacistController{
		BaseController:    base,
		PharmacistUsecase: pharmacistUsecase,
	}
}

func (ctrl *PharmacistController) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{
		Title:          "Dashboard",
		RefreshSeconds: ctrl.InternalConfig.Dashboard.RefreshSeconds(string(models.RolePharmacist)),
		LiveFeed:       true,
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	dashboard, err := ctrl.PharmacistUsecase.Dashboard(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "pharmacist_dashboard", page, constvars.ErrClientLoadPharmacistData)
		return
	}

	page.Data = dashboard
	ctrl.render(w, r, "pharmacist_dashboard", page)
}

func (ctrl *PharmacistController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	request := &requests.UpdateOrderStatus{Status: r.PostFormValue("status")}
	// Sanitize request
	utils.SanitizeUpdateOrderStatusRequest(request)

	// Validate request
	err := utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, pharmacistDashboardPath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	order, err := ctrl.PharmacistUsecase.UpdateOrderStatus(ctx, chi.URLParam(r, "id"), request)
	if err != nil {
		ctrl.fail(w, r, err, pharmacistDashboardPath, constvars.ErrClientUpdateOrderStatus)
		return
	}

	status := request.Status
	if order != nil && order.Status != "" {
		status = string(order.Status)
	}
	ctrl.redirectWithSuccess(w, r, pharmacistDashboardPath, fmt.Sprintf(constvars.OrderUpdatedMessageFormat, status))
}

func (ctrl *PharmacistController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PharmacistUsecase.MarkNotificationRead(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, pharmacistDashboardPath, constvars.ErrClientMarkNotificationAsRead)
		return
	}
	ctrl.redirectWithSuccess(w, r, pharmacistDashboardPath, constvars.NotificationMarkedRead)
}

func (ctrl *PharmacistController) Inventory(w http.ResponseWriter, r *http.Request) {
	ctrl.renderInventory(w, r, r.URL.Query().Get("edit"), nil, "")
}

// renderInventory shows the inventory page. A non-nil form replaces the
// prefilled one so a rejected submission keeps what was typed.
func (ctrl *PharmacistController) renderInventory(w http.ResponseWriter, r *http.Request, editingID string, form *requests.InventoryItem, formError string) {
	page := &views.Page{
		Title: "Inventory",
		Error: formError,
		Data:  views.NewInventoryData(nil, nil, ""),
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	items, orders, err := ctrl.PharmacistUsecase.Inventory(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "pharmacist_inventory", page, constvars.ErrClientLoadInventoryData)
		return
	}

	data := views.NewInventoryData(items, orders, editingID)
	if form != nil {
		data.Form = form
	}
	page.Data = data
	ctrl.render(w, r, "pharmacist_inventory", page)
}

func (ctrl *PharmacistController) SaveInventoryItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	// Bind form to request
	request := &requests.InventoryItem{
		MedicineName: r.PostFormValue("medicineName"),
		BatchNumber:  r.PostFormValue("batchNumber"),
		ExpiryDate:   r.PostFormValue("expiryDate"),
		Status:       r.PostFormValue("status"),
	}
	var err error
	request.Quantity, err = formInt(r, "quantity", "Quantity must be a whole number.")
	if err == nil {
		request.Price, err = formFloat(r, "price", "Price must be a number.")
	}
	if err != nil {
		ctrl.renderInventory(w, r, itemID, request, exceptions.ClientMessage(err))
		return
	}
	// Sanitize request
	utils.SanitizeInventoryItemRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.renderInventory(w, r, itemID, request, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	_, err = ctrl.PharmacistUsecase.SaveInventoryItem(ctx, itemID, request)
	if err != nil {
		fallback := constvars.ErrClientSaveInventory
		if itemID == "" {
			fallback = constvars.ErrClientAddInventoryItem
		}
		ctrl.fail(w, r, err, pharmacistInventoryPath, fallback)
		return
	}

	// Send response
	message := constvars.InventorySavedMessage
	if itemID == "" {
		message = constvars.InventoryAddedMessage
	}
	ctrl.redirectWithSuccess(w, r, pharmacistInventoryPath, message)
}

func (ctrl *PharmacistController) DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PharmacistUsecase.DeleteInventoryItem(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, pharmacistInventoryPath, constvars.ErrClientDeleteInventory)
		return
	}
	ctrl.redirectWithSuccess(w, r, pharmacistInventoryPath, constvars.InventoryDeletedMessage)
}

func (ctrl *PharmacistController) Alerts(w http.ResponseWriter, r *http.Request) {
	data := &views.AlertsData{}
	page := &views.Page{Title: "Stock alerts", Data: data}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	lowStock, expiring, err := ctrl.PharmacistUsecase.Alerts(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "pharmacist_alerts", page, constvars.ErrClientLoadAlerts)
		return
	}

	data.LowStock = lowStock
	data.Expiring = expiring
	ctrl.render(w, r, "pharmacist_alerts", page)
}

func (ctrl *PharmacistController) Analytics(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Pharmacy analytics"}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	analytics, err := ctrl.PharmacistUsecase.Analytics(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "pharmacist_analytics", page, constvars.ErrClientLoadPharmacistAnalytics)
		return
	}

	page.Data = views.NewPharmacistAnalyticsData(analytics)
	ctrl.render(w, r, "pharmacist_analytics", page)
}

func (ctrl *PharmacistController) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl.renderProfile(w, r, models.RolePharmacist, ctrl.PharmacistUsecase.Profile, constvars.ErrClientLoadPharmacistProfile)
}

func (ctrl *PharmacistController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := ctrl.parseProfileForm(r)
	if err != nil {
		ctrl.fail(w, r, err, pharmacistProfilePath, constvars.ErrClientProfileUpdateFailed)
		return
	}
	request := &requests.PharmacistProfile{
		Name:          r.PostFormValue("name"),
		LicenseNumber: r.PostFormValue("licenseNumber"),
		PhoneNumber:   r.PostFormValue("phoneNumber"),
		Address:       r.PostFormValue("address"),
	}
	// Sanitize request
	utils.SanitizePharmacistProfileRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, pharmacistProfilePath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	request.ProfileImage, err = ctrl.uploadProfileImage(ctx, r)
	if err != nil {
		ctrl.fail(w, r, err, pharmacistProfilePath, constvars.ErrClientImageUploadFailed)
		return
	}

	user, err := ctrl.PharmacistUsecase.UpdateProfile(ctx, request)
	if err != nil {
		ctrl.fail(w, r, err, pharmacistProfilePath, constvars.ErrClientProfileUpdateFailed)
		return
	}

	// Send response
	ctrl.refreshSessionUser(r, user)
	ctrl.redirectWithSuccess(w, r, pharmacistProfilePath, constvars.ProfileUpdatedMessage)
}
