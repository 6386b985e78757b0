package controllers

import (
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/records"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
)

const (
	adminControlCenterPath = "/admin/control-center"
	adminProfilePath       = "/admin/profile"
)

type AdminController struct {
	*BaseController
	AdminUsecase  contracts.AdminUsecase
	RecordBackend contracts.RecordBackend
}

func NewAdminController(base *BaseController, adminUsecase contracts.AdminUsecase, recordBackend contracts.RecordBackend) *AdminController {
	return &AdminController{
		BaseController: base,
		AdminUsecase:   adminUsecase,
		RecordBackend:  recordBackend,
	}
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{
		Title:          "Dashboard",
		RefreshSeconds: ctrl.InternalConfig.Dashboard.RefreshSeconds(string(models.RoleAdmin)),
		LiveFeed:       true,
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	dashboard, err := ctrl.AdminUsecase.Dashboard(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "admin_dashboard", page, constvars.ErrClientLoadAdminDashboard)
		return
	}

	page.Data = dashboard
	ctrl.render(w, r, "admin_dashboard", page)
}

// controlCenterPath links back to a tab of the control center.
func controlCenterPath(tab string) string {
	if tab == "" {
		return adminControlCenterPath
	}
	return utils.BuildQueryPath(adminControlCenterPath, "tab", tab)
}

func (ctrl *AdminController) renderControlCenter(w http.ResponseWriter, r *http.Request, editor *records.Editor) {
	ctrl.render(w, r, "admin_control_center", &views.Page{
		Title:   "Control center",
		Message: editor.Message,
		Error:   editor.Error,
		Data:    &views.ControlCenterData{Editor: editor, Kinds: records.Kinds()},
	})
}

// ControlCenter shows one tab of the record editor, optionally with a
// record loaded into the draft.
func (ctrl *AdminController) ControlCenter(w http.ResponseWriter, r *http.Request) {
	editor := records.NewEditor(ctrl.RecordBackend, ctrl.Log)
	tab := r.URL.Query().Get("tab")
	if tab != "" {
		if err := editor.Select(tab); err != nil {
			ctrl.redirectWithError(w, r, adminControlCenterPath, exceptions.ClientMessage(err))
			return
		}
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := editor.Load(ctx)
	if err != nil {
		if ctrl.handleUnauthorized(w, r, err) {
			return
		}
		ctrl.logError(r, err)
		ctrl.renderControlCenter(w, r, editor)
		return
	}

	if recordID := r.URL.Query().Get("edit"); recordID != "" {
		if err := editor.StartEdit(recordID); err != nil {
			editor.Error = exceptions.ClientMessage(err)
		}
	}
	ctrl.renderControlCenter(w, r, editor)
}

// SaveRecord creates or updates a record from the submitted JSON draft.
// A rejected draft is rendered back untouched with the editor's banner.
func (ctrl *AdminController) SaveRecord(w http.ResponseWriter, r *http.Request) {
	tab := r.PostFormValue("tab")
	editor := records.NewEditor(ctrl.RecordBackend, ctrl.Log)
	if err := editor.Select(tab); err != nil {
		ctrl.redirectWithError(w, r, adminControlCenterPath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := editor.Load(ctx)
	if err != nil && ctrl.handleUnauthorized(w, r, err) {
		return
	}

	editor.EditingID = r.PostFormValue("editingId")
	editor.Draft = r.PostFormValue("draft")
	err = editor.Save(ctx)
	if err != nil {
		if ctrl.handleUnauthorized(w, r, err) {
			return
		}
		ctrl.logError(r, err)
		if editor.Message != "" {
			ctrl.redirectWithSuccess(w, r, controlCenterPath(tab), editor.Message)
			return
		}
		ctrl.renderControlCenter(w, r, editor)
		return
	}

	ctrl.redirectWithSuccess(w, r, controlCenterPath(tab), editor.Message)
}

// ConfirmDelete asks before a record is removed.
func (ctrl *AdminController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	recordID := r.URL.Query().Get("id")
	kind, err := records.Lookup(tab)
	if err != nil || recordID == "" {
		ctrl.redirectWithError(w, r, adminControlCenterPath, constvars.ErrClientRecordNotFound)
		return
	}

	editor := records.NewEditor(ctrl.RecordBackend, ctrl.Log)
	editor.Active = kind
	data := &views.ConfirmDeleteData{
		Prompt:   constvars.DeleteConfirmationPrompt,
		Kind:     kind,
		RecordID: recordID,
		Summary:  recordID,
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err = editor.Load(ctx)
	if err != nil && ctrl.handleUnauthorized(w, r, err) {
		return
	}
	for _, record := range editor.Rows() {
		if record.ID() == recordID {
			data.Summary = kind.Summary(record)
			break
		}
	}

	ctrl.render(w, r, "admin_confirm_delete", &views.Page{Title: "Delete " + kind.Singular(), Data: data})
}

func (ctrl *AdminController) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	tab := r.PostFormValue("tab")
	editor := records.NewEditor(ctrl.RecordBackend, ctrl.Log)
	if err := editor.Select(tab); err != nil {
		ctrl.redirectWithError(w, r, adminControlCenterPath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := editor.Delete(ctx, r.PostFormValue("id"), r.PostFormValue("confirmed") == "true")
	if err != nil && editor.Message == "" {
		ctrl.fail(w, r, err, controlCenterPath(tab), editor.Error)
		return
	}
	if err != nil {
		ctrl.logError(r, err)
	}

	ctrl.redirectWithSuccess(w, r, controlCenterPath(tab), editor.Message)
}

func (ctrl *AdminController) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl.renderProfile(w, r, models.RoleAdmin, ctrl.AdminUsecase.Profile, constvars.ErrClientLoadAdminProfile)
}

func (ctrl *AdminController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := ctrl.parseProfileForm(r)
	if err != nil {
		ctrl.fail(w, r, err, adminProfilePath, constvars.ErrClientUpdateAdminProfile)
		return
	}
	request := &requests.AdminProfile{
		Name:        r.PostFormValue("name"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		Address:     r.PostFormValue("address"),
	}
	// Sanitize request
	utils.SanitizeAdminProfileRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, adminProfilePath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	request.ProfileImage, err = ctrl.uploadProfileImage(ctx, r)
	if err != nil {
		ctrl.fail(w, r, err, adminProfilePath, constvars.ErrClientImageUploadFailed)
		return
	}

	user, err := ctrl.AdminUsecase.UpdateProfile(ctx, request)
	if err != nil {
		ctrl.fail(w, r, err, adminProfilePath, constvars.ErrClientUpdateAdminProfile)
		return
	}

	// Send response
	ctrl.refreshSessionUser(r, user)
	ctrl.redirectWithSuccess(w, r, adminProfilePath, constvars.ProfileUpdatedMessage)
}
