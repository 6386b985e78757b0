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
	patientDashboardPath     = "/patient/dashboard"
	patientPrescriptionsPath = "/patient/prescriptions"
	patientRemindersPath     = "/patient/reminders"
	patientProfilePath       = "/patient/profile"
)

type PatientController struct {
	*BaseController
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(base *BaseController, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		BaseController: base,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{
		Title:          "Dashboard",
		RefreshSeconds: ctrl.InternalConfig.Dashboard.RefreshSeconds(string(models.RolePatient)),
		LiveFeed:       true,
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	dashboard, err := ctrl.PatientUsecase.Dashboard(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "patient_dashboard", page, constvars.ErrClientLoadPatientDashboard)
		return
	}

	page.Data = dashboard
	ctrl.render(w, r, "patient_dashboard", page)
}

func (ctrl *PatientController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PatientUsecase.MarkNotificationRead(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, patientDashboardPath, constvars.ErrClientMarkNotificationAsRead)
		return
	}
	ctrl.redirectWithSuccess(w, r, patientDashboardPath, constvars.NotificationMarkedRead)
}

func (ctrl *PatientController) Prescriptions(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "My prescriptions", Data: &views.PatientPrescriptionsData{}}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	prescriptions, refills, err := ctrl.PatientUsecase.Prescriptions(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "patient_prescriptions", page, constvars.ErrClientLoadPrescriptions)
		return
	}

	page.Data = &views.PatientPrescriptionsData{Prescriptions: prescriptions, Refills: refills}
	ctrl.render(w, r, "patient_prescriptions", page)
}

func (ctrl *PatientController) RequestRefill(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PatientUsecase.RequestRefill(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, patientPrescriptionsPath, constvars.ErrClientRequestRefill)
		return
	}
	ctrl.redirectWithSuccess(w, r, patientPrescriptionsPath, constvars.RefillRequestedMessage)
}

func (ctrl *PatientController) Reminders(w http.ResponseWriter, r *http.Request) {
	ctrl.renderReminders(w, r, &requests.CreateReminder{}, "")
}

func (ctrl *PatientController) renderReminders(w http.ResponseWriter, r *http.Request, form *requests.CreateReminder, formError string) {
	data := &views.RemindersData{Form: form}
	page := &views.Page{Title: "Medication reminders", Error: formError, Data: data}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	reminders, prescriptions, err := ctrl.PatientUsecase.Reminders(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "patient_reminders", page, constvars.ErrClientLoadReminders)
		return
	}

	data.Reminders = reminders
	data.Prescriptions = prescriptions
	ctrl.render(w, r, "patient_reminders", page)
}

func (ctrl *PatientController) CreateReminder(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := r.ParseForm()
	if err != nil {
		ctrl.fail(w, r, exceptions.ErrCannotParseForm(err), patientRemindersPath, constvars.ErrClientCreateReminder)
		return
	}
	request := &requests.CreateReminder{
		MedicineName: r.PostForm.Get("medicineName"),
		Dosage:       r.PostForm.Get("dosage"),
		Frequency:    r.PostForm.Get("frequency"),
		Times:        r.PostForm["times"],
		StartDate:    r.PostForm.Get("startDate"),
		EndDate:      r.PostForm.Get("endDate"),
		Instructions: r.PostForm.Get("instructions"),
	}
	// Sanitize request
	utils.SanitizeCreateReminderRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.renderReminders(w, r, request, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	_, err = ctrl.PatientUsecase.CreateReminder(ctx, utils.GetSessionFromContext(r.Context()), request)
	if err != nil {
		if ctrl.handleUnauthorized(w, r, err) {
			return
		}
		ctrl.logError(r, err)
		ctrl.renderReminders(w, r, request, errorBanner(err, constvars.ErrClientCreateReminder))
		return
	}

	// Send response
	ctrl.redirectWithSuccess(w, r, patientRemindersPath, constvars.ReminderCreatedMessage)
}

func (ctrl *PatientController) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	reminder, err := ctrl.PatientUsecase.ToggleReminder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, patientRemindersPath, constvars.ErrClientUpdateReminder)
		return
	}
	ctrl.redirectWithSuccess(w, r, patientRemindersPath, fmt.Sprintf(constvars.ReminderToggledMessageFormat, reminder.MedicineName))
}

func (ctrl *PatientController) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.PatientUsecase.DeleteReminder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, patientRemindersPath, constvars.ErrClientDeleteReminder)
		return
	}
	ctrl.redirectWithSuccess(w, r, patientRemindersPath, constvars.ReminderDeletedMessage)
}

func (ctrl *PatientController) LogDose(w http.ResponseWriter, r *http.Request) {
	location := nextPath(r, patientRemindersPath)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	doseLog, err := ctrl.PatientUsecase.LogDose(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, location, constvars.ErrClientLogDose)
		return
	}

	medicineName := r.PostFormValue("medicineName")
	if doseLog.Reminder != nil && doseLog.Reminder.MedicineName != "" {
		medicineName = doseLog.Reminder.MedicineName
	}
	ctrl.redirectWithSuccess(w, r, location, fmt.Sprintf(constvars.DoseLoggedMessageFormat, medicineName))
}

func (ctrl *PatientController) Analytics(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Adherence analytics"}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	analytics, err := ctrl.PatientUsecase.Analytics(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "patient_analytics", page, constvars.ErrClientLoadAnalytics)
		return
	}

	page.Data = analytics
	ctrl.render(w, r, "patient_analytics", page)
}

func (ctrl *PatientController) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl.renderProfile(w, r, models.RolePatient, ctrl.PatientUsecase.Profile, constvars.ErrClientProfileLoadFailed)
}

func (ctrl *PatientController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := ctrl.parseProfileForm(r)
	if err != nil {
		ctrl.fail(w, r, err, patientProfilePath, constvars.ErrClientProfileUpdateFailed)
		return
	}
	request := &requests.PatientProfile{
		Name:        r.PostFormValue("name"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		DateOfBirth: r.PostFormValue("dateOfBirth"),
		Address:     r.PostFormValue("address"),
	}
	medicalInfo := &requests.MedicalInfo{
		MedicalHistory:   r.PostFormValue("medicalHistory"),
		Allergies:        r.PostFormValue("allergies"),
		EmergencyContact: r.PostFormValue("emergencyContact"),
	}
	// Sanitize request
	utils.SanitizePatientProfileRequest(request)
	utils.SanitizeMedicalInfoRequest(medicalInfo)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, patientProfilePath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	request.ProfileImage, err = ctrl.uploadProfileImage(ctx, r)
	if err != nil {
		ctrl.fail(w, r, err, patientProfilePath, constvars.ErrClientImageUploadFailed)
		return
	}

	user, err := ctrl.PatientUsecase.UpdateProfile(ctx, request, medicalInfo)
	if err != nil {
		ctrl.fail(w, r, err, patientProfilePath, constvars.ErrClientProfileUpdateFailed)
		return
	}

	// Send response
	ctrl.refreshSessionUser(r, user)
	ctrl.redirectWithSuccess(w, r, patientProfilePath, constvars.ProfileUpdatedMessage)
}
