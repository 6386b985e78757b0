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
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	doctorPrescriptionsPath = "/doctor/prescriptions"
	doctorProfilePath       = "/doctor/profile"
)

type DoctorController struct {
	*BaseController
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(base *BaseController, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		BaseController: base,
		DoctorUsecase:  doctorUsecase,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{
		Title:          "Dashboard",
		RefreshSeconds: ctrl.InternalConfig.Dashboard.RefreshSeconds(string(models.RoleDoctor)),
		LiveFeed:       true,
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	dashboard, err := ctrl.DoctorUsecase.Dashboard(ctx, utils.GetSessionFromContext(r.Context()))
	if err != nil {
		ctrl.renderFailure(w, r, err, "doctor_dashboard", page, constvars.ErrClientLoadDoctorDashboard)
		return
	}

	page.Data = dashboard
	ctrl.render(w, r, "doctor_dashboard", page)
}

func (ctrl *DoctorController) Patients(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := &views.PatientsData{Query: query}
	page := &views.Page{Title: "Patients", Data: data}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	patients, err := ctrl.DoctorUsecase.Patients(ctx, query)
	if err != nil {
		ctrl.renderFailure(w, r, err, "doctor_patients", page, constvars.ErrClientLoadPatients)
		return
	}

	data.Patients = patients
	ctrl.render(w, r, "doctor_patients", page)
}

func (ctrl *DoctorController) Patient(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Patient"}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	patient, err := ctrl.DoctorUsecase.Patient(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.renderFailure(w, r, err, "doctor_patient", page, constvars.ErrClientLoadPatients)
		return
	}

	page.Title = patient.DisplayName("Patient")
	page.Data = patient
	ctrl.render(w, r, "doctor_patient", page)
}

func (ctrl *DoctorController) Prescriptions(w http.ResponseWriter, r *http.Request) {
	ctrl.renderPrescriptions(w, r, r.URL.Query().Get("patientId"), "")
}

func (ctrl *DoctorController) renderPrescriptions(w http.ResponseWriter, r *http.Request, patientID, formError string) {
	page := &views.Page{
		Title: "Prescriptions",
		Error: formError,
		Data:  views.NewDoctorPrescriptionsData(nil, nil, patientID),
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	prescriptions, patients, err := ctrl.DoctorUsecase.Prescriptions(ctx)
	if err != nil {
		ctrl.renderFailure(w, r, err, "doctor_prescriptions", page, constvars.ErrClientLoadPrescriptionData)
		return
	}

	page.Data = views.NewDoctorPrescriptionsData(prescriptions, patients, patientID)
	ctrl.render(w, r, "doctor_prescriptions", page)
}

func (ctrl *DoctorController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := r.ParseForm()
	if err != nil {
		ctrl.fail(w, r, exceptions.ErrCannotParseForm(err), doctorPrescriptionsPath, constvars.ErrClientCreatePrescription)
		return
	}
	request := &requests.CreatePrescription{
		PatientID:   r.PostForm.Get("patientId"),
		Diagnosis:   strings.TrimSpace(r.PostForm.Get("diagnosis")),
		Notes:       strings.TrimSpace(r.PostForm.Get("notes")),
		ValidUntil:  strings.TrimSpace(r.PostForm.Get("validUntil")),
		Medications: medicationRows(r),
	}
	request.RefillLimit, err = formInt(r, "refillLimit", "Refill limit must be a number.")
	if err != nil {
		ctrl.renderPrescriptions(w, r, request.PatientID, exceptions.ClientMessage(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreatePrescriptionRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.renderPrescriptions(w, r, request.PatientID, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	_, err = ctrl.DoctorUsecase.CreatePrescription(ctx, request)
	if err != nil {
		ctrl.fail(w, r, err, doctorPrescriptionsPath, constvars.ErrClientCreatePrescription)
		return
	}

	// Send response
	ctrl.redirectWithSuccess(w, r, doctorPrescriptionsPath, constvars.PrescriptionCreatedMessage)
}

// medicationRows zips the repeated medication columns of the prescription
// form into rows. Rows without a name are dropped by the sanitizer.
func medicationRows(r *http.Request) []requests.MedicationInput {
	names := r.PostForm["medicationName"]
	column := func(key string, i int) string {
		values := r.PostForm[key]
		if i < len(values) {
			return strings.TrimSpace(values[i])
		}
		return ""
	}

	rows := make([]requests.MedicationInput, 0, len(names))
	for i := range names {
		rows = append(rows, requests.MedicationInput{
			Name:         names[i],
			Dosage:       column("medicationDosage", i),
			Frequency:    column("medicationFrequency", i),
			Duration:     column("medicationDuration", i),
			TimeOfDay:    column("medicationTimeOfDay", i),
			Instructions: column("medicationInstructions", i),
		})
	}
	return rows
}

func (ctrl *DoctorController) UpdatePrescriptionStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	prescription, err := ctrl.DoctorUsecase.UpdatePrescriptionStatus(ctx, chi.URLParam(r, "id"), r.PostFormValue("status"))
	if err != nil {
		ctrl.fail(w, r, err, doctorPrescriptionsPath, constvars.ErrClientUpdatePrescriptionStatus)
		return
	}
	ctrl.redirectWithSuccess(w, r, doctorPrescriptionsPath, fmt.Sprintf(constvars.PrescriptionStatusMessageFormat, prescription.Status))
}

func (ctrl *DoctorController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.DoctorUsecase.DeletePrescription(ctx, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, err, doctorPrescriptionsPath, constvars.ErrClientDeletePrescription)
		return
	}
	ctrl.redirectWithSuccess(w, r, doctorPrescriptionsPath, constvars.PrescriptionDeletedMessage)
}

func (ctrl *DoctorController) Analytics(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Practice analytics"}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	analytics, err := ctrl.DoctorUsecase.Analytics(ctx, time.Now())
	if err != nil {
		ctrl.renderFailure(w, r, err, "doctor_analytics", page, constvars.ErrClientLoadDoctorAnalytics)
		return
	}

	page.Data = views.NewDoctorAnalyticsData(analytics)
	ctrl.render(w, r, "doctor_analytics", page)
}

func (ctrl *DoctorController) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl.renderProfile(w, r, models.RoleDoctor, ctrl.DoctorUsecase.Profile, constvars.ErrClientLoadDoctorProfile)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	err := ctrl.parseProfileForm(r)
	if err != nil {
		ctrl.fail(w, r, err, doctorProfilePath, constvars.ErrClientSaveProfileChanges)
		return
	}
	request := &requests.DoctorProfile{
		Name:           r.PostFormValue("name"),
		Specialization: r.PostFormValue("specialization"),
		LicenseNumber:  r.PostFormValue("licenseNumber"),
		PhoneNumber:    r.PostFormValue("phoneNumber"),
		Address:        r.PostFormValue("address"),
	}
	// Sanitize request
	utils.SanitizeDoctorProfileRequest(request)

	// Validate request
	err = utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, doctorProfilePath, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	request.ProfileImage, err = ctrl.uploadProfileImage(ctx, r)
	if err != nil {
		ctrl.fail(w, r, err, doctorProfilePath, constvars.ErrClientImageUploadFailed)
		return
	}

	user, err := ctrl.DoctorUsecase.UpdateProfile(ctx, request)
	if err != nil {
		ctrl.fail(w, r, err, doctorProfilePath, constvars.ErrClientSaveProfileChanges)
		return
	}

	// Send response
	ctrl.refreshSessionUser(r, user)
	ctrl.redirectWithSuccess(w, r, doctorProfilePath, constvars.ProfileUpdatedMessage)
}
