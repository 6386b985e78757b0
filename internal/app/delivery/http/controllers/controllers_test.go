package controllers

import (
	"context"
	"errors"
	"fmt"
	"medtrack-portal/internal/app/config"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	destroyed []string
	updated   *models.User
}

func (f *fakeSessionService) Create(ctx context.Context, token string, user *models.User) (*models.Session, string, error) {
	return nil, "", nil
}

func (f *fakeSessionService) Resolve(ctx context.Context, cookieValue string) (*models.Session, error) {
	return nil, exceptions.ErrSessionInvalid(nil)
}

func (f *fakeSessionService) UpdateUser(ctx context.Context, session *models.Session, user *models.User) error {
	f.updated = user
	return nil
}

func (f *fakeSessionService) Destroy(ctx context.Context, sessionID string) error {
	f.destroyed = append(f.destroyed, sessionID)
	return nil
}

// fakePatientUsecase embeds the interface so each test only fills in what
// it exercises.
type fakePatientUsecase struct {
	contracts.PatientUsecase
	createReminder func(request *requests.CreateReminder) (*models.Reminder, error)
	logDose        func(reminderID string) (*models.DoseLog, error)
	reminders      func() ([]models.Reminder, []models.Prescription, error)
	dashboard      func() (*models.PatientDashboard, error)
}

func (f *fakePatientUsecase) CreateReminder(ctx context.Context, session *models.Session, request *requests.CreateReminder) (*models.Reminder, error) {
	return f.createReminder(request)
}

func (f *fakePatientUsecase) LogDose(ctx context.Context, reminderID string) (*models.DoseLog, error) {
	return f.logDose(reminderID)
}

func (f *fakePatientUsecase) Reminders(ctx context.Context) ([]models.Reminder, []models.Prescription, error) {
	return f.reminders()
}

func (f *fakePatientUsecase) Dashboard(ctx context.Context) (*models.PatientDashboard, error) {
	return f.dashboard()
}

type fakeDoctorUsecase struct {
	contracts.DoctorUsecase
	created *requests.CreatePrescription
}

func (f *fakeDoctorUsecase) CreatePrescription(ctx context.Context, request *requests.CreatePrescription) (*models.Prescription, error) {
	f.created = request
	return &models.Prescription{ID: "p-1"}, nil
}

func (f *fakeDoctorUsecase) Prescriptions(ctx context.Context) ([]models.Prescription, []models.User, error) {
	return nil, nil, nil
}

type fakePharmacistUsecase struct {
	contracts.PharmacistUsecase
	savedID string
	saved   *requests.InventoryItem
}

func (f *fakePharmacistUsecase) SaveInventoryItem(ctx context.Context, itemID string, request *requests.InventoryItem) (*models.InventoryItem, error) {
	f.savedID = itemID
	f.saved = request
	return &models.InventoryItem{ID: "inv-1"}, nil
}

func (f *fakePharmacistUsecase) Inventory(ctx context.Context) ([]models.InventoryItem, []models.RefillRequest, error) {
	return nil, nil, nil
}

func newTestBase(t *testing.T, sessions contracts.SessionService) *BaseController {
	renderer, err := views.NewRenderer("", zap.NewNop())
	require.NoError(t, err)
	internalConfig := &config.InternalConfig{
		App:       config.App{RequestTimeoutInSecond: 5, ProfileImageMaxSizeMB: 1},
		Session:   config.Session{CookieName: "medtrack_session"},
		Dashboard: config.Dashboard{RefreshInSecond: 30, PharmacistRefreshInSecond: 20},
	}
	return NewBaseController(zap.NewNop(), renderer, sessions, nil, internalConfig)
}

func withSession(r *http.Request, role models.Role) *http.Request {
	session := &models.Session{ID: "s-1", Token: "tok", User: &models.User{ID: "u-1", Name: "Ada", Email: "ada@x.io", Role: role}}
	return r.WithContext(utils.ContextWithSession(r.Context(), session))
}

func postForm(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// flashOf decodes the flash cookie written by a redirect.
func flashOf(t *testing.T, w *httptest.ResponseRecorder) views.Flash {
	recorded := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return views.PopFlash(recorded, r)
}

func TestErrorBanner(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"Server Message Wins", exceptions.ErrAPIResponse(400, "Prescription expired", "POST", "/refills"), "Prescription expired"},
		{"Deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), constvars.ErrClientServerLongRespond},
		{"Local Validation", exceptions.ErrFormValidation(constvars.ErrClientReminderDosageRequired), constvars.ErrClientReminderDosageRequired},
		{"Bare API Error Falls Back", exceptions.ErrAPIResponse(400, "", "POST", "/refills"), "fallback"},
		{"Server Failure Falls Back", exceptions.ErrAPIResponse(502, "", "GET", "/x"), "fallback"},
		{"Plain Error Falls Back", errors.New("boom"), "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorBanner(tc.err, "fallback"))
		})
	}
}

func TestNextPath(t *testing.T) {
	cases := map[string]string{
		"/patient/dashboard": "/patient/dashboard",
		"//evil.example":     "/patient/reminders",
		"https://evil":       "/patient/reminders",
		"":                   "/patient/reminders",
	}
	for next, want := range cases {
		r := postForm("/", url.Values{"next": {next}})
		assert.Equal(t, want, nextPath(r, "/patient/reminders"), next)
	}
}

func TestPatientController_CreateReminder(t *testing.T) {
	var received *requests.CreateReminder
	usecase := &fakePatientUsecase{
		createReminder: func(request *requests.CreateReminder) (*models.Reminder, error) {
			received = request
			return &models.Reminder{ID: "r-1"}, nil
		},
		reminders: func() ([]models.Reminder, []models.Prescription, error) {
			return nil, nil, nil
		},
	}
	ctrl := NewPatientController(newTestBase(t, &fakeSessionService{}), usecase)

	t.Run("Valid Form Redirects With Flash", func(t *testing.T) {
		form := url.Values{
			"medicineName": {" Aspirin "},
			"dosage":       {"100mg"},
			"frequency":    {"Twice daily"},
			"times":        {"08:00, 20:00"},
			"startDate":    {"2024-03-01"},
		}
		w := httptest.NewRecorder()
		ctrl.CreateReminder(w, withSession(postForm("/patient/reminders", form), models.RolePatient))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/patient/reminders", w.Header().Get("Location"))
		assert.Equal(t, views.Flash{Kind: views.FlashSuccess, Message: constvars.ReminderCreatedMessage}, flashOf(t, w))
		require.NotNil(t, received)
		assert.Equal(t, "Aspirin", received.MedicineName)
		assert.Equal(t, []string{"08:00", "20:00"}, received.Times)
	})

	t.Run("Missing Times Renders The Form Again", func(t *testing.T) {
		received = nil
		form := url.Values{"medicineName": {"Aspirin"}, "dosage": {"100mg"}, "startDate": {"2024-03-01"}}
		w := httptest.NewRecorder()
		ctrl.CreateReminder(w, withSession(postForm("/patient/reminders", form), models.RolePatient))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), constvars.ErrClientReminderTimeRequired)
		assert.Contains(t, w.Body.String(), `value="100mg"`)
		assert.Nil(t, received)
	})
}

func TestPatientController_LogDose(t *testing.T) {
	usecase := &fakePatientUsecase{
		logDose: func(reminderID string) (*models.DoseLog, error) {
			if reminderID == "gone" {
				return nil, exceptions.ErrAPIResponse(404, "Reminder not found", "POST", "/dose-logs")
			}
			return &models.DoseLog{ID: "d-1"}, nil
		},
	}
	ctrl := NewPatientController(newTestBase(t, &fakeSessionService{}), usecase)
	router := chi.NewRouter()
	router.Post("/patient/reminders/{id}/log-dose", ctrl.LogDose)

	w := httptest.NewRecorder()
	form := url.Values{"medicineName": {"Aspirin"}, "next": {"/patient/dashboard"}}
	router.ServeHTTP(w, withSession(postForm("/patient/reminders/r-1/log-dose", form), models.RolePatient))
	assert.Equal(t, "/patient/dashboard", w.Header().Get("Location"))
	assert.Equal(t, fmt.Sprintf(constvars.DoseLoggedMessageFormat, "Aspirin"), flashOf(t, w).Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(postForm("/patient/reminders/gone/log-dose", url.Values{}), models.RolePatient))
	assert.Equal(t, "/patient/reminders", w.Header().Get("Location"))
	assert.Equal(t, views.Flash{Kind: views.FlashError, Message: "Reminder not found"}, flashOf(t, w))
}

func TestPatientController_UnauthorizedEndsSession(t *testing.T) {
	sessions := &fakeSessionService{}
	usecase := &fakePatientUsecase{
		dashboard: func() (*models.PatientDashboard, error) {
			return nil, exceptions.ErrAPIResponse(401, "", "GET", "/patient/dashboard/stats")
		},
	}
	ctrl := NewPatientController(newTestBase(t, sessions), usecase)

	w := httptest.NewRecorder()
	ctrl.Dashboard(w, withSession(httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil), models.RolePatient))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.RoutePathLogin, w.Header().Get("Location"))
	assert.Equal(t, []string{"s-1"}, sessions.destroyed)
}

func TestPatientController_DashboardFailureKeepsPage(t *testing.T) {
	usecase := &fakePatientUsecase{
		dashboard: func() (*models.PatientDashboard, error) {
			return nil, errors.New("connection refused")
		},
	}
	ctrl := NewPatientController(newTestBase(t, &fakeSessionService{}), usecase)

	w := httptest.NewRecorder()
	ctrl.Dashboard(w, withSession(httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil), models.RolePatient))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), constvars.ErrClientLoadPatientDashboard)
}

func TestDoctorController_CreatePrescription(t *testing.T) {
	usecase := &fakeDoctorUsecase{}
	ctrl := NewDoctorController(newTestBase(t, &fakeSessionService{}), usecase)

	form := url.Values{
		"patientId":           {"u-7"},
		"diagnosis":           {"Hypertension"},
		"medicationName":      {"Lisinopril", "", "Amlodipine"},
		"medicationDosage":    {"10mg", "", "5mg"},
		"medicationFrequency": {"Once daily", "", "Once daily"},
		"refillLimit":         {"2"},
		"validUntil":          {"2024-12-31"},
	}
	w := httptest.NewRecorder()
	ctrl.CreatePrescription(w, withSession(postForm("/doctor/prescriptions", form), models.RoleDoctor))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.PrescriptionCreatedMessage, flashOf(t, w).Message)
	require.NotNil(t, usecase.created)
	assert.Equal(t, 2, usecase.created.RefillLimit)
	require.Len(t, usecase.created.Medications, 2)
	assert.Equal(t, "Amlodipine", usecase.created.Medications[1].Name)
	assert.Equal(t, "5mg", usecase.created.Medications[1].Dosage)

	t.Run("Bad Refill Limit", func(t *testing.T) {
		usecase.created = nil
		form.Set("refillLimit", "two")
		w := httptest.NewRecorder()
		ctrl.CreatePrescription(w, withSession(postForm("/doctor/prescriptions", form), models.RoleDoctor))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Refill limit must be a number.")
		assert.Nil(t, usecase.created)
	})
}

func TestPharmacistController_SaveInventoryItem(t *testing.T) {
	usecase := &fakePharmacistUsecase{}
	ctrl := NewPharmacistController(newTestBase(t, &fakeSessionService{}), usecase)
	router := chi.NewRouter()
	router.Post("/pharmacist/inventory", ctrl.SaveInventoryItem)
	router.Post("/pharmacist/inventory/{id}", ctrl.SaveInventoryItem)

	form := url.Values{"medicineName": {"Ibuprofen"}, "quantity": {"40"}, "price": {"3.5"}, "status": {"in_stock"}}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(postForm("/pharmacist/inventory", form), models.RolePharmacist))
	assert.Equal(t, constvars.InventoryAddedMessage, flashOf(t, w).Message)
	assert.Equal(t, "", usecase.savedID)
	assert.Equal(t, 40, usecase.saved.Quantity)
	assert.Equal(t, 3.5, usecase.saved.Price)
	assert.Equal(t, "IN_STOCK", usecase.saved.Status)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(postForm("/pharmacist/inventory/inv-1", form), models.RolePharmacist))
	assert.Equal(t, constvars.InventorySavedMessage, flashOf(t, w).Message)
	assert.Equal(t, "inv-1", usecase.savedID)

	t.Run("Negative Quantity Is Rejected", func(t *testing.T) {
		usecase.saved = nil
		form.Set("quantity", "-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withSession(postForm("/pharmacist/inventory", form), models.RolePharmacist))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Quantity cannot be negative.")
		assert.Nil(t, usecase.saved)
	})
}

func TestAuthController_Logout(t *testing.T) {
	ctrl := NewAuthController(newTestBase(t, &fakeSessionService{}), &fakeAuthUsecase{})

	w := httptest.NewRecorder()
	ctrl.Logout(w, withSession(postForm("/logout", url.Values{}), models.RolePatient))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.RoutePathLogin, w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "medtrack_session", cookies[0].Name)
	assert.True(t, cookies[0].Expires.Before(time.Now()) || cookies[0].MaxAge < 0)
}

type fakeAuthUsecase struct {
	contracts.AuthUsecase
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	return errors.New("api unreachable")
}

type fakeRecordBackend struct {
	contracts.RecordBackend
	records map[string][]models.Record
}

func (f *fakeRecordBackend) ListRecords(ctx context.Context, kind string) ([]models.Record, error) {
	return f.records[kind], nil
}

func TestAdminController_ConfirmDelete(t *testing.T) {
	backend := &fakeRecordBackend{records: map[string][]models.Record{
		constvars.RecordKindUsers:     {{"id": "inv-9", "name": "Wrong Tab"}},
		constvars.RecordKindInventory: {{"id": "inv-9", "medicineName": "Insulin"}},
	}}
	ctrl := NewAdminController(newTestBase(t, &fakeSessionService{}), nil, backend)

	t.Run("Summarizes Record Of Requested Tab", func(t *testing.T) {
		path := fmt.Sprintf("/admin/control-center/confirm-delete?tab=%s&id=inv-9", constvars.RecordKindInventory)
		w := httptest.NewRecorder()
		ctrl.ConfirmDelete(w, withSession(httptest.NewRequest(http.MethodGet, path, nil), models.RoleAdmin))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, constvars.DeleteConfirmationPrompt)
		assert.Contains(t, body, "Insulin")
		assert.NotContains(t, body, "Wrong Tab")
		assert.Contains(t, body, fmt.Sprintf(`name="tab" value="%s"`, constvars.RecordKindInventory))
	})

	t.Run("Unknown Tab Redirects", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctrl.ConfirmDelete(w, withSession(httptest.NewRequest(http.MethodGet, "/admin/control-center/confirm-delete?tab=nope&id=x", nil), models.RoleAdmin))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, adminControlCenterPath, w.Header().Get("Location"))
		assert.Equal(t, constvars.ErrClientRecordNotFound, flashOf(t, w).Message)
	})
}
