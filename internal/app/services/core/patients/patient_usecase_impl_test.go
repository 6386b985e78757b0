package patients

import (
	"context"
	"errors"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientAPI struct {
	mu sync.Mutex

	stats         *models.PatientDashboardStats
	reminders     []models.Reminder
	notifications []models.Notification
	prescriptions []models.Prescription
	refills       []models.RefillRequest
	failWith      error

	createdReminder *models.Reminder
	updatedReminder *models.Reminder
	loggedDose      *requests.LogDose
	refillFor       string
	profile         *requests.Profile
	medicalInfo     *requests.MedicalInfo
}

func (f *fakePatientAPI) GetDashboardStats(ctx context.Context) (*models.PatientDashboardStats, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.stats, nil
}

func (f *fakePatientAPI) GetPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	return f.prescriptions, nil
}

func (f *fakePatientAPI) GetPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	for _, prescription := range f.prescriptions {
		if prescription.ID == prescriptionID {
			return &prescription, nil
		}
	}
	return &models.Prescription{ID: prescriptionID, Status: models.PrescriptionStatusActive, RefillsRemaining: 1}, nil
}

func (f *fakePatientAPI) CreateRefillRequest(ctx context.Context, prescriptionID string, request *requests.RefillRequestNote) (*models.RefillRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refillFor = prescriptionID
	return &models.RefillRequest{ID: "r-1", Status: models.RefillStatusRequested}, nil
}

func (f *fakePatientAPI) GetRefillRequests(ctx context.Context) ([]models.RefillRequest, error) {
	return f.refills, nil
}

func (f *fakePatientAPI) GetReminders(ctx context.Context) ([]models.Reminder, error) {
	return f.reminders, nil
}

func (f *fakePatientAPI) CreateReminder(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.createdReminder = reminder
	created := *reminder
	created.ID = "rem-9"
	return &created, nil
}

func (f *fakePatientAPI) UpdateReminder(ctx context.Context, reminderID string, reminder *models.Reminder) (*models.Reminder, error) {
	f.updatedReminder = reminder
	return reminder, nil
}

func (f *fakePatientAPI) DeleteReminder(ctx context.Context, reminderID string) error {
	return nil
}

func (f *fakePatientAPI) LogDose(ctx context.Context, reminderID string, request *requests.LogDose) (*models.DoseLog, error) {
	f.loggedDose = request
	return &models.DoseLog{ID: "d-1", ScheduledAt: request.ScheduledAt, Status: models.DoseStatusTaken}, nil
}

func (f *fakePatientAPI) GetAnalytics(ctx context.Context) (*models.PatientAnalytics, error) {
	return &models.PatientAnalytics{AdherenceRate: 87.5}, nil
}

func (f *fakePatientAPI) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return f.notifications, nil
}

func (f *fakePatientAPI) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return nil
}

func (f *fakePatientAPI) GetProfile(ctx context.Context) (*models.User, error) {
	return &models.User{ID: "p-1", Name: "Pat"}, nil
}

func (f *fakePatientAPI) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	f.profile = request
	return &models.User{ID: "p-1", Name: request.Name, PhoneNumber: request.PhoneNumber}, nil
}

func (f *fakePatientAPI) UpdateMedicalInfo(ctx context.Context, request *requests.MedicalInfo) (*models.User, error) {
	f.medicalInfo = request
	return &models.User{ID: "p-1", Allergies: request.Allergies}, nil
}

type fakeNotifier struct {
	events []*models.ReminderCreatedEvent
	err    error
}

func (f *fakeNotifier) ReminderCreated(ctx context.Context, event *models.ReminderCreatedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestUsecase(api *fakePatientAPI, notifier *fakeNotifier) *patientUsecase {
	uc := NewPatientUsecase(api, notifier, zap.NewNop()).(*patientUsecase)
	uc.now = func() time.Time {
		return time.Date(2024, 3, 5, 8, 30, 15, 0, time.UTC)
	}
	return uc
}

func TestPatientUsecase_Dashboard(t *testing.T) {
	t.Run("Keeps First Five Notifications", func(t *testing.T) {
		api := &fakePatientAPI{stats: &models.PatientDashboardStats{PatientName: "Pat", DueMedications: 2}}
		for i := 0; i < 8; i++ {
			api.notifications = append(api.notifications, models.Notification{ID: string(rune('a' + i))})
		}
		api.reminders = []models.Reminder{{ID: "rem-1"}}

		dashboard, err := newTestUsecase(api, &fakeNotifier{}).Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Pat", dashboard.Stats.PatientName)
		assert.Len(t, dashboard.Notifications, constvars.PatientNotificationPreviewSize)
		assert.Equal(t, "a", dashboard.Notifications[0].ID)
		assert.Len(t, dashboard.Reminders, 1)
	})

	t.Run("Any Failure Fails The Whole View", func(t *testing.T) {
		api := &fakePatientAPI{failWith: errors.New("boom")}
		_, err := newTestUsecase(api, &fakeNotifier{}).Dashboard(context.Background())
		assert.Error(t, err)
	})
}

func TestPatientUsecase_CreateReminder(t *testing.T) {
	session := &models.Session{User: &models.User{ID: "p-1", Role: models.RolePatient}}

	t.Run("Expands Dates And Announces", func(t *testing.T) {
		api := &fakePatientAPI{}
		notifier := &fakeNotifier{}
		request := &requests.CreateReminder{
			MedicineName: "Metformin",
			Dosage:       "500mg",
			StartDate:    "2024-03-05",
			EndDate:      "2024-04-05",
			Times:        []string{"08:00", "20:00"},
			Frequency:    "Twice Daily",
		}

		created, err := newTestUsecase(api, notifier).CreateReminder(context.Background(), session, request)
		require.NoError(t, err)
		assert.Equal(t, "rem-9", created.ID)

		sent := api.createdReminder
		assert.Equal(t, "2024-03-05T00:00:00", sent.StartDate)
		require.NotNil(t, sent.EndDate)
		assert.Equal(t, "2024-04-05T23:59:00", *sent.EndDate)
		assert.True(t, sent.Active)

		require.Len(t, notifier.events, 1)
		event := notifier.events[0]
		assert.Equal(t, constvars.ReminderCreatedEventType, event.Type)
		assert.Equal(t, "p-1", event.PatientID)
		assert.Equal(t, "rem-9", event.ReminderID)
		assert.Equal(t, "Medication Reminder Added", event.Title)
		assert.Equal(t, "Metformin has been scheduled.", event.Body)
		assert.Equal(t, "2024-03-05T08:30:15Z", event.OccurredAt)
	})

	t.Run("Open Ended Reminder Sends Null End Date", func(t *testing.T) {
		api := &fakePatientAPI{}
		_, err := newTestUsecase(api, &fakeNotifier{}).CreateReminder(context.Background(), session, &requests.CreateReminder{
			MedicineName: "Aspirin",
			Dosage:       "1 tab",
			StartDate:    "2024-03-05",
			Times:        []string{"09:00"},
		})
		require.NoError(t, err)
		assert.Nil(t, api.createdReminder.EndDate)
	})

	t.Run("Announcement Failure Is Not Fatal", func(t *testing.T) {
		notifier := &fakeNotifier{err: errors.New("broker down")}
		_, err := newTestUsecase(&fakePatientAPI{}, notifier).CreateReminder(context.Background(), session, &requests.CreateReminder{
			MedicineName: "Aspirin",
			Dosage:       "1 tab",
			StartDate:    "2024-03-05",
			Times:        []string{"09:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("API Failure Skips Announcement", func(t *testing.T) {
		notifier := &fakeNotifier{}
		api := &fakePatientAPI{failWith: errors.New("rejected")}
		_, err := newTestUsecase(api, notifier).CreateReminder(context.Background(), session, &requests.CreateReminder{
			MedicineName: "Aspirin",
			StartDate:    "2024-03-05",
		})
		assert.Error(t, err)
		assert.Empty(t, notifier.events)
	})
}

func TestPatientUsecase_LogDoseAndRefill(t *testing.T) {
	api := &fakePatientAPI{}
	uc := newTestUsecase(api, &fakeNotifier{})

	dose, err := uc.LogDose(context.Background(), "rem-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:30:15", api.loggedDose.ScheduledAt)
	assert.Equal(t, models.DoseStatusTaken, dose.Status)

	require.NoError(t, uc.RequestRefill(context.Background(), "rx-4"))
	assert.Equal(t, "rx-4", api.refillFor)
}

func TestPatientUsecase_RequestRefillUnavailable(t *testing.T) {
	api := &fakePatientAPI{prescriptions: []models.Prescription{
		{ID: "rx-spent", Status: models.PrescriptionStatusActive, RefillsRemaining: 0},
		{ID: "rx-done", Status: models.PrescriptionStatusCompleted, RefillsRemaining: 2},
	}}
	uc := newTestUsecase(api, &fakeNotifier{})

	for _, prescriptionID := range []string{"rx-spent", "rx-done"} {
		err := uc.RequestRefill(context.Background(), prescriptionID)
		require.Error(t, err, prescriptionID)
		assert.Equal(t, constvars.ErrClientRefillUnavailable, exceptions.ClientMessage(err))
	}
	assert.Empty(t, api.refillFor)
}

func TestPatientUsecase_ToggleReminder(t *testing.T) {
	api := &fakePatientAPI{reminders: []models.Reminder{{ID: "rem-1", Active: true}}}
	uc := newTestUsecase(api, &fakeNotifier{})

	updated, err := uc.ToggleReminder(context.Background(), "rem-1")
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = uc.ToggleReminder(context.Background(), "missing")
	assert.Error(t, err)
}

func TestPatientUsecase_UpdateProfile(t *testing.T) {
	api := &fakePatientAPI{}
	uc := newTestUsecase(api, &fakeNotifier{})

	user, err := uc.UpdateProfile(context.Background(),
		&requests.PatientProfile{Name: "Pat", PhoneNumber: "08123456789"},
		&requests.MedicalInfo{Allergies: "Penicillin", EmergencyContact: "Sam"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Pat", user.Name)
	assert.Equal(t, "Penicillin", user.Allergies)
	assert.Equal(t, "08123456789", api.profile.PhoneNumber)
	assert.Equal(t, "Sam", api.medicalInfo.EmergencyContact)
}
