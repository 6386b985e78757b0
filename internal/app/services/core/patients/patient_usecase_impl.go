package patients

import (
	"context"
	"fmt"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type patientUsecase struct {
	PatientAPI contracts.PatientAPIClient
	Notifier   contracts.ReminderNotifier
	Log        *zap.Logger
	now        func() time.Time
}

func NewPatientUsecase(
	patientAPI contracts.PatientAPIClient,
	notifier contracts.ReminderNotifier,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientAPI: patientAPI,
		Notifier:   notifier,
		Log:        logger,
		now:        time.Now,
	}
}

func (uc *patientUsecase) Dashboard(ctx context.Context) (*models.PatientDashboard, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		stats         *models.PatientDashboardStats
		reminders     []models.Reminder
		notifications []models.Notification
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats, err = uc.PatientAPI.GetDashboardStats(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		reminders, err = uc.PatientAPI.GetReminders(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		notifications, err = uc.PatientAPI.GetNotifications(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("patientUsecase.Dashboard error fetching dashboard data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(notifications) > constvars.PatientNotificationPreviewSize {
		notifications = notifications[:constvars.PatientNotificationPreviewSize]
	}
	return &models.PatientDashboard{
		Stats:         *stats,
		Reminders:     reminders,
		Notifications: notifications,
	}, nil
}

func (uc *patientUsecase) Prescriptions(ctx context.Context) ([]models.Prescription, []models.RefillRequest, error) {
	uc.Log.Info("patientUsecase.Prescriptions called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		prescriptions []models.Prescription
		refills       []models.RefillRequest
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		prescriptions, err = uc.PatientAPI.GetPrescriptions(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		refills, err = uc.PatientAPI.GetRefillRequests(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return prescriptions, refills, nil
}

func (uc *patientUsecase) RequestRefill(ctx context.Context, prescriptionID string) error {
	uc.Log.Info("patientUsecase.RequestRefill called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	prescription, err := uc.PatientAPI.GetPrescriptionByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if !prescription.IsActive() || prescription.RefillsRemaining <= 0 {
		return exceptions.ErrFormValidation(constvars.ErrClientRefillUnavailable)
	}

	_, err = uc.PatientAPI.CreateRefillRequest(ctx, prescriptionID, &requests.RefillRequestNote{})
	return err
}

func (uc *patientUsecase) Reminders(ctx context.Context) ([]models.Reminder, []models.Prescription, error) {
	uc.Log.Info("patientUsecase.Reminders called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		reminders     []models.Reminder
		prescriptions []models.Prescription
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		reminders, err = uc.PatientAPI.GetReminders(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		prescriptions, err = uc.PatientAPI.GetPrescriptions(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return reminders, prescriptions, nil
}

// CreateReminder schedules the reminder from day-precision form dates and
// announces it. A failed announcement does not fail the creation.
func (uc *patientUsecase) CreateReminder(ctx context.Context, session *models.Session, request *requests.CreateReminder) (*models.Reminder, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.CreateReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reminder := &models.Reminder{
		MedicineName: request.MedicineName,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		Times:        request.Times,
		StartDate:    request.StartDate + constvars.ReminderStartTimeSuffix,
		Instructions: request.Instructions,
		Active:       true,
	}
	if request.EndDate != "" {
		endDate := request.EndDate + constvars.ReminderEndTimeSuffix
		reminder.EndDate = &endDate
	}

	created, err := uc.PatientAPI.CreateReminder(ctx, reminder)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateReminder error creating reminder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := &models.ReminderCreatedEvent{
		Type:         constvars.ReminderCreatedEventType,
		PatientID:    session.CurrentUser().GetID(),
		ReminderID:   created.ID,
		MedicineName: request.MedicineName,
		Times:        request.Times,
		Title:        constvars.ReminderNotificationTitle,
		Body:         fmt.Sprintf(constvars.ReminderNotificationBodyFmt, request.MedicineName),
		OccurredAt:   uc.now().UTC().Format(time.RFC3339),
	}
	if err := uc.Notifier.ReminderCreated(ctx, event); err != nil {
		uc.Log.Warn("patientUsecase.CreateReminder error announcing reminder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("patientUsecase.CreateReminder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, created.ID),
	)
	return created, nil
}

func (uc *patientUsecase) ToggleReminder(ctx context.Context, reminderID string) (*models.Reminder, error) {
	uc.Log.Info("patientUsecase.ToggleReminder called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, reminderID),
	)

	reminders, err := uc.PatientAPI.GetReminders(ctx)
	if err != nil {
		return nil, err
	}
	for _, reminder := range reminders {
		if reminder.ID != reminderID {
			continue
		}
		reminder.Active = !reminder.Active
		return uc.PatientAPI.UpdateReminder(ctx, reminderID, &reminder)
	}
	return nil, exceptions.ErrRecordNotFound(constvars.RecordKindReminders, reminderID)
}

func (uc *patientUsecase) DeleteReminder(ctx context.Context, reminderID string) error {
	uc.Log.Info("patientUsecase.DeleteReminder called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, reminderID),
	)
	return uc.PatientAPI.DeleteReminder(ctx, reminderID)
}

// LogDose records a dose taken now, expressed as a second-precision UTC
// timestamp without zone.
func (uc *patientUsecase) LogDose(ctx context.Context, reminderID string) (*models.DoseLog, error) {
	uc.Log.Info("patientUsecase.LogDose called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, reminderID),
	)

	request := &requests.LogDose{
		ScheduledAt: uc.now().UTC().Format(constvars.ScheduledAtLayout),
	}
	return uc.PatientAPI.LogDose(ctx, reminderID, request)
}

func (uc *patientUsecase) Analytics(ctx context.Context) (*models.PatientAnalytics, error) {
	uc.Log.Info("patientUsecase.Analytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.PatientAPI.GetAnalytics(ctx)
}

func (uc *patientUsecase) MarkNotificationRead(ctx context.Context, notificationID string) error {
	uc.Log.Info("patientUsecase.MarkNotificationRead called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, notificationID),
	)
	return uc.PatientAPI.MarkNotificationRead(ctx, notificationID)
}

func (uc *patientUsecase) Profile(ctx context.Context) (*models.User, error) {
	uc.Log.Info("patientUsecase.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.PatientAPI.GetProfile(ctx)
}

// UpdateProfile saves the personal details first and the medical details
// second, returning the user as of the last response.
func (uc *patientUsecase) UpdateProfile(ctx context.Context, request *requests.PatientProfile, medicalInfo *requests.MedicalInfo) (*models.User, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.PatientAPI.UpdateProfile(ctx, request.ToProfile())
	if err != nil {
		return nil, err
	}
	if medicalInfo == nil {
		return user, nil
	}

	updated, err := uc.PatientAPI.UpdateMedicalInfo(ctx, medicalInfo)
	if err != nil {
		return nil, err
	}
	user.Merge(updated)

	uc.Log.Info("patientUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}
