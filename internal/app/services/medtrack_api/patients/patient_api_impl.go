package patients

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

type patientAPIClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewPatientAPIClient(api contracts.APIClient, logger *zap.Logger) contracts.PatientAPIClient {
	return &patientAPIClient{
		API: api,
		Log: logger,
	}
}

func (c *patientAPIClient) logCalled(ctx context.Context, method string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx))}, fields...)
	c.Log.Info("patientAPIClient."+method+" called", fields...)
}

func (c *patientAPIClient) GetDashboardStats(ctx context.Context) (*models.PatientDashboardStats, error) {
	c.logCalled(ctx, "GetDashboardStats")

	stats := new(models.PatientDashboardStats)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientDashboard, nil, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *patientAPIClient) GetPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	c.logCalled(ctx, "GetPrescriptions")

	var prescriptions []models.Prescription
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientPrescriptions, nil, &prescriptions)
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *patientAPIClient) GetPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	c.logCalled(ctx, "GetPrescriptionByID", zap.String(constvars.LoggingRecordIDKey, prescriptionID))

	prescription := new(models.Prescription)
	err := c.API.Do(ctx, constvars.MethodGet, utils.BuildResourcePath(constvars.APIPatientPrescriptions, prescriptionID), nil, prescription)
	if err != nil {
		return nil, err
	}
	return prescription, nil
}

func (c *patientAPIClient) CreateRefillRequest(ctx context.Context, prescriptionID string, request *requests.RefillRequestNote) (*models.RefillRequest, error) {
	c.logCalled(ctx, "CreateRefillRequest", zap.String(constvars.LoggingRecordIDKey, prescriptionID))

	if request == nil {
		request = &requests.RefillRequestNote{}
	}
	refill := new(models.RefillRequest)
	path := fmt.Sprintf(constvars.APIPatientRefillRequestPath, url.PathEscape(prescriptionID))
	err := c.API.Do(ctx, constvars.MethodPost, path, request, refill)
	if err != nil {
		return nil, err
	}
	return refill, nil
}

func (c *patientAPIClient) GetRefillRequests(ctx context.Context) ([]models.RefillRequest, error) {
	c.logCalled(ctx, "GetRefillRequests")

	var refills []models.RefillRequest
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientRefillRequests, nil, &refills)
	if err != nil {
		return nil, err
	}
	return refills, nil
}

func (c *patientAPIClient) GetReminders(ctx context.Context) ([]models.Reminder, error) {
	c.logCalled(ctx, "GetReminders")

	var reminders []models.Reminder
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientReminders, nil, &reminders)
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (c *patientAPIClient) CreateReminder(ctx context.Context, reminder *models.Reminder) (*models.Reminder, error) {
	c.logCalled(ctx, "CreateReminder")

	created := new(models.Reminder)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIPatientReminders, reminder, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *patientAPIClient) UpdateReminder(ctx context.Context, reminderID string, reminder *models.Reminder) (*models.Reminder, error) {
	c.logCalled(ctx, "UpdateReminder", zap.String(constvars.LoggingRecordIDKey, reminderID))

	updated := new(models.Reminder)
	err := c.API.Do(ctx, constvars.MethodPut, utils.BuildResourcePath(constvars.APIPatientReminders, reminderID), reminder, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *patientAPIClient) DeleteReminder(ctx context.Context, reminderID string) error {
	c.logCalled(ctx, "DeleteReminder", zap.String(constvars.LoggingRecordIDKey, reminderID))
	return c.API.Do(ctx, constvars.MethodDelete, utils.BuildResourcePath(constvars.APIPatientReminders, reminderID), nil, nil)
}

func (c *patientAPIClient) LogDose(ctx context.Context, reminderID string, request *requests.LogDose) (*models.DoseLog, error) {
	c.logCalled(ctx, "LogDose", zap.String(constvars.LoggingRecordIDKey, reminderID))

	if request == nil {
		request = &requests.LogDose{}
	}
	doseLog := new(models.DoseLog)
	path := fmt.Sprintf(constvars.APIPatientLogDosePath, url.PathEscape(reminderID))
	err := c.API.Do(ctx, constvars.MethodPost, path, request, doseLog)
	if err != nil {
		return nil, err
	}
	return doseLog, nil
}

func (c *patientAPIClient) GetAnalytics(ctx context.Context) (*models.PatientAnalytics, error) {
	c.logCalled(ctx, "GetAnalytics")

	analytics := new(models.PatientAnalytics)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientAnalytics, nil, analytics)
	if err != nil {
		return nil, err
	}
	return analytics, nil
}

func (c *patientAPIClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	c.logCalled(ctx, "GetNotifications")

	var notifications []models.Notification
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientNotifications, nil, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *patientAPIClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	c.logCalled(ctx, "MarkNotificationRead", zap.String(constvars.LoggingRecordIDKey, notificationID))
	path := fmt.Sprintf(constvars.APIPatientNotificationRead, url.PathEscape(notificationID))
	return c.API.Do(ctx, constvars.MethodPut, path, nil, nil)
}

func (c *patientAPIClient) GetProfile(ctx context.Context) (*models.User, error) {
	c.logCalled(ctx, "GetProfile")

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIPatientProfile, nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *patientAPIClient) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	c.logCalled(ctx, "UpdateProfile")

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIPatientProfile, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *patientAPIClient) UpdateMedicalInfo(ctx context.Context, request *requests.MedicalInfo) (*models.User, error) {
	c.logCalled(ctx, "UpdateMedicalInfo")

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIPatientMedicalInfo, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
