package doctors

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorAPIClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewDoctorAPIClient(api contracts.APIClient, logger *zap.Logger) contracts.DoctorAPIClient {
	return &doctorAPIClient{
		API: api,
		Log: logger,
	}
}

func (c *doctorAPIClient) GetDashboardStats(ctx context.Context) (*models.DoctorDashboardStats, error) {
	c.Log.Info("doctorAPIClient.GetDashboardStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	stats := new(models.DoctorDashboardStats)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIDoctorDashboard, nil, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *doctorAPIClient) GetPatients(ctx context.Context) ([]models.User, error) {
	c.Log.Info("doctorAPIClient.GetPatients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var patients []models.User
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIDoctorPatients, nil, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *doctorAPIClient) GetPatientByID(ctx context.Context, patientID string) (*models.User, error) {
	c.Log.Info("doctorAPIClient.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, patientID),
	)

	patient := new(models.User)
	err := c.API.Do(ctx, constvars.MethodGet, utils.BuildResourcePath(constvars.APIDoctorPatients, patientID), nil, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *doctorAPIClient) SearchPatients(ctx context.Context, query string) ([]models.User, error) {
	c.Log.Info("doctorAPIClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingQueryKey, query),
	)

	var patients []models.User
	path := utils.BuildQueryPath(constvars.APIDoctorPatientSearch, "q", query)
	err := c.API.Do(ctx, constvars.MethodGet, path, nil, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *doctorAPIClient) GetPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	c.Log.Info("doctorAPIClient.GetPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var prescriptions []models.Prescription
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIDoctorPrescriptions, nil, &prescriptions)
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *doctorAPIClient) CreatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	c.Log.Info("doctorAPIClient.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescription.Patient.GetID()),
	)

	created := new(models.Prescription)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIDoctorPrescriptions, prescription, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *doctorAPIClient) UpdatePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (*models.Prescription, error) {
	c.Log.Info("doctorAPIClient.UpdatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	updated := new(models.Prescription)
	err := c.API.Do(ctx, constvars.MethodPut, utils.BuildResourcePath(constvars.APIDoctorPrescriptions, prescriptionID), prescription, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *doctorAPIClient) DeletePrescription(ctx context.Context, prescriptionID string) error {
	c.Log.Info("doctorAPIClient.DeletePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)
	return c.API.Do(ctx, constvars.MethodDelete, utils.BuildResourcePath(constvars.APIDoctorPrescriptions, prescriptionID), nil, nil)
}

func (c *doctorAPIClient) GetAnalytics(ctx context.Context) (*models.DoctorAnalytics, error) {
	c.Log.Info("doctorAPIClient.GetAnalytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	analytics := new(models.DoctorAnalytics)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIDoctorAnalytics, nil, analytics)
	if err != nil {
		return nil, err
	}
	return analytics, nil
}

func (c *doctorAPIClient) GetProfile(ctx context.Context) (*models.User, error) {
	c.Log.Info("doctorAPIClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodGet, constvars.APIDoctorProfile, nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *doctorAPIClient) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	c.Log.Info("doctorAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIDoctorProfile, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
