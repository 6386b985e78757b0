package doctors

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/analytics"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type doctorUsecase struct {
	DoctorAPI contracts.DoctorAPIClient
	Log       *zap.Logger
}

func NewDoctorUsecase(doctorAPI contracts.DoctorAPIClient, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorAPI: doctorAPI,
		Log:       logger,
	}
}

func (uc *doctorUsecase) Dashboard(ctx context.Context, session *models.Session) (*models.DoctorDashboard, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		stats         *models.DoctorDashboardStats
		prescriptions []models.Prescription
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats, err = uc.DoctorAPI.GetDashboardStats(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		prescriptions, err = uc.DoctorAPI.GetPrescriptions(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("doctorUsecase.Dashboard error fetching dashboard data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(prescriptions) > constvars.DoctorPrescriptionPreviewSize {
		prescriptions = prescriptions[:constvars.DoctorPrescriptionPreviewSize]
	}
	return &models.DoctorDashboard{
		DoctorName:    session.CurrentUser().DisplayName(models.RoleDoctor.Label()),
		Stats:         *stats,
		Prescriptions: prescriptions,
	}, nil
}

// Patients lists the doctor's patients. A non-empty query goes to the search
// endpoint first; when that fails the full list is filtered locally by name
// or email.
func (uc *doctorUsecase) Patients(ctx context.Context, query string) ([]models.User, error) {
	uc.Log.Info("doctorUsecase.Patients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingQueryKey, query),
	)

	query = strings.TrimSpace(query)
	if query != "" {
		patients, err := uc.DoctorAPI.SearchPatients(ctx, query)
		if err == nil {
			return patients, nil
		}
		uc.Log.Warn("doctorUsecase.Patients search failed, filtering locally",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}

	patients, err := uc.DoctorAPI.GetPatients(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPatients(patients, query), nil
}

func FilterPatients(patients []models.User, query string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return patients
	}

	filtered := make([]models.User, 0, len(patients))
	for _, patient := range patients {
		if strings.Contains(strings.ToLower(patient.Name), query) || strings.Contains(strings.ToLower(patient.Email), query) {
			filtered = append(filtered, patient)
		}
	}
	return filtered
}

func (uc *doctorUsecase) Patient(ctx context.Context, patientID string) (*models.User, error) {
	uc.Log.Info("doctorUsecase.Patient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, patientID),
	)
	return uc.DoctorAPI.GetPatientByID(ctx, patientID)
}

func (uc *doctorUsecase) Prescriptions(ctx context.Context) ([]models.Prescription, []models.User, error) {
	uc.Log.Info("doctorUsecase.Prescriptions called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		prescriptions []models.Prescription
		patients      []models.User
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		patients, err = uc.DoctorAPI.GetPatients(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		prescriptions, err = uc.DoctorAPI.GetPrescriptions(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return prescriptions, patients, nil
}

// CreatePrescription issues a prescription whose refill allowance starts
// full and which stays valid until the end of the chosen day.
func (uc *doctorUsecase) CreatePrescription(ctx context.Context, request *requests.CreatePrescription) (*models.Prescription, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.PatientID),
	)

	medications := make([]models.Medication, 0, len(request.Medications))
	for _, medication := range request.Medications {
		medications = append(medications, models.Medication{
			Name:         medication.Name,
			Dosage:       medication.Dosage,
			Frequency:    medication.Frequency,
			Duration:     medication.Duration,
			TimeOfDay:    medication.TimeOfDay,
			Instructions: medication.Instructions,
		})
	}

	prescription := &models.Prescription{
		Patient:          &models.Reference{ID: request.PatientID},
		Medications:      medications,
		Diagnosis:        request.Diagnosis,
		Notes:            request.Notes,
		RefillLimit:      request.RefillLimit,
		RefillsRemaining: request.RefillLimit,
	}
	if request.ValidUntil != "" {
		validUntil := request.ValidUntil + constvars.ReminderEndTimeSuffix
		prescription.ValidUntil = &validUntil
	}

	created, err := uc.DoctorAPI.CreatePrescription(ctx, prescription)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreatePrescription error creating prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return created, nil
}

func (uc *doctorUsecase) UpdatePrescriptionStatus(ctx context.Context, prescriptionID, status string) (*models.Prescription, error) {
	uc.Log.Info("doctorUsecase.UpdatePrescriptionStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	status = strings.ToUpper(strings.TrimSpace(status))
	switch status {
	case models.PrescriptionStatusActive, models.PrescriptionStatusCompleted, models.PrescriptionStatusCancelled:
	default:
		return nil, exceptions.ErrInvalidPrescriptionStatus(nil)
	}

	prescriptions, err := uc.DoctorAPI.GetPrescriptions(ctx)
	if err != nil {
		return nil, err
	}
	for _, prescription := range prescriptions {
		if prescription.ID != prescriptionID {
			continue
		}
		prescription.Status = status
		return uc.DoctorAPI.UpdatePrescription(ctx, prescriptionID, &prescription)
	}
	return nil, exceptions.ErrRecordNotFound(constvars.RecordKindPrescriptions, prescriptionID)
}

func (uc *doctorUsecase) DeletePrescription(ctx context.Context, prescriptionID string) error {
	uc.Log.Info("doctorUsecase.DeletePrescription called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)
	return uc.DoctorAPI.DeletePrescription(ctx, prescriptionID)
}

// Analytics combines the API summary with series derived from the
// prescriptions written by the doctor.
func (uc *doctorUsecase) Analytics(ctx context.Context, now time.Time) (*models.DoctorAnalyticsView, error) {
	uc.Log.Info("doctorUsecase.Analytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	var (
		summary       *models.DoctorAnalytics
		prescriptions []models.Prescription
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		summary, err = uc.DoctorAPI.GetAnalytics(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		prescriptions, err = uc.DoctorAPI.GetPrescriptions(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &models.DoctorAnalyticsView{
		Summary:         *summary,
		WeeklySeries:    analytics.WeeklyPrescriptionSeries(prescriptions, now),
		MedicationUsage: analytics.TopMedications(prescriptions, constvars.TopMedicationLimit),
	}, nil
}

func (uc *doctorUsecase) Profile(ctx context.Context) (*models.User, error) {
	uc.Log.Info("doctorUsecase.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.DoctorAPI.GetProfile(ctx)
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, request *requests.DoctorProfile) (*models.User, error) {
	uc.Log.Info("doctorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.DoctorAPI.UpdateProfile(ctx, request.ToProfile())
}
