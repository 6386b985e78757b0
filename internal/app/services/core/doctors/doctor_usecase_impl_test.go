package doctors

import (
	"context"
	"errors"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorAPI struct {
	patients      []models.User
	prescriptions []models.Prescription

	searchErr error
	searched  []string

	created *models.Prescription
	updated *models.Prescription
}

func (f *fakeDoctorAPI) GetDashboardStats(ctx context.Context) (*models.DoctorDashboardStats, error) {
	return &models.DoctorDashboardStats{TotalPatients: len(f.patients)}, nil
}

func (f *fakeDoctorAPI) GetPatients(ctx context.Context) ([]models.User, error) {
	return f.patients, nil
}

func (f *fakeDoctorAPI) GetPatientByID(ctx context.Context, patientID string) (*models.User, error) {
	return &models.User{ID: patientID}, nil
}

func (f *fakeDoctorAPI) SearchPatients(ctx context.Context, query string) ([]models.User, error) {
	f.searched = append(f.searched, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return FilterPatients(f.patients, query), nil
}

func (f *fakeDoctorAPI) GetPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	return f.prescriptions, nil
}

func (f *fakeDoctorAPI) CreatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	f.created = prescription
	created := *prescription
	created.ID = "rx-new"
	return &created, nil
}

func (f *fakeDoctorAPI) UpdatePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (*models.Prescription, error) {
	f.updated = prescription
	return prescription, nil
}

func (f *fakeDoctorAPI) DeletePrescription(ctx context.Context, prescriptionID string) error {
	return nil
}

func (f *fakeDoctorAPI) GetAnalytics(ctx context.Context) (*models.DoctorAnalytics, error) {
	return &models.DoctorAnalytics{TotalPatients: 3, Revenue: 120}, nil
}

func (f *fakeDoctorAPI) GetProfile(ctx context.Context) (*models.User, error) {
	return &models.User{ID: "d-1"}, nil
}

func (f *fakeDoctorAPI) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	return &models.User{ID: "d-1", Name: request.Name, Specialization: request.Specialization}, nil
}

func TestDoctorUsecase_Dashboard(t *testing.T) {
	api := &fakeDoctorAPI{}
	for i := 0; i < 7; i++ {
		api.prescriptions = append(api.prescriptions, models.Prescription{ID: string(rune('a' + i))})
	}
	uc := NewDoctorUsecase(api, zap.NewNop())

	t.Run("Greets By Name", func(t *testing.T) {
		session := &models.Session{User: &models.User{Name: "Dr. House", Role: models.RoleDoctor}}
		dashboard, err := uc.Dashboard(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, "Dr. House", dashboard.DoctorName)
		assert.Len(t, dashboard.Prescriptions, 5)
	})

	t.Run("Falls Back To Email", func(t *testing.T) {
		session := &models.Session{User: &models.User{Email: "greg@clinic.test", Role: models.RoleDoctor}}
		dashboard, err := uc.Dashboard(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, "greg", dashboard.DoctorName)
	})
}

func TestFilterPatients(t *testing.T) {
	patients := []models.User{
		{ID: "1", Name: "Alice Walker", Email: "alice@example.com"},
		{ID: "2", Name: "Bob", Email: "bob@walk.test"},
		{ID: "3", Name: "Carol", Email: "carol@example.com"},
	}

	assert.Len(t, FilterPatients(patients, ""), 3)
	assert.Len(t, FilterPatients(patients, "  WALK "), 2)
	filtered := FilterPatients(patients, "carol@")
	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
	assert.Empty(t, FilterPatients(patients, "zed"))
}

func TestDoctorUsecase_Patients(t *testing.T) {
	patients := []models.User{
		{ID: "1", Name: "Alice Walker", Email: "alice@example.com"},
		{ID: "2", Name: "Carol", Email: "carol@example.com"},
	}

	t.Run("Empty Query Lists All", func(t *testing.T) {
		api := &fakeDoctorAPI{patients: patients}
		found, err := NewDoctorUsecase(api, zap.NewNop()).Patients(context.Background(), "  ")
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Empty(t, api.searched)
	})

	t.Run("Query Uses Search", func(t *testing.T) {
		api := &fakeDoctorAPI{patients: patients}
		found, err := NewDoctorUsecase(api, zap.NewNop()).Patients(context.Background(), " alice ")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "1", found[0].ID)
		assert.Equal(t, []string{"alice"}, api.searched)
	})

	t.Run("Search Failure Filters Locally", func(t *testing.T) {
		api := &fakeDoctorAPI{patients: patients, searchErr: errors.New("search down")}
		found, err := NewDoctorUsecase(api, zap.NewNop()).Patients(context.Background(), "carol")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "2", found[0].ID)
	})
}

func TestDoctorUsecase_CreatePrescription(t *testing.T) {
	api := &fakeDoctorAPI{}
	uc := NewDoctorUsecase(api, zap.NewNop())

	created, err := uc.CreatePrescription(context.Background(), &requests.CreatePrescription{
		PatientID:   "p-7",
		Medications: []requests.MedicationInput{{Name: "Amoxicillin", Dosage: "250mg"}},
		Diagnosis:   "Infection",
		RefillLimit: 2,
		ValidUntil:  "2024-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "rx-new", created.ID)
	assert.Equal(t, "p-7", api.created.Patient.GetID())
	assert.Equal(t, 2, api.created.RefillsRemaining)
	require.NotNil(t, api.created.ValidUntil)
	assert.Equal(t, "2024-06-30T23:59:00", *api.created.ValidUntil)
	assert.Equal(t, "Amoxicillin", api.created.FirstMedicationName())

	_, err = uc.CreatePrescription(context.Background(), &requests.CreatePrescription{
		PatientID:   "p-7",
		Medications: []requests.MedicationInput{{Name: "Ibuprofen"}},
	})
	require.NoError(t, err)
	assert.Nil(t, api.created.ValidUntil)
}

func TestDoctorUsecase_UpdatePrescriptionStatus(t *testing.T) {
	api := &fakeDoctorAPI{prescriptions: []models.Prescription{{ID: "rx-1", Status: models.PrescriptionStatusActive}}}
	uc := NewDoctorUsecase(api, zap.NewNop())

	updated, err := uc.UpdatePrescriptionStatus(context.Background(), "rx-1", "completed")
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionStatusCompleted, updated.Status)

	_, err = uc.UpdatePrescriptionStatus(context.Background(), "rx-1", "PAUSED")
	assert.Error(t, err)
	_, err = uc.UpdatePrescriptionStatus(context.Background(), "rx-9", "CANCELLED")
	assert.Error(t, err)
}

func TestDoctorUsecase_Analytics(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	api := &fakeDoctorAPI{prescriptions: []models.Prescription{
		{ID: "1", CreatedAt: "2024-03-07T09:00:00", Medications: []models.Medication{{Name: "A"}}},
		{ID: "2", CreatedAt: "2024-03-06T09:00:00", Medications: []models.Medication{{Name: "A"}, {Name: "B"}}},
	}}

	view, err := NewDoctorUsecase(api, zap.NewNop()).Analytics(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Summary.TotalPatients)
	require.Len(t, view.WeeklySeries, 7)
	assert.Equal(t, 1, view.WeeklySeries[6].Count)
	assert.Equal(t, 1, view.WeeklySeries[5].Count)
	require.NotEmpty(t, view.MedicationUsage)
	assert.Equal(t, models.MedicationUsage{Name: "A", Uses: 2}, view.MedicationUsage[0])
}
