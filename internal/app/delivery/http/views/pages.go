package views

import (
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/records"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
)

// MedicationRowCount is the number of medication rows on the prescription form.
const MedicationRowCount = 3

type CredentialsData struct {
	Name           string
	Email          string
	GoogleClientID string
}

type ForgotPasswordData struct {
	Email     string
	ResetLink string
}

type ResetPasswordData struct {
	Token string
}

type SetupData struct {
	Role models.Role
	Form *requests.RoleSetup
}

type ErrorData struct {
	Message string
}

type PatientPrescriptionsData struct {
	Prescriptions []models.Prescription
	Refills       []models.RefillRequest
}

type RemindersData struct {
	Reminders     []models.Reminder
	Prescriptions []models.Prescription
	Form          *requests.CreateReminder
}

type PatientsData struct {
	Query    string
	Patients []models.User
}

type DoctorPrescriptionsData struct {
	PatientID      string
	Patients       []models.User
	Prescriptions  []models.Prescription
	Statuses       []string
	MedicationRows []int
}

func NewDoctorPrescriptionsData(prescriptions []models.Prescription, patients []models.User, patientID string) *DoctorPrescriptionsData {
	return &DoctorPrescriptionsData{
		PatientID:      patientID,
		Patients:       patients,
		Prescriptions:  prescriptions,
		Statuses:       models.PrescriptionStatuses(),
		MedicationRows: make([]int, MedicationRowCount),
	}
}

type DoctorAnalyticsData struct {
	View     *models.DoctorAnalyticsView
	MaxCount int
	MaxUses  int
}

func NewDoctorAnalyticsData(view *models.DoctorAnalyticsView) *DoctorAnalyticsData {
	data := &DoctorAnalyticsData{View: view}
	for _, day := range view.WeeklySeries {
		data.MaxCount = max(data.MaxCount, day.Count)
	}
	for _, usage := range view.MedicationUsage {
		data.MaxUses = max(data.MaxUses, usage.Uses)
	}
	return data
}

type InventoryData struct {
	Items         []models.InventoryItem
	Orders        []models.RefillRequest
	Editing       *models.InventoryItem
	Form          *requests.InventoryItem
	StockStatuses []string
}

// NewInventoryData prefills the form from the item being edited, if any.
func NewInventoryData(items []models.InventoryItem, orders []models.RefillRequest, editingID string) *InventoryData {
	data := &InventoryData{
		Items:         items,
		Orders:        orders,
		Form:          &requests.InventoryItem{},
		StockStatuses: models.InventoryStatuses(),
	}
	for i := range items {
		if editingID == "" || items[i].ID != editingID {
			continue
		}
		item := items[i]
		data.Editing = &item
		data.Form = &requests.InventoryItem{
			MedicineName: item.MedicineName,
			BatchNumber:  item.BatchNumber,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Status:       item.Status,
		}
		if item.ExpiryDate != nil && len(*item.ExpiryDate) >= len(constvars.DateLayout) {
			data.Form.ExpiryDate = (*item.ExpiryDate)[:len(constvars.DateLayout)]
		}
		break
	}
	return data
}

type AlertsData struct {
	LowStock []models.InventoryItem
	Expiring []models.InventoryItem
}

type PharmacistAnalyticsData struct {
	View      *models.PharmacistAnalyticsView
	MaxStock  int
	MaxRefill int
}

func NewPharmacistAnalyticsData(view *models.PharmacistAnalyticsView) *PharmacistAnalyticsData {
	data := &PharmacistAnalyticsData{View: view}
	for _, count := range view.StockDistribution {
		data.MaxStock = max(data.MaxStock, count.Total)
	}
	for _, count := range view.RefillStatus {
		data.MaxRefill = max(data.MaxRefill, count.Total)
	}
	return data
}

type ControlCenterData struct {
	Editor *records.Editor
	Kinds  []records.Kind
}

type ConfirmDeleteData struct {
	Prompt   string
	Kind     records.Kind
	RecordID string
	Summary  string
}
