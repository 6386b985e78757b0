package models

type AdherencePoint struct {
	Day       string  `json:"day"`
	Date      string  `json:"date"`
	Adherence float64 `json:"adherence"`
	Taken     int     `json:"taken"`
	Missed    int     `json:"missed"`
	Scheduled int     `json:"scheduled"`
}

type PatientAnalytics struct {
	AdherenceRate   float64          `json:"adherenceRate"`
	DosesTaken      int              `json:"dosesTaken"`
	MissedDoses     int              `json:"missedDoses"`
	ActiveReminders int              `json:"activeReminders"`
	WeeklyTrend     []AdherencePoint `json:"weeklyTrend"`
}

type DoctorAnalytics struct {
	TotalPatients       int     `json:"totalPatients"`
	ActivePrescriptions int     `json:"activePrescriptions"`
	Consultations       int     `json:"consultations"`
	Revenue             float64 `json:"revenue"`
}

type PharmacistAnalytics struct {
	TotalItems    int     `json:"totalItems"`
	TotalValue    float64 `json:"totalValue"`
	LowStockItems int     `json:"lowStockItems"`
	ExpiringItems int     `json:"expiringItems"`
}

type DailyCount struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MedicationUsage struct {
	Name string `json:"name"`
	Uses int    `json:"uses"`
}

type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

type DoctorAnalyticsView struct {
	Summary         DoctorAnalytics   `json:"summary"`
	WeeklySeries    []DailyCount      `json:"weeklySeries"`
	MedicationUsage []MedicationUsage `json:"medicationUsage"`
}

type PharmacistAnalyticsView struct {
	Summary           PharmacistAnalytics `json:"summary"`
	StockDistribution []StatusCount       `json:"stockDistribution"`
	RefillStatus      []StatusCount       `json:"refillStatus"`
}
