package models

type PatientDashboardStats struct {
	PatientName         string  `json:"patientName"`
	ActiveMedications   int     `json:"activeMedications"`
	DueMedications      int     `json:"dueMedications"`
	MissedDoses         int     `json:"missedDoses"`
	AdherenceRate       float64 `json:"adherenceRate"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

type DoctorDashboardStats struct {
	TotalPatients       int `json:"totalPatients"`
	ActivePrescriptions int `json:"activePrescriptions"`
	PendingReviews      int `json:"pendingReviews"`
	ThisMonth           int `json:"thisMonth"`
}

type PharmacistDashboardStats struct {
	TotalItems          int `json:"totalItems"`
	PendingOrders       int `json:"pendingOrders"`
	LowStockAlerts      int `json:"lowStockAlerts"`
	ExpiringItems       int `json:"expiringItems"`
	UnreadNotifications int `json:"unreadNotifications"`
}

type AdminDashboardStats struct {
	TotalUsers                  int             `json:"totalUsers"`
	Patients                    int             `json:"patients"`
	Doctors                     int             `json:"doctors"`
	Pharmacists                 int             `json:"pharmacists"`
	Admins                      int             `json:"admins"`
	TotalPrescriptions          int             `json:"totalPrescriptions"`
	ActivePrescriptions         int             `json:"activePrescriptions"`
	TotalReminders              int             `json:"totalReminders"`
	ActiveReminders             int             `json:"activeReminders"`
	TotalInventoryItems         int             `json:"totalInventoryItems"`
	TotalRefillRequests         int             `json:"totalRefillRequests"`
	PendingRefillRequests       int             `json:"pendingRefillRequests"`
	TotalNotifications          int             `json:"totalNotifications"`
	UnreadNotifications         int             `json:"unreadNotifications"`
	TotalDoseLogs               int             `json:"totalDoseLogs"`
	RecentUsers                 []User          `json:"recentUsers"`
	RecentRefillRequests        []RefillRequest `json:"recentRefillRequests"`
	RecentPendingRefillRequests []RefillRequest `json:"recentPendingRefillRequests"`
}

// RecentRefills prefers the pending list and falls back to all recent
// refill requests.
func (s *AdminDashboardStats) RecentRefills() []RefillRequest {
	if len(s.RecentPendingRefillRequests) > 0 {
		return s.RecentPendingRefillRequests
	}
	return s.RecentRefillRequests
}

type PatientDashboard struct {
	Stats         PatientDashboardStats `json:"stats"`
	Reminders     []Reminder            `json:"reminders"`
	Notifications []Notification        `json:"notifications"`
}

type DoctorDashboard struct {
	DoctorName    string               `json:"doctorName"`
	Stats         DoctorDashboardStats `json:"stats"`
	Prescriptions []Prescription       `json:"prescriptions"`
}

type PharmacistDashboard struct {
	Stats         PharmacistDashboardStats `json:"stats"`
	PendingOrders []RefillRequest          `json:"pendingOrders"`
	Notifications []Notification           `json:"notifications"`
	Statuses      []RefillStatus           `json:"statuses"`
}

type AdminDashboard struct {
	Stats         AdminDashboardStats `json:"stats"`
	RecentRefills []RefillRequest     `json:"recentRefills"`
}
