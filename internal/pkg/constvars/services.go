package constvars

// MedTrack API paths, relative to the configured base url.
const (
	APIAuthLogin          = "/auth/login"
	APIAuthGoogle         = "/auth/google"
	APIAuthSignup         = "/auth/signup"
	APIAuthLogout         = "/auth/logout"
	APIAuthProfile        = "/auth/profile"
	APIAuthForgotPassword = "/auth/forgot-password"
	APIAuthResetPassword  = "/auth/reset-password"

	APIPatientDashboard         = "/patient/dashboard"
	APIPatientPrescriptions     = "/patient/prescriptions"
	APIPatientRefillRequests    = "/patient/refill-requests"
	APIPatientReminders         = "/patient/reminders"
	APIPatientAnalytics         = "/patient/analytics"
	APIPatientNotifications     = "/patient/notifications"
	APIPatientProfile           = "/patient/profile"
	APIPatientMedicalInfo       = "/patient/medical-info"
	APIPatientRefillRequestPath = "/patient/prescriptions/%s/refill-request"
	APIPatientLogDosePath       = "/patient/reminders/%s/log-dose"
	APIPatientNotificationRead  = "/patient/notifications/%s/read"

	APIDoctorDashboard     = "/doctor/dashboard"
	APIDoctorPatients      = "/doctor/patients"
	APIDoctorPatientSearch = "/doctor/patients/search"
	APIDoctorPrescriptions = "/doctor/prescriptions"
	APIDoctorAnalytics     = "/doctor/analytics"
	APIDoctorProfile       = "/doctor/profile"

	APIPharmacistDashboard        = "/pharmacist/dashboard"
	APIPharmacistInventory        = "/pharmacist/inventory"
	APIPharmacistPendingOrders    = "/pharmacist/orders/pending"
	APIPharmacistFulfillOrderPath = "/pharmacist/orders/%s/fulfill"
	APIPharmacistAnalytics        = "/pharmacist/analytics"
	APIPharmacistLowStockAlerts   = "/pharmacist/alerts/low-stock"
	APIPharmacistExpiringAlerts   = "/pharmacist/alerts/expiring"
	APIPharmacistProfile          = "/pharmacist/profile"
	APIPharmacistNotifications    = "/pharmacist/notifications"
	APIPharmacistNotificationRead = "/pharmacist/notifications/%s/read"

	APIAdminDashboard      = "/admin/dashboard"
	APIAdminUsers          = "/admin/users"
	APIAdminPrescriptions  = "/admin/prescriptions"
	APIAdminReminders      = "/admin/reminders"
	APIAdminInventory      = "/admin/inventory"
	APIAdminRefillRequests = "/admin/refill-requests"
	APIAdminDoseLogs       = "/admin/dose-logs"
	APIAdminNotifications  = "/admin/notifications"
	APIAdminProfile        = "/admin/profile"
)
