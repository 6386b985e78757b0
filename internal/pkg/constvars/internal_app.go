package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_API_TOKEN_KEY            ContextKey = "api_token"
)

const (
	// Keys of the persisted CLI session document.
	SessionStorageTokenKey = "token"
	SessionStorageUserKey  = "user"

	SessionRedisKeyPrefix = "medtrack:session:"
	SessionJWTClaimID     = "session_id"
	SessionJWTClaimExp    = "exp"

	CLISessionFileName = "session.json"
)

const (
	RoutePathLogin          = "/login"
	RoutePathSignup         = "/signup"
	RoutePathRoleSelection  = "/role-selection"
	RoutePathForgotPassword = "/forgot-password"
	RoutePathResetPassword  = "/reset-password"
	RoutePathHome           = "/"
)

const (
	ReminderCreatedEventType = "reminder.created"
	ProfileImageObjectPrefix = "profile-images/"

	PatientNotificationPreviewSize    = 5
	DoctorPrescriptionPreviewSize     = 5
	PharmacistNotificationPreviewSize = 6
	TopMedicationLimit                = 6
	WeeklySeriesDays                  = 7
	LiveClientBufferSize              = 16
	MinimumPhoneNumberLength          = 8
	MinimumPasswordLength             = 8

	DefaultDashboardRefreshInSecond           = 30
	DefaultPharmacistDashboardRefreshInSecond = 20

	ReminderStartTimeSuffix = "T00:00:00"
	ReminderEndTimeSuffix   = "T23:59:00"
	DateLayout              = "2006-01-02"
	ScheduledAtLayout       = "2006-01-02T15:04:05"
	WeekdayShortLayout      = "Mon"
)

// Record kinds of the admin control center, in tab order.
const (
	RecordKindUsers         = "users"
	RecordKindPrescriptions = "prescriptions"
	RecordKindReminders     = "reminders"
	RecordKindInventory     = "inventory"
	RecordKindRefills       = "refills"
	RecordKindDoseLogs      = "doseLogs"
	RecordKindNotifications = "notifications"
)
