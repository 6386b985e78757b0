package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s characters long",
	"max":          "must be at most %s characters long",
	"oneof":        "must be one of: %s",
	"eqfield":      "must match %s",
	"gte":          "must be greater than or equal to %s",
	"role":         "must be one of PATIENT, DOCTOR, PHARMACIST, ADMIN",
	"refillstatus": "must be one of REQUESTED, PROCESSING, READY, DISPENSED, REJECTED",
	"clocktime":    "must be a time in HH:MM format",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"eqfield": true,
	"gte":     true,
}

// Client facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong. Please try again."
	ErrClientCannotProcessRequest          = "We could not process your request."
	ErrClientNotLoggedIn                   = "Please log in to continue."
	ErrClientNotAuthorized                 = "You are not allowed to access this page."
	ErrClientAdminSessionRequired          = "Records can only be managed from an ADMIN session. Run medtrackctl login first."
	ErrClientPageNotFound                  = "The page you are looking for does not exist."
	ErrClientServerLongRespond             = "The server took too long to respond."
	ErrClientInvalidJSON                   = "Invalid JSON. Please fix formatting before saving."
	ErrClientInvalidRole                   = "Please choose a valid role."
	ErrClientInvalidRefillStatus           = "Unknown order status."
	ErrClientInvalidPrescriptionStatus     = "Unknown prescription status."
	ErrClientDeleteNotConfirmed            = "Delete was not confirmed."
	ErrClientUnknownRecordKind             = "Unknown record type."
	ErrClientRecordNotFound                = "Record not found."
	ErrClientRefillUnavailable             = "This prescription has no refills available."
	ErrClientInvalidCredentials            = "Failed to login. Please check your credentials."
	ErrClientGoogleLoginFailed             = "Google login failed."
	ErrClientSignupFailed                  = "Failed to create account"
	ErrClientResetPasswordRequestFailed    = "Failed to send reset link"
	ErrClientResetPasswordFailed           = "Failed to reset password."
	ErrClientInvalidResetLink              = "Invalid reset link. Please request a new password reset."
	ErrClientProfileUpdateFailed           = "Failed to update profile."
	ErrClientProfileLoadFailed             = "Failed to fetch profile."
	ErrClientImageUploadFailed             = "Failed to upload profile image."

	ErrClientPasswordsDoNotMatch = "Passwords do not match"
	ErrClientNameRequired        = "Name is required"
	ErrClientPasswordTooShort    = "Password must be at least 8 characters long"

	ErrClientPatientNameRequired       = "Name is required."
	ErrClientPhoneRequired             = "Phone number is required."
	ErrClientPhoneTooShort             = "Phone number is too short."
	ErrClientPharmacistPhoneTooShort   = "Phone number looks too short."
	ErrClientLicenseNumberRequired     = "License number is required."
	ErrClientResetPasswordTooShort     = "Password must be at least 8 characters long."
	ErrClientResetPasswordsDoNotMatch  = "Passwords do not match."
	ErrClientReminderMedicineRequired  = "Medication name is required."
	ErrClientReminderDosageRequired    = "Dosage is required."
	ErrClientReminderStartRequired     = "Start date is required."
	ErrClientReminderTimeRequired      = "At least one reminder time is required."
	ErrClientPrescriptionPatientNeeded = "Please select a patient."
	ErrClientPrescriptionMedsNeeded    = "At least one medication is required."
	ErrClientInventoryMedicineRequired = "Medicine name is required."

	ErrClientLoadAdminRecords       = "Failed to load admin records."
	ErrClientLoadAdminDashboard     = "Failed to load admin dashboard."
	ErrClientLoadPatientDashboard   = "Failed to load dashboard data."
	ErrClientLoadDoctorDashboard    = "Failed to load dashboard data."
	ErrClientLoadPharmacistData     = "Failed to load pharmacist dashboard data."
	ErrClientUpdateOrderStatus      = "Failed to update order status."
	ErrClientLoadPrescriptions      = "Failed to fetch prescriptions."
	ErrClientCreatePrescription     = "Failed to create prescription."
	ErrClientDeletePrescription     = "Failed to delete prescription."
	ErrClientRequestRefill          = "Failed to create refill request."
	ErrClientLoadReminders          = "Failed to load reminders."
	ErrClientCreateReminder         = "Unable to create reminder."
	ErrClientDeleteReminder         = "Failed to delete reminder."
	ErrClientLogDose                = "Failed to log dose."
	ErrClientLoadAnalytics          = "Failed to load analytics."
	ErrClientLoadPatients           = "Failed to load patients."
	ErrClientLoadInventory          = "Failed to load inventory."
	ErrClientSaveInventory          = "Failed to save inventory item."
	ErrClientDeleteInventory        = "Failed to delete inventory item."
	ErrClientLoadAlerts             = "Failed to load stock alerts."
	ErrClientMarkNotificationAsRead = "Failed to mark notification as read."
	ErrClientSaveRecordFormat       = "Failed to save %s."
	ErrClientDeleteRecordFormat     = "Failed to delete %s."
)

// Developer facing messages
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseForm           = "cannot parse form"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadResponseBody          = "failed to read response body"
	ErrDevDecodeResponse            = "failed to decode response of %s"
	ErrDevAPIResponse               = "medtrack API responded %d on %s %s"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevOutboundRateLimit         = "outbound rate limiter wait failed"
	ErrDevSessionMissing            = "session cookie missing"
	ErrDevSessionInvalid            = "session token invalid or expired"
	ErrDevSessionNotFound           = "session not found"
	ErrDevSessionSign               = "failed to sign session token"
	ErrDevAdminSessionRequired      = "admin session required, gate outcome %s"
	ErrDevSessionFileRead           = "failed to read session file %s"
	ErrDevSessionFileWrite          = "failed to write session file %s"
	ErrDevInvalidRoleType           = "invalid role type"
	ErrDevInvalidRefillStatus       = "invalid refill status"
	ErrDevInvalidPrescriptionStatus = "invalid prescription status"
	ErrDevUnknownRecordKind         = "unknown record kind %s"
	ErrDevDeleteNotConfirmed        = "delete not confirmed"
	ErrDevRecordNotFound            = "%s %s not found"
	ErrDevRecordValidation          = "record validation failed"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevMinioCreateObject         = "failed to create object in bucket %s"
	ErrDevMinioPresignedURL         = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel       = "failed to open rabbitmq channel"
	ErrDevTemplateRender            = "failed to render template %s"
	ErrDevWebsocketUpgrade          = "failed to upgrade websocket connection"
	ErrDevInvalidResetToken         = "reset token missing"
	ErrDevFormValidation            = "form validation failed"
	ErrDevUnexpectedResponseShape   = "unexpected response shape from %s"
)

const (
	ErrClientSetupFailed              = "Failed to complete setup. Please try again."
	ErrClientSaveProfileChanges       = "Failed to save profile changes."
	ErrClientLoadDoctorProfile        = "Failed to load profile."
	ErrClientLoadPharmacistProfile    = "Failed to load pharmacist profile."
	ErrClientLoadAdminProfile         = "Failed to load admin profile."
	ErrClientUpdateAdminProfile       = "Failed to update admin profile."
	ErrClientLoadPrescriptionData     = "Failed to load prescription data."
	ErrClientUpdateRefillStatus       = "Failed to update refill status."
	ErrClientUpdatePrescriptionStatus = "Failed to update prescription status."
	ErrClientUpdateReminder           = "Failed to update reminder."
	ErrClientLoadDoctorAnalytics      = "Failed to load analytics data."
	ErrClientLoadPharmacistAnalytics  = "Failed to load pharmacist analytics."
	ErrClientLoadInventoryData        = "Failed to load inventory data."
	ErrClientAddInventoryItem         = "Failed to add inventory item."
)
