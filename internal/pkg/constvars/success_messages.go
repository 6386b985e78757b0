package constvars

const (
	RecordCreatedMessageFormat = "%s created successfully."
	RecordUpdatedMessageFormat = "%s updated successfully."
	RecordDeletedMessageFormat = "%s deleted successfully."
	OrderMovedMessageFormat    = "Order moved to %s."
	OrderUpdatedMessageFormat  = "Order updated to %s."

	PrescriptionStatusMessageFormat = "Prescription marked %s."
	ReminderToggledMessageFormat    = "Reminder for %s updated."

	DeleteConfirmationPrompt = "Delete this record?"

	ProfileUpdatedMessage        = "Profile updated successfully."
	MedicalInfoUpdatedMessage    = "Medical information updated successfully."
	PrescriptionCreatedMessage   = "Prescription created and sent to patient."
	PrescriptionDeletedMessage   = "Prescription deleted."
	RefillRequestedMessage       = "Refill request sent to pharmacist."
	ReminderCreatedMessage       = "Reminder created successfully."
	ReminderDeletedMessage       = "Reminder deleted."
	DoseLoggedMessageFormat      = "Dose logged for %s."
	InventorySavedMessage        = "Inventory item saved."
	InventoryAddedMessage        = "Inventory item added."
	PasswordResetFallbackMessage = "Password has been reset successfully."
	InventoryDeletedMessage      = "Inventory item deleted."
	NotificationMarkedRead       = "Notification marked as read."
	ForgotPasswordSentMessage    = "If the email exists, a reset link has been sent."
	PasswordResetSuccessMessage  = "Password reset successful. Please log in."
	SignupSuccessMessage         = "Account created. Please choose your role."
	ReminderNotificationTitle    = "Medication Reminder Added"
	ReminderNotificationBodyFmt  = "%s has been scheduled."
	HealthCheckOKMessage         = "ok"
)
