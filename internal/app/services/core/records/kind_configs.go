package records

import (
	"fmt"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"strings"
)

var registry = []Kind{
	usersKind,
	prescriptionsKind,
	remindersKind,
	inventoryKind,
	refillsKind,
	doseLogsKind,
	notificationsKind,
}

var usersKind = &kindConfig{
	key:      constvars.RecordKindUsers,
	label:    "Users",
	singular: "User",
	hint:     "Create/update users. Required: name, email, role. Optional: password and profile fields including address.",
	template: func() Payload {
		return Payload{
			"name":             "",
			"email":            "",
			"password":         "",
			"role":             string(models.RolePatient),
			"enabled":          true,
			"phoneNumber":      "",
			"dateOfBirth":      "",
			"address":          "",
			"licenseNumber":    "",
			"specialization":   "",
			"medicalHistory":   "",
			"allergies":        "",
			"emergencyContact": "",
		}
	},
	toEditable: func(record models.Record) Payload {
		return Payload{
			"name":             record.String("name"),
			"email":            record.String("email"),
			"password":         "",
			"role":             orDefault(record.String("role"), string(models.RolePatient)),
			"enabled":          record.Bool("enabled"),
			"phoneNumber":      record.String("phoneNumber"),
			"dateOfBirth":      record.String("dateOfBirth"),
			"address":          record.String("address"),
			"licenseNumber":    record.String("licenseNumber"),
			"specialization":   record.String("specialization"),
			"medicalHistory":   record.String("medicalHistory"),
			"allergies":        record.String("allergies"),
			"emergencyContact": record.String("emergencyContact"),
		}
	},
	normalize: func(payload Payload) Payload {
		for _, key := range []string{"name", "phoneNumber", "dateOfBirth", "address", "licenseNumber", "specialization", "medicalHistory", "allergies", "emergencyContact"} {
			trimField(payload, key)
		}
		if email, ok := payload["email"].(string); ok {
			payload["email"] = strings.ToLower(strings.TrimSpace(email))
		}
		upperField(payload, "role")
		return payload
	},
	validate: func(payload Payload) string {
		if isBlank(payload["name"]) || isBlank(payload["email"]) || isBlank(payload["role"]) {
			return "User requires name, email, and role."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return orDefault(orDefault(record.String("name"), record.String("email")), "User")
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | %s | Enabled: %s | Phone: %s | Address: %s",
			orDefault(record.String("email"), "-"),
			orDefault(record.String("role"), "UNASSIGNED"),
			yesNo(record.Bool("enabled")),
			orDefault(record.String("phoneNumber"), "-"),
			orDefault(record.String("address"), "-"),
		)
	},
}

var prescriptionsKind = &kindConfig{
	key:      constvars.RecordKindPrescriptions,
	label:    "Prescriptions",
	singular: "Prescription",
	hint:     "Use patient.id and doctor.id. medications must be an array of medication objects.",
	template: func() Payload {
		return Payload{
			"patient": map[string]interface{}{"id": ""},
			"doctor":  map[string]interface{}{"id": ""},
			"medications": []interface{}{
				map[string]interface{}{"name": "", "dosage": "", "frequency": "", "duration": "", "timeOfDay": "", "instructions": ""},
			},
			"diagnosis":        "",
			"notes":            "",
			"status":           models.PrescriptionStatusActive,
			"refillLimit":      0,
			"refillsRemaining": 0,
			"validUntil":       nil,
		}
	},
	toEditable: func(record models.Record) Payload {
		medications, ok := record["medications"].([]interface{})
		if !ok {
			medications = []interface{}{}
		}
		return Payload{
			"patient":          refEditable(record, "patient"),
			"doctor":           refEditable(record, "doctor"),
			"medications":      medications,
			"diagnosis":        record.String("diagnosis"),
			"notes":            record.String("notes"),
			"status":           orDefault(record.String("status"), models.PrescriptionStatusActive),
			"refillLimit":      numberOrZero(record, "refillLimit"),
			"refillsRemaining": numberOrZero(record, "refillsRemaining"),
			"validUntil":       orNil(record, "validUntil"),
		}
	},
	normalize: func(payload Payload) Payload {
		coerceRef(payload, "patient")
		coerceRef(payload, "doctor")
		if _, ok := payload["medications"].([]interface{}); !ok {
			payload["medications"] = []interface{}{}
		}
		upperField(payload, "status")
		return payload
	},
	validate: func(payload Payload) string {
		if refID(payload, "patient") == "" {
			return "Prescription requires patient.id."
		}
		if refID(payload, "doctor") == "" {
			return "Prescription requires doctor.id."
		}
		medications, _ := payload["medications"].([]interface{})
		if len(medications) == 0 {
			return "Prescription requires at least one medication with name."
		}
		first, _ := medications[0].(map[string]interface{})
		if first == nil || isBlankText(first["name"]) {
			return "Prescription requires at least one medication with name."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return fmt.Sprintf("%s - %s",
			orDefault(record.Ref("patient").String("name"), "Patient"),
			orDefault(record.Ref("doctor").String("name"), "Doctor"),
		)
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | %s | Notes: %s",
			orDefault(medicationNames(record), "No meds"),
			orDefault(record.String("status"), "-"),
			orDefault(record.String("notes"), "-"),
		)
	},
}

var remindersKind = &kindConfig{
	key:      constvars.RecordKindReminders,
	label:    "Reminders",
	singular: "Reminder",
	hint:     `Use patient.id and times array, e.g. ["08:00", "20:00"].`,
	template: func() Payload {
		return Payload{
			"patient":      map[string]interface{}{"id": ""},
			"medicineName": "",
			"dosage":       "",
			"frequency":    "",
			"times":        []interface{}{"08:00"},
			"startDate":    nil,
			"endDate":      nil,
			"instructions": "",
			"active":       true,
		}
	},
	toEditable: func(record models.Record) Payload {
		times, ok := record["times"].([]interface{})
		if !ok {
			times = []interface{}{}
		}
		return Payload{
			"patient":      refEditable(record, "patient"),
			"medicineName": record.String("medicineName"),
			"dosage":       record.String("dosage"),
			"frequency":    record.String("frequency"),
			"times":        times,
			"startDate":    orNil(record, "startDate"),
			"endDate":      orNil(record, "endDate"),
			"instructions": record.String("instructions"),
			"active":       record.Bool("active"),
		}
	},
	normalize: func(payload Payload) Payload {
		coerceRef(payload, "patient")
		switch times := payload["times"].(type) {
		case []interface{}:
		case string:
			split := []interface{}{}
			for _, value := range strings.Split(times, ",") {
				if value = strings.TrimSpace(value); value != "" {
					split = append(split, value)
				}
			}
			payload["times"] = split
		default:
			payload["times"] = []interface{}{}
		}
		return payload
	},
	validate: func(payload Payload) string {
		if refID(payload, "patient") == "" {
			return "Reminder requires patient.id."
		}
		if isBlankText(payload["medicineName"]) {
			return "Reminder requires medicineName."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return fmt.Sprintf("%s - %s",
			orDefault(record.Ref("patient").String("name"), "Patient"),
			orDefault(record.String("medicineName"), "Medicine"),
		)
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | Active: %s | Instructions: %s",
			orDefault(joinTimes(record), "-"),
			yesNo(record.Bool("active")),
			orDefault(record.String("instructions"), "-"),
		)
	},
}

var inventoryKind = &kindConfig{
	key:      constvars.RecordKindInventory,
	label:    "Inventory",
	singular: "Inventory Item",
	hint:     "Use pharmacist.id and ISO date-time for expiryDate when needed.",
	template: func() Payload {
		return Payload{
			"pharmacist":   map[string]interface{}{"id": ""},
			"medicineName": "",
			"batchNumber":  "",
			"quantity":     0,
			"price":        0,
			"expiryDate":   nil,
			"status":       models.InventoryStatusInStock,
		}
	},
	toEditable: func(record models.Record) Payload {
		return Payload{
			"pharmacist":   refEditable(record, "pharmacist"),
			"medicineName": record.String("medicineName"),
			"batchNumber":  record.String("batchNumber"),
			"quantity":     numberOrZero(record, "quantity"),
			"price":        numberOrZero(record, "price"),
			"expiryDate":   orNil(record, "expiryDate"),
			"status":       orDefault(record.String("status"), models.InventoryStatusInStock),
		}
	},
	normalize: func(payload Payload) Payload {
		coerceRef(payload, "pharmacist")
		upperField(payload, "status")
		return payload
	},
	validate: func(payload Payload) string {
		if refID(payload, "pharmacist") == "" {
			return "Inventory item requires pharmacist.id."
		}
		if isBlankText(payload["medicineName"]) {
			return "Inventory item requires medicineName."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return orDefault(record.String("medicineName"), "Inventory Item")
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | Qty: %v | %s | Price: %v",
			orDefault(record.Ref("pharmacist").String("name"), "-"),
			numberOrZero(record, "quantity"),
			orDefault(record.String("status"), "-"),
			numberOrZero(record, "price"),
		)
	},
}

var refillsKind = &kindConfig{
	key:      constvars.RecordKindRefills,
	label:    "Refill Requests",
	singular: "Refill Request",
	hint:     "Use patient.id, pharmacist.id, and prescription.id.",
	template: func() Payload {
		return Payload{
			"patient":      map[string]interface{}{"id": ""},
			"pharmacist":   map[string]interface{}{"id": ""},
			"prescription": map[string]interface{}{"id": ""},
			"status":       string(models.RefillStatusRequested),
			"note":         "",
		}
	},
	toEditable: func(record models.Record) Payload {
		return Payload{
			"patient":      refEditable(record, "patient"),
			"pharmacist":   refEditable(record, "pharmacist"),
			"prescription": refEditable(record, "prescription"),
			"status":       orDefault(record.String("status"), string(models.RefillStatusRequested)),
			"note":         record.String("note"),
		}
	},
	normalize: func(payload Payload) Payload {
		coerceRef(payload, "patient")
		coerceRef(payload, "pharmacist")
		coerceRef(payload, "prescription")
		upperField(payload, "status")
		return payload
	},
	validate: func(payload Payload) string {
		if refID(payload, "patient") == "" || refID(payload, "pharmacist") == "" || refID(payload, "prescription") == "" {
			return "Refill request requires patient.id, pharmacist.id, and prescription.id."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return fmt.Sprintf("%s -> %s",
			orDefault(record.Ref("patient").String("name"), "Patient"),
			orDefault(record.Ref("pharmacist").String("name"), "Pharmacist"),
		)
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | Prescription: %s | Note: %s",
			orDefault(record.String("status"), "-"),
			orDefault(record.Ref("prescription").String("id"), "-"),
			orDefault(record.String("note"), "-"),
		)
	},
}

var doseLogsKind = &kindConfig{
	key:      constvars.RecordKindDoseLogs,
	label:    "Dose Logs",
	singular: "Dose Log",
	hint:     "Use patient.id, reminder.id, scheduledAt, takenAt, and status (TAKEN or MISSED).",
	template: func() Payload {
		return Payload{
			"patient":     map[string]interface{}{"id": ""},
			"reminder":    map[string]interface{}{"id": ""},
			"scheduledAt": nil,
			"takenAt":     nil,
			"status":      models.DoseStatusTaken,
		}
	},
	toEditable: func(record models.Record) Payload {
		return Payload{
			"patient":     refEditable(record, "patient"),
			"reminder":    refEditable(record, "reminder"),
			"scheduledAt": orNil(record, "scheduledAt"),
			"takenAt":     orNil(record, "takenAt"),
			"status":      orDefault(record.String("status"), models.DoseStatusTaken),
		}
	},
	normalize: func(payload Payload) Payload {
		coerceRef(payload, "patient")
		coerceRef(payload, "reminder")
		upperField(payload, "status")
		return payload
	},
	validate: func(payload Payload) string {
		if refID(payload, "patient") == "" || refID(payload, "reminder") == "" {
			return "Dose log requires patient.id and reminder.id."
		}
		if isBlank(payload["status"]) {
			return "Dose log requires status."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return fmt.Sprintf("%s | %s",
			orDefault(record.Ref("patient").String("name"), "Patient"),
			orDefault(record.String("status"), models.DoseStatusTaken),
		)
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("Reminder: %s | Scheduled: %s | Taken: %s",
			orDefault(record.Ref("reminder").String("id"), "-"),
			FormatDateTime(record.String("scheduledAt")),
			FormatDateTime(record.String("takenAt")),
		)
	},
}

var notificationsKind = &kindConfig{
	key:      constvars.RecordKindNotifications,
	label:    "Notifications",
	singular: "Notification",
	hint:     "Use recipientId and optional senderId.",
	template: func() Payload {
		return Payload{
			"recipientId":   "",
			"senderId":      "",
			"type":          "GENERAL",
			"title":         "",
			"message":       "",
			"referenceType": "",
			"referenceId":   "",
			"read":          false,
		}
	},
	toEditable: func(record models.Record) Payload {
		return Payload{
			"recipientId":   record.Ref("recipient").String("id"),
			"senderId":      record.Ref("sender").String("id"),
			"type":          orDefault(record.String("type"), "GENERAL"),
			"title":         record.String("title"),
			"message":       record.String("message"),
			"referenceType": record.String("referenceType"),
			"referenceId":   record.String("referenceId"),
			"read":          record.Bool("read"),
		}
	},
	normalize: func(payload Payload) Payload {
		payload["recipientId"] = resolveID(payload, "recipient")
		payload["senderId"] = resolveID(payload, "sender")
		return payload
	},
	validate: func(payload Payload) string {
		if isBlankText(payload["recipientId"]) {
			return "Notification requires recipientId."
		}
		if isBlankText(payload["title"]) {
			return "Notification requires title."
		}
		if isBlankText(payload["message"]) {
			return "Notification requires message."
		}
		return ""
	},
	summary: func(record models.Record) string {
		return orDefault(record.String("title"), "Notification")
	},
	details: func(record models.Record) string {
		return fmt.Sprintf("%s | %s | Read: %s | Message: %s",
			orDefault(record.Ref("recipient").String("name"), "-"),
			orDefault(record.String("type"), "-"),
			yesNo(record.Bool("read")),
			orDefault(record.String("message"), "-"),
		)
	},
}
