package routers

import (
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.RequireRoles(models.RolePatient))

	router.Get("/dashboard", patientController.Dashboard)
	router.Post("/notifications/{id}/read", patientController.MarkNotificationRead)
	router.Get("/prescriptions", patientController.Prescriptions)
	router.Post("/prescriptions/{id}/refill", patientController.RequestRefill)
	router.Get("/reminders", patientController.Reminders)
	router.Post("/reminders", patientController.CreateReminder)
	router.Post("/reminders/{id}/toggle", patientController.ToggleReminder)
	router.Post("/reminders/{id}/delete", patientController.DeleteReminder)
	router.Post("/reminders/{id}/log-dose", patientController.LogDose)
	router.Get("/analytics", patientController.Analytics)
	router.Get("/profile", patientController.Profile)
	router.Post("/profile", patientController.UpdateProfile)
}
