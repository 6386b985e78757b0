package routers

import (
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.RequireRoles(models.RoleDoctor))

	router.Get("/dashboard", doctorController.Dashboard)
	router.Get("/patients", doctorController.Patients)
	router.Get("/patients/{id}", doctorController.Patient)
	router.Get("/prescriptions", doctorController.Prescriptions)
	router.Post("/prescriptions", doctorController.CreatePrescription)
	router.Post("/prescriptions/{id}/status", doctorController.UpdatePrescriptionStatus)
	router.Post("/prescriptions/{id}/delete", doctorController.DeletePrescription)
	router.Get("/analytics", doctorController.Analytics)
	router.Get("/profile", doctorController.Profile)
	router.Post("/profile", doctorController.UpdateProfile)
}
