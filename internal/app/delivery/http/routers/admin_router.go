package routers

import (
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Use(middlewares.RequireRoles(models.RoleAdmin))

	router.Get("/dashboard", adminController.Dashboard)
	router.Get("/control-center", adminController.ControlCenter)
	router.Post("/control-center", adminController.SaveRecord)
	router.Get("/control-center/delete", adminController.ConfirmDelete)
	router.Post("/control-center/delete", adminController.DeleteRecord)
	router.Get("/profile", adminController.Profile)
	router.Post("/profile", adminController.UpdateProfile)
}
