package routers

import (
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPharmacistRoutes(router chi.Router, middlewares *middlewares.Middlewares, pharmacistController *controllers.PharmacistController) {
	router.Use(middlewares.RequireRoles(models.RolePharmacist))

	router.Get("/dashboard", pharmacistController.Dashboard)
	router.Post("/orders/{id}/status", pharmacistController.UpdateOrderStatus)
	router.Post("/notifications/{id}/read", pharmacistController.MarkNotificationRead)
	router.Get("/inventory", pharmacistController.Inventory)
	router.Post("/inventory", pharmacistController.SaveInventoryItem)
	router.Post("/inventory/{id}", pharmacistController.SaveInventoryItem)
	router.Post("/inventory/{id}/delete", pharmacistController.DeleteInventoryItem)
	router.Get("/alerts", pharmacistController.Alerts)
	router.Get("/analytics", pharmacistController.Analytics)
	router.Get("/profile", pharmacistController.Profile)
	router.Post("/profile", pharmacistController.UpdateProfile)
}
