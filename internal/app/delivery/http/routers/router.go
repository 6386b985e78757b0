package routers

import (
	"medtrack-portal/internal/app/config"
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	logger *zap.Logger,
	requestLogger *logrus.Logger,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	pharmacistController *controllers.PharmacistController,
	adminController *controllers.AdminController,
	liveController *controllers.LiveController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	if !internalConfig.App.IsProduction() && requestLogger != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, requestLogger))
	}

	router.Get("/healthz", liveController.Health)

	router.Group(func(r chi.Router) {
		r.Use(csrf.Protect(
			[]byte(internalConfig.App.CSRFKey),
			csrf.Secure(internalConfig.App.SecureCookies),
			csrf.Path("/"),
		))
		r.Use(middlewares.LoadSession)

		attachAuthRoutes(r, middlewares, authController)

		r.Route("/patient", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/pharmacist", func(r chi.Router) {
			attachPharmacistRoutes(r, middlewares, pharmacistController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, adminController)
		})

		r.With(middlewares.RequireSession).Get("/live/dashboard", liveController.Dashboard)
	})

	router.NotFound(authController.NotFound)
}
