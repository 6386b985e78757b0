package routers

import (
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Get(constvars.RoutePathHome, authController.Home)

	limiter := middlewares.LoginLimiter()
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RedirectAuthenticated)
		r.Use(limiter.Limit)

		r.Get(constvars.RoutePathLogin, authController.LoginPage)
		r.Post(constvars.RoutePathLogin, authController.Login)
		r.Post("/login/google", authController.GoogleLogin)
		r.Get(constvars.RoutePathSignup, authController.SignupPage)
		r.Post(constvars.RoutePathSignup, authController.Signup)
		r.Get(constvars.RoutePathForgotPassword, authController.ForgotPasswordPage)
		r.Post(constvars.RoutePathForgotPassword, authController.ForgotPassword)
		r.Get(constvars.RoutePathResetPassword, authController.ResetPasswordPage)
		r.Post(constvars.RoutePathResetPassword, authController.ResetPassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession)

		r.Get(constvars.RoutePathRoleSelection, authController.RoleSelectionPage)
		r.Post(constvars.RoutePathRoleSelection, authController.SelectRole)
		r.Get("/setup/{role}", authController.SetupPage)
		r.Post("/setup/{role}", authController.CompleteSetup)
	})

	router.Post("/logout", authController.Logout)
}
