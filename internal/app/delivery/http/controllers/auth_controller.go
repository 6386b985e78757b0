package controllers

import (
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/gate"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthController struct {
	*BaseController
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(base *BaseController, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		BaseController: base,
		AuthUsecase:    authUsecase,
	}
}

// Home sends the visitor wherever they belong: login, role selection or
// their own dashboard.
func (ctrl *AuthController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.redirect(w, r, gate.PostAuthPath(utils.GetSessionFromContext(r.Context()).CurrentUser()))
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, "login", &views.Page{
		Title: "Log in",
		Data:  &views.CredentialsData{GoogleClientID: ctrl.InternalConfig.App.GoogleClientID},
	})
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	request := &requests.Login{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	// Sanitize request
	utils.SanitizeLoginRequest(request)

	page := &views.Page{
		Title: "Log in",
		Data:  &views.CredentialsData{Email: request.Email, GoogleClientID: ctrl.InternalConfig.App.GoogleClientID},
	}

	// Validate request
	err := utils.ValidateForm(request)
	if err != nil {
		page.Error = exceptions.ClientMessage(err)
		ctrl.render(w, r, "login", page)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	session, cookieValue, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.logError(r, err)
		page.Error = errorBanner(err, constvars.ErrClientInvalidCredentials)
		ctrl.render(w, r, "login", page)
		return
	}

	ctrl.startSession(w, r, session, cookieValue, "")
}

func (ctrl *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	request := &requests.GoogleLogin{Credential: r.PostFormValue("credential")}
	err := utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, constvars.RoutePathLogin, exceptions.ClientMessage(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	session, cookieValue, err := ctrl.AuthUsecase.GoogleLogin(ctx, request)
	if err != nil {
		ctrl.fail(w, r, err, constvars.RoutePathLogin, constvars.ErrClientGoogleLoginFailed)
		return
	}

	ctrl.startSession(w, r, session, cookieValue, "")
}

func (ctrl *AuthController) SignupPage(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, "signup", &views.Page{Title: "Create an account", Data: &views.CredentialsData{}})
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	request := &requests.Signup{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	// Sanitize request
	utils.SanitizeSignupRequest(request)

	page := &views.Page{
		Title: "Create an account",
		Data:  &views.CredentialsData{Name: request.Name, Email: request.Email},
	}

	// Validate request
	err := utils.ValidateForm(request)
	if err != nil {
		page.Error = exceptions.ClientMessage(err)
		ctrl.render(w, r, "signup", page)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	session, cookieValue, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		ctrl.logError(r, err)
		page.Error = errorBanner(err, constvars.ErrClientSignupFailed)
		ctrl.render(w, r, "signup", page)
		return
	}

	ctrl.startSession(w, r, session, cookieValue, constvars.SignupSuccessMessage)
}

func (ctrl *AuthController) startSession(w http.ResponseWriter, r *http.Request, session *models.Session, cookieValue, message string) {
	sessionConfig := ctrl.InternalConfig.Session
	utils.SetSessionCookie(w, sessionConfig.CookieName, cookieValue, sessionConfig.TTL(), ctrl.InternalConfig.App.SecureCookies)

	location := gate.PostAuthPath(session.CurrentUser())
	if message != "" {
		ctrl.redirectWithSuccess(w, r, location, message)
		return
	}
	ctrl.redirect(w, r, location)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, session)
	if err != nil {
		ctrl.Log.Warn("AuthController.Logout error ending session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}

	utils.ClearSessionCookie(w, ctrl.InternalConfig.Session.CookieName, ctrl.InternalConfig.App.SecureCookies)
	ctrl.redirect(w, r, constvars.RoutePathLogin)
}

func (ctrl *AuthController) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, "forgot_password", &views.Page{Title: "Forgot password", Data: &views.ForgotPasswordData{}})
}

func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	request := &requests.ForgotPassword{Email: r.PostFormValue("email")}
	utils.SanitizeForgotPasswordRequest(request)

	data := &views.ForgotPasswordData{Email: request.Email}
	page := &views.Page{Title: "Forgot password", Data: data}

	err := utils.ValidateForm(request)
	if err != nil {
		page.Error = exceptions.ClientMessage(err)
		ctrl.render(w, r, "forgot_password", page)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	message, err := ctrl.AuthUsecase.ForgotPassword(ctx, request)
	if err != nil {
		ctrl.logError(r, err)
		page.Error = errorBanner(err, constvars.ErrClientResetPasswordRequestFailed)
		ctrl.render(w, r, "forgot_password", page)
		return
	}

	page.Message = message.Message
	if page.Message == "" {
		page.Message = constvars.ForgotPasswordSentMessage
	}
	data.ResetLink = message.ResetLink
	ctrl.render(w, r, "forgot_password", page)
}

func (ctrl *AuthController) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{
		Title: "Reset password",
		Data:  &views.ResetPasswordData{Token: r.URL.Query().Get("token")},
	}
	if r.URL.Query().Get("token") == "" {
		page.Error = constvars.ErrClientInvalidResetLink
	}
	ctrl.render(w, r, "reset_password", page)
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	request := &requests.ResetPassword{
		Token:           r.PostFormValue("token"),
		NewPassword:     r.PostFormValue("newPassword"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	utils.SanitizeResetPasswordRequest(request)

	page := &views.Page{Title: "Reset password", Data: &views.ResetPasswordData{Token: request.Token}}

	err := utils.ValidateForm(request)
	if err != nil {
		page.Error = exceptions.ClientMessage(err)
		ctrl.render(w, r, "reset_password", page)
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	message, err := ctrl.AuthUsecase.ResetPassword(ctx, request)
	if err != nil {
		ctrl.logError(r, err)
		page.Error = errorBanner(err, constvars.ErrClientResetPasswordFailed)
		ctrl.render(w, r, "reset_password", page)
		return
	}

	ctrl.redirectWithSuccess(w, r, constvars.RoutePathLogin, message.Message)
}

func (ctrl *AuthController) RoleSelectionPage(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, "role_selection", &views.Page{Title: "Choose your role"})
}

func (ctrl *AuthController) SelectRole(w http.ResponseWriter, r *http.Request) {
	role, err := models.ParseRole(r.PostFormValue("role"))
	if err != nil {
		ctrl.render(w, r, "role_selection", &views.Page{Title: "Choose your role", Error: constvars.ErrClientInvalidRole})
		return
	}
	ctrl.redirect(w, r, role.SetupPath())
}

func (ctrl *AuthController) SetupPage(w http.ResponseWriter, r *http.Request) {
	role, err := models.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		ctrl.redirectWithError(w, r, constvars.RoutePathRoleSelection, constvars.ErrClientInvalidRole)
		return
	}

	form := &requests.RoleSetup{Role: string(role)}
	if user := utils.GetSessionFromContext(r.Context()).CurrentUser(); user != nil {
		form.PhoneNumber = user.PhoneNumber
		form.Address = user.Address
		form.DateOfBirth = user.DateOfBirth
	}
	ctrl.render(w, r, "setup", &views.Page{
		Title: role.Label() + " setup",
		Data:  &views.SetupData{Role: role, Form: form},
	})
}

func (ctrl *AuthController) CompleteSetup(w http.ResponseWriter, r *http.Request) {
	// Bind form to request
	request := &requests.RoleSetup{
		Role:             chi.URLParam(r, "role"),
		PhoneNumber:      r.PostFormValue("phoneNumber"),
		DateOfBirth:      r.PostFormValue("dateOfBirth"),
		Address:          r.PostFormValue("address"),
		EmergencyContact: r.PostFormValue("emergencyContact"),
		MedicalHistory:   r.PostFormValue("medicalHistory"),
		Allergies:        r.PostFormValue("allergies"),
		LicenseNumber:    r.PostFormValue("licenseNumber"),
		Specialization:   r.PostFormValue("specialization"),
	}
	// Sanitize request
	utils.SanitizeRoleSetupRequest(request)

	// Validate request
	err := utils.ValidateForm(request)
	if err != nil {
		ctrl.redirectWithError(w, r, constvars.RoutePathRoleSelection, exceptions.ClientMessage(err))
		return
	}

	role := models.Role(request.Role)
	page := &views.Page{
		Title: role.Label() + " setup",
		Data:  &views.SetupData{Role: role, Form: request},
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	user, err := ctrl.AuthUsecase.CompleteSetup(ctx, utils.GetSessionFromContext(r.Context()), request)
	if err != nil {
		ctrl.renderFailure(w, r, err, "setup", page, constvars.ErrClientSetupFailed)
		return
	}

	ctrl.redirect(w, r, gate.PostAuthPath(user))
}
