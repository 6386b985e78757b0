package controllers

import (
	"context"
	"errors"
	"medtrack-portal/internal/app/config"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// BaseController holds what every page controller needs: the renderer, the
// session service for 401 handling and profile refreshes, and the optional
// profile image storage.
type BaseController struct {
	Log            *zap.Logger
	Views          *views.Renderer
	SessionService contracts.SessionService
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
}

func NewBaseController(
	logger *zap.Logger,
	renderer *views.Renderer,
	sessionService contracts.SessionService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
) *BaseController {
	return &BaseController{
		Log:            logger,
		Views:          renderer,
		SessionService: sessionService,
		Storage:        storage,
		InternalConfig: internalConfig,
	}
}

func (b *BaseController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), b.InternalConfig.App.RequestTimeout())
}

func (b *BaseController) render(w http.ResponseWriter, r *http.Request, name string, page *views.Page) {
	b.Views.Render(w, r, constvars.StatusOK, name, page)
}

func (b *BaseController) redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, constvars.StatusSeeOther)
}

func (b *BaseController) redirectWithSuccess(w http.ResponseWriter, r *http.Request, location, message string) {
	views.SetFlash(w, views.FlashSuccess, message)
	b.redirect(w, r, location)
}

func (b *BaseController) redirectWithError(w http.ResponseWriter, r *http.Request, location, message string) {
	views.SetFlash(w, views.FlashError, message)
	b.redirect(w, r, location)
}

// nextPath is the local path a form asked to return to, else fallback.
func nextPath(r *http.Request, fallback string) string {
	next := r.PostFormValue("next")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return fallback
}

// handleUnauthorized ends the session when the API rejected its token and
// sends the browser to the login page. It reports whether it responded.
func (b *BaseController) handleUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if exceptions.StatusCode(err) != constvars.StatusUnauthorized {
		return false
	}
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		return false
	}

	b.Log.Info("BaseController.handleUnauthorized ending session",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	if destroyErr := b.SessionService.Destroy(r.Context(), session.ID); destroyErr != nil {
		b.Log.Warn("BaseController.handleUnauthorized error destroying session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(destroyErr),
		)
	}
	utils.ClearSessionCookie(w, b.InternalConfig.Session.CookieName, b.InternalConfig.App.SecureCookies)
	b.redirectWithError(w, r, constvars.RoutePathLogin, constvars.ErrClientNotLoggedIn)
	return true
}

// fail logs err and redirects to location with the server's message, or
// fallback when the server sent none.
func (b *BaseController) fail(w http.ResponseWriter, r *http.Request, err error, location, fallback string) {
	if b.handleUnauthorized(w, r, err) {
		return
	}
	b.logError(r, err)
	b.redirectWithError(w, r, location, errorBanner(err, fallback))
}

// renderFailure renders name with a banner in place of the data that could
// not be loaded.
func (b *BaseController) renderFailure(w http.ResponseWriter, r *http.Request, err error, name string, page *views.Page, fallback string) {
	if b.handleUnauthorized(w, r, err) {
		return
	}
	b.logError(r, err)
	page.Error = errorBanner(err, fallback)
	b.render(w, r, name, page)
}

func (b *BaseController) logError(r *http.Request, err error) {
	b.Log.Error("request failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		zap.Error(err),
	)
}

// errorBanner prefers the API's message, then a local client message such
// as a validation failure, then fallback.
func errorBanner(err error, fallback string) string {
	if message, ok := exceptions.ServerMessage(err); ok {
		return message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return constvars.ErrClientServerLongRespond
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) &&
		customErr.StatusCode < constvars.StatusInternalServerError &&
		customErr.StatusCode != constvars.StatusUnauthorized &&
		customErr.ClientMessage != constvars.ErrClientCannotProcessRequest {
		return customErr.ClientMessage
	}
	return fallback
}

// refreshSessionUser folds a profile response into the stored session.
func (b *BaseController) refreshSessionUser(r *http.Request, user *models.User) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil || user == nil {
		return
	}
	if err := b.SessionService.UpdateUser(r.Context(), session, user); err != nil {
		b.Log.Warn("BaseController.refreshSessionUser error updating session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}

// uploadProfileImage stores the optional "profileImage" file of a multipart
// form and returns its URL. It returns an empty URL when no file was sent or
// object storage is disabled.
func (b *BaseController) uploadProfileImage(ctx context.Context, r *http.Request) (string, error) {
	if b.Storage == nil {
		return "", nil
	}
	file, header, err := r.FormFile("profileImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", exceptions.ErrCannotParseForm(err)
	}
	defer file.Close()

	owner := utils.GetSessionFromContext(ctx).CurrentUser().GetID()
	objectName := utils.GenerateObjectName(constvars.ProfileImageObjectPrefix, owner, header.Filename)
	return b.Storage.UploadFile(ctx, objectName, file, header.Size, header.Header.Get(constvars.HeaderContentType))
}

// parseProfileForm parses a profile form, multipart or not.
func (b *BaseController) parseProfileForm(r *http.Request) error {
	maxSize := b.InternalConfig.App.ProfileImageMaxSizeMB << 20
	err := r.ParseMultipartForm(maxSize)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	return nil
}

// renderProfile loads the signed in user's profile and renders the shared
// profile page, falling back to the session copy when the API fails.
func (b *BaseController) renderProfile(w http.ResponseWriter, r *http.Request, role models.Role, load func(ctx context.Context) (*models.User, error), fallback string) {
	page := &views.Page{Title: "My profile", Data: profileUser(r, &models.User{}, role)}
	if current := utils.GetSessionFromContext(r.Context()).CurrentUser(); current != nil {
		page.Data = profileUser(r, current, role)
	}

	ctx, cancel := b.requestContext(r)
	defer cancel()

	user, err := load(ctx)
	if err != nil {
		b.renderFailure(w, r, err, "profile", page, fallback)
		return
	}

	b.refreshSessionUser(r, user)
	page.Data = profileUser(r, user, role)
	b.render(w, r, "profile", page)
}

// profileUser is the fetched profile with the session's role and email
// filled in when the API leaves them out.
func profileUser(r *http.Request, user *models.User, role models.Role) *models.User {
	shown := *user
	if shown.Role == "" {
		shown.Role = role
	}
	if current := utils.GetSessionFromContext(r.Context()).CurrentUser(); shown.Email == "" && current != nil {
		shown.Email = current.Email
	}
	return &shown
}

// formInt reads an optional integer form field; blank reads as zero.
func formInt(r *http.Request, key, message string) (int, error) {
	value := strings.TrimSpace(r.PostFormValue(key))
	if value == "" {
		return 0, nil
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, exceptions.ErrFormValidation(message)
	}
	return number, nil
}

// formFloat reads an optional decimal form field; blank reads as zero.
func formFloat(r *http.Request, key, message string) (float64, error) {
	value := strings.TrimSpace(r.PostFormValue(key))
	if value == "" {
		return 0, nil
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, exceptions.ErrFormValidation(message)
	}
	return number, nil
}

// NotFound renders the error page for unknown paths.
func (b *BaseController) NotFound(w http.ResponseWriter, r *http.Request) {
	b.Views.Render(w, r, constvars.StatusNotFound, "error", &views.Page{
		Title: "Page not found",
		Data:  &views.ErrorData{Message: constvars.ErrClientPageNotFound},
	})
}
