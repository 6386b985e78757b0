package auth

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/dto/responses"
	"medtrack-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthAPI        contracts.AuthAPIClient
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(
	authAPI contracts.AuthAPIClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthAPI:        authAPI,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := uc.AuthAPI.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error authenticating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	return uc.startSession(ctx, "Login", response)
}

func (uc *authUsecase) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*models.Session, string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.GoogleLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := uc.AuthAPI.GoogleLogin(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.GoogleLogin error authenticating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	return uc.startSession(ctx, "GoogleLogin", response)
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*models.Session, string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := uc.AuthAPI.Signup(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error creating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	return uc.startSession(ctx, "Signup", response)
}

// startSession persists the token and user of a successful authentication
// and returns the cookie value identifying them.
func (uc *authUsecase) startSession(ctx context.Context, method string, response *responses.Auth) (*models.Session, string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)

	session, cookieValue, err := uc.SessionService.Create(ctx, response.Token, response.User)
	if err != nil {
		uc.Log.Error("authUsecase."+method+" error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	uc.Log.Info("authUsecase."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.CurrentUser().GetID()),
	)
	return session, cookieValue, nil
}

// Logout tells the API best effort and always drops the local session.
func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session == nil {
		return nil
	}

	err := uc.AuthAPI.Logout(utils.ContextWithAPIToken(ctx, session.Token))
	if err != nil {
		uc.Log.Warn("authUsecase.Logout error calling logout endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	err = uc.SessionService.Destroy(ctx, session.ID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error destroying session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.Message, error) {
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return uc.AuthAPI.ForgotPassword(ctx, request)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.Message, error) {
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	message, err := uc.AuthAPI.ResetPassword(ctx, request)
	if err != nil {
		return nil, err
	}
	if message.Message == "" {
		message.Message = constvars.PasswordResetFallbackMessage
	}
	return message, nil
}

// CompleteSetup assigns the chosen role with its onboarding details and
// folds the updated user into the session.
func (uc *authUsecase) CompleteSetup(ctx context.Context, session *models.Session, request *requests.RoleSetup) (*models.User, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.CompleteSetup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	user, err := uc.AuthAPI.UpdateProfile(ctx, request.ToProfile())
	if err != nil {
		uc.Log.Error("authUsecase.CompleteSetup error updating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user.Role == "" {
		user.Role = models.Role(request.Role)
	}

	err = uc.SessionService.UpdateUser(ctx, session, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.CompleteSetup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.CurrentUser().GetID()),
	)
	return session.CurrentUser(), nil
}
