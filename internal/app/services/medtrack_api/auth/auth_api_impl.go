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

type authAPIClient struct {
	API contracts.APIClient
	Log *zap.Logger
}

func NewAuthAPIClient(api contracts.APIClient, logger *zap.Logger) contracts.AuthAPIClient {
	return &authAPIClient{
		API: api,
		Log: logger,
	}
}

func (c *authAPIClient) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	c.Log.Info("authAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	response := new(responses.Auth)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthLogin, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.Auth, error) {
	c.Log.Info("authAPIClient.GoogleLogin called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	response := new(responses.Auth)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthGoogle, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error) {
	c.Log.Info("authAPIClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	response := new(responses.Auth)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthSignup, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) Logout(ctx context.Context) error {
	c.Log.Info("authAPIClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)
	return c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthLogout, nil, nil)
}

func (c *authAPIClient) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.Message, error) {
	c.Log.Info("authAPIClient.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	response := new(responses.Message)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthForgotPassword, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.Message, error) {
	c.Log.Info("authAPIClient.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	response := new(responses.Message)
	err := c.API.Do(ctx, constvars.MethodPost, constvars.APIAuthResetPassword, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	c.Log.Info("authAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	user := new(models.User)
	err := c.API.Do(ctx, constvars.MethodPut, constvars.APIAuthProfile, request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
