package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/dto/responses"
)

type AuthAPIClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.Auth, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.Message, error)
	ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.Message, error)
	UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, string, error)
	GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*models.Session, string, error)
	Signup(ctx context.Context, request *requests.Signup) (*models.Session, string, error)
	Logout(ctx context.Context, session *models.Session) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.Message, error)
	ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.Message, error)
	CompleteSetup(ctx context.Context, session *models.Session, request *requests.RoleSetup) (*models.User, error)
}
