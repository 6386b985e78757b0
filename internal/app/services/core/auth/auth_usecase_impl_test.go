package auth

import (
	"context"
	"errors"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/dto/responses"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthAPI struct {
	loginErr    error
	logoutErr   error
	logoutToken string
	resetReply  *responses.Message
	profile     *requests.Profile
}

func (f *fakeAuthAPI) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &responses.Auth{Token: "api-token", User: &models.User{ID: "u-1", Email: request.Email}}, nil
}

func (f *fakeAuthAPI) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.Auth, error) {
	return &responses.Auth{Token: "google-token", User: &models.User{ID: "u-2", Role: models.RoleDoctor}}, nil
}

func (f *fakeAuthAPI) Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error) {
	return &responses.Auth{Token: "new-token", User: &models.User{ID: "u-3", Name: request.Name}}, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutToken = utils.GetAPITokenFromContext(ctx)
	return f.logoutErr
}

func (f *fakeAuthAPI) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.Message, error) {
	return &responses.Message{Message: "sent", ResetLink: "http://reset"}, nil
}

func (f *fakeAuthAPI) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.Message, error) {
	return f.resetReply, nil
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, request *requests.Profile) (*models.User, error) {
	f.profile = request
	return &models.User{ID: "u-1", Role: models.Role(request.Role), LicenseNumber: request.LicenseNumber}, nil
}

type fakeSessionService struct {
	created   []*models.Session
	destroyed []string
	createErr error
}

func (f *fakeSessionService) Create(ctx context.Context, token string, user *models.User) (*models.Session, string, error) {
	if f.createErr != nil {
		return nil, "", f.createErr
	}
	session := &models.Session{ID: "s-1", Token: token, User: user}
	f.created = append(f.created, session)
	return session, "signed-cookie", nil
}

func (f *fakeSessionService) Resolve(ctx context.Context, cookieValue string) (*models.Session, error) {
	return nil, exceptions.ErrSessionNotFound(nil)
}

func (f *fakeSessionService) UpdateUser(ctx context.Context, session *models.Session, user *models.User) error {
	session.User.Merge(user)
	return nil
}

func (f *fakeSessionService) Destroy(ctx context.Context, sessionID string) error {
	f.destroyed = append(f.destroyed, sessionID)
	return nil
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Run("Stores Token And User", func(t *testing.T) {
		sessions := &fakeSessionService{}
		uc := NewAuthUsecase(&fakeAuthAPI{}, sessions, zap.NewNop())

		session, cookie, err := uc.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "signed-cookie", cookie)
		assert.Equal(t, "api-token", session.Token)
		assert.Equal(t, "a@b.com", session.User.Email)
	})

	t.Run("Rejected Credentials Create No Session", func(t *testing.T) {
		sessions := &fakeSessionService{}
		apiErr := exceptions.ErrAPIResponse(constvars.StatusUnauthorized, "Bad credentials", constvars.MethodPost, constvars.APIAuthLogin)
		uc := NewAuthUsecase(&fakeAuthAPI{loginErr: apiErr}, sessions, zap.NewNop())

		_, _, err := uc.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, "Bad credentials", exceptions.MessageOrDefault(err, constvars.ErrClientInvalidCredentials))
		assert.Empty(t, sessions.created)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("Destroys Session Even When API Fails", func(t *testing.T) {
		api := &fakeAuthAPI{logoutErr: errors.New("unreachable")}
		sessions := &fakeSessionService{}
		uc := NewAuthUsecase(api, sessions, zap.NewNop())

		err := uc.Logout(context.Background(), &models.Session{ID: "s-9", Token: "tok"})
		require.NoError(t, err)
		assert.Equal(t, "tok", api.logoutToken)
		assert.Equal(t, []string{"s-9"}, sessions.destroyed)
	})

	t.Run("No Session Is A No-op", func(t *testing.T) {
		sessions := &fakeSessionService{}
		uc := NewAuthUsecase(&fakeAuthAPI{}, sessions, zap.NewNop())
		assert.NoError(t, uc.Logout(context.Background(), nil))
		assert.Empty(t, sessions.destroyed)
	})
}

func TestAuthUsecase_ResetPassword(t *testing.T) {
	api := &fakeAuthAPI{resetReply: &responses.Message{}}
	uc := NewAuthUsecase(api, &fakeSessionService{}, zap.NewNop())

	message, err := uc.ResetPassword(context.Background(), &requests.ResetPassword{Token: "t", NewPassword: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, constvars.PasswordResetFallbackMessage, message.Message)

	api.resetReply = &responses.Message{Message: "Done."}
	message, err = uc.ResetPassword(context.Background(), &requests.ResetPassword{Token: "t", NewPassword: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, "Done.", message.Message)
}

func TestAuthUsecase_CompleteSetup(t *testing.T) {
	api := &fakeAuthAPI{}
	uc := NewAuthUsecase(api, &fakeSessionService{}, zap.NewNop())
	session := &models.Session{ID: "s-1", User: &models.User{ID: "u-1", Email: "ph@x.io"}}

	user, err := uc.CompleteSetup(context.Background(), session, &requests.RoleSetup{Role: "PHARMACIST", LicenseNumber: "LIC-7"})
	require.NoError(t, err)
	assert.Equal(t, models.RolePharmacist, user.Role)
	assert.Equal(t, "LIC-7", user.LicenseNumber)
	assert.Equal(t, "ph@x.io", user.Email)
	assert.Equal(t, "PHARMACIST", api.profile.Role)
}
