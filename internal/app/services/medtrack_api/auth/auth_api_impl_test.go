package auth

import (
	"context"
	"io"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/shared/apiclient"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type receivedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          map[string]interface{}
}

// newTestServer answers every request with status and response and records
// what it received.
func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *receivedRequest) {
	received := new(receivedRequest)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Method = r.Method
		received.Path = r.URL.Path
		received.Authorization = r.Header.Get(constvars.HeaderAuthorization)

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &received.Body))
		}

		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func newTestClient(server *httptest.Server) contracts.AuthAPIClient {
	api := apiclient.NewAPIClient(server.URL, 5*time.Second, nil, zap.NewNop())
	return NewAuthAPIClient(api, zap.NewNop())
}

func TestAuthAPIClient(t *testing.T) {
	ctx := utils.ContextWithAPIToken(context.Background(), "tok-1")

	t.Run("Login Posts Credentials", func(t *testing.T) {
		server, received := newTestServer(t, http.StatusOK, `{"token":"t-9","user":{"id":"u-1","email":"ada@x.io","role":"PATIENT"}}`)

		auth, err := newTestClient(server).Login(context.Background(), &requests.Login{Email: "ada@x.io", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "t-9", auth.Token)
		assert.Equal(t, models.RolePatient, auth.User.Role)
		assert.Equal(t, http.MethodPost, received.Method)
		assert.Equal(t, "/auth/login", received.Path)
		assert.Empty(t, received.Authorization)
		assert.Equal(t, map[string]interface{}{"email": "ada@x.io", "password": "secret"}, received.Body)
	})

	t.Run("Logout Sends Bearer Without Body", func(t *testing.T) {
		server, received := newTestServer(t, http.StatusNoContent, "")

		require.NoError(t, newTestClient(server).Logout(ctx))
		assert.Equal(t, http.MethodPost, received.Method)
		assert.Equal(t, "/auth/logout", received.Path)
		assert.Equal(t, "Bearer tok-1", received.Authorization)
		assert.Nil(t, received.Body)
	})

	t.Run("Logout Surfaces Server Message", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusInternalServerError, `{"message":"Session already closed"}`)

		err := newTestClient(server).Logout(ctx)

		require.Error(t, err)
		assert.Equal(t, "Session already closed", exceptions.ClientMessage(err))
	})

	t.Run("Reset Password Omits Confirmation", func(t *testing.T) {
		server, received := newTestServer(t, http.StatusOK, `{"message":"Password updated"}`)

		message, err := newTestClient(server).ResetPassword(context.Background(), &requests.ResetPassword{
			Token:           "reset-1",
			NewPassword:     "longenough",
			ConfirmPassword: "longenough",
		})

		require.NoError(t, err)
		assert.Equal(t, "Password updated", message.Message)
		assert.Equal(t, "/auth/reset-password", received.Path)
		assert.Equal(t, map[string]interface{}{"token": "reset-1", "newPassword": "longenough"}, received.Body)
	})

	t.Run("Update Profile Puts Role", func(t *testing.T) {
		server, received := newTestServer(t, http.StatusOK, `{"id":"u-1","name":"Dr. Ada","role":"DOCTOR"}`)

		user, err := newTestClient(server).UpdateProfile(ctx, &requests.Profile{Role: "DOCTOR", Name: "Dr. Ada"})

		require.NoError(t, err)
		assert.Equal(t, models.RoleDoctor, user.Role)
		assert.Equal(t, http.MethodPut, received.Method)
		assert.Equal(t, "/auth/profile", received.Path)
		assert.Equal(t, "Bearer tok-1", received.Authorization)
		assert.Equal(t, map[string]interface{}{"role": "DOCTOR", "name": "Dr. Ada"}, received.Body)
	})
}
