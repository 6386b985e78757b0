package apiclient

import (
	"context"
	"io"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAPIClientDo(t *testing.T) {
	t.Run("Attaches Bearer Token And Request ID", func(t *testing.T) {
		var gotAuthorization, gotRequestID, gotContentType, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get(constvars.HeaderAuthorization)
			gotRequestID = r.Header.Get(constvars.HeaderXRequestID)
			gotContentType = r.Header.Get(constvars.HeaderContentType)
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"id":"r1","medicineName":"Aspirin"}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL+"/api/", time.Second, nil, zap.NewNop())
		ctx := utils.ContextWithAPIToken(context.Background(), "abc123")
		ctx = utils.ContextWithRequestID(ctx, "req-1")

		var out map[string]interface{}
		err := client.Do(ctx, constvars.MethodPost, "/patient/reminders", map[string]string{"medicineName": "Aspirin"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "Bearer abc123", gotAuthorization)
		assert.Equal(t, "req-1", gotRequestID)
		assert.Equal(t, constvars.MIMEApplicationJSON, gotContentType)
		assert.JSONEq(t, `{"medicineName":"Aspirin"}`, gotBody)
		assert.Equal(t, "r1", out["id"])
	})

	t.Run("No Token Means No Authorization Header", func(t *testing.T) {
		var hasAuthorization bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasAuthorization = r.Header[constvars.HeaderAuthorization]
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, time.Second, nil, zap.NewNop())
		err := client.Do(context.Background(), constvars.MethodGet, "/auth/logout", nil, nil)

		require.NoError(t, err)
		assert.False(t, hasAuthorization)
	})

	t.Run("Plain Text Error Carries Server Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("Access denied"))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, time.Second, nil, zap.NewNop())
		err := client.Do(context.Background(), constvars.MethodDelete, "/patient/reminders/1", nil, nil)

		require.Error(t, err)
		message, ok := exceptions.ServerMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "Access denied", message)
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
	})

	t.Run("JSON Error Carries Message Field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Email already exists"}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, time.Second, nil, zap.NewNop())
		err := client.Do(context.Background(), constvars.MethodPost, "/auth/signup", map[string]string{}, nil)

		assert.Equal(t, "Email already exists", exceptions.MessageOrDefault(err, "Failed to create account"))
	})

	t.Run("Empty Error Body Falls Back", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, time.Second, nil, zap.NewNop())
		err := client.Do(context.Background(), constvars.MethodGet, "/admin/users", nil, nil)

		_, ok := exceptions.ServerMessage(err)
		assert.False(t, ok)
		assert.Equal(t, "Failed to load admin records.", exceptions.MessageOrDefault(err, "Failed to load admin records."))
	})

	t.Run("Undecodable Success Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, time.Second, nil, zap.NewNop())
		var out map[string]interface{}
		err := client.Do(context.Background(), constvars.MethodGet, "/patient/dashboard", nil, &out)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCode(err))
	})
}

func TestExtractServerMessage(t *testing.T) {
	assert.Equal(t, "Invalid refill status", extractServerMessage([]byte("Invalid refill status")))
	assert.Equal(t, "boom", extractServerMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "quoted", extractServerMessage([]byte(`"quoted"`)))
	assert.Equal(t, "", extractServerMessage([]byte(`<html>oops</html>`)))
	assert.Equal(t, "", extractServerMessage([]byte(`   `)))

	long := extractServerMessage([]byte(strings.Repeat("a", 301)))
	assert.Len(t, long, maxServerMessageLength)

	split := extractServerMessage([]byte(strings.Repeat("a", 299) + "é and more"))
	assert.True(t, utf8.ValidString(split))
	assert.Equal(t, strings.Repeat("a", 299), split)

	accented := extractServerMessage([]byte(strings.Repeat("é", 200)))
	assert.True(t, utf8.ValidString(accented))
	assert.Equal(t, strings.Repeat("é", 150), accented)
}
