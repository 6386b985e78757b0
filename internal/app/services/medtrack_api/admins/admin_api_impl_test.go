package admins

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiCall struct {
	Method string
	Path   string
	Body   interface{}
}

type fakeAPI struct {
	calls    []apiCall
	response string
}

func (f *fakeAPI) Do(ctx context.Context, method, path string, body, out interface{}) error {
	f.calls = append(f.calls, apiCall{Method: method, Path: path, Body: body})
	if out != nil && f.response != "" {
		return json.Unmarshal([]byte(f.response), out)
	}
	return nil
}

func TestAdminAPIClientRecordPaths(t *testing.T) {
	tests := []struct {
		kind string
		path string
	}{
		{constvars.RecordKindUsers, "/admin/users"},
		{constvars.RecordKindPrescriptions, "/admin/prescriptions"},
		{constvars.RecordKindReminders, "/admin/reminders"},
		{constvars.RecordKindInventory, "/admin/inventory"},
		{constvars.RecordKindRefills, "/admin/refill-requests"},
		{constvars.RecordKindDoseLogs, "/admin/dose-logs"},
		{constvars.RecordKindNotifications, "/admin/notifications"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			api := &fakeAPI{response: `[{"id":"1"}]`}
			client := NewAdminAPIClient(api, zap.NewNop())

			records, err := client.ListRecords(context.Background(), tt.kind)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "1", records[0].ID())

			require.NoError(t, client.DeleteRecord(context.Background(), tt.kind, "1"))

			require.Len(t, api.calls, 2)
			assert.Equal(t, apiCall{Method: constvars.MethodGet, Path: tt.path}, api.calls[0])
			assert.Equal(t, apiCall{Method: constvars.MethodDelete, Path: tt.path + "/1"}, api.calls[1])
		})
	}
}

func TestAdminAPIClientSaveRecord(t *testing.T) {
	api := &fakeAPI{response: `{"id":"n1","title":"Hello"}`}
	client := NewAdminAPIClient(api, zap.NewNop())
	payload := models.Record{"title": "Hello"}

	created, err := client.CreateRecord(context.Background(), constvars.RecordKindNotifications, payload)
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID())

	_, err = client.UpdateRecord(context.Background(), constvars.RecordKindNotifications, "n1", payload)
	require.NoError(t, err)

	assert.Equal(t, constvars.MethodPost, api.calls[0].Method)
	assert.Equal(t, "/admin/notifications", api.calls[0].Path)
	assert.Equal(t, constvars.MethodPut, api.calls[1].Method)
	assert.Equal(t, "/admin/notifications/n1", api.calls[1].Path)
	assert.Equal(t, payload, api.calls[1].Body)
}

func TestAdminAPIClientUnknownKind(t *testing.T) {
	api := &fakeAPI{}
	client := NewAdminAPIClient(api, zap.NewNop())

	_, err := client.ListRecords(context.Background(), "appointments")

	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientUnknownRecordKind, exceptions.ClientMessage(err))
	assert.Empty(t, api.calls)
}

func TestAdminAPIClientGetUsersByRole(t *testing.T) {
	api := &fakeAPI{response: `[{"id":"u1","email":"doc@example.com","role":"DOCTOR"}]`}
	client := NewAdminAPIClient(api, zap.NewNop())

	users, err := client.GetUsersByRole(context.Background(), models.RoleDoctor)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleDoctor, users[0].Role)
	assert.Equal(t, "/admin/users?role=DOCTOR", api.calls[0].Path)
}
