package records

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type backendCall struct {
	Op       string
	Kind     string
	RecordID string
	Payload  models.Record
}

type fakeBackend struct {
	mu      sync.Mutex
	records map[string][]models.Record
	calls   []backendCall
	listErr error
	saveErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{records: map[string][]models.Record{
		constvars.RecordKindUsers: {{"id": "u1", "name": "Jane", "email": "jane@example.com", "role": "PATIENT"}},
	}}
}

func (f *fakeBackend) record(call backendCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) mutations() []backendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var calls []backendCall
	for _, call := range f.calls {
		if call.Op != "list" {
			calls = append(calls, call)
		}
	}
	return calls
}

func (f *fakeBackend) ListRecords(ctx context.Context, kind string) ([]models.Record, error) {
	f.record(backendCall{Op: "list", Kind: kind})
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[kind], nil
}

func (f *fakeBackend) CreateRecord(ctx context.Context, kind string, payload models.Record) (models.Record, error) {
	f.record(backendCall{Op: "create", Kind: kind, Payload: payload})
	return payload, f.saveErr
}

func (f *fakeBackend) UpdateRecord(ctx context.Context, kind, recordID string, payload models.Record) (models.Record, error) {
	f.record(backendCall{Op: "update", Kind: kind, RecordID: recordID, Payload: payload})
	return payload, f.saveErr
}

func (f *fakeBackend) DeleteRecord(ctx context.Context, kind, recordID string) error {
	f.record(backendCall{Op: "delete", Kind: kind, RecordID: recordID})
	return f.saveErr
}

func TestEditorLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads Every Kind", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())

		require.NoError(t, editor.Load(ctx))
		assert.True(t, editor.Loaded)
		assert.Len(t, editor.Rows(), 1)
		assert.Len(t, editor.Records, len(Kinds()))
		assert.NotNil(t, editor.Records[constvars.RecordKindNotifications])
	})

	t.Run("Failure Keeps Previous Records", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Load(ctx))

		backend.listErr = exceptions.ErrAPIResponse(500, "", constvars.MethodGet, "/admin/users")
		assert.Error(t, editor.Load(ctx))
		assert.Equal(t, constvars.ErrClientLoadAdminRecords, editor.Error)
		assert.Len(t, editor.Rows(), 1)
	})
}

func TestEditorSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Malformed JSON Leaves Records Untouched", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Load(ctx))
		before := editor.Records

		editor.Draft = `{"name": "Jane",`
		err := editor.Save(ctx)

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidJSON, editor.Error)
		assert.Contains(t, editor.Error, "Invalid JSON")
		assert.Equal(t, before, editor.Records)
		assert.Equal(t, `{"name": "Jane",`, editor.Draft)
		assert.Empty(t, backend.mutations())
	})

	t.Run("Validation Error Blocks Submission", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Select(constvars.RecordKindPrescriptions))

		editor.Draft = `{"patient": {"id": "p1"}, "doctor": {"id": "d1"}}`
		err := editor.Save(ctx)

		require.Error(t, err)
		assert.Equal(t, "Prescription requires at least one medication with name.", editor.Error)
		assert.Empty(t, backend.mutations())
	})

	t.Run("Creates Normalized Payload And Reloads", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())

		editor.Draft = `{"name": " Sam ", "email": " A@B.com ", "role": "pharmacist"}`
		require.NoError(t, editor.Save(ctx))

		mutations := backend.mutations()
		require.Len(t, mutations, 1)
		assert.Equal(t, "create", mutations[0].Op)
		assert.Equal(t, "a@b.com", mutations[0].Payload["email"])
		assert.Equal(t, "PHARMACIST", mutations[0].Payload["role"])
		assert.Equal(t, "User created successfully.", editor.Message)
		assert.Empty(t, editor.EditingID)
		assert.True(t, editor.Loaded)
	})

	t.Run("Updates When Editing", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Load(ctx))
		require.NoError(t, editor.StartEdit("u1"))
		assert.Contains(t, editor.Draft, `"jane@example.com"`)

		require.NoError(t, editor.Save(ctx))

		mutations := backend.mutations()
		require.Len(t, mutations, 1)
		assert.Equal(t, "update", mutations[0].Op)
		assert.Equal(t, "u1", mutations[0].RecordID)
		assert.Equal(t, "User updated successfully.", editor.Message)
	})

	t.Run("API Message Wins Over Generic Text", func(t *testing.T) {
		backend := newFakeBackend()
		backend.saveErr = exceptions.ErrAPIResponse(400, "Email already exists", constvars.MethodPost, "/admin/users")
		editor := NewEditor(backend, zap.NewNop())

		editor.Draft = `{"name": "Jane", "email": "jane@example.com", "role": "PATIENT"}`
		assert.Error(t, editor.Save(ctx))
		assert.Equal(t, "Email already exists", editor.Error)
	})

	t.Run("Generic Save Failure", func(t *testing.T) {
		backend := newFakeBackend()
		backend.saveErr = exceptions.ErrAPIResponse(500, "", constvars.MethodPost, "/admin/dose-logs")
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Select(constvars.RecordKindDoseLogs))

		editor.Draft = `{"patient": "p1", "reminder": "r1", "status": "taken"}`
		assert.Error(t, editor.Save(ctx))
		assert.Equal(t, "Failed to save dose logs.", editor.Error)
	})
}

func TestEditorDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unconfirmed Delete Issues No Call", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())

		err := editor.Delete(ctx, "u1", false)

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientDeleteNotConfirmed, exceptions.ClientMessage(err))
		assert.Empty(t, backend.calls)
	})

	t.Run("Confirmed Delete Resets Matching Draft", func(t *testing.T) {
		backend := newFakeBackend()
		editor := NewEditor(backend, zap.NewNop())
		require.NoError(t, editor.Load(ctx))
		require.NoError(t, editor.StartEdit("u1"))

		require.NoError(t, editor.Delete(ctx, "u1", true))

		mutations := backend.mutations()
		require.Len(t, mutations, 1)
		assert.Equal(t, backendCall{Op: "delete", Kind: constvars.RecordKindUsers, RecordID: "u1"}, mutations[0])
		assert.Empty(t, editor.EditingID)
		assert.Equal(t, "User deleted successfully.", editor.Message)
	})
}

func TestEditorSelect(t *testing.T) {
	editor := NewEditor(newFakeBackend(), zap.NewNop())
	editor.Error = "stale"

	require.NoError(t, editor.Select(constvars.RecordKindInventory))
	assert.Equal(t, "Inventory Item", editor.Active.Singular())
	assert.Contains(t, editor.Draft, `"IN_STOCK"`)
	assert.Empty(t, editor.Error)

	assert.Error(t, editor.Select("nope"))
}
