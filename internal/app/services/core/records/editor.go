package records

import (
	"context"
	"fmt"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Editor is the state of one control center view: the loaded records of
// every kind, the active tab, the JSON draft and the feedback banners.
type Editor struct {
	Backend contracts.RecordBackend
	Log     *zap.Logger

	Active    Kind
	Records   map[string][]models.Record
	Draft     string
	EditingID string
	Message   string
	Error     string
	Loaded    bool
}

func NewEditor(backend contracts.RecordBackend, logger *zap.Logger) *Editor {
	editor := &Editor{
		Backend: backend,
		Log:     logger,
		Active:  usersKind,
		Records: emptyRecords(),
	}
	editor.Draft = renderDraft(editor.Active.Template())
	return editor
}

func emptyRecords() map[string][]models.Record {
	records := make(map[string][]models.Record, len(registry))
	for _, kind := range registry {
		records[kind.Key()] = []models.Record{}
	}
	return records
}

func renderDraft(payload Payload) string {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Select switches the active tab and resets the draft and the banners.
func (e *Editor) Select(key string) error {
	kind, err := Lookup(key)
	if err != nil {
		return err
	}
	e.Active = kind
	e.EditingID = ""
	e.Draft = renderDraft(kind.Template())
	e.Message = ""
	e.Error = ""
	return nil
}

// Rows returns the loaded records of the active tab.
func (e *Editor) Rows() []models.Record {
	return e.Records[e.Active.Key()]
}

// Load fetches every kind in parallel. The record set is replaced only when
// all fetches succeed.
func (e *Editor) Load(ctx context.Context) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	e.Log.Info("recordEditor.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fetched := make([][]models.Record, len(registry))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range registry {
		i, kind := i, kind
		g.Go(func() error {
			records, err := e.Backend.ListRecords(gctx, kind.Key())
			if err != nil {
				return err
			}
			fetched[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.Log.Error("recordEditor.Load error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		e.Error = constvars.ErrClientLoadAdminRecords
		return err
	}

	records := make(map[string][]models.Record, len(registry))
	for i, kind := range registry {
		if fetched[i] == nil {
			fetched[i] = []models.Record{}
		}
		records[kind.Key()] = fetched[i]
	}
	e.Records = records
	e.Loaded = true
	e.Error = ""
	return nil
}

// StartCreate puts the active kind's template in the draft.
func (e *Editor) StartCreate() {
	e.resetDraft()
	e.Message = ""
	e.Error = ""
}

func (e *Editor) resetDraft() {
	e.EditingID = ""
	e.Draft = renderDraft(e.Active.Template())
}

// StartEdit loads the editable projection of a loaded record into the
// draft.
func (e *Editor) StartEdit(recordID string) error {
	for _, record := range e.Rows() {
		if record.ID() == recordID {
			e.EditingID = recordID
			e.Draft = renderDraft(e.Active.ToEditable(record))
			e.Message = ""
			e.Error = ""
			return nil
		}
	}
	return exceptions.ErrRecordValidation(fmt.Sprintf("%s %s was not found.", e.Active.Singular(), recordID))
}

// ParseDraft decodes the draft into a JSON object.
func ParseDraft(draft string) (Payload, error) {
	var payload Payload
	err := json.Unmarshal([]byte(draft), &payload)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if payload == nil {
		return nil, exceptions.ErrCannotParseJSON(fmt.Errorf("draft is not a JSON object"))
	}
	return payload, nil
}

// Save parses, normalizes and validates the draft, then creates or updates
// depending on EditingID and reloads every kind. Nothing is sent and no
// state besides the error banner changes when parsing or validation fails.
func (e *Editor) Save(ctx context.Context) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	kind := e.Active
	e.Log.Info("recordEditor.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordKindKey, kind.Key()),
		zap.String(constvars.LoggingRecordIDKey, e.EditingID),
	)

	e.Message = ""
	e.Error = ""

	payload, err := ParseDraft(e.Draft)
	if err != nil {
		e.Error = constvars.ErrClientInvalidJSON
		return err
	}

	payload = kind.Normalize(payload)
	if message := kind.Validate(payload); message != "" {
		e.Error = message
		return exceptions.ErrRecordValidation(message)
	}

	editingID := e.EditingID
	if editingID != "" {
		_, err = e.Backend.UpdateRecord(ctx, kind.Key(), editingID, models.Record(payload))
	} else {
		_, err = e.Backend.CreateRecord(ctx, kind.Key(), models.Record(payload))
	}
	if err != nil {
		e.Log.Error("recordEditor.Save error from API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordKindKey, kind.Key()),
			zap.Error(err),
		)
		e.Error = exceptions.MessageOrDefault(err, fmt.Sprintf(constvars.ErrClientSaveRecordFormat, strings.ToLower(kind.Label())))
		return err
	}

	e.resetDraft()
	loadErr := e.Load(ctx)
	if editingID != "" {
		e.Message = fmt.Sprintf(constvars.RecordUpdatedMessageFormat, kind.Singular())
	} else {
		e.Message = fmt.Sprintf(constvars.RecordCreatedMessageFormat, kind.Singular())
	}

	e.Log.Info("recordEditor.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordKindKey, kind.Key()),
	)
	return loadErr
}

// Delete removes a record of the active kind. Without confirmation it
// returns ErrDeleteNotConfirmed and touches neither the backend nor the
// editor state.
func (e *Editor) Delete(ctx context.Context, recordID string, confirmed bool) error {
	if !confirmed {
		return exceptions.ErrDeleteNotConfirmed()
	}

	requestID := utils.GetRequestIDFromContext(ctx)
	kind := e.Active
	e.Log.Info("recordEditor.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordKindKey, kind.Key()),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	e.Message = ""
	e.Error = ""

	err := e.Backend.DeleteRecord(ctx, kind.Key(), recordID)
	if err != nil {
		e.Log.Error("recordEditor.Delete error from API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		e.Error = exceptions.MessageOrDefault(err, fmt.Sprintf(constvars.ErrClientDeleteRecordFormat, strings.ToLower(kind.Label())))
		return err
	}

	if e.EditingID == recordID {
		e.resetDraft()
	}
	loadErr := e.Load(ctx)
	e.Message = fmt.Sprintf(constvars.RecordDeletedMessageFormat, kind.Singular())
	return loadErr
}
