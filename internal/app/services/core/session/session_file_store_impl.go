package session

import (
	"context"
	"errors"
	"io/fs"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

type fileSessionStore struct {
	Path string
}

// NewFileSessionStore keeps the single CLI session in
// <homePath>/session.json. The session id is ignored.
func NewFileSessionStore(homePath string) contracts.SessionStore {
	return &fileSessionStore{
		Path: filepath.Join(homePath, constvars.CLISessionFileName),
	}
}

func (s *fileSessionStore) Save(ctx context.Context, session *models.Session) error {
	document := map[string]interface{}{
		constvars.SessionStorageTokenKey: session.Token,
		constvars.SessionStorageUserKey:  session.User,
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = os.MkdirAll(filepath.Dir(s.Path), 0o700)
	if err != nil {
		return exceptions.ErrSessionFileWrite(err, s.Path)
	}

	err = os.WriteFile(s.Path, data, 0o600)
	if err != nil {
		return exceptions.ErrSessionFileWrite(err, s.Path)
	}
	return nil
}

func (s *fileSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, exceptions.ErrSessionNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrSessionFileRead(err, s.Path)
	}

	var document struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	err = json.Unmarshal(data, &document)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if document.Token == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	return &models.Session{
		Token: document.Token,
		User:  document.User,
	}, nil
}

func (s *fileSessionStore) Delete(ctx context.Context, sessionID string) error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exceptions.ErrSessionFileWrite(err, s.Path)
	}
	return nil
}
