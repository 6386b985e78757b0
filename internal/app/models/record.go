package models

import (
	"fmt"
	"strings"
)

// Record is a loosely typed API record as handled by the admin record
// editor.
type Record map[string]interface{}

// RecordID mirrors how the editor resolves identifiers: a string is
// trimmed, an object contributes its "id" field, anything else is empty.
func RecordID(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case map[string]interface{}:
		return idOf(typed["id"])
	case Record:
		return idOf(typed["id"])
	}
	return ""
}

func idOf(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	// JSON numbers decode as float64
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func (r Record) ID() string {
	return RecordID(map[string]interface{}(r))
}

func (r Record) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func (r Record) Bool(key string) bool {
	value, _ := r[key].(bool)
	return value
}

// Ref returns the nested object stored at key, or nil.
func (r Record) Ref(key string) Record {
	switch typed := r[key].(type) {
	case map[string]interface{}:
		return Record(typed)
	case Record:
		return typed
	}
	return nil
}
