package records

import (
	"fmt"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"strings"
	"time"
)

// Payload is an editable JSON object, as typed into the editor.
type Payload map[string]interface{}

// Kind describes one tab of the control center.
type Kind interface {
	Key() string
	Label() string
	Singular() string
	Hint() string
	Template() Payload
	ToEditable(record models.Record) Payload
	Normalize(payload Payload) Payload
	Validate(payload Payload) string
	Summary(record models.Record) string
	Details(record models.Record) string
}

type kindConfig struct {
	key        string
	label      string
	singular   string
	hint       string
	template   func() Payload
	toEditable func(models.Record) Payload
	normalize  func(Payload) Payload
	validate   func(Payload) string
	summary    func(models.Record) string
	details    func(models.Record) string
}

func (k *kindConfig) Key() string      { return k.key }
func (k *kindConfig) Label() string    { return k.label }
func (k *kindConfig) Singular() string { return k.singular }
func (k *kindConfig) Hint() string     { return k.hint }

func (k *kindConfig) Template() Payload {
	return k.template()
}

func (k *kindConfig) ToEditable(record models.Record) Payload {
	return k.toEditable(record)
}

// Normalize works on a shallow copy; payload is left untouched.
func (k *kindConfig) Normalize(payload Payload) Payload {
	normalized := make(Payload, len(payload))
	for key, value := range payload {
		normalized[key] = value
	}
	return k.normalize(normalized)
}

func (k *kindConfig) Validate(payload Payload) string {
	return k.validate(payload)
}

func (k *kindConfig) Summary(record models.Record) string {
	return k.summary(record)
}

func (k *kindConfig) Details(record models.Record) string {
	return k.details(record)
}

// Kinds returns every record kind in tab order.
func Kinds() []Kind {
	return registry
}

func Lookup(key string) (Kind, error) {
	for _, kind := range registry {
		if kind.Key() == key {
			return kind, nil
		}
	}
	return nil, exceptions.ErrUnknownRecordKind(key)
}

func trimField(payload Payload, key string) {
	if value, ok := payload[key].(string); ok {
		payload[key] = strings.TrimSpace(value)
	}
}

func upperField(payload Payload, key string) {
	if value, ok := payload[key].(string); ok {
		payload[key] = strings.ToUpper(strings.TrimSpace(value))
	}
}

// resolveID reads an id from either the nested object at key or the flat
// <key>Id field.
func resolveID(payload Payload, key string) string {
	if id := models.RecordID(asMap(payload[key])); id != "" {
		return id
	}
	return models.RecordID(asMap(payload[key+"Id"]))
}

// coerceRef replaces key with {"id": ...}.
func coerceRef(payload Payload, key string) {
	payload[key] = map[string]interface{}{"id": resolveID(payload, key)}
}

func asMap(value interface{}) interface{} {
	if payload, ok := value.(Payload); ok {
		return map[string]interface{}(payload)
	}
	return value
}

func refID(payload Payload, key string) string {
	return models.RecordID(asMap(payload[key]))
}

// isBlank follows JSON truthiness: null, false, 0 and "" are blank.
func isBlank(value interface{}) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case float64:
		return typed == 0
	case int:
		return typed == 0
	}
	return false
}

func isBlankText(value interface{}) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text) == ""
	}
	return isBlank(value)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func orNil(record models.Record, key string) interface{} {
	if isBlank(record[key]) {
		return nil
	}
	return record[key]
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func refEditable(record models.Record, key string) map[string]interface{} {
	return map[string]interface{}{"id": record.Ref(key).String("id")}
}

func numberOrZero(record models.Record, key string) interface{} {
	if value, ok := record[key]; ok && value != nil {
		return value
	}
	return 0
}

// FormatDateTime renders an API timestamp for listings, N/A when absent or
// unparsable.
func FormatDateTime(value string) string {
	if value == "" {
		return "N/A"
	}
	parsed, err := utils.ParseAPITime(value, time.Local)
	if err != nil {
		return "N/A"
	}
	return parsed.Format("2006-01-02 15:04")
}

// UpdatedAt is the timestamp shown next to a record in listings.
func UpdatedAt(record models.Record) string {
	return FormatDateTime(orDefault(record.String("updatedAt"), record.String("createdAt")))
}

func medicationNames(record models.Record) string {
	medications, _ := record["medications"].([]interface{})
	names := make([]string, 0, len(medications))
	for _, medication := range medications {
		entry, ok := medication.(map[string]interface{})
		if !ok {
			continue
		}
		if name := models.Record(entry).String("name"); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func joinTimes(record models.Record) string {
	times, _ := record["times"].([]interface{})
	values := make([]string, 0, len(times))
	for _, value := range times {
		values = append(values, fmt.Sprint(value))
	}
	return strings.Join(values, ", ")
}
