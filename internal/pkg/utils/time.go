package utils

import (
	"errors"
	"time"
)

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var errUnrecognizedTime = errors.New("unrecognized time format")

// ParseAPITime parses the timestamps the API emits. Values without a zone
// are read in loc.
func ParseAPITime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errUnrecognizedTime
}
