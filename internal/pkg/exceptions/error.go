package exceptions

import (
	"errors"
	"fmt"
	"medtrack-portal/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`

	// ServerMessage is the message the MedTrack API returned, if any.
	ServerMessage string `json:"-"`
	Err           error  `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		Err:           err,
	}
}

// ServerMessage returns the message sent by the MedTrack API for err, when
// err came from a non-2xx API response carrying one.
func ServerMessage(err error) (string, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ServerMessage != "" {
		return customErr.ServerMessage, true
	}
	return "", false
}

// MessageOrDefault picks the server supplied message, falling back to the
// given generic text.
func MessageOrDefault(err error, fallback string) string {
	if message, ok := ServerMessage(err); ok {
		return message
	}
	return fallback
}

// ClientMessage returns the user facing message of err.
func ClientMessage(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func StatusCode(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
