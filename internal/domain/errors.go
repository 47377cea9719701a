package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUpstreamUnavailable reports a non-2xx or failed call to the Places API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedPlace reports a place payload that is not a JSON object with an id.
	ErrMalformedPlace = errors.New("malformed place record")
	// ErrEmptyPlaceID reports a blank id inside a lookup.
	ErrEmptyPlaceID = errors.New("place id is empty")
)

// UpstreamError carries the status of a failed upstream call. StatusCode is 0
// for transport failures.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Err}
}

// Error codes returned to API consumers.
const (
	CodeBadRequest    = "C001"
	CodePhotoFetch    = "C007"
	CodeWarmupEnqueue = "C008"
	CodeInsights      = "C009"
)

// AppError is the JSON body of every failed cache endpoint.
type AppError struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode}
}

func NewBadRequest(message string) *AppError {
	return NewAppError(CodeBadRequest, message, http.StatusBadRequest)
}
