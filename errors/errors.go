package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// Lookup misses on chats, messages and users.
	ErrNotFound       = fmt.Errorf("not found")
	ErrChatNotFound   = fmt.Errorf("chat %w", ErrNotFound)
	ErrMsgNotFound    = fmt.Errorf("message %w", ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrKeyNotFound    = fmt.Errorf("chat key %w", ErrNotFound)
	ErrDuplicateChat  = fmt.Errorf("chat already exists")
	ErrDecryption     = fmt.Errorf("unable to decrypt message")
	ErrPersistence    = fmt.Errorf("snapshot persistence failed")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrSinkClosed     = fmt.Errorf("sink closed")
)

// ErrorResponse is the structured failure body returned to HTTP callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Is forwards to the standard library so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ToErrorResponse classifies err into a stable error code.
func ToErrorResponse(err error) ErrorResponse {
	code := "internal"
	switch {
	case errors.Is(err, ErrNotFound):
		code = "notFound"
	case errors.Is(err, ErrDuplicateChat):
		code = "duplicateChat"
	case errors.Is(err, ErrInvalidPayload):
		code = "invalidPayload"
	case errors.Is(err, ErrDecryption):
		code = "decryption"
	}
	return ErrorResponse{Error: code, Message: err.Error()}
}

func MapToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateChat):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
