package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Invalid is a 400 that carries per-field details for the client.
func Invalid(message string, details any, err error) *AppError {
	e := New(http.StatusBadRequest, message, err)
	e.Details = details
	return e
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal hides err from the client; message is what the caller sees.
func Internal(message string, err error) *AppError {
	if message == "" {
		message = "Internal Server Error"
	}
	return New(http.StatusInternalServerError, message, err)
}
