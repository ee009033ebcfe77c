package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"talent-hub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperror.BadRequest("bad").Code)
	assert.Equal(t, http.StatusNotFound, apperror.NotFound("Job not found").Code)
	assert.Equal(t, "Job not found", apperror.NotFound("Job not found").Error())

	invalid := apperror.Invalid("Invalid job data", []string{"name: required"}, nil)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
	assert.Equal(t, []string{"name: required"}, invalid.Details)
}

func TestInternal(t *testing.T) {
	cause := errors.New("boom")

	err := apperror.Internal("", cause)
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "Failed to fetch jobs", apperror.Internal("Failed to fetch jobs", cause).Message)
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = apperror.NotFound("Candidate not found")

	var appErr *apperror.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
