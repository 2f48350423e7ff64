package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskhive/task-api/internal/service"
	"github.com/taskhive/task-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"task not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"invalid id", service.ErrInvalidID, http.StatusBadRequest},
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: title is required", service.ErrValidation), http.StatusBadRequest},
		{"constraint violation", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task not found", GetSafeErrorMessage(service.ErrTaskNotFound))
	assert.Equal(t, "Invalid task ID format", GetSafeErrorMessage(service.ErrInvalidID))
	assert.Equal(t, "Validation error", GetSafeErrorMessage(service.ErrValidation))
	assert.Equal(t, "Invalid task data", GetSafeErrorMessage(store.ErrInvalidEntity))

	// Internal details must never leak
	leaky := errors.New("pq: connection to 10.0.0.5 refused")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'CreateTaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag")
	assert.Equal(t, "Invalid Title: required field", SanitizeValidationError(err))

	err = errors.New(
		"Key: 'CreateTaskRequest.Status' Error:Field validation for 'Status' failed on the 'oneof' tag")
	assert.Equal(t, "Invalid Status: invalid value", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
