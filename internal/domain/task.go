package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// MaxTitleLength is the maximum number of characters allowed in a task
// title after trimming.
const MaxTitleLength = 255

// Common validation errors for Task.
var (
	ErrTaskIDEmpty       = errors.New("task ID cannot be empty")
	ErrTaskTitleEmpty    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title exceeds maximum length")
	ErrTaskStatusInvalid = errors.New("invalid task status")
)

// Task represents a single unit of work tracked by the service.
// JSON tags define the wire shape used both for single-task responses
// and for the cached listing payload.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTask creates a new Task with the given title, description and status.
// Title and description are normalized by trimming surrounding whitespace.
// An empty status defaults to pending. It generates a new UUID for the task
// ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       NormalizeText(title),
		Description: NormalizeText(description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if !t.Status.IsValid() {
		return ErrTaskStatusInvalid
	}

	return nil
}

// IsValid reports whether the status is one of the allowed values.
// The comparison is case-sensitive; no normalization is applied.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// NormalizeText trims leading and trailing whitespace. Internal whitespace,
// control characters, multi-byte characters and embedded markup are
// preserved verbatim; escaping is a concern of the HTTP boundary.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}
