package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/taskhive/task-api/internal/domain"
	"github.com/taskhive/task-api/internal/store"
)

// CreateTaskInput carries the fields accepted when creating a task.
// An empty Status defaults to pending.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput carries a partial update. Only non-nil fields are applied;
// absent fields leave the persisted value untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService provides task-related operations. It is the sole writer of
// cache invalidation triggers: every successful mutation invalidates the
// cached listing exactly once.
type TaskService interface {
	// Create validates and persists a new task, then invalidates the
	// cached listing. Returns ErrValidation for rejected input.
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)

	// Get retrieves a task by ID. Returns ErrInvalidID for malformed IDs
	// (checked before any store access) and ErrTaskNotFound for unknown
	// ones. This path never touches the listing cache.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// List returns the serialized task listing, newest first. A cache hit
	// is returned verbatim without touching the store; a cache failure
	// degrades to a direct store read.
	List(ctx context.Context) ([]byte, error)

	// Update applies a partial update to an existing task, refreshes its
	// UpdatedAt timestamp and invalidates the cached listing.
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)

	// Delete removes a task permanently and invalidates the cached
	// listing. The ID is invalid for all operations afterwards.
	Delete(ctx context.Context, id string) error
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Service-defined sentinels pass through untouched
	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrInvalidID) || errors.Is(err, ErrValidation) {
		return err
	}

	// Store-level sentinels map to service-level ones
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	cache     store.ListingCache
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	cache store.ListingCache,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if cache == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "cache cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		cache:     cache,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// Create validates the input, persists the task and invalidates the cached
// listing. Validation failures are reported before anything is written.
func (s *taskServiceImpl) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title := domain.NormalizeText(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required and cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title cannot exceed %d characters", ErrValidation, domain.MaxTitleLength)
	}

	status := domain.TaskStatus(input.Status)
	if input.Status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: status must be %q or %q",
			ErrValidation, domain.TaskStatusPending, domain.TaskStatusCompleted)
	}

	task, err := domain.NewTask(title, input.Description, status)
	if err != nil {
		s.logger.Warn("failed to construct task", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"status", task.Status)

	// Invalidation is idempotent and cheap, so it runs even when nothing
	// was cached yet.
	s.invalidateListing(ctx)

	return task, nil
}

// Get retrieves a task by its ID.
func (s *taskServiceImpl) Get(ctx context.Context, id string) (*domain.Task, error) {
	taskID, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// List returns the serialized listing, consulting the cache first. A cache
// hit is returned verbatim. A cache-layer failure never fails the request:
// the service reads from the store and skips caching for that response.
func (s *taskServiceImpl) List(ctx context.Context) ([]byte, error) {
	payload, hit, cacheErr := s.cache.Get(ctx)
	if cacheErr != nil {
		s.logger.Warn("listing cache unavailable, falling back to store",
			"error", cacheErr)
	}
	if hit {
		s.logger.Debug("serving listing from cache", "bytes", len(payload))
		return payload, nil
	}

	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	payload, err = json.Marshal(tasks)
	if err != nil {
		s.logger.Error("failed to serialize task listing", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to serialize listing", err)
	}

	// Skip caching while the cache backend is failing; the response is
	// already served from the store.
	if cacheErr == nil {
		if err := s.cache.Set(ctx, payload); err != nil {
			s.logger.Warn("failed to cache task listing", "error", err)
		}
	}

	return payload, nil
}

// Update applies a partial update. The status, if present, must be valid or
// the task is left unmodified. Title and description are trimmed; an empty
// title after trimming is accepted on update.
func (s *taskServiceImpl) Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error) {
	taskID, err := parseTaskID(id)
	if err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for update", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to retrieve task for update",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("update_task", "failed to retrieve task", err)
	}

	// Validate before applying anything so a rejected update leaves the
	// task untouched.
	if input.Status != nil && !domain.TaskStatus(*input.Status).IsValid() {
		return nil, fmt.Errorf("%w: status must be %q or %q",
			ErrValidation, domain.TaskStatusPending, domain.TaskStatusCompleted)
	}

	if input.Title != nil {
		task.Title = domain.NormalizeText(*input.Title)
	}
	if input.Description != nil {
		task.Description = domain.NormalizeText(*input.Description)
	}
	if input.Status != nil {
		task.Status = domain.TaskStatus(*input.Status)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			// Deleted between the read and the write
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID)
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}

	s.logger.Info("task updated successfully",
		"task_id", taskID,
		"status", task.Status)

	s.invalidateListing(ctx)

	return task, nil
}

// Delete removes a task permanently.
func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	taskID, err := parseTaskID(id)
	if err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for delete", "task_id", taskID)
			return ErrTaskNotFound
		}
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted successfully", "task_id", taskID)

	s.invalidateListing(ctx)

	return nil
}

// invalidateListing drops the cached listing after a mutation. Failures are
// logged and swallowed: staleness is bounded by the cache TTL regardless,
// and the primary operation has already committed.
func (s *taskServiceImpl) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate listing cache", "error", err)
	}
}

// parseTaskID validates the identifier syntax before any store access.
func parseTaskID(id string) (uuid.UUID, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return taskID, nil
}
