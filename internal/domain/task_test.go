package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("  Buy milk  ", "  2% if they have it  ", "")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected trimmed title %q, got %q", "Buy milk", task.Title)
	}

	if task.Description != "2% if they have it" {
		t.Errorf("Expected trimmed description, got %q", task.Description)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected default status %s, got %s", TaskStatusPending, task.Status)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	if task.UpdatedAt.Before(task.CreatedAt) {
		t.Error("Expected UpdatedAt >= CreatedAt")
	}

	// Explicit status is kept
	task, err = NewTask("Ship release", "", TaskStatusCompleted)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s", TaskStatusCompleted, task.Status)
	}

	// Whitespace-only title
	_, err = NewTask("   ", "", "")
	if err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	// Title over the length limit
	_, err = NewTask(strings.Repeat("a", MaxTitleLength+1), "", "")
	if err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}

	// Title exactly at the limit is accepted
	_, err = NewTask(strings.Repeat("a", MaxTitleLength), "", "")
	if err != nil {
		t.Errorf("Expected no error for title at the limit, got %v", err)
	}

	// Invalid status
	_, err = NewTask("Buy milk", "", "done")
	if err != ErrTaskStatusInvalid {
		t.Errorf("Expected error %v, got %v", ErrTaskStatusInvalid, err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	validTask := Task{
		ID:     uuid.New(),
		Title:  "Test task",
		Status: TaskStatusPending,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrTaskIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskIDEmpty, err)
	}

	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	invalidTask = validTask
	invalidTask.Status = "archived"
	if err := invalidTask.Validate(); err != ErrTaskStatusInvalid {
		t.Errorf("Expected error %v, got %v", ErrTaskStatusInvalid, err)
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskStatusPending, true},
		{TaskStatusCompleted, true},
		{"done", false},
		{"Pending", false}, // case-sensitive
		{"COMPLETED", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := tc.status.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  Buy milk  ", "Buy milk"},
		{"no change", "no change"},
		{"keeps  internal   spaces", "keeps  internal   spaces"},
		{"\t\ntabs and newlines\t\n", "tabs and newlines"},
		{"héllo wörld ", "héllo wörld"},
		{" <b>markup</b> ", "<b>markup</b>"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := NormalizeText(tc.in); got != tc.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
