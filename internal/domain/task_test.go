package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	// Test valid task creation
	description := "Write the release notes"
	dueDate := NewDate(2026, time.September, 15)
	assigneeID := int64(7)

	task, err := NewTask("Release notes", &description, &dueDate, TaskStatusInProgress, 1, &assigneeID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Release notes" {
		t.Errorf("Expected title %q, got %q", "Release notes", task.Title)
	}

	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %s, got %s", TaskStatusInProgress, task.Status)
	}

	if task.CreatorID != 1 {
		t.Errorf("Expected creator ID 1, got %d", task.CreatorID)
	}

	if task.AssigneeID == nil || *task.AssigneeID != assigneeID {
		t.Errorf("Expected assignee ID %d, got %v", assigneeID, task.AssigneeID)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Empty status defaults to todo
	task, err = NewTask("Defaults", nil, nil, "", 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusTodo {
		t.Errorf("Expected default status %s, got %s", TaskStatusTodo, task.Status)
	}

	// Test invalid title
	_, err = NewTask("", nil, nil, TaskStatusTodo, 1, nil)
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	_, err = NewTask(strings.Repeat("x", 256), nil, nil, TaskStatusTodo, 1, nil)
	if err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}

	// Test invalid status
	_, err = NewTask("Task", nil, nil, "blocked", 1, nil)
	if err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	// Test missing creator
	_, err = NewTask("Task", nil, nil, TaskStatusTodo, 0, nil)
	if err != ErrEmptyCreatorID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCreatorID, err)
	}
}

func TestTaskSetStatus(t *testing.T) {
	task, err := NewTask("Task", nil, nil, TaskStatusTodo, 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	before := task.UpdatedAt
	time.Sleep(time.Millisecond)

	if err := task.SetStatus(TaskStatusDone); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status %s, got %s", TaskStatusDone, task.Status)
	}

	if !task.UpdatedAt.After(before) {
		t.Error("Expected UpdatedAt to be refreshed")
	}

	// Invalid status leaves the task untouched
	if err := task.SetStatus("archived"); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status to remain %s, got %s", TaskStatusDone, task.Status)
	}
}

func TestTaskAssignTo(t *testing.T) {
	task, err := NewTask("Task", nil, nil, TaskStatusTodo, 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	before := task.UpdatedAt
	time.Sleep(time.Millisecond)

	task.AssignTo(42)

	if task.AssigneeID == nil || *task.AssigneeID != 42 {
		t.Errorf("Expected assignee ID 42, got %v", task.AssigneeID)
	}

	if !task.UpdatedAt.After(before) {
		t.Error("Expected UpdatedAt to be refreshed")
	}
}

func TestIsValidTaskStatus(t *testing.T) {
	valid := []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
	for _, status := range valid {
		if !IsValidTaskStatus(status) {
			t.Errorf("Expected %s to be valid", status)
		}
	}

	invalid := []TaskStatus{"", "blocked", "TODO", "in-progress"}
	for _, status := range invalid {
		if IsValidTaskStatus(status) {
			t.Errorf("Expected %s to be invalid", status)
		}
	}
}
