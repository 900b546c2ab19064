package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Common validation errors for Task.
var (
	ErrEmptyTaskTitle    = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong  = errors.New("task title must be at most 255 characters")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrEmptyCreatorID    = errors.New("task creator ID cannot be empty")
)

// Task represents a unit of work tracked on the board. Every task has a
// creator; the assignee and due date are optional.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *Date      `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatorID   int64      `json:"creator_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task owned by the given creator. An empty status
// defaults to todo. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewTask(
	title string,
	description *string,
	dueDate *Date,
	status TaskStatus,
	creatorID int64,
	assigneeID *int64,
) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		CreatorID:   creatorID,
		AssigneeID:  assigneeID,
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
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > 255 {
		return ErrTaskTitleTooLong
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	if t.CreatorID <= 0 {
		return ErrEmptyCreatorID
	}

	return nil
}

// SetStatus updates the task's status and refreshes the UpdatedAt timestamp.
// Returns ErrInvalidTaskStatus if the new status is not an allowed value.
func (t *Task) SetStatus(status TaskStatus) error {
	if !IsValidTaskStatus(status) {
		return ErrInvalidTaskStatus
	}

	t.Status = status
	t.Touch()
	return nil
}

// AssignTo sets the task's assignee and refreshes the UpdatedAt timestamp.
// Existence of the assignee is checked by the caller against the user store.
func (t *Task) AssignTo(userID int64) {
	t.AssigneeID = &userID
	t.Touch()
}

// Touch refreshes the UpdatedAt timestamp. Called on every mutation.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// IsValidTaskStatus checks if the given status is an allowed TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}
