package service

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// CreateTaskInput carries the fields for creating a task. Status defaults to
// todo when empty.
type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *domain.Date
	Status      domain.TaskStatus
	AssigneeID  *int64
}

// UpdateTaskInput carries a partial update. A nil Title or Status leaves the
// field untouched. For the clearable fields, the Set flag distinguishes an
// explicitly supplied null (Set true, value nil → clear) from an omitted
// field (Set false → leave untouched).
type UpdateTaskInput struct {
	Title          *string
	Status         *domain.TaskStatus
	Description    *string
	DescriptionSet bool
	DueDate        *domain.Date
	DueDateSet     bool
	AssigneeID     *int64
	AssigneeIDSet  bool
}

// TaskService defines the application operations over tasks. Each mutating
// operation runs in a single transaction: fetch, mutate, commit, with a
// rollback on any failure.
type TaskService interface {
	// CreateTask creates a task owned by the given creator.
	// Returns store.ErrInvalidEntity if a referenced user does not exist.
	CreateTask(ctx context.Context, creatorID int64, input CreateTaskInput) (*domain.Task, error)

	// ListTasks returns all tasks matching the conjunction of the supplied filters.
	ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)

	// GetTask returns the task or store.ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask applies a partial update to the task.
	// Returns store.ErrTaskNotFound if the task does not exist and
	// domain validation errors for invalid field values.
	UpdateTask(ctx context.Context, id int64, input UpdateTaskInput) (*domain.Task, error)

	// DeleteTask permanently removes the task.
	// Returns store.ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// AssignTask sets the task's assignee after verifying both exist.
	// Returns store.ErrTaskNotFound or ErrAssigneeNotFound.
	AssignTask(ctx context.Context, id, assigneeID int64) (*domain.Task, error)

	// UpdateTaskStatus sets the task's status.
	// Returns domain.ErrInvalidTaskStatus for a value outside the allowed
	// set and store.ErrTaskNotFound if the task does not exist.
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)

	// ListTasksDueToday returns tasks whose due date equals the current UTC date.
	ListTasksDueToday(ctx context.Context) ([]*domain.Task, error)
}
