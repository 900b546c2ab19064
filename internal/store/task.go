package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskFilter describes the optional predicates for listing tasks.
// All supplied predicates are combined with AND; a zero filter matches
// every task. DueBefore matches tasks whose due date is on or before the
// given date; tasks without a due date never match it. DueOn matches tasks
// due exactly on the given date.
type TaskFilter struct {
	Status     *domain.TaskStatus
	AssigneeID *int64
	DueBefore  *domain.Date
	DueOn      *domain.Date
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and sets the generated ID on the
	// given task. Returns ErrInvalidEntity if a referenced user does not
	// exist (foreign key violation).
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves all tasks matching the filter, in storage return order.
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns ErrInvalidEntity if a referenced user does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}
