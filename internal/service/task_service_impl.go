package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// taskService is the default TaskService implementation. It owns the
// database handle and runs each mutating operation through
// store.RunInTransaction with transaction-bound stores.
type taskService struct {
	db        *sql.DB
	taskStore store.TaskStore
	userStore store.UserStore
	logger    *slog.Logger
}

// Ensure taskService implements TaskService interface
var _ TaskService = (*taskService)(nil)

// NewTaskService creates a new TaskService with the given dependencies.
// If logger is nil, the default logger is used.
func NewTaskService(
	db *sql.DB,
	taskStore store.TaskStore,
	userStore store.UserStore,
	log *slog.Logger,
) TaskService {
	if db == nil || taskStore == nil || userStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependencies
		panic("db, taskStore, and userStore are required for TaskService")
	}

	if log == nil {
		log = slog.Default()
	}

	return &taskService{
		db:        db,
		taskStore: taskStore,
		userStore: userStore,
		logger:    log.With(slog.String("component", "task_service")),
	}
}

// CreateTask implements TaskService.CreateTask
func (s *taskService) CreateTask(
	ctx context.Context,
	creatorID int64,
	input CreateTaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(
		input.Title,
		input.Description,
		input.DueDate,
		input.Status,
		creatorID,
		input.AssigneeID,
	)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskService) ListTasks(
	ctx context.Context,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	return s.taskStore.List(ctx, filter)
}

// GetTask implements TaskService.GetTask
func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// UpdateTask implements TaskService.UpdateTask
// Only the supplied fields are applied: omitted fields stay untouched and an
// explicitly supplied null clears the clearable fields. The updated timestamp
// is refreshed on every successful update.
func (s *taskService) UpdateTask(
	ctx context.Context,
	id int64,
	input UpdateTaskInput,
) (*domain.Task, error) {
	var updated *domain.Task

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Status != nil {
			if err := task.SetStatus(*input.Status); err != nil {
				return err
			}
		}
		if input.DescriptionSet {
			task.Description = input.Description
		}
		if input.DueDateSet {
			task.DueDate = input.DueDate
		}
		if input.AssigneeIDSet {
			task.AssigneeID = input.AssigneeID
		}

		task.Touch()
		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Delete(ctx, id)
	})
}

// AssignTask implements TaskService.AssignTask
// The task and the assignee are both checked for existence inside the same
// transaction before the assignment is written.
func (s *taskService) AssignTask(ctx context.Context, id, assigneeID int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		userStore := s.userStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := userStore.GetByID(ctx, assigneeID); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("assignee not found",
					slog.Int64("task_id", id),
					slog.Int64("assignee_id", assigneeID))
				return ErrAssigneeNotFound
			}
			return err
		}

		task.AssignTo(assigneeID)
		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus
// The status value is checked before the task is looked up, so an invalid
// value never touches the row.
func (s *taskService) UpdateTaskStatus(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if !domain.IsValidTaskStatus(status) {
		return nil, domain.ErrInvalidTaskStatus
	}

	var updated *domain.Task

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := task.SetStatus(status); err != nil {
			return err
		}
		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListTasksDueToday implements TaskService.ListTasksDueToday
func (s *taskService) ListTasksDueToday(ctx context.Context) ([]*domain.Task, error) {
	today := domain.Today()
	return s.taskStore.List(ctx, store.TaskFilter{DueOn: &today})
}
