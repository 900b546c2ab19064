package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskService implements service.TaskService for testing handlers
// without a database. Each method delegates to the matching function field;
// unset fields return the zero values.
type MockTaskService struct {
	CreateTaskFn        func(ctx context.Context, creatorID int64, input service.CreateTaskInput) (*domain.Task, error)
	ListTasksFn         func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)
	GetTaskFn           func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTaskFn        func(ctx context.Context, id int64, input service.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFn        func(ctx context.Context, id int64) error
	AssignTaskFn        func(ctx context.Context, id, assigneeID int64) (*domain.Task, error)
	UpdateTaskStatusFn  func(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)
	ListTasksDueTodayFn func(ctx context.Context) ([]*domain.Task, error)
}

// CreateTask implements the service.TaskService interface
func (m *MockTaskService) CreateTask(ctx context.Context, creatorID int64, input service.CreateTaskInput) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, creatorID, input)
	}
	return nil, nil
}

// ListTasks implements the service.TaskService interface
func (m *MockTaskService) ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, filter)
	}
	return []*domain.Task{}, nil
}

// GetTask implements the service.TaskService interface
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// UpdateTask implements the service.TaskService interface
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, input service.UpdateTaskInput) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, input)
	}
	return nil, store.ErrTaskNotFound
}

// DeleteTask implements the service.TaskService interface
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return store.ErrTaskNotFound
}

// AssignTask implements the service.TaskService interface
func (m *MockTaskService) AssignTask(ctx context.Context, id, assigneeID int64) (*domain.Task, error) {
	if m.AssignTaskFn != nil {
		return m.AssignTaskFn(ctx, id, assigneeID)
	}
	return nil, store.ErrTaskNotFound
}

// UpdateTaskStatus implements the service.TaskService interface
func (m *MockTaskService) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
	if m.UpdateTaskStatusFn != nil {
		return m.UpdateTaskStatusFn(ctx, id, status)
	}
	return nil, store.ErrTaskNotFound
}

// ListTasksDueToday implements the service.TaskService interface
func (m *MockTaskService) ListTasksDueToday(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksDueTodayFn != nil {
		return m.ListTasksDueTodayFn(ctx)
	}
	return []*domain.Task{}, nil
}
