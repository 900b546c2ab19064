package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn    func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	mu     sync.Mutex
	Tasks  map[int64]*domain.Task
	nextID int64

	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = m.nextID
	m.nextID++
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	// Copy so callers cannot mutate stored state without Update
	clone := *task
	return &clone, nil
}

// List implements the TaskStore interface. The default implementation applies
// the filter the same way the SQL store does, with results ordered by ID.
func (m *MockTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Task, 0)
	for id := int64(1); id < m.nextID; id++ {
		task, exists := m.Tasks[id]
		if !exists {
			continue
		}
		if !matchesFilter(task, filter) {
			continue
		}
		clone := *task
		result = append(result, &clone)
	}

	return result, nil
}

func matchesFilter(task *domain.Task, filter store.TaskFilter) bool {
	if filter.Status != nil && task.Status != *filter.Status {
		return false
	}
	if filter.AssigneeID != nil {
		if task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID {
			return false
		}
	}
	if filter.DueBefore != nil {
		if task.DueDate == nil {
			return false
		}
		if !task.DueDate.Before(*filter.DueBefore) && !task.DueDate.Equal(*filter.DueBefore) {
			return false
		}
	}
	if filter.DueOn != nil {
		if task.DueDate == nil || !task.DueDate.Equal(*filter.DueOn) {
			return false
		}
	}
	return true
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	clone := *task
	m.Tasks[task.ID] = &clone
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}
