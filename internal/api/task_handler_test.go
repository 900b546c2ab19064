package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// newTaskRouter mounts a TaskHandler on the task routes and injects the
// given user ID into every request context, standing in for the auth
// middleware.
func newTaskRouter(svc service.TaskService, userID int64) http.Handler {
	h := NewTaskHandler(svc, nil)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Get("/due/today", h.ListDueToday)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Post("/{id}/assign", h.AssignTask)
		r.Post("/{id}/status", h.UpdateStatus)
	})

	return r
}

// sampleTask builds a persisted-looking task for mock returns.
func sampleTask(id int64) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        id,
		Title:     "Sample task",
		Status:    domain.TaskStatusTodo,
		CreatorID: 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("creates task with creator from context", func(t *testing.T) {
		var gotCreatorID int64
		svc := &mocks.MockTaskService{
			CreateTaskFn: func(ctx context.Context, creatorID int64, input service.CreateTaskInput) (*domain.Task, error) {
				gotCreatorID = creatorID
				task := sampleTask(5)
				task.Title = input.Title
				task.CreatorID = creatorID
				return task, nil
			},
		}
		router := newTaskRouter(svc, 42)

		w := doRequest(t, router, http.MethodPost, "/tasks/", CreateTaskRequest{Title: "New task"})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(42), gotCreatorID)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "New task", resp.Title)
		assert.Equal(t, int64(42), resp.CreatorID)
	})

	t.Run("returns 400 for missing title", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for invalid status value", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/", map[string]string{
			"title":  "Task",
			"status": "blocked",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 when assignee does not exist", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			CreateTaskFn: func(ctx context.Context, creatorID int64, input service.CreateTaskInput) (*domain.Task, error) {
				return nil, store.ErrInvalidEntity
			},
		}
		router := newTaskRouter(svc, 1)

		assigneeID := int64(99)
		w := doRequest(t, router, http.MethodPost, "/tasks/", CreateTaskRequest{
			Title:      "Task",
			AssigneeID: &assigneeID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Run("passes query filters through", func(t *testing.T) {
		var captured store.TaskFilter
		svc := &mocks.MockTaskService{
			ListTasksFn: func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
				captured = filter
				return []*domain.Task{sampleTask(1)}, nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodGet,
			"/tasks/?status=todo&assignee_id=2&due_before=2026-09-01", nil)

		require.Equal(t, http.StatusOK, w.Code)

		require.NotNil(t, captured.Status)
		assert.Equal(t, domain.TaskStatusTodo, *captured.Status)
		require.NotNil(t, captured.AssigneeID)
		assert.Equal(t, int64(2), *captured.AssigneeID)
		require.NotNil(t, captured.DueBefore)
		assert.Equal(t, "2026-09-01", captured.DueBefore.String())

		var resp TaskListResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Tasks, 1)
	})

	t.Run("no filters list everything", func(t *testing.T) {
		var captured store.TaskFilter
		svc := &mocks.MockTaskService{
			ListTasksFn: func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
				captured = filter
				return []*domain.Task{}, nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, captured.Status)
		assert.Nil(t, captured.AssigneeID)
		assert.Nil(t, captured.DueBefore)

		// Empty listing serializes as an empty array, not null
		assert.Contains(t, w.Body.String(), `"tasks":[]`)
	})

	t.Run("returns 400 for malformed due_before", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/?due_before=not-a-date", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for non-numeric assignee_id", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/?assignee_id=bob", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTaskHandler(t *testing.T) {
	t.Run("returns task", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			GetTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return sampleTask(id), nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/5", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("returns 404 for unknown task", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Task not found", resp.Error)
	})

	t.Run("returns 400 for non-numeric ID", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodGet, "/tasks/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateTaskHandler(t *testing.T) {
	t.Run("maps optional fields to the update input", func(t *testing.T) {
		var captured service.UpdateTaskInput
		svc := &mocks.MockTaskService{
			UpdateTaskFn: func(ctx context.Context, id int64, input service.UpdateTaskInput) (*domain.Task, error) {
				captured = input
				return sampleTask(id), nil
			},
		}
		router := newTaskRouter(svc, 1)

		body := `{"title": "Renamed", "description": null, "status": "done"}`
		req := httptest.NewRequest(http.MethodPut, "/tasks/5", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		require.NotNil(t, captured.Title)
		assert.Equal(t, "Renamed", *captured.Title)
		require.NotNil(t, captured.Status)
		assert.Equal(t, domain.TaskStatusDone, *captured.Status)
		// Explicit null clears the description
		assert.True(t, captured.DescriptionSet)
		assert.Nil(t, captured.Description)
		// Omitted fields stay untouched
		assert.False(t, captured.DueDateSet)
		assert.False(t, captured.AssigneeIDSet)
	})

	t.Run("rejects explicit null title", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		req := httptest.NewRequest(http.MethodPut, "/tasks/5", strings.NewReader(`{"title": null}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects explicit null status", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		req := httptest.NewRequest(http.MethodPut, "/tasks/5", strings.NewReader(`{"status": null}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown task", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		req := httptest.NewRequest(http.MethodPut, "/tasks/99", strings.NewReader(`{"title": "x"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for invalid status from the service", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			UpdateTaskFn: func(ctx context.Context, id int64, input service.UpdateTaskInput) (*domain.Task, error) {
				return nil, domain.ErrInvalidTaskStatus
			},
		}
		router := newTaskRouter(svc, 1)

		req := httptest.NewRequest(http.MethodPut, "/tasks/5", strings.NewReader(`{"status": "blocked"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Invalid status value: must be one of todo, in_progress, done", resp.Error)
	})
}

func TestDeleteTaskHandler(t *testing.T) {
	t.Run("deletes task and confirms", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			DeleteTaskFn: func(ctx context.Context, id int64) error {
				return nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodDelete, "/tasks/5", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp MessageResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Task deleted successfully.", resp.Message)
	})

	t.Run("returns 404 for unknown task", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodDelete, "/tasks/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssignTaskHandler(t *testing.T) {
	t.Run("assigns task to the requested user", func(t *testing.T) {
		var gotTaskID, gotAssigneeID int64
		svc := &mocks.MockTaskService{
			AssignTaskFn: func(ctx context.Context, id, assigneeID int64) (*domain.Task, error) {
				gotTaskID, gotAssigneeID = id, assigneeID
				task := sampleTask(id)
				task.AssigneeID = &assigneeID
				return task, nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/assign?assignee_id=7", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(5), gotTaskID)
		assert.Equal(t, int64(7), gotAssigneeID)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotNil(t, resp.AssigneeID)
		assert.Equal(t, int64(7), *resp.AssigneeID)
	})

	t.Run("returns 400 without assignee_id", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/assign", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown assignee", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			AssignTaskFn: func(ctx context.Context, id, assigneeID int64) (*domain.Task, error) {
				return nil, service.ErrAssigneeNotFound
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/assign?assignee_id=99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Assignee not found", resp.Error)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	t.Run("updates status from query parameter", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			UpdateTaskStatusFn: func(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
				task := sampleTask(id)
				task.Status = status
				return task, nil
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/status?new_status=in_progress", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "in_progress", resp.Status)
	})

	t.Run("returns 400 without new_status", func(t *testing.T) {
		router := newTaskRouter(&mocks.MockTaskService{}, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/status", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for invalid status value", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			UpdateTaskStatusFn: func(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
				return nil, domain.ErrInvalidTaskStatus
			},
		}
		router := newTaskRouter(svc, 1)

		w := doRequest(t, router, http.MethodPost, "/tasks/5/status?new_status=archived", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListDueTodayHandler(t *testing.T) {
	called := false
	svc := &mocks.MockTaskService{
		ListTasksDueTodayFn: func(ctx context.Context) ([]*domain.Task, error) {
			called = true
			return []*domain.Task{sampleTask(1), sampleTask(2)}, nil
		},
	}
	router := newTaskRouter(svc, 1)

	w := doRequest(t, router, http.MethodGet, "/tasks/due/today", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)

	var resp TaskListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
}
