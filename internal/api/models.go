// Package api provides HTTP handlers for the API.
package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// jsonNull is the literal the Optional decoder compares against.
var jsonNull = []byte("null")

// Optional is a JSON field that distinguishes three states: omitted
// (Set false), explicitly null (Set true, Value nil), and supplied
// (Set true, Value non-nil). UnmarshalJSON only runs for keys present in the
// payload, which is what makes the omitted state observable.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Value = nil
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// Auth request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=6,max=72"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of a user. The hashed password is never
// part of it.
type UserResponse struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	IsActive bool    `json:"is_active"`
}

// Task request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Status defaults to todo when omitted.
type CreateTaskRequest struct {
	Title       string       `json:"title"       validate:"required,max=255"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"due_date"`
	Status      string       `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *int64       `json:"assignee_id"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// Omitted fields are left untouched. An explicit null clears description,
// due_date, and assignee_id; title and status are not nullable and reject an
// explicit null.
type UpdateTaskRequest struct {
	Title       Optional[string]      `json:"title"`
	Description Optional[string]      `json:"description"`
	DueDate     Optional[domain.Date] `json:"due_date"`
	Status      Optional[string]      `json:"status"`
	AssigneeID  Optional[int64]       `json:"assignee_id"`
}

// TaskResponse is the full view of a task.
type TaskResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *domain.Date `json:"due_date"`
	Status      string       `json:"status"`
	CreatorID   int64        `json:"creator_id"`
	AssigneeID  *int64       `json:"assignee_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskListResponse carries a task listing and its total count.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// MessageResponse is a generic response with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// userToResponse converts a domain.User to its public view.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		IsActive: user.IsActive,
	}
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      string(task.Status),
		CreatorID:   task.CreatorID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToListResponse converts a task slice to a TaskListResponse with the
// total set to the slice length.
func tasksToListResponse(tasks []*domain.Task) TaskListResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return TaskListResponse{
		Tasks: responses,
		Total: len(responses),
	}
}
