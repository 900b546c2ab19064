// Package service implements the application's business operations on top of
// the store interfaces, running each mutating operation in its own
// database transaction.
package service

import (
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/store"
)

// Service-level errors.
var (
	// ErrAssigneeNotFound indicates that the user a task was being assigned
	// to does not exist. Kept distinct from ErrTaskNotFound so the API can
	// report which lookup failed.
	ErrAssigneeNotFound = fmt.Errorf("%w: assignee", store.ErrNotFound)
)
