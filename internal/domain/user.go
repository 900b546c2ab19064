package domain

import (
	"errors"
	"strings"
)

// Common validation errors for User.
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the task board.
// The hashed password is never exposed in JSON.
type User struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	FullName       *string `json:"full_name"`
	HashedPassword string  `json:"-"`
	IsActive       bool    `json:"is_active"`
}

// NewUser creates a new active User with the given email, optional full name,
// and an already-hashed password. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewUser(email string, fullName *string, hashedPassword string) (*User, error) {
	user := &User{
		Email:          email,
		FullName:       fullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a single "@"
// with a dotted domain part. Full RFC 5322 validation is left to the request
// validator at the API boundary.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
