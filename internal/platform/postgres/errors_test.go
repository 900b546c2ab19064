package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, isUniqueViolation(uniqueErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, isUniqueViolation(fkErr))
	assert.False(t, isUniqueViolation(errors.New("some other error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, isForeignKeyViolation(fkErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("update failed: %w", fkErr)))
	assert.False(t, isForeignKeyViolation(uniqueErr))
	assert.False(t, isForeignKeyViolation(errors.New("some other error")))
	assert.False(t, isForeignKeyViolation(nil))
}
