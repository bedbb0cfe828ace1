package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates in-memory repositories for tests. One connection
// keeps the shared in-memory database alive and visible to all queries.
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)
	require.NotNil(t, repos.Source)
	require.NotNil(t, repos.Article)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("database is locked")))
	assert.True(t, isLockError(errors.New("SQLITE_BUSY: db busy")))
	assert.False(t, isLockError(errors.New("syntax error")))
}

func TestIsUniqueError(t *testing.T) {
	assert.False(t, isUniqueError(nil))
	assert.True(t, isUniqueError(errors.New("UNIQUE constraint failed: articles.url")))
	assert.False(t, isUniqueError(errors.New("NOT NULL constraint failed")))
}

func TestCriticalError(t *testing.T) {
	original := fmt.Errorf("wrapped: %w", ErrAlreadyExists)
	critErr := &criticalError{err: original}

	assert.Equal(t, original.Error(), critErr.Error())
	assert.ErrorIs(t, critErr, ErrAlreadyExists, "unwraps to the sentinel")
}
