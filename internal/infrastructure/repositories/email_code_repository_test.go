package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/usersvc/domain"
)

func TestEmailCodeRepositoryImpl_CreateAndConsume(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmailCodeRepository(db)
	ctx := context.Background()

	code := &domain.EmailCode{
		Code:   "abc123def456",
		UserID: 7,
	}
	require.NoError(t, repo.Create(ctx, code))
	assert.NotZero(t, code.ID)

	consumed, err := repo.Consume(ctx, "abc123def456")
	require.NoError(t, err)
	assert.Equal(t, uint(7), consumed.UserID)
	assert.Equal(t, "abc123def456", consumed.Code)

	// Consumption deletes the code; a second redemption must fail
	_, err = repo.Consume(ctx, "abc123def456")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestEmailCodeRepositoryImpl_ConsumeUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmailCodeRepository(db)

	_, err := repo.Consume(context.Background(), "never-issued")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestEmailCodeRepositoryImpl_MultipleCodesPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmailCodeRepository(db)
	ctx := context.Background()

	// Each request issues a new code independent of prior ones
	first := &domain.EmailCode{Code: "code-one", UserID: 7}
	second := &domain.EmailCode{Code: "code-two", UserID: 7}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	consumed, err := repo.Consume(ctx, "code-one")
	require.NoError(t, err)
	assert.Equal(t, uint(7), consumed.UserID)

	// The other code is still live
	consumed, err = repo.Consume(ctx, "code-two")
	require.NoError(t, err)
	assert.Equal(t, uint(7), consumed.UserID)
}

func TestEmailCodeRepositoryImpl_UniqueCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmailCodeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.EmailCode{Code: "dup", UserID: 1}))
	assert.Error(t, repo.Create(ctx, &domain.EmailCode{Code: "dup", UserID: 2}))
}

func TestEmailCodeRepositoryImpl_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmailCodeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.EmailCode{Code: "to-delete", UserID: 1}))
	require.NoError(t, repo.Delete(ctx, "to-delete"))

	_, err := repo.Consume(ctx, "to-delete")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)

	// Deleting an absent code is not an error
	assert.NoError(t, repo.Delete(ctx, "to-delete"))
}
