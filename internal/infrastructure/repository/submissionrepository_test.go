package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/forms"
	apperrors "atrium/internal/shared/errors"
)

func createTestSubmission(t *testing.T, formType string, at time.Time) *forms.Submission {
	s, err := forms.NewSubmission(forms.SubmissionInput{
		FormType: formType,
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234567",
		Subject:  "Inquiry",
		Service:  "Web Design",
		Message:  "Hello there",
	}, "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	s.CreatedAt = at
	return s
}

func TestSubmissionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := createTestSubmission(t, "contact", time.Now())
	err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	found, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, forms.FormTypeContact, found.FormType)
	assert.Equal(t, "jane@example.com", found.Email)
	assert.Equal(t, "Hello there", found.Message)
	assert.Equal(t, "Jane Doe", found.SubmittedBy)

	missing, err := repo.GetByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubmissionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := createTestSubmission(t, "portfolio", base)
	newer := createTestSubmission(t, "services", base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, forms.FormTypeServices, list[0].FormType)
	assert.Equal(t, forms.FormTypePortfolio, list[1].FormType)
}

func TestSubmissionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	s := createTestSubmission(t, "contact", time.Now())
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))

	found, err := repo.GetByID(ctx, s.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, s.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
}
