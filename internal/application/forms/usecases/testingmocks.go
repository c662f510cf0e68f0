package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atrium/internal/domain/forms"
)

type mockSubmissionRepository struct {
	mock.Mock
}

func (m *mockSubmissionRepository) Create(ctx context.Context, s *forms.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubmissionRepository) GetByID(ctx context.Context, id uint) (*forms.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forms.Submission), args.Error(1)
}

func (m *mockSubmissionRepository) List(ctx context.Context) ([]*forms.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forms.Submission), args.Error(1)
}

func (m *mockSubmissionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
