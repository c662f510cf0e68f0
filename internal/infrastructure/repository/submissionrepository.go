package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/forms"
	"atrium/internal/infrastructure/persistence/mappers"
	"atrium/internal/infrastructure/persistence/models"
	apperrors "atrium/internal/shared/errors"
)

// SubmissionRepository implements the forms.Repository interface using GORM
// with Model/Mapper separation.
type SubmissionRepository struct {
	db     *gorm.DB
	mapper mappers.SubmissionMapper
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(db *gorm.DB) forms.Repository {
	return &SubmissionRepository{
		db:     db,
		mapper: mappers.NewSubmissionMapper(),
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, entity *forms.Submission) error {
	model := r.mapper.ToModel(entity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	entity.ID = model.ID
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uint) (*forms.Submission, error) {
	var model models.SubmissionModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SubmissionRepository) List(ctx context.Context) ([]*forms.Submission, error) {
	var submissionModels []*models.SubmissionModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return r.mapper.ToDomainList(submissionModels), nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SubmissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("submission not found")
	}
	return nil
}
