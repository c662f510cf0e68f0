package mappers

import (
	"atrium/internal/domain/forms"
	"atrium/internal/infrastructure/persistence/models"
)

// SubmissionMapper handles the conversion between domain entities and persistence models.
type SubmissionMapper interface {
	ToModel(entity *forms.Submission) *models.SubmissionModel
	ToDomain(model *models.SubmissionModel) *forms.Submission
	ToDomainList(models []*models.SubmissionModel) []*forms.Submission
}

// SubmissionMapperImpl is the concrete implementation of SubmissionMapper.
type SubmissionMapperImpl struct{}

// NewSubmissionMapper creates a new SubmissionMapper.
func NewSubmissionMapper() SubmissionMapper {
	return &SubmissionMapperImpl{}
}

func (m *SubmissionMapperImpl) ToModel(entity *forms.Submission) *models.SubmissionModel {
	if entity == nil {
		return nil
	}
	return &models.SubmissionModel{
		ID:             entity.ID,
		FormType:       entity.FormType.String(),
		Name:           entity.Name,
		Email:          entity.Email,
		Phone:          entity.Phone,
		Subject:        entity.Subject,
		Service:        entity.Service,
		Message:        entity.Message,
		SubmittedBy:    entity.SubmittedBy,
		SubmittedEmail: entity.SubmittedEmail,
		CreatedAt:      entity.CreatedAt,
	}
}

func (m *SubmissionMapperImpl) ToDomain(model *models.SubmissionModel) *forms.Submission {
	if model == nil {
		return nil
	}
	return &forms.Submission{
		ID:             model.ID,
		FormType:       forms.FormType(model.FormType),
		Name:           model.Name,
		Email:          model.Email,
		Phone:          model.Phone,
		Subject:        model.Subject,
		Service:        model.Service,
		Message:        model.Message,
		SubmittedBy:    model.SubmittedBy,
		SubmittedEmail: model.SubmittedEmail,
		CreatedAt:      model.CreatedAt,
	}
}

func (m *SubmissionMapperImpl) ToDomainList(submissionModels []*models.SubmissionModel) []*forms.Submission {
	if submissionModels == nil {
		return nil
	}
	entities := make([]*forms.Submission, 0, len(submissionModels))
	for _, model := range submissionModels {
		if entity := m.ToDomain(model); entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities
}
