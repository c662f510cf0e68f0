package mappers

import (
	"atrium/internal/domain/account"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/authorization"
)

// AccountMapper handles the conversion between domain entities and persistence models.
type AccountMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *account.Account) *models.AccountModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.AccountModel) *account.Account

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.AccountModel) []*account.Account
}

// AccountMapperImpl is the concrete implementation of AccountMapper.
type AccountMapperImpl struct{}

// NewAccountMapper creates a new AccountMapper.
func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *AccountMapperImpl) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	return &models.AccountModel{
		ID:                entity.ID,
		Email:             entity.Email,
		Name:              entity.Name,
		AvatarURL:         entity.AvatarURL,
		Provider:          entity.Provider,
		ProviderAccountID: entity.ProviderAccountID,
		EmailVerified:     entity.EmailVerified,
		Role:              entity.Role.String(),
		Status:            entity.Status.String(),
		Plan:              entity.Plan,
		LoginCount:        entity.LoginCount,
		LastLogin:         entity.LastLogin,
		IPAddress:         entity.IPAddress,
		Device:            entity.Device,
		Location:          entity.Location,
		Bio:               entity.Bio,
		ReferralCode:      entity.ReferralCode,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) *account.Account {
	if model == nil {
		return nil
	}
	return &account.Account{
		ID:                model.ID,
		Email:             model.Email,
		Name:              model.Name,
		AvatarURL:         model.AvatarURL,
		Provider:          model.Provider,
		ProviderAccountID: model.ProviderAccountID,
		EmailVerified:     model.EmailVerified,
		Role:              authorization.Role(model.Role),
		Status:            account.Status(model.Status),
		Plan:              model.Plan,
		LoginCount:        model.LoginCount,
		LastLogin:         model.LastLogin,
		IPAddress:         model.IPAddress,
		Device:            model.Device,
		Location:          model.Location,
		Bio:               model.Bio,
		ReferralCode:      model.ReferralCode,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ToDomainList converts multiple persistence models to domain entities.
func (m *AccountMapperImpl) ToDomainList(accountModels []*models.AccountModel) []*account.Account {
	if accountModels == nil {
		return nil
	}
	entities := make([]*account.Account, 0, len(accountModels))
	for _, model := range accountModels {
		if entity := m.ToDomain(model); entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities
}
