package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/account"
	"atrium/internal/infrastructure/persistence/mappers"
	"atrium/internal/infrastructure/persistence/models"
	apperrors "atrium/internal/shared/errors"
)

// AccountRepository implements the account.Repository interface using GORM
// with Model/Mapper separation.
type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *gorm.DB) account.Repository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Create(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	// Sync auto-generated ID back to the domain entity
	entity.ID = model.ID
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)
	result := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":               model.Email,
			"name":                model.Name,
			"avatar_url":          model.AvatarURL,
			"provider":            model.Provider,
			"provider_account_id": model.ProviderAccountID,
			"email_verified":      model.EmailVerified,
			"role":                model.Role,
			"status":              model.Status,
			"plan":                model.Plan,
			"login_count":         model.LoginCount,
			"last_login":          model.LastLogin,
			"ip_address":          model.IPAddress,
			"device":              model.Device,
			"location":            model.Location,
			"bio":                 model.Bio,
			"referral_code":       model.ReferralCode,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows when an update writes values
		// identical to the stored row, so confirm the row is missing
		// before treating this as a not-found.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("account not found")
		}
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model models.AccountModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var accountModels []*models.AccountModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&accountModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return r.mapper.ToDomainList(accountModels), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}
