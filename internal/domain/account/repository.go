package account

import "context"

// Repository defines persistence operations for accounts.
// Get methods return (nil, nil) when no record matches.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// List returns all accounts ordered by creation time, most recent first.
	List(ctx context.Context) ([]*Account, error)
	Delete(ctx context.Context, id uint) error
}
