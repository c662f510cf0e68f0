package forms

import "context"

// Repository defines persistence operations for form submissions.
// GetByID returns (nil, nil) when no record matches.
type Repository interface {
	Create(ctx context.Context, submission *Submission) error
	GetByID(ctx context.Context, id uint) (*Submission, error)
	// List returns all submissions ordered by creation time, most recent first.
	List(ctx context.Context) ([]*Submission, error)
	Delete(ctx context.Context, id uint) error
}
