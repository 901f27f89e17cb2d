package ports

import (
	"context"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// ActivityRepository appends and reads the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	// Recent returns up to limit entries joined with user name/email,
	// newest first.
	Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
	ListAll(ctx context.Context) ([]*domain.ActivityLog, error)
}
