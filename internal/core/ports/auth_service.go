package ports

import (
	"context"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// LoginResult carries the minted token and the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AdminData is the combined view served to the admin dashboard.
type AdminData struct {
	Users []*domain.User
	Logs  []*domain.ActivityLog
}

// AuthService defines authentication, account management and permission
// checks. Every login attempt, account creation, password change and status
// change appends an activity-log entry.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Register creates a pending account from the public sign-up form.
	Register(ctx context.Context, fullName, email string) (*domain.User, error)
	// CreateUser creates a staff account with an explicit role and status.
	CreateUser(ctx context.Context, name, email, password string, role domain.Role, status domain.Status) (*domain.User, error)
	// CheckPermission reports whether the account identified by email
	// currently holds one of the allowed roles. Any lookup failure denies.
	CheckPermission(ctx context.Context, email string, allowed ...domain.Role) bool
	UpdatePassword(ctx context.Context, email, newPassword string) error
	// UpdateStatus sets a pending user's status; only approved and declined
	// are accepted. actor is the admin performing the change.
	UpdateStatus(ctx context.Context, userID int64, status domain.Status, actor string) error
	UsersByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error)
	ActivityLogs(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
	AdminData(ctx context.Context) (*AdminData, error)
}
