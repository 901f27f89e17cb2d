package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

// tempPassword is assigned to self-registered accounts until an admin
// approves them and the user sets a real one.
const tempPassword = "temp1234"

const defaultLogLimit = 100

// AuthService implements login, registration, permission checks and the
// account-management operations behind the admin endpoints.
type AuthService struct {
	users     ports.AuthRepository
	activity  ports.ActivityRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.AuthRepository, activity ports.ActivityRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:     users,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login authenticates by email and password. Every attempt, successful or
// not, appends an activity-log entry; unknown emails log with a nil user
// reference. Authentication fails closed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.recordActivity(ctx, nil, domain.ActionLoginFailed, "Failed login attempt for unknown user "+email)
		s.log.Warn().Str("email", email).Msg("login attempt for unknown email")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordActivity(ctx, &user.ID, domain.ActionLoginFailed, "Invalid password attempt")
		s.log.Warn().Str("email", email).Msg("login attempt with invalid password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.recordActivity(ctx, &user.ID, domain.ActionLogin, "User logged in successfully")
	s.log.Info().Str("email", email).Str("role", string(user.Role)).Msg("user authenticated")

	return &ports.LoginResult{Token: token, User: user}, nil
}

// Register creates a pending account from the public sign-up form. The
// account receives a fixed temporary password and must be approved by an
// admin before it is usable.
func (s *AuthService) Register(ctx context.Context, fullName, email string) (*domain.User, error) {
	return s.CreateUser(ctx, fullName, email, tempPassword, domain.RolePendingUser, domain.StatusInProcess)
}

// CreateUser hashes the password and inserts the account, failing with
// ErrUserExists when the email is already taken.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password string, role domain.Role, status domain.Status) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, &created.ID, domain.ActionCreatedAccount, "Created account")
	s.log.Info().Str("email", email).Str("role", string(role)).Msg("user created")

	return created, nil
}

// CheckPermission looks up the caller's current role and tests membership in
// the allowed set. Any lookup failure denies access.
func (s *AuthService) CheckPermission(ctx context.Context, email string, allowed ...domain.Role) bool {
	if email == "" {
		return false
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// UpdatePassword re-hashes and overwrites the user's password.
func (s *AuthService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.recordActivity(ctx, &user.ID, domain.ActionPasswordUpdate, "Updated password")
	s.log.Info().Str("email", email).Msg("password updated")
	return nil
}

// UpdateStatus applies an admin review decision. Values outside
// {approved, declined} are rejected without touching the row.
func (s *AuthService) UpdateStatus(ctx context.Context, userID int64, status domain.Status, actor string) error {
	if !status.Reviewable() {
		return domain.ErrInvalidStatus
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.UpdateStatus(ctx, user.ID, status); err != nil {
		return err
	}

	s.recordActivity(ctx, &user.ID, domain.ActionStatusChange,
		fmt.Sprintf("Status changed to %s by admin %s", status, actor))
	s.log.Info().
		Str("email", user.Email).
		Str("status", string(status)).
		Str("actor", actor).
		Msg("user status updated")
	return nil
}

func (s *AuthService) UsersByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error) {
	return s.users.ListByStatus(ctx, status)
}

func (s *AuthService) ActivityLogs(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return s.activity.Recent(ctx, limit)
}

// AdminData returns the approved-user list and the full audit trail for the
// admin dashboard.
func (s *AuthService) AdminData(ctx context.Context) (*ports.AdminData, error) {
	users, err := s.users.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	logs, err := s.activity.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.AdminData{Users: users, Logs: logs}, nil
}

// SeedInitialUsers creates the fixed admin/doctor/employee accounts when the
// users table is empty. Idempotent.
func (s *AuthService) SeedInitialUsers(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("users", count).Msg("users already present, skipping seed")
		return nil
	}

	seeds := []struct {
		name, email, password string
		role                  domain.Role
	}{
		{"System Administrator", "admin@aidentify.com", "admin123", domain.RoleAdmin},
		{"Dr. John Smith", "doctor@aidentify.com", "doctor123", domain.RoleDoctor},
		{"Sarah Johnson", "employee@aidentify.com", "employee123", domain.RoleEmployee},
	}
	for _, u := range seeds {
		if _, err := s.CreateUser(ctx, u.name, u.email, u.password, u.role, domain.StatusActive); err != nil {
			return fmt.Errorf("seed %s: %w", u.email, err)
		}
	}
	s.log.Info().Msg("initial users seeded")
	return nil
}

// recordActivity appends to the audit trail; failures are logged and
// swallowed so auditing never fails the triggering operation.
func (s *AuthService) recordActivity(ctx context.Context, userID *int64, action, description string) {
	entry := &domain.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.activity.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("failed to record activity")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.Email,
		"role":    string(user.Role),
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
