package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryanwoodall/sitehub/internal/apperror"
)

// AuthService defines the business logic contract for accounts. Handlers
// call these methods -- they never touch the repository directly.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (*User, error)
}

// authService implements AuthService over a UserRepository.
type authService struct {
	repo UserRepository
}

// NewAuthService creates a new auth service with the given repository.
func NewAuthService(repo UserRepository) AuthService {
	return &authService{repo: repo}
}

// Register creates a new account. Validation runs before any store access,
// in a fixed order with fail-fast semantics: username, password, password
// confirmation, then email. Malformed input never reaches the database.
//
// The existence pre-check is a UX fast path only. The unique constraint on
// users.username is the authority: a duplicate-key error from the insert is
// reported the same way as a positive pre-check, which closes the race
// between concurrent registrations of the same name.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if input.Password != input.Confirm {
		return nil, apperror.NewValidation("passwords do not match")
	}
	if err := ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	exists, err := s.repo.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("checking username: %w", err))
	}
	if exists {
		return nil, apperror.NewConflict("username already exists")
	}

	now := time.Now().UTC()
	user := &User{
		Username:     input.Username,
		PasswordHash: HashPassword(input.Password),
		AvatarPath:   DefaultAvatar,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Email != "" {
		email := input.Email
		user.Email = &email
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, apperror.NewConflict("username already exists")
		}
		return nil, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login authenticates an account by username and password. A missing
// account and a wrong password produce distinct messages so clients can
// attach each to the field that caused it.
func (s *authService) Login(ctx context.Context, input LoginInput) (*User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperror.NewValidation("please enter a username and password")
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			return nil, apperror.NewUnauthorized("username not found")
		}
		return nil, apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	if HashPassword(input.Password) != user.PasswordHash {
		return nil, apperror.NewUnauthorized("wrong password")
	}

	// Stamp last_login. Best-effort: a failed update must not fail the
	// login itself.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		slog.Warn("failed to update last login",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
	}
	user.LastLogin = &now

	slog.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}
