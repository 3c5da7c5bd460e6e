package identity

import (
	"context"
	"errors"

	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// ErrAccountInactive is returned when an inactive user tries to log in
var ErrAccountInactive = shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")

// AuthService handles authentication operations
type AuthService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login verifies a username and password and returns the principal to
// store in the session
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*Principal, error) {
	user, err := s.verify(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in successfully",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	return &Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// ResetPassword replaces a user's password after checking the current one
func (s *AuthService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.findUser(ctx, req.Username)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, identity.ErrIncorrectPassword) {
			s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
			return ErrInvalidCredentials
		}
		return err
	}
	if !user.IsActive() {
		s.logger.Warn("Password reset for inactive account", zap.String("username", req.Username))
		return ErrAccountInactive
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to reset password", zap.Error(err))
		return err
	}

	s.logger.Info("User password reset", zap.String("username", user.Username))
	return nil
}

func (s *AuthService) findUser(ctx context.Context, username string) (*identity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("User not found during login", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) verify(ctx context.Context, username, password string) (*identity.User, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.VerifyPassword(password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		s.logger.Warn("Login attempt for inactive account", zap.String("username", username))
		return nil, ErrAccountInactive
	}
	return user, nil
}
