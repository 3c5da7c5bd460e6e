// Package identity implements user management and authentication.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	audit    records.AuditRecorder
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, audit records.AuditRecorder, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo: userRepo,
		audit:    records.RecorderOrNop(audit),
		logger:   logger,
	}
}

// Create creates a new user. The role defaults to customer.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.AlreadyExists("User", "username")
	}

	role := identity.RoleCustomer
	if req.Role != "" {
		role = identity.Role(req.Role)
	}
	user, err := identity.NewUser(req.Username, req.Password, role)
	if err != nil {
		return nil, err
	}
	user.Email = strings.TrimSpace(req.Email)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))
	s.audit.Record(ctx, "user.create", fmt.Sprintf("id=%s", user.ID))

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves a page of users and the total count
func (s *UserService) List(ctx context.Context, query listing.Query) ([]UserResponse, int64, error) {
	users, total, err := listing.List[identity.User](ctx, s.userRepo, query.Filter())
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(users, ToUserResponse), total, nil
}

// Update applies a partial update to a user
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username.Set {
		if req.Username.Null {
			return nil, shared.InvalidInput("username cannot be null")
		}
		if !strings.EqualFold(strings.TrimSpace(req.Username.Value), user.Username) {
			exists, err := s.userRepo.ExistsByUsername(ctx, strings.TrimSpace(req.Username.Value))
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.AlreadyExists("User", "username")
			}
		}
		if err := user.SetUsername(req.Username.Value); err != nil {
			return nil, err
		}
	}
	if req.Password.Set {
		if req.Password.Null {
			return nil, shared.InvalidInput("password cannot be null")
		}
		if err := user.SetPassword(req.Password.Value); err != nil {
			return nil, err
		}
	}
	req.Email.ApplyOrZero(&user.Email)
	if req.Role.Set {
		if req.Role.Null {
			return nil, shared.InvalidInput("role cannot be null")
		}
		if err := user.SetRole(identity.Role(req.Role.Value)); err != nil {
			return nil, err
		}
	}
	if req.Status.Set {
		status := identity.UserStatus(strings.ToLower(req.Status.Value))
		if req.Status.Null || (status != identity.UserStatusActive && status != identity.UserStatusInactive) {
			return nil, shared.InvalidInput("status must be active or inactive")
		}
		user.SetStatus(status)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "user.update", fmt.Sprintf("id=%s", user.ID))

	response := ToUserResponse(user)
	return &response, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	s.audit.Record(ctx, "user.delete", fmt.Sprintf("id=%s", id))
	return nil
}

// EnsureUser creates a user unless the username is taken. It reports
// whether a user was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password string, role identity.Role) (bool, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := s.Create(ctx, CreateUserRequest{Username: username, Password: password, Role: string(role)}); err != nil {
		return false, err
	}
	return true, nil
}
