package usecase

import (
	"context"
	"fmt"
	"time"

	"secure-portal/internal/data/repository"
	"secure-portal/internal/dto/request"
	"secure-portal/internal/dto/response"
	"secure-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &response.ProfileResponse{
		OK:   true,
		User: response.UserToResponse(user),
	}, nil
}

// UpdateProfile changes email and/or password. A new password goes through
// the same complexity policy as registration and is re-hashed.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for update", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Email != nil {
		existing, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err))
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil && existing.ID != user.ID {
			return nil, fmt.Errorf("email already registered")
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password, s.config.Bcrypt.Cost)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashedPassword
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	return &response.ProfileResponse{
		OK:   true,
		User: response.UserToResponse(user),
	}, nil
}
