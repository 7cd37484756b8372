package usecase

import (
	"context"
	"fmt"
	"time"

	"secure-portal/internal/data/entity"
	"secure-portal/internal/data/repository"
	"secure-portal/internal/dto/request"
	"secure-portal/internal/dto/response"
	"secure-portal/pkg/token"
	"secure-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	AdminRegister(ctx context.Context, req *request.AdminRegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response.RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	EnsureSeedEmployee(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	issuer *token.Issuer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *token.Issuer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a customer account. The role is always forced to customer
// here; employees are seeded or created through the admin route.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	return s.createUser(ctx, req.Username, req.Email, req.Password, req.AccountNumber, entity.RoleCustomer)
}

// AdminRegister performs the same checks but honors an explicit role.
// The route wiring guarantees the caller is an employee.
func (s *authService) AdminRegister(ctx context.Context, req *request.AdminRegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleCustomer
	}

	return s.createUser(ctx, req.Username, req.Email, req.Password, req.AccountNumber, role)
}

func (s *authService) createUser(ctx context.Context, username, email, password string, accountNumber *string, role entity.UserRole) (*response.RegisterResponse, error) {
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	existingUser, err = s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hashedPassword, err := utils.HashPassword(password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      username,
		Email:         email,
		PasswordHash:  hashedPassword,
		AccountNumber: accountNumber,
		Role:          role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &response.RegisterResponse{
		OK:     true,
		UserID: user.ID.String(),
	}, nil
}

// Login accepts an email or username. Unknown identifier, account number
// mismatch, and wrong password all return the same failure so callers cannot
// enumerate accounts.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		return nil, fmt.Errorf("validation failed: email or username is required")
	}

	user, err := s.repo.User.FindByIdentifier(ctx, identifier)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("Login attempt for unknown identifier")
		return nil, fmt.Errorf("invalid credentials")
	}

	if req.AccountNumber != "" && user.AccountNumber != nil && *user.AccountNumber != req.AccountNumber {
		s.log.Warn("Account number mismatch on login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password on login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	refreshToken, err := s.issuer.IssueRefresh(user)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	now := time.Now()
	stored := &entity.RefreshToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.issuer.RefreshTTL()),
	}

	if err := s.repo.RefreshToken.Create(ctx, stored); err != nil {
		s.log.Error("Failed to persist refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{
		OK:           true,
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

// Refresh exchanges a stored, still-valid refresh token for a new access
// token. The store lookup comes first: a token absent from the store is
// revoked no matter what its signature says.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.RefreshResponse, error) {
	stored, err := s.repo.RefreshToken.Find(ctx, refreshToken)
	if err != nil {
		s.log.Error("Failed to look up refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to check refresh token")
	}
	if stored == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		s.log.Warn("Refresh token failed verification", zap.Error(err))
		return nil, fmt.Errorf("invalid or expired refresh token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		s.log.Warn("Refresh token subject is not a user ID", zap.String("subject", claims.Subject))
		return nil, fmt.Errorf("invalid or expired refresh token")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for refresh", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	return &response.RefreshResponse{Token: accessToken}, nil
}

// Logout revokes the refresh token by deleting it from the store.
// A missing token in the request is not an error.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.repo.RefreshToken.Delete(ctx, refreshToken); err != nil {
		s.log.Error("Failed to revoke refresh token", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// EnsureSeedEmployee creates the configured employee account on startup if it
// does not already exist. Employees never come from public registration.
func (s *authService) EnsureSeedEmployee(ctx context.Context) error {
	seed := s.config.Seed
	if seed.EmployeeEmail == "" {
		return nil
	}

	existing, err := s.repo.User.FindByEmail(ctx, seed.EmployeeEmail)
	if err != nil {
		return fmt.Errorf("check seed employee: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(seed.EmployeePassword, s.config.Bcrypt.Cost)
	if err != nil {
		return fmt.Errorf("hash seed employee password: %w", err)
	}

	now := time.Now()
	employee := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     seed.EmployeeUsername,
		Email:        seed.EmployeeEmail,
		PasswordHash: hashedPassword,
		Role:         entity.RoleEmployee,
	}

	if err := s.repo.User.Create(ctx, employee); err != nil {
		return fmt.Errorf("create seed employee: %w", err)
	}

	s.log.Info("Seed employee created",
		zap.String("user_id", employee.ID.String()),
		zap.String("username", employee.Username))

	return nil
}
