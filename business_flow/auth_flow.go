package businessflow

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/smilemobilul/campaign-backend/app/dto"
	"github.com/smilemobilul/campaign-backend/app/services"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/repository"
)

const bcryptCost = 10

// AuthFlow handles user signup and credential-based login
type AuthFlow interface {
	Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResultDTO, error)
	Signup(ctx context.Context, req *dto.SignupRequest, metadata *ClientMetadata) (*dto.UserDTO, error)
}

// AuthFlowImpl implements the authentication business flow
type AuthFlowImpl struct {
	userRepo     repository.UserRepository
	tokenService services.TokenService
}

// NewAuthFlow creates a new authentication flow
func NewAuthFlow(userRepo repository.UserRepository, tokenService services.TokenService) AuthFlow {
	return &AuthFlowImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login verifies the username and password and issues an access token.
// A missing user and a wrong password produce the same error so the
// response does not reveal which usernames exist.
func (a *AuthFlowImpl) Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResultDTO, error) {
	user, err := a.userRepo.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("AUTH_LOOKUP_FAILED", "Failed to look up user", err)
	}
	if user == nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid username or password", ErrInvalidCredentials)
	}

	token, err := a.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate access token", err)
	}

	return &dto.LoginResultDTO{
		Token:    token,
		Username: user.Username,
		Role:     user.Role.String(),
	}, nil
}

// Signup registers a new user with a bcrypt-hashed password
func (a *AuthFlowImpl) Signup(ctx context.Context, req *dto.SignupRequest, metadata *ClientMetadata) (*dto.UserDTO, error) {
	existing, err := a.userRepo.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("AUTH_LOOKUP_FAILED", "Failed to look up user", err)
	}
	if existing != nil {
		return nil, NewBusinessError("USERNAME_TAKEN", fmt.Sprintf("Username %s is already taken", req.Username), ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, NewBusinessError("PASSWORD_HASH_FAILED", "Failed to hash password", err)
	}

	role := models.UserRoleUser
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := a.userRepo.Save(ctx, user); err != nil {
		return nil, NewBusinessError("USER_CREATE_FAILED", "Failed to create user", err)
	}

	return &dto.UserDTO{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	}, nil
}
