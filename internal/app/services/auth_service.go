package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/auth"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.TokenResponse, error)
	RegisterInstructor(ctx context.Context, req *dto.RegisterInstructorRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, role models.Role) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	jwtService     *auth.JWTService
	userRepo       *repositories.UserRepository
	instructorRepo *repositories.InstructorRepository
	adminRepo      *repositories.AdminRepository
	tokenRepo      *repositories.TokenRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(
	jwtService *auth.JWTService,
	userRepo *repositories.UserRepository,
	instructorRepo *repositories.InstructorRepository,
	adminRepo *repositories.AdminRepository,
	tokenRepo *repositories.TokenRepository,
) AuthService {
	return &authServiceImpl{
		jwtService:     jwtService,
		userRepo:       userRepo,
		instructorRepo: instructorRepo,
		adminRepo:      adminRepo,
		tokenRepo:      tokenRepo,
	}
}

// issueTokens creates a token pair for the principal and stores the refresh
// token.
func (s *authServiceImpl) issueTokens(ctx context.Context, principalID int64, email string, role models.Role) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, _, err := s.jwtService.GenerateTokenPair(principalID, email, string(role))
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	err = s.tokenRepo.StoreRefreshToken(ctx, &models.RefreshToken{
		Token:         refreshToken,
		PrincipalType: role,
		PrincipalID:   principalID,
		ExpiresAt:     s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(expiresIn),
	}, nil
}

// RegisterUser creates a learner account and logs it in.
func (s *authServiceImpl) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.TokenResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.userRepo.CreateUser(ctx, &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", id).Msg("User registered")
	return s.issueTokens(ctx, id, req.Email, models.RoleUser)
}

// RegisterInstructor creates an instructor account and logs it in. New
// instructors start unverified.
func (s *authServiceImpl) RegisterInstructor(ctx context.Context, req *dto.RegisterInstructorRequest) (*dto.TokenResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.instructorRepo.CreateInstructor(ctx, &models.Instructor{
		Name:      req.Name,
		Email:     req.Email,
		Expertise: req.Expertise,
		Bio:       req.Bio,
		Password:  hashed,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("instructorId", id).Msg("Instructor registered")
	return s.issueTokens(ctx, id, req.Email, models.RoleInstructor)
}

// Login authenticates a principal of the given role. A wrong email and a
// wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, role models.Role) (*dto.TokenResponse, error) {
	var id int64
	var hashed string

	switch role {
	case models.RoleUser:
		user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		if !user.IsActive {
			return nil, apperrors.ErrAccountDisabled
		}
		id, hashed = user.ID, user.Password
	case models.RoleInstructor:
		instructor, err := s.instructorRepo.GetInstructorByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		id, hashed = instructor.ID, instructor.Password
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetAdminByEmail(ctx, req.Email)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		id, hashed = admin.ID, admin.Password
	default:
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(hashed, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, id, req.Email, role)
}

// Refresh rotates a refresh token: the old one is revoked and a fresh pair
// is issued for the same principal.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	email, err := s.principalEmail(ctx, stored.PrincipalType, stored.PrincipalID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, stored.PrincipalID, email, stored.PrincipalType)
}

func (s *authServiceImpl) principalEmail(ctx context.Context, role models.Role, id int64) (string, error) {
	switch role {
	case models.RoleUser:
		user, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return "", err
		}
		return user.Email, nil
	case models.RoleInstructor:
		instructor, err := s.instructorRepo.GetInstructorByID(ctx, id)
		if err != nil {
			return "", err
		}
		return instructor.Email, nil
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetAdminByID(ctx, id)
		if err != nil {
			return "", err
		}
		return admin.Email, nil
	}
	return "", apperrors.ErrTokenInvalid
}

// Logout revokes a refresh token. The access token simply ages out.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}
