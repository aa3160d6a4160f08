package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hirelane_backend/internal/auth"
	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	employerRepo     repositories.EmployerRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	jwtSecret        string
	jwtTTL           time.Duration
}

func NewAuthService(
	employerRepo repositories.EmployerRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	jwtSecret string,
	jwtTTL time.Duration,
) *AuthService {
	return &AuthService{
		employerRepo:     employerRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        jwtSecret,
		jwtTTL:           jwtTTL,
	}
}

// Register creates a new employer account and logs it in.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.employerRepo.FindByEmail(emailAddr)
	if err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, repositories.ErrEmployerNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employer := &models.Employer{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		Email:        emailAddr,
		PasswordHash: hash,
		Website:      req.Website,
		City:         req.City,
		Role:         models.EmployerRoleEmployer,
		Status:       models.EmployerStatusActive,
	}

	if err := s.employerRepo.Create(employer); err != nil {
		if errors.Is(err, repositories.ErrEmployerAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issueTokens(employer)
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	employer, err := s.employerRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, employer.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if employer.Status == models.EmployerStatusSuspended {
		return nil, apperrors.ErrEmployerSuspended
	}

	return s.issueTokens(employer)
}

// Refresh rotates a refresh token and issues a fresh access token.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.Find(req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.Delete(stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	employer, err := s.employerRepo.FindByID(stored.EmployerID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if employer.Status == models.EmployerStatusSuspended {
		return nil, apperrors.ErrEmployerSuspended
	}

	// One-shot refresh tokens: the used token is dropped before a new pair
	// is issued.
	if err := s.refreshTokenRepo.Delete(stored.Token); err != nil {
		return nil, err
	}

	return s.issueTokens(employer)
}

// Logout drops all refresh tokens of the employer.
func (s *AuthService) Logout(employerID string) error {
	return s.refreshTokenRepo.DeleteByEmployer(employerID)
}

func (s *AuthService) issueTokens(employer *models.Employer) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(employer.ID, employer.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}

	refreshToken := &models.RefreshToken{
		Token:      uuid.NewString(),
		EmployerID: employer.ID,
		ExpiresAt:  time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		Employer:     employer,
	}, nil
}
