package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/platform/auth"
	authModel "github.com/pavlenko-transit/pickboard/modules/auth/model"
	authPorts "github.com/pavlenko-transit/pickboard/modules/auth/ports"
	employeeModel "github.com/pavlenko-transit/pickboard/modules/employees/model"
	employeePorts "github.com/pavlenko-transit/pickboard/modules/employees/ports"
)

// AuthService handles authentication business logic
type AuthService struct {
	accountRepo   employeePorts.AccountRepository
	employeeRepo  employeePorts.EmployeeRepository
	tokenRepo     authPorts.RefreshTokenRepository
	jwtManager    *auth.JWTManager
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo employeePorts.AccountRepository,
	employeeRepo employeePorts.EmployeeRepository,
	tokenRepo authPorts.RefreshTokenRepository,
	jwtManager *auth.JWTManager,
	accessExpiry time.Duration,
	refreshExpiry time.Duration,
) *AuthService {
	return &AuthService{
		accountRepo:   accountRepo,
		employeeRepo:  employeeRepo,
		tokenRepo:     tokenRepo,
		jwtManager:    jwtManager,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Register registers a new authentication account
func (s *AuthService) Register(ctx context.Context, req *authModel.RegisterRequest) (*employeeModel.AccountDTO, *authModel.AuthTokens, error) {
	if len(req.Password) < 8 {
		return nil, nil, employeeModel.ErrInvalidPassword
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, nil, employeeModel.ErrAccountAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = string(auth.RoleDriver)
	}
	switch auth.Role(role) {
	case auth.RoleAdmin, auth.RoleManager, auth.RoleDriver:
	default:
		return nil, nil, employeeModel.ErrInvalidEmail
	}

	account := employeeModel.NewAccount(email, passwordHash, role)
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	tokens, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return account.ToDTO(), tokens, nil
}

// Login authenticates an account
func (s *AuthService) Login(ctx context.Context, req *authModel.LoginRequest) (*employeeModel.AccountDTO, *authModel.AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employeeModel.ErrAccountNotFound) {
			return nil, nil, employeeModel.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := auth.VerifyPassword(req.Password, account.PasswordHash); err != nil {
		return nil, nil, employeeModel.ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return account.ToDTO(), tokens, nil
}

// RefreshTokens refreshes access token using refresh token
func (s *AuthService) RefreshTokens(ctx context.Context, refreshTokenString string) (*authModel.AuthTokens, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshTokenString)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	tokenHash := auth.HashToken(refreshTokenString)
	dbToken, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	if !dbToken.IsValid() {
		return nil, errors.New("refresh token expired or revoked")
	}

	account, err := s.accountRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, err
	}

	_ = s.tokenRepo.Revoke(ctx, tokenHash)

	return tokens, nil
}

// Logout revokes all refresh tokens for an account
func (s *AuthService) Logout(ctx context.Context, accountID string) error {
	return s.tokenRepo.RevokeAllForAccount(ctx, accountID)
}

// generateTokens generates access and refresh tokens carrying the
// account's role and, when linked, its employee ID.
func (s *AuthService) generateTokens(ctx context.Context, account *employeeModel.Account) (*authModel.AuthTokens, error) {
	employeeID := ""
	if employee, err := s.employeeRepo.GetByAccountID(ctx, account.ID); err == nil {
		employeeID = employee.ID
	}

	accessToken, err := s.jwtManager.GenerateAccessTokenForRole(account.ID, auth.Role(account.Role), employeeID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, err
	}

	tokenHash := auth.HashToken(refreshToken)
	dbToken := authModel.NewRefreshToken(account.ID, tokenHash, time.Now().UTC().Add(s.refreshExpiry))
	if err := s.tokenRepo.Create(ctx, dbToken); err != nil {
		return nil, err
	}

	return &authModel.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpiry.Seconds()),
	}, nil
}
