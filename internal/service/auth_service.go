package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/service/auth"
	"github.com/openhire/jobboard-api/internal/store"
)

// RegisterInput holds the fields accepted at registration. The plaintext
// password is hashed before anything is persisted and is never logged.
type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
	Address     string
	CityID      uuid.NullUUID
	CompanyCity string
}

// ProfileInput holds the mutable company profile fields. The logo is updated
// only when LogoPath is non-empty; email and password are not changed through
// this path.
type ProfileInput struct {
	CompanyName      string
	Address          string
	CompanyModel     string
	CompanyEmployees string
	WorkingTime      string
	WorkOvertime     string
	Description      string
	CityID           uuid.NullUUID
	CompanyCity      string
	LogoPath         string
}

// AuthService authenticates company principals and binds subsequent
// operations to their identity.
type AuthService struct {
	companies store.CompanyStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.JWTService
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	companies store.CompanyStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		companies: companies,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		logger:    logger.With(slog.String("component", "auth_service")),
	}
}

// Register creates a new company account. Fails with ErrDuplicateEmail when
// the email is already registered.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := domain.NewCompanyAccount(in.Email, hashed, in.CompanyName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	account.Address = in.Address
	account.CityID = in.CityID
	account.CompanyCity = in.CompanyCity

	if err := s.companies.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return ErrDuplicateEmail
		}
		log.Error("failed to create company account", slog.String("error", err.Error()))
		return err
	}

	log.Info("company registered", slog.String("company_id", account.ID.String()))
	return nil
}

// Login verifies the credentials and issues a signed session token carrying
// the account's ID and email. Fails with ErrAccountNotFound when the email is
// unregistered and ErrInvalidPassword when the hash comparison fails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.companies.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return "", ErrAccountNotFound
		}
		log.Error("failed to load account by email", slog.String("error", err.Error()))
		return "", err
	}

	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.GenerateToken(ctx, account.ID, account.Email)
	if err != nil {
		log.Error("failed to generate session token",
			slog.String("error", err.Error()),
			slog.String("company_id", account.ID.String()))
		return "", err
	}

	log.Info("company logged in", slog.String("company_id", account.ID.String()))
	return token, nil
}

// ResolveIdentity verifies the session token and loads the account it was
// issued for. Any failure (bad signature, expiry, missing account) collapses
// to ErrUnauthenticated.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("session token rejected", slog.String("error", err.Error()))
		return nil, ErrUnauthenticated
	}

	account, err := s.companies.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return nil, ErrUnauthenticated
		}
		log.Error("failed to load account for session",
			slog.String("error", err.Error()),
			slog.String("company_id", claims.AccountID.String()))
		return nil, err
	}

	return IdentityFromAccount(account), nil
}

// GetProfile loads the identity's own account record.
func (s *AuthService) GetProfile(ctx context.Context, identity *Identity) (*domain.CompanyAccount, error) {
	account, err := s.companies.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}

// UpdateProfile applies a profile patch to the identity's own account.
func (s *AuthService) UpdateProfile(ctx context.Context, identity *Identity, in ProfileInput) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.companies.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return ErrUnauthenticated
		}
		return err
	}

	account.CompanyName = in.CompanyName
	account.Address = in.Address
	account.CompanyModel = in.CompanyModel
	account.CompanyEmployees = in.CompanyEmployees
	account.WorkingTime = in.WorkingTime
	account.WorkOvertime = in.WorkOvertime
	account.Description = in.Description
	account.CityID = in.CityID
	account.CompanyCity = in.CompanyCity
	if in.LogoPath != "" {
		account.Logo = in.LogoPath
	}

	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.companies.Update(ctx, account); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		log.Error("failed to update company profile",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return err
	}

	log.Info("company profile updated", slog.String("company_id", identity.ID.String()))
	return nil
}
