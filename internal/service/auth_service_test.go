package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/mocks"
	"github.com/openhire/jobboard-api/internal/service/auth"
	"github.com/openhire/jobboard-api/internal/store"
)

func testAccount(t *testing.T) *domain.CompanyAccount {
	t.Helper()
	account, err := domain.NewCompanyAccount("hr@acme.test", "hashed-secret", "Acme")
	require.NoError(t, err)
	return account
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("success hashes password before persisting", func(t *testing.T) {
		t.Parallel()

		var created *domain.CompanyAccount
		companies := &mocks.MockCompanyStore{
			CreateFn: func(_ context.Context, account *domain.CompanyAccount) error {
				created = account
				return nil
			},
		}
		hasher := &mocks.MockPasswordHasher{
			HashFn: func(password string) (string, error) {
				return "digest-of-" + password, nil
			},
		}

		svc := NewAuthService(companies, hasher, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.Register(context.Background(), RegisterInput{
			Email:       "HR@Acme.Test",
			Password:    "hunter22",
			CompanyName: "Acme",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "hr@acme.test", created.Email, "email should be normalized to lowercase")
		assert.Equal(t, "digest-of-hunter22", created.HashedPassword)
		assert.NotEqual(t, uuid.Nil, created.ID)
	})

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			CreateFn: func(_ context.Context, _ *domain.CompanyAccount) error {
				return store.ErrEmailExists
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.Register(context.Background(), RegisterInput{
			Email:       "hr@acme.test",
			Password:    "hunter22",
			CompanyName: "Acme",
		})

		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("invalid account maps to ErrInvalidInput", func(t *testing.T) {
		t.Parallel()

		svc := NewAuthService(&mocks.MockCompanyStore{}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.Register(context.Background(), RegisterInput{
			Email:       "not-an-email",
			Password:    "hunter22",
			CompanyName: "Acme",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	t.Run("success issues token with account claims", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, email string) (*domain.CompanyAccount, error) {
				assert.Equal(t, "hr@acme.test", email)
				return account, nil
			},
		}
		tokens := &mocks.MockJWTService{
			GenerateTokenFn: func(_ context.Context, accountID uuid.UUID, email string) (string, error) {
				assert.Equal(t, account.ID, accountID)
				assert.Equal(t, account.Email, email)
				return "signed-token", nil
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, tokens, nil)
		token, err := svc.Login(context.Background(), " HR@Acme.Test ", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("unknown email maps to ErrAccountNotFound", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, _ string) (*domain.CompanyAccount, error) {
				return nil, store.ErrCompanyNotFound
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		_, err := svc.Login(context.Background(), "nobody@acme.test", "hunter22")

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("wrong password maps to ErrInvalidPassword", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, _ string) (*domain.CompanyAccount, error) {
				return account, nil
			},
		}
		verifier := &mocks.MockPasswordVerifier{
			CompareFn: func(_, _ string) error {
				return errors.New("mismatch")
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, verifier, &mocks.MockJWTService{}, nil)
		_, err := svc.Login(context.Background(), "hr@acme.test", "wrong")

		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	t.Parallel()

	t.Run("valid token resolves to account identity", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		account.Logo = "uploads/logo.png"
		account.CompanyCity = "Hanoi"

		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(_ context.Context, id uuid.UUID) (*domain.CompanyAccount, error) {
				assert.Equal(t, account.ID, id)
				return account, nil
			},
		}
		tokens := &mocks.MockJWTService{
			ValidateTokenFn: func(_ context.Context, _ string) (*auth.Claims, error) {
				return &auth.Claims{AccountID: account.ID, Email: account.Email}, nil
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, tokens, nil)
		identity, err := svc.ResolveIdentity(context.Background(), "some-token")

		require.NoError(t, err)
		assert.Equal(t, account.ID, identity.ID)
		assert.Equal(t, account.Email, identity.Email)
		assert.Equal(t, "Acme", identity.CompanyName)
		assert.Equal(t, "uploads/logo.png", identity.Logo)
		assert.Equal(t, "Hanoi", identity.CompanyCity)
	})

	t.Run("invalid token collapses to ErrUnauthenticated", func(t *testing.T) {
		t.Parallel()

		tokens := &mocks.MockJWTService{
			ValidateTokenFn: func(_ context.Context, _ string) (*auth.Claims, error) {
				return nil, auth.ErrInvalidToken
			},
		}

		svc := NewAuthService(&mocks.MockCompanyStore{}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, tokens, nil)
		_, err := svc.ResolveIdentity(context.Background(), "garbage")

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("deleted account collapses to ErrUnauthenticated", func(t *testing.T) {
		t.Parallel()

		tokens := &mocks.MockJWTService{
			ValidateTokenFn: func(_ context.Context, _ string) (*auth.Claims, error) {
				return &auth.Claims{AccountID: uuid.New()}, nil
			},
		}
		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CompanyAccount, error) {
				return nil, store.ErrCompanyNotFound
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, tokens, nil)
		_, err := svc.ResolveIdentity(context.Background(), "some-token")

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("logo kept when no new path is supplied", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		account.Logo = "uploads/old-logo.png"

		var updated *domain.CompanyAccount
		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CompanyAccount, error) {
				return account, nil
			},
			UpdateFn: func(_ context.Context, acc *domain.CompanyAccount) error {
				updated = acc
				return nil
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.UpdateProfile(context.Background(), IdentityFromAccount(account), ProfileInput{
			CompanyName: "Acme Rebranded",
			Description: "We build things",
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Acme Rebranded", updated.CompanyName)
		assert.Equal(t, "uploads/old-logo.png", updated.Logo)
		assert.Equal(t, "hr@acme.test", updated.Email, "profile path never changes email")
		assert.Equal(t, "hashed-secret", updated.HashedPassword, "profile path never changes credentials")
	})

	t.Run("logo replaced when a new path is supplied", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		account.Logo = "uploads/old-logo.png"

		var updated *domain.CompanyAccount
		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CompanyAccount, error) {
				return account, nil
			},
			UpdateFn: func(_ context.Context, acc *domain.CompanyAccount) error {
				updated = acc
				return nil
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.UpdateProfile(context.Background(), IdentityFromAccount(account), ProfileInput{
			CompanyName: "Acme",
			LogoPath:    "uploads/new-logo.png",
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "uploads/new-logo.png", updated.Logo)
	})

	t.Run("empty company name maps to ErrInvalidInput", func(t *testing.T) {
		t.Parallel()

		account := testAccount(t)
		companies := &mocks.MockCompanyStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CompanyAccount, error) {
				return account, nil
			},
		}

		svc := NewAuthService(companies, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, &mocks.MockJWTService{}, nil)
		err := svc.UpdateProfile(context.Background(), IdentityFromAccount(account), ProfileInput{
			CompanyName: "",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
