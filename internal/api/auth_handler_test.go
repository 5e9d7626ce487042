package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/mocks"
	"github.com/openhire/jobboard-api/internal/service"
	"github.com/openhire/jobboard-api/internal/store"
)

func newAuthHandler(companies *mocks.MockCompanyStore, verifier *mocks.MockPasswordVerifier) *AuthHandler {
	tokens := &mocks.MockJWTService{
		GenerateTokenFn: func(_ context.Context, _ uuid.UUID, _ string) (string, error) {
			return "signed-token", nil
		},
	}
	svc := service.NewAuthService(companies, &mocks.MockPasswordHasher{}, verifier, tokens, nil)
	return NewAuthHandler(svc, nil, 24*time.Hour, false, nil)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201 with success envelope", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{}
		handler := newAuthHandler(companies, &mocks.MockPasswordVerifier{})

		body := `{"email":"hr@acme.test","password":"hunter22","companyName":"Acme"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp shared.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			CreateFn: func(_ context.Context, _ *domain.CompanyAccount) error {
				return store.ErrEmailExists
			},
		}
		handler := newAuthHandler(companies, &mocks.MockPasswordVerifier{})

		body := `{"email":"hr@acme.test","password":"hunter22","companyName":"Acme"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp shared.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Code)
		assert.Equal(t, "duplicate_email", resp.Kind)
	})

	t.Run("malformed payload returns 400", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(&mocks.MockCompanyStore{}, &mocks.MockPasswordVerifier{})

		tests := []struct {
			name string
			body string
		}{
			{"invalid json", `{`},
			{"missing email", `{"password":"hunter22","companyName":"Acme"}`},
			{"bad email", `{"email":"nope","password":"hunter22","companyName":"Acme"}`},
			{"short password", `{"email":"hr@acme.test","password":"abc","companyName":"Acme"}`},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
				rec := httptest.NewRecorder()

				handler.Register(rec, req)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	account, err := domain.NewCompanyAccount("hr@acme.test", "hash", "Acme")
	require.NoError(t, err)

	t.Run("success sets session cookie and echoes token", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, _ string) (*domain.CompanyAccount, error) {
				return account, nil
			},
		}
		handler := newAuthHandler(companies, &mocks.MockPasswordVerifier{})

		body := `{"email":"hr@acme.test","password":"hunter22"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Code)
		assert.Equal(t, "signed-token", resp.Token)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, sessionCookieName, cookie.Name)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure, "secure only outside development when configured")
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, _ string) (*domain.CompanyAccount, error) {
				return nil, store.ErrCompanyNotFound
			},
		}
		handler := newAuthHandler(companies, &mocks.MockPasswordVerifier{})

		body := `{"email":"nobody@acme.test","password":"hunter22"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		t.Parallel()

		companies := &mocks.MockCompanyStore{
			GetByEmailFn: func(_ context.Context, _ string) (*domain.CompanyAccount, error) {
				return account, nil
			},
		}
		verifier := &mocks.MockPasswordVerifier{
			CompareFn: func(_, _ string) error {
				return assert.AnError
			},
		}
		handler := newAuthHandler(companies, verifier)

		body := `{"email":"hr@acme.test","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp shared.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_credentials", resp.Kind)
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	t.Parallel()

	account, err := domain.NewCompanyAccount("hr@acme.test", "hash", "Acme")
	require.NoError(t, err)

	t.Run("json body updates the profile", func(t *testing.T) {
		t.Parallel()

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
		handler := newAuthHandler(companies, &mocks.MockPasswordVerifier{})

		body := `{"companyName":"Acme Rebranded","description":"We build things"}`
		req := httptest.NewRequest(http.MethodPut, "/api/company/profile", strings.NewReader(body))
		req = req.WithContext(shared.WithIdentity(req.Context(), service.IdentityFromAccount(account)))
		rec := httptest.NewRecorder()

		handler.UpdateProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, updated)
		assert.Equal(t, "Acme Rebranded", updated.CompanyName)
		assert.Equal(t, "We build things", updated.Description)
	})

	t.Run("request without identity is rejected", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(&mocks.MockCompanyStore{}, &mocks.MockPasswordVerifier{})

		req := httptest.NewRequest(http.MethodPut, "/api/company/profile", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.UpdateProfile(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
