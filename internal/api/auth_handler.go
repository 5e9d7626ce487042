package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/uploads"
	"github.com/openhire/jobboard-api/internal/service"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "token"

// AuthHandler serves registration, login, and the authenticated company's
// profile.
type AuthHandler struct {
	auth           *service.AuthService
	saver          uploads.Saver
	cookieLifetime time.Duration
	secureCookies  bool
	logger         *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. secureCookies marks the session
// cookie Secure, for production deployments behind TLS.
func NewAuthHandler(
	auth *service.AuthService,
	saver uploads.Saver,
	cookieLifetime time.Duration,
	secureCookies bool,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		auth:           auth,
		saver:          saver,
		cookieLifetime: cookieLifetime,
		secureCookies:  secureCookies,
		logger:         logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	cityID, err := optionalUUID(req.CityID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "cityId must be a valid ID")
		return
	}

	err = h.auth.Register(r.Context(), service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Address:     req.Address,
		CityID:      cityID,
		CompanyCity: req.CompanyCity,
	})
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Success("Registration successful"))
}

// Login handles POST /api/auth/login. On success the session token is set as
// an HTTP-only cookie and echoed in the body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Envelope: shared.Success("Login successful"),
		Token:    token,
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("Logged out"))
}

// profileView builds the authenticated profile projection of an account.
func profileView(account *domain.CompanyAccount) CompanyProfile {
	p := CompanyProfile{
		ID:               account.ID,
		Email:            account.Email,
		CompanyName:      account.CompanyName,
		Logo:             account.Logo,
		Address:          account.Address,
		CompanyModel:     account.CompanyModel,
		CompanyEmployees: account.CompanyEmployees,
		WorkingTime:      account.WorkingTime,
		WorkOvertime:     account.WorkOvertime,
		Description:      account.Description,
		CompanyCity:      account.CompanyCity,
	}
	if account.CityID.Valid {
		p.CityID = account.CityID.UUID.String()
	}
	return p
}

// GetProfile handles GET /api/company/profile.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	account, err := h.auth.GetProfile(r.Context(), identity)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		Envelope: shared.Success("Profile loaded"),
		Company:  profileView(account),
	})
}

// UpdateProfile handles PUT /api/company/profile. Accepts JSON or multipart
// form data; a multipart "logo" file part replaces the stored logo.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	var req ProfileRequest
	logoPath := ""

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid form data")
			return
		}
		req = ProfileRequest{
			CompanyName:      r.FormValue("companyName"),
			Address:          r.FormValue("address"),
			CompanyModel:     r.FormValue("companyModel"),
			CompanyEmployees: r.FormValue("companyEmployees"),
			WorkingTime:      r.FormValue("workingTime"),
			WorkOvertime:     r.FormValue("workOvertime"),
			Description:      r.FormValue("description"),
			CityID:           r.FormValue("cityId"),
			CompanyCity:      r.FormValue("companyCity"),
		}
		if err := validate.Struct(&req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", validationMessage(err))
			return
		}

		if files := formFiles(r, "logo"); len(files) > 0 {
			path, err := h.saver.Save(files[0])
			if err != nil {
				h.logger.Error("failed to store logo upload", slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"internal_error", "Failed to store uploaded file")
				return
			}
			logoPath = path
		}
	} else {
		if msg, ok := decodeAndValidate(r, &req); !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
			return
		}
	}

	cityID, err := optionalUUID(req.CityID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "cityId must be a valid ID")
		return
	}

	err = h.auth.UpdateProfile(r.Context(), identity, service.ProfileInput{
		CompanyName:      req.CompanyName,
		Address:          req.Address,
		CompanyModel:     req.CompanyModel,
		CompanyEmployees: req.CompanyEmployees,
		WorkingTime:      req.WorkingTime,
		WorkOvertime:     req.WorkOvertime,
		Description:      req.Description,
		CityID:           cityID,
		CompanyCity:      req.CompanyCity,
		LogoPath:         logoPath,
	})
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("Profile updated"))
}
