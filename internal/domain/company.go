package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for company accounts.
var (
	ErrEmptyCompanyID      = errors.New("company ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyCompanyName    = errors.New("company name cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// CompanyAccount represents a registered company able to publish job postings.
// The plaintext password never lives on this struct; callers hash it before
// constructing an account.
type CompanyAccount struct {
	ID               uuid.UUID     `json:"id"`
	Email            string        `json:"email"`
	HashedPassword   string        `json:"-"` // Never expose the password hash in JSON
	CompanyName      string        `json:"company_name"`
	Logo             string        `json:"logo,omitempty"` // File path set by the upload collaborator
	Address          string        `json:"address,omitempty"`
	CompanyModel     string        `json:"company_model,omitempty"`
	CompanyEmployees string        `json:"company_employees,omitempty"`
	WorkingTime      string        `json:"working_time,omitempty"`
	WorkOvertime     string        `json:"work_overtime,omitempty"`
	Description      string        `json:"description,omitempty"`
	CityID           uuid.NullUUID `json:"city_id,omitempty"` // Optional reference to a City
	CompanyCity      string        `json:"company_city,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// NewCompanyAccount creates a new CompanyAccount with a fresh ID and
// timestamps. The hashedPassword must already be a bcrypt digest.
// Returns an error if validation fails.
func NewCompanyAccount(email, hashedPassword, companyName string) (*CompanyAccount, error) {
	now := time.Now().UTC()
	account := &CompanyAccount{
		ID:             uuid.New(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		HashedPassword: hashedPassword,
		CompanyName:    strings.TrimSpace(companyName),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks that the CompanyAccount has valid data.
func (c *CompanyAccount) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCompanyID
	}
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if c.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if c.CompanyName == "" {
		return ErrEmptyCompanyName
	}
	return nil
}
