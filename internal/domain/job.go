package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for jobs.
var (
	ErrEmptyJobID         = errors.New("job ID cannot be empty")
	ErrEmptyJobCompanyID  = errors.New("job company ID cannot be empty")
	ErrEmptyJobTitle      = errors.New("job title cannot be empty")
	ErrNegativeSalary     = errors.New("salary cannot be negative")
	ErrSalaryRangeInvalid = errors.New("salary minimum cannot exceed maximum")
)

// Job represents a job posting owned by a single company account.
// CompanyID is set once at creation and never changes afterwards.
type Job struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	Title        string    `json:"title"`
	SalaryMin    int       `json:"salary_min"`
	SalaryMax    int       `json:"salary_max"`
	Position     string    `json:"position,omitempty"`
	WorkingForm  string    `json:"working_form,omitempty"`
	Technologies []string  `json:"technologies"`
	Images       []string  `json:"images"` // File paths from the upload collaborator
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewJob creates a new Job owned by the given company with a fresh ID and
// timestamps. Returns an error if validation fails.
func NewJob(companyID uuid.UUID, title string) (*Job, error) {
	now := time.Now().UTC()
	job := &Job{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Title:        title,
		Technologies: []string{},
		Images:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks that the Job has valid data.
func (j *Job) Validate() error {
	if j.ID == uuid.Nil {
		return ErrEmptyJobID
	}
	if j.CompanyID == uuid.Nil {
		return ErrEmptyJobCompanyID
	}
	if j.Title == "" {
		return ErrEmptyJobTitle
	}
	if j.SalaryMin < 0 || j.SalaryMax < 0 {
		return ErrNegativeSalary
	}
	if j.SalaryMax > 0 && j.SalaryMin > j.SalaryMax {
		return ErrSalaryRangeInvalid
	}
	return nil
}
