package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CVStatus represents the review state of a submitted CV.
type CVStatus string

// Valid CV review states.
const (
	CVStatusPending  CVStatus = "pending"
	CVStatusApproved CVStatus = "approved"
	CVStatusRejected CVStatus = "rejected"
)

// IsValid reports whether the status is one of the known review states.
func (s CVStatus) IsValid() bool {
	switch s {
	case CVStatusPending, CVStatusApproved, CVStatusRejected:
		return true
	}
	return false
}

// Common validation errors for CVs.
var (
	ErrEmptyCVID       = errors.New("CV ID cannot be empty")
	ErrEmptyCVJobID    = errors.New("CV job ID cannot be empty")
	ErrEmptyCVFullName = errors.New("CV full name cannot be empty")
	ErrEmptyCVEmail    = errors.New("CV email cannot be empty")
)

// CV represents an application submitted against a job posting.
// JobID must reference an existing Job at creation time; a CV whose job was
// later deleted is tolerated and simply excluded from joined views.
type CV struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Viewed    bool      `json:"viewed"`
	Status    CVStatus  `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCV creates a new CV against the given job with a fresh ID, pending
// status, and timestamps. Returns an error if validation fails.
func NewCV(jobID uuid.UUID, fullName, email, phone string) (*CV, error) {
	now := time.Now().UTC()
	cv := &CV{
		ID:        uuid.New(),
		JobID:     jobID,
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		Viewed:    false,
		Status:    CVStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := cv.Validate(); err != nil {
		return nil, err
	}

	return cv, nil
}

// Validate checks that the CV has valid data.
func (c *CV) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCVID
	}
	if c.JobID == uuid.Nil {
		return ErrEmptyCVJobID
	}
	if c.FullName == "" {
		return ErrEmptyCVFullName
	}
	if c.Email == "" {
		return ErrEmptyCVEmail
	}
	if !c.Status.IsValid() {
		return ErrInvalidCVStatus
	}
	return nil
}
