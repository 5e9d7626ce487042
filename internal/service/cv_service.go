package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// SubmitCVInput holds the fields of a public CV submission.
type SubmitCVInput struct {
	JobID    uuid.UUID
	FullName string
	Email    string
	Phone    string
}

// CVSummary is one item of a company's CV listing, enriched with the owning
// job's display fields.
type CVSummary struct {
	ID             uuid.UUID
	JobTitle       string
	FullName       string
	Email          string
	Phone          string
	JobSalaryMin   int
	JobSalaryMax   int
	JobPosition    string
	JobWorkingForm string
	Viewed         bool
	Status         domain.CVStatus
}

// CVService implements the applicant submission flow and the owning
// company's CV workflow.
type CVService struct {
	cvs    store.CVStore
	jobs   store.JobStore
	logger *slog.Logger
}

// NewCVService creates a new CVService with the given dependencies.
func NewCVService(cvs store.CVStore, jobs store.JobStore, logger *slog.Logger) *CVService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CVService{
		cvs:    cvs,
		jobs:   jobs,
		logger: logger.With(slog.String("component", "cv_service")),
	}
}

// Submit persists a new CV against an existing job. Fails with
// ErrJobNotFound when the job does not exist at submission time.
func (s *CVService) Submit(ctx context.Context, in SubmitCVInput) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	cv, err := domain.NewCV(in.JobID, in.FullName, in.Email, in.Phone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.cvs.Create(ctx, cv); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		log.Error("failed to create cv",
			slog.String("error", err.Error()),
			slog.String("job_id", in.JobID.String()))
		return err
	}

	log.Info("cv submitted",
		slog.String("cv_id", cv.ID.String()),
		slog.String("job_id", in.JobID.String()))
	return nil
}

// ListForCompany returns all CVs submitted against the identity's jobs,
// newest first, each enriched with its owning job's display fields. A CV
// whose job lookup fails (deleted job) is silently dropped from the result.
func (s *CVService) ListForCompany(ctx context.Context, identity *Identity) ([]CVSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	jobs, err := s.jobs.ListAllByCompany(ctx, identity.ID)
	if err != nil {
		log.Error("failed to list company jobs",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	cvs, err := s.cvs.ListByJobIDs(ctx, jobIDs)
	if err != nil {
		log.Error("failed to list cvs",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return nil, err
	}

	summaries := make([]CVSummary, 0, len(cvs))
	for _, cv := range cvs {
		job, err := s.jobs.GetByID(ctx, cv.JobID)
		if err != nil {
			if errors.Is(err, store.ErrJobNotFound) {
				// Dangling reference: the job was deleted after
				// submission. Drop the CV from the view.
				continue
			}
			return nil, err
		}

		summaries = append(summaries, CVSummary{
			ID:             cv.ID,
			JobTitle:       job.Title,
			FullName:       cv.FullName,
			Email:          cv.Email,
			Phone:          cv.Phone,
			JobSalaryMin:   job.SalaryMin,
			JobSalaryMax:   job.SalaryMax,
			JobPosition:    job.Position,
			JobWorkingForm: job.WorkingForm,
			Viewed:         cv.Viewed,
			Status:         cv.Status,
		})
	}

	return summaries, nil
}

// getOwned loads a CV scoped to the identity through its owning job. A CV
// belonging to another company's job fails with ErrCVNotFound, identical to
// a missing CV.
func (s *CVService) getOwned(ctx context.Context, identity *Identity, cvID uuid.UUID) (*domain.CV, error) {
	cv, err := s.cvs.GetByID(ctx, cvID)
	if err != nil {
		if errors.Is(err, store.ErrCVNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, err
	}

	if _, err := s.jobs.GetForCompany(ctx, cv.JobID, identity.ID); err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, err
	}

	return cv, nil
}

// MarkViewed flags an owned CV as viewed.
func (s *CVService) MarkViewed(ctx context.Context, identity *Identity, cvID uuid.UUID) error {
	cv, err := s.getOwned(ctx, identity, cvID)
	if err != nil {
		return err
	}

	if err := s.cvs.SetViewed(ctx, cv.ID, true); err != nil {
		if errors.Is(err, store.ErrCVNotFound) {
			return ErrCVNotFound
		}
		return err
	}
	return nil
}

// UpdateStatus moves an owned CV to a new review state.
func (s *CVService) UpdateStatus(
	ctx context.Context,
	identity *Identity,
	cvID uuid.UUID,
	status domain.CVStatus,
) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidCVStatus)
	}

	cv, err := s.getOwned(ctx, identity, cvID)
	if err != nil {
		return err
	}

	if err := s.cvs.SetStatus(ctx, cv.ID, status); err != nil {
		if errors.Is(err, store.ErrCVNotFound) {
			return ErrCVNotFound
		}
		return err
	}
	return nil
}
