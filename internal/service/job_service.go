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
	"github.com/openhire/jobboard-api/internal/store"
)

// JobInput holds the fields accepted when creating or updating a job.
// Technologies arrives as one comma-delimited string and is normalized into
// an ordered list; salaries are normalized to non-negative integers.
type JobInput struct {
	Title        string
	SalaryMin    int
	SalaryMax    int
	Position     string
	WorkingForm  string
	Technologies string
}

// JobSummary is one item of a job listing, enriched with the owning
// company's display fields.
type JobSummary struct {
	ID           uuid.UUID
	CompanyLogo  string
	Title        string
	CompanyName  string
	SalaryMin    int
	SalaryMax    int
	Position     string
	WorkingForm  string
	CompanyCity  string
	Technologies []string
}

// JobPage is one page of a company's job listing.
type JobPage struct {
	Jobs      []JobSummary
	TotalPage int
}

// JobService implements the ownership-scoped job operations. Every operation
// requires a resolved Identity; the owning company reference always equals
// the identity's ID regardless of input.
type JobService struct {
	jobs     store.JobStore
	pageSize int
	logger   *slog.Logger
}

// NewJobService creates a new JobService. pageSize is the fixed page size
// for job listings.
func NewJobService(jobs store.JobStore, pageSize int, logger *slog.Logger) *JobService {
	if pageSize <= 0 {
		pageSize = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobs:     jobs,
		pageSize: pageSize,
		logger:   logger.With(slog.String("component", "job_service")),
	}
}

// splitTechnologies normalizes a comma-delimited string into an ordered list.
// An empty input yields an empty list, never nil.
func splitTechnologies(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	technologies := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			technologies = append(technologies, trimmed)
		}
	}
	return technologies
}

// clampSalary normalizes a salary to a non-negative integer.
func clampSalary(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// applyInput writes the normalized input fields onto the job. The owner
// reference is pinned to the identity and never taken from input.
func applyInput(job *domain.Job, identity *Identity, in JobInput, uploadedFilePaths []string) {
	job.CompanyID = identity.ID
	job.Title = strings.TrimSpace(in.Title)
	job.SalaryMin = clampSalary(in.SalaryMin)
	job.SalaryMax = clampSalary(in.SalaryMax)
	job.Position = in.Position
	job.WorkingForm = in.WorkingForm
	job.Technologies = splitTechnologies(in.Technologies)
	job.Images = uploadedFilePaths
	if job.Images == nil {
		job.Images = []string{}
	}
}

// Create persists a new job owned by the identity. Any persistence-layer
// rejection is reported generically as ErrInvalidInput.
func (s *JobService) Create(
	ctx context.Context,
	identity *Identity,
	in JobInput,
	uploadedFilePaths []string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := domain.NewJob(identity.ID, strings.TrimSpace(in.Title))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	applyInput(job, identity, in, uploadedFilePaths)

	if err := s.jobs.Create(ctx, job); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		log.Error("failed to create job",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return err
	}

	log.Info("job created",
		slog.String("job_id", job.ID.String()),
		slog.String("company_id", identity.ID.String()))
	return nil
}

// List returns one page of the identity's jobs, newest first, each summary
// enriched from the identity's own profile snapshot. TotalPage is
// ceil(totalMatching / pageSize).
func (s *JobService) List(ctx context.Context, identity *Identity, page int) (*JobPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	total, err := s.jobs.CountByCompany(ctx, identity.ID)
	if err != nil {
		log.Error("failed to count jobs",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return nil, err
	}

	p := Paginate(total, page, s.pageSize)

	jobs, err := s.jobs.ListByCompany(ctx, identity.ID, s.pageSize, p.Skip)
	if err != nil {
		log.Error("failed to list jobs",
			slog.String("error", err.Error()),
			slog.String("company_id", identity.ID.String()))
		return nil, err
	}

	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, JobSummary{
			ID:           job.ID,
			CompanyLogo:  identity.Logo,
			Title:        job.Title,
			CompanyName:  identity.CompanyName,
			SalaryMin:    job.SalaryMin,
			SalaryMax:    job.SalaryMax,
			Position:     job.Position,
			WorkingForm:  job.WorkingForm,
			CompanyCity:  identity.CompanyCity,
			Technologies: job.Technologies,
		})
	}

	return &JobPage{Jobs: summaries, TotalPage: p.TotalPages}, nil
}

// GetForEdit loads a job scoped to the identity. A job owned by another
// company fails with ErrJobNotFound, identical to a missing job.
func (s *JobService) GetForEdit(ctx context.Context, identity *Identity, jobID uuid.UUID) (*domain.Job, error) {
	return s.getOwned(ctx, identity, jobID)
}

// getOwned is the shared ownership check used by edit, update, and delete.
func (s *JobService) getOwned(ctx context.Context, identity *Identity, jobID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobs.GetForCompany(ctx, jobID, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Update applies the same normalization as Create to an owned job and
// persists it keyed by (id, companyID).
func (s *JobService) Update(
	ctx context.Context,
	identity *Identity,
	jobID uuid.UUID,
	in JobInput,
	uploadedFilePaths []string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := s.getOwned(ctx, identity, jobID)
	if err != nil {
		return err
	}

	applyInput(job, identity, in, uploadedFilePaths)

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return ErrJobNotFound
		}
		if errors.Is(err, store.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		log.Error("failed to update job",
			slog.String("error", err.Error()),
			slog.String("job_id", jobID.String()),
			slog.String("company_id", identity.ID.String()))
		return err
	}

	log.Info("job updated",
		slog.String("job_id", jobID.String()),
		slog.String("company_id", identity.ID.String()))
	return nil
}

// Delete removes an owned job keyed by (id, companyID).
func (s *JobService) Delete(ctx context.Context, identity *Identity, jobID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.getOwned(ctx, identity, jobID); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, jobID, identity.ID); err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return ErrJobNotFound
		}
		log.Error("failed to delete job",
			slog.String("error", err.Error()),
			slog.String("job_id", jobID.String()),
			slog.String("company_id", identity.ID.String()))
		return err
	}

	log.Info("job deleted",
		slog.String("job_id", jobID.String()),
		slog.String("company_id", identity.ID.String()))
	return nil
}
