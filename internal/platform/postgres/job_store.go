package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// JobStore implements the store.JobStore interface using a PostgreSQL
// database as the storage backend. The technologies and images lists are
// stored as JSONB columns.
type JobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewJobStore creates a new PostgreSQL implementation of the JobStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewJobStore(db store.DBTX, logger *slog.Logger) *JobStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &JobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

// Ensure JobStore implements store.JobStore interface
var _ store.JobStore = (*JobStore)(nil)

const jobColumns = `id, company_id, title, salary_min, salary_max, position,
	working_form, technologies, images, created_at, updated_at`

// marshalStrings encodes a string list for a JSONB column. A nil slice is
// stored as an empty list.
func marshalStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// Create implements store.JobStore.Create.
func (s *JobStore) Create(ctx context.Context, job *domain.Job) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := job.Validate(); err != nil {
		log.Warn("job validation failed during create",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	technologies, err := marshalStrings(job.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}
	images, err := marshalStrings(job.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.CompanyID,
		job.Title,
		job.SalaryMin,
		job.SalaryMax,
		job.Position,
		job.WorkingForm,
		technologies,
		images,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create job",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()),
			slog.String("company_id", job.CompanyID.String()))
		return MapError(err)
	}

	log.Info("job created successfully",
		slog.String("job_id", job.ID.String()),
		slog.String("company_id", job.CompanyID.String()))
	return nil
}

// GetByID implements store.JobStore.GetByID.
func (s *JobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetForCompany implements store.JobStore.GetForCompany. A job owned by a
// different company is indistinguishable from a missing one.
func (s *JobStore) GetForCompany(ctx context.Context, id, companyID uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND company_id = $2`
	return s.getOne(ctx, query, id, companyID)
}

func (s *JobStore) getOne(ctx context.Context, query string, args ...any) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, args...)
	job, err := scanJob(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrJobNotFound
		}
		log.Error("failed to get job", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return job, nil
}

// scanJob scans a job row shaped by jobColumns via the given scan function.
func scanJob(scan func(dest ...any) error) (*domain.Job, error) {
	var job domain.Job
	var technologies, images []byte

	err := scan(
		&job.ID,
		&job.CompanyID,
		&job.Title,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.Position,
		&job.WorkingForm,
		&technologies,
		&images,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(technologies, &job.Technologies); err != nil {
		return nil, fmt.Errorf("failed to decode technologies: %w", err)
	}
	if err := json.Unmarshal(images, &job.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}

	return &job, nil
}

// Update implements store.JobStore.Update. The row is matched on both the
// job ID and the owning company, so the owner reference can never move to
// another company through this path.
func (s *JobStore) Update(ctx context.Context, job *domain.Job) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := job.Validate(); err != nil {
		log.Warn("job validation failed during update",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	technologies, err := marshalStrings(job.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}
	images, err := marshalStrings(job.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	job.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE jobs
		SET title = $1, salary_min = $2, salary_max = $3, position = $4,
			working_form = $5, technologies = $6, images = $7, updated_at = $8
		WHERE id = $9 AND company_id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		job.Title,
		job.SalaryMin,
		job.SalaryMax,
		job.Position,
		job.WorkingForm,
		technologies,
		images,
		job.UpdatedAt,
		job.ID,
		job.CompanyID,
	)
	if err != nil {
		log.Error("failed to update job",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()),
			slog.String("company_id", job.CompanyID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrJobNotFound); err != nil {
		return err
	}

	log.Info("job updated successfully",
		slog.String("job_id", job.ID.String()),
		slog.String("company_id", job.CompanyID.String()))
	return nil
}

// Delete implements store.JobStore.Delete.
func (s *JobStore) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM jobs WHERE id = $1 AND company_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, companyID)
	if err != nil {
		log.Error("failed to delete job",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()),
			slog.String("company_id", companyID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrJobNotFound); err != nil {
		return err
	}

	log.Info("job deleted successfully",
		slog.String("job_id", id.String()),
		slog.String("company_id", companyID.String()))
	return nil
}

// ListByCompany implements store.JobStore.ListByCompany.
func (s *JobStore) ListByCompany(
	ctx context.Context,
	companyID uuid.UUID,
	limit, offset int,
) ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return s.list(ctx, query, companyID, limit, offset)
}

// ListAllByCompany implements store.JobStore.ListAllByCompany.
func (s *JobStore) ListAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, companyID)
}

func (s *JobStore) list(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query jobs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	jobs := []*domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			log.Error("failed to scan job row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return jobs, nil
}

// CountByCompany implements store.JobStore.CountByCompany.
func (s *JobStore) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	query := `SELECT COUNT(*) FROM jobs WHERE company_id = $1`
	if err := s.db.QueryRowContext(ctx, query, companyID).Scan(&count); err != nil {
		log.Error("failed to count jobs",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID.String()))
		return 0, MapError(err)
	}

	return count, nil
}
