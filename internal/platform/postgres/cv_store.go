package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// CVStore implements the store.CVStore interface using a PostgreSQL
// database as the storage backend.
//
// cvs.job_id deliberately carries no foreign key: deleting a job leaves its
// CVs behind, and joined views drop them instead of erroring.
type CVStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCVStore creates a new PostgreSQL implementation of the CVStore
// interface.
func NewCVStore(db store.DBTX, logger *slog.Logger) *CVStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CVStore{
		db:     db,
		logger: logger.With(slog.String("component", "cv_store")),
	}
}

// Ensure CVStore implements store.CVStore interface
var _ store.CVStore = (*CVStore)(nil)

const cvColumns = `id, job_id, full_name, email, phone, viewed, status, created_at, updated_at`

// Create implements store.CVStore.Create.
func (s *CVStore) Create(ctx context.Context, cv *domain.CV) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cv.Validate(); err != nil {
		log.Warn("cv validation failed during create",
			slog.String("error", err.Error()),
			slog.String("cv_id", cv.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cvs (` + cvColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		cv.ID,
		cv.JobID,
		cv.FullName,
		cv.Email,
		cv.Phone,
		cv.Viewed,
		cv.Status,
		cv.CreatedAt,
		cv.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cv",
			slog.String("error", err.Error()),
			slog.String("cv_id", cv.ID.String()),
			slog.String("job_id", cv.JobID.String()))
		return MapError(err)
	}

	log.Info("cv created successfully",
		slog.String("cv_id", cv.ID.String()),
		slog.String("job_id", cv.JobID.String()))
	return nil
}

// GetByID implements store.CVStore.GetByID.
func (s *CVStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`

	var cv domain.CV
	var status string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&cv.ID,
		&cv.JobID,
		&cv.FullName,
		&cv.Email,
		&cv.Phone,
		&cv.Viewed,
		&status,
		&cv.CreatedAt,
		&cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCVNotFound
		}
		log.Error("failed to get cv by ID",
			slog.String("error", err.Error()),
			slog.String("cv_id", id.String()))
		return nil, MapError(err)
	}

	cv.Status = domain.CVStatus(status)
	return &cv, nil
}

// ListByJobIDs implements store.CVStore.ListByJobIDs.
func (s *CVStore) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]*domain.CV, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(jobIDs) == 0 {
		return []*domain.CV{}, nil
	}

	placeholders := make([]string, len(jobIDs))
	args := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `
		SELECT ` + cvColumns + `
		FROM cvs
		WHERE job_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cvs by job IDs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cvs := []*domain.CV{}
	for rows.Next() {
		var cv domain.CV
		var status string
		err := rows.Scan(
			&cv.ID,
			&cv.JobID,
			&cv.FullName,
			&cv.Email,
			&cv.Phone,
			&cv.Viewed,
			&status,
			&cv.CreatedAt,
			&cv.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan cv row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cv.Status = domain.CVStatus(status)
		cvs = append(cvs, &cv)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return cvs, nil
}

// SetViewed implements store.CVStore.SetViewed.
func (s *CVStore) SetViewed(ctx context.Context, id uuid.UUID, viewed bool) error {
	return s.setField(ctx, id, `viewed = $1`, viewed)
}

// SetStatus implements store.CVStore.SetStatus.
func (s *CVStore) SetStatus(ctx context.Context, id uuid.UUID, status domain.CVStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrInvalidCVStatus)
	}
	return s.setField(ctx, id, `status = $1`, string(status))
}

func (s *CVStore) setField(ctx context.Context, id uuid.UUID, assignment string, value any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE cvs SET ` + assignment + `, updated_at = $2 WHERE id = $3`
	result, err := s.db.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update cv",
			slog.String("error", err.Error()),
			slog.String("cv_id", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCVNotFound)
}
