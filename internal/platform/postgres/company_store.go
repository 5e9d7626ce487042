package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// CompanyStore implements the store.CompanyStore interface using a
// PostgreSQL database as the storage backend.
type CompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCompanyStore creates a new PostgreSQL implementation of the
// CompanyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewCompanyStore(db store.DBTX, logger *slog.Logger) *CompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

// Ensure CompanyStore implements store.CompanyStore interface
var _ store.CompanyStore = (*CompanyStore)(nil)

const companyColumns = `id, email, hashed_password, company_name, logo, address,
	company_model, company_employees, working_time, work_overtime, description,
	city_id, company_city, created_at, updated_at`

// Create implements store.CompanyStore.Create.
// Returns store.ErrEmailExists when the email is already registered.
func (s *CompanyStore) Create(ctx context.Context, account *domain.CompanyAccount) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("company validation failed during create",
			slog.String("error", err.Error()),
			slog.String("company_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Email,
		account.HashedPassword,
		account.CompanyName,
		account.Logo,
		account.Address,
		account.CompanyModel,
		account.CompanyEmployees,
		account.WorkingTime,
		account.WorkOvertime,
		account.Description,
		account.CityID,
		account.CompanyCity,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate email during company creation",
				slog.String("company_id", account.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create company",
			slog.String("error", err.Error()),
			slog.String("company_id", account.ID.String()))
		return MapError(err)
	}

	log.Info("company created successfully",
		slog.String("company_id", account.ID.String()))
	return nil
}

// GetByID implements store.CompanyStore.GetByID.
func (s *CompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyAccount, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByEmail implements store.CompanyStore.GetByEmail.
func (s *CompanyStore) GetByEmail(ctx context.Context, email string) (*domain.CompanyAccount, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = $1`
	return s.getOne(ctx, query, email)
}

func (s *CompanyStore) getOne(ctx context.Context, query string, arg any) (*domain.CompanyAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account domain.CompanyAccount
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.HashedPassword,
		&account.CompanyName,
		&account.Logo,
		&account.Address,
		&account.CompanyModel,
		&account.CompanyEmployees,
		&account.WorkingTime,
		&account.WorkOvertime,
		&account.Description,
		&account.CityID,
		&account.CompanyCity,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCompanyNotFound
		}
		log.Error("failed to get company", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &account, nil
}

// Update implements store.CompanyStore.Update.
func (s *CompanyStore) Update(ctx context.Context, account *domain.CompanyAccount) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("company validation failed during update",
			slog.String("error", err.Error()),
			slog.String("company_id", account.ID.String()))
		return err
	}

	account.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE companies
		SET email = $1, hashed_password = $2, company_name = $3, logo = $4,
			address = $5, company_model = $6, company_employees = $7,
			working_time = $8, work_overtime = $9, description = $10,
			city_id = $11, company_city = $12, updated_at = $13
		WHERE id = $14
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Email,
		account.HashedPassword,
		account.CompanyName,
		account.Logo,
		account.Address,
		account.CompanyModel,
		account.CompanyEmployees,
		account.WorkingTime,
		account.WorkOvertime,
		account.Description,
		account.CityID,
		account.CompanyCity,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to update company",
			slog.String("error", err.Error()),
			slog.String("company_id", account.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCompanyNotFound); err != nil {
		return err
	}

	log.Info("company updated successfully",
		slog.String("company_id", account.ID.String()))
	return nil
}

// List implements store.CompanyStore.List.
func (s *CompanyStore) List(ctx context.Context, limit int) ([]*domain.CompanyAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + companyColumns + ` FROM companies LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to list companies", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	accounts := []*domain.CompanyAccount{}
	for rows.Next() {
		var account domain.CompanyAccount
		err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.HashedPassword,
			&account.CompanyName,
			&account.Logo,
			&account.Address,
			&account.CompanyModel,
			&account.CompanyEmployees,
			&account.WorkingTime,
			&account.WorkOvertime,
			&account.Description,
			&account.CityID,
			&account.CompanyCity,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan company row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return accounts, nil
}
