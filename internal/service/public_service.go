package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/logger"
	"github.com/openhire/jobboard-api/internal/store"
)

// CompanySummary is one item of the public company list.
type CompanySummary struct {
	ID          uuid.UUID
	Logo        string
	CompanyName string
	CityName    string
	TotalJob    int64
}

// CompanyDetail is the public profile projection of a company account. It
// deliberately excludes the email and password hash.
type CompanyDetail struct {
	ID               uuid.UUID
	Logo             string
	CompanyName      string
	Address          string
	CompanyModel     string
	CompanyEmployees string
	WorkingTime      string
	WorkOvertime     string
	Description      string
}

// JobDetail is the public view of a single job posting, enriched with the
// owning company's public projection and resolved city name.
type JobDetail struct {
	Job      *domain.Job
	Company  CompanyDetail
	CityName string
}

// PublicService assembles read-only views by joining across repositories,
// since the store has no native join.
type PublicService struct {
	companies        store.CompanyStore
	jobs             store.JobStore
	cities           store.CityStore
	companyListLimit int
	logger           *slog.Logger
}

// NewPublicService creates a new PublicService. companyListLimit caps the
// company list when the caller does not supply a limit.
func NewPublicService(
	companies store.CompanyStore,
	jobs store.JobStore,
	cities store.CityStore,
	companyListLimit int,
	logger *slog.Logger,
) *PublicService {
	if companyListLimit <= 0 {
		companyListLimit = 12
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicService{
		companies:        companies,
		jobs:             jobs,
		cities:           cities,
		companyListLimit: companyListLimit,
		logger:           logger.With(slog.String("component", "public_service")),
	}
}

// cityName resolves a city reference to its display name; an unresolved or
// absent reference yields an empty string.
func (s *PublicService) cityName(ctx context.Context, ref uuid.NullUUID) string {
	if !ref.Valid {
		return ""
	}
	city, err := s.cities.GetByID(ctx, ref.UUID)
	if err != nil {
		return ""
	}
	return city.Name
}

// publicProjection builds the public profile view of an account.
func publicProjection(account *domain.CompanyAccount) CompanyDetail {
	return CompanyDetail{
		ID:               account.ID,
		Logo:             account.Logo,
		CompanyName:      account.CompanyName,
		Address:          account.Address,
		CompanyModel:     account.CompanyModel,
		CompanyEmployees: account.CompanyEmployees,
		WorkingTime:      account.WorkingTime,
		WorkOvertime:     account.WorkOvertime,
		Description:      account.Description,
	}
}

// ListCompanies returns up to limit companies, each enriched with its
// resolved city name and job count. A non-positive limit falls back to the
// configured default. The per-item lookups are sequential; fine at this
// scale.
func (s *PublicService) ListCompanies(ctx context.Context, limit int) ([]CompanySummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = s.companyListLimit
	}

	accounts, err := s.companies.List(ctx, limit)
	if err != nil {
		log.Error("failed to list companies", slog.String("error", err.Error()))
		return nil, err
	}

	summaries := make([]CompanySummary, 0, len(accounts))
	for _, account := range accounts {
		totalJob, err := s.jobs.CountByCompany(ctx, account.ID)
		if err != nil {
			log.Error("failed to count company jobs",
				slog.String("error", err.Error()),
				slog.String("company_id", account.ID.String()))
			return nil, err
		}

		summaries = append(summaries, CompanySummary{
			ID:          account.ID,
			Logo:        account.Logo,
			CompanyName: account.CompanyName,
			CityName:    s.cityName(ctx, account.CityID),
			TotalJob:    totalJob,
		})
	}

	return summaries, nil
}

// GetCompanyDetail returns the public profile of a company plus all of its
// jobs, newest first. The city is resolved once and shared across all jobs
// in the response. Fails with ErrCompanyNotFound for an unknown ID.
func (s *PublicService) GetCompanyDetail(
	ctx context.Context,
	companyID uuid.UUID,
) (*CompanyDetail, []JobSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return nil, nil, ErrCompanyNotFound
		}
		log.Error("failed to load company",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID.String()))
		return nil, nil, err
	}

	jobs, err := s.jobs.ListAllByCompany(ctx, account.ID)
	if err != nil {
		log.Error("failed to list company jobs",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID.String()))
		return nil, nil, err
	}

	cityName := s.cityName(ctx, account.CityID)

	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, JobSummary{
			ID:           job.ID,
			CompanyLogo:  account.Logo,
			Title:        job.Title,
			CompanyName:  account.CompanyName,
			SalaryMin:    job.SalaryMin,
			SalaryMax:    job.SalaryMax,
			Position:     job.Position,
			WorkingForm:  job.WorkingForm,
			CompanyCity:  cityName,
			Technologies: job.Technologies,
		})
	}

	detail := publicProjection(account)
	return &detail, summaries, nil
}

// GetJobDetail returns the public view of a single job posting. Fails with
// ErrJobNotFound when the job (or its owning company) is missing.
func (s *PublicService) GetJobDetail(ctx context.Context, jobID uuid.UUID) (*JobDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		log.Error("failed to load job",
			slog.String("error", err.Error()),
			slog.String("job_id", jobID.String()))
		return nil, err
	}

	account, err := s.companies.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrCompanyNotFound) {
			return nil, ErrJobNotFound
		}
		log.Error("failed to load job's company",
			slog.String("error", err.Error()),
			slog.String("job_id", jobID.String()))
		return nil, err
	}

	return &JobDetail{
		Job:      job,
		Company:  publicProjection(account),
		CityName: s.cityName(ctx, account.CityID),
	}, nil
}

// ListCities returns the city reference data.
func (s *PublicService) ListCities(ctx context.Context) ([]*domain.City, error) {
	return s.cities.List(ctx)
}
