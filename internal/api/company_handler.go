package api

import (
	"log/slog"
	"net/http"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/service"
)

// CompanyHandler serves the public, unauthenticated aggregation views.
type CompanyHandler struct {
	public *service.PublicService
	logger *slog.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(public *service.PublicService, logger *slog.Logger) *CompanyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyHandler{
		public: public,
		logger: logger.With(slog.String("component", "company_handler")),
	}
}

// companyPublic builds the public profile view of a company.
func companyPublic(detail *service.CompanyDetail) CompanyPublic {
	return CompanyPublic{
		ID:               detail.ID,
		Logo:             detail.Logo,
		CompanyName:      detail.CompanyName,
		Address:          detail.Address,
		CompanyModel:     detail.CompanyModel,
		CompanyEmployees: detail.CompanyEmployees,
		WorkingTime:      detail.WorkingTime,
		WorkOvertime:     detail.WorkOvertime,
		Description:      detail.Description,
	}
}

// List handles GET /api/companies?limit=N.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)

	summaries, err := h.public.ListCompanies(r.Context(), limit)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	items := make([]CompanyItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, CompanyItem{
			ID:          s.ID,
			Logo:        s.Logo,
			CompanyName: s.CompanyName,
			CityName:    s.CityName,
			TotalJob:    s.TotalJob,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyListResponse{
		Envelope:  shared.Success("Companies loaded"),
		Companies: items,
	})
}

// Detail handles GET /api/companies/{id}.
func (h *CompanyHandler) Detail(w http.ResponseWriter, r *http.Request) {
	companyID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid company ID")
		return
	}

	detail, jobs, err := h.public.GetCompanyDetail(r.Context(), companyID)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	items := make([]CompanyDetailJob, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, CompanyDetailJob{
			ID:           job.ID,
			CompanyLogo:  job.CompanyLogo,
			Title:        job.Title,
			CompanyName:  job.CompanyName,
			SalaryMin:    job.SalaryMin,
			SalaryMax:    job.SalaryMax,
			Position:     job.Position,
			WorkingForm:  job.WorkingForm,
			CityName:     job.CompanyCity,
			Technologies: job.Technologies,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyDetailResponse{
		Envelope: shared.Success("Company loaded"),
		Company:  companyPublic(detail),
		Jobs:     items,
	})
}

// JobDetail handles GET /api/jobs/{id}.
func (h *CompanyHandler) JobDetail(w http.ResponseWriter, r *http.Request) {
	jobID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid job ID")
		return
	}

	detail, err := h.public.GetJobDetail(r.Context(), jobID)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobDetailResponse{
		Envelope: shared.Success("Job loaded"),
		Job:      jobRecord(detail.Job),
		Company:  companyPublic(&detail.Company),
		CityName: detail.CityName,
	})
}

// Cities handles GET /api/cities.
func (h *CompanyHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.public.ListCities(r.Context())
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	items := make([]CityItem, 0, len(cities))
	for _, city := range cities {
		items = append(items, CityItem{ID: city.ID, Name: city.Name})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CityListResponse{
		Envelope: shared.Success("Cities loaded"),
		Cities:   items,
	})
}
