package api

import (
	"log/slog"
	"net/http"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/platform/uploads"
	"github.com/openhire/jobboard-api/internal/service"
)

// JobHandler serves the authenticated company's job CRUD and listing.
type JobHandler struct {
	jobs   *service.JobService
	saver  uploads.Saver
	logger *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs *service.JobService, saver uploads.Saver, logger *slog.Logger) *JobHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{
		jobs:   jobs,
		saver:  saver,
		logger: logger.With(slog.String("component", "job_handler")),
	}
}

// readJobInput decodes a job payload from either JSON or multipart form
// data. Multipart "images" file parts are stored and their paths returned.
func (h *JobHandler) readJobInput(w http.ResponseWriter, r *http.Request) (service.JobInput, []string, bool) {
	var req JobRequest
	var imagePaths []string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid form data")
			return service.JobInput{}, nil, false
		}
		req = JobRequest{
			Title:        r.FormValue("title"),
			SalaryMin:    formInt(r, "salaryMin"),
			SalaryMax:    formInt(r, "salaryMax"),
			Position:     r.FormValue("position"),
			WorkingForm:  r.FormValue("workingForm"),
			Technologies: r.FormValue("technologies"),
		}
		if err := validate.Struct(&req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", validationMessage(err))
			return service.JobInput{}, nil, false
		}

		for _, file := range formFiles(r, "images") {
			path, err := h.saver.Save(file)
			if err != nil {
				h.logger.Error("failed to store image upload", slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"internal_error", "Failed to store uploaded file")
				return service.JobInput{}, nil, false
			}
			imagePaths = append(imagePaths, path)
		}
	} else {
		if msg, ok := decodeAndValidate(r, &req); !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
			return service.JobInput{}, nil, false
		}
	}

	return service.JobInput{
		Title:        req.Title,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Position:     req.Position,
		WorkingForm:  req.WorkingForm,
		Technologies: req.Technologies,
	}, imagePaths, true
}

// Create handles POST /api/company/jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	in, imagePaths, ok := h.readJobInput(w, r)
	if !ok {
		return
	}

	if err := h.jobs.Create(r.Context(), identity, in, imagePaths); err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Success("Job created"))
}

// List handles GET /api/company/jobs?page=N.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	page := queryInt(r, "page", 1)

	result, err := h.jobs.List(r.Context(), identity, page)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	items := make([]JobItem, 0, len(result.Jobs))
	for _, job := range result.Jobs {
		items = append(items, JobItem{
			ID:           job.ID,
			CompanyLogo:  job.CompanyLogo,
			Title:        job.Title,
			CompanyName:  job.CompanyName,
			SalaryMin:    job.SalaryMin,
			SalaryMax:    job.SalaryMax,
			Position:     job.Position,
			WorkingForm:  job.WorkingForm,
			CompanyCity:  job.CompanyCity,
			Technologies: job.Technologies,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobListResponse{
		Envelope:  shared.Success("Jobs loaded"),
		Jobs:      items,
		TotalPage: result.TotalPage,
	})
}

// jobRecord builds the editable record view of a job.
func jobRecord(job *domain.Job) JobRecord {
	return JobRecord{
		ID:           job.ID,
		Title:        job.Title,
		SalaryMin:    job.SalaryMin,
		SalaryMax:    job.SalaryMax,
		Position:     job.Position,
		WorkingForm:  job.WorkingForm,
		Technologies: job.Technologies,
		Images:       job.Images,
	}
}

// GetForEdit handles GET /api/company/jobs/{id}.
func (h *JobHandler) GetForEdit(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	jobID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid job ID")
		return
	}

	job, err := h.jobs.GetForEdit(r.Context(), identity, jobID)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobRecordResponse{
		Envelope: shared.Success("Job loaded"),
		Job:      jobRecord(job),
	})
}

// Update handles PUT /api/company/jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	jobID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid job ID")
		return
	}

	in, imagePaths, ok := h.readJobInput(w, r)
	if !ok {
		return
	}

	if err := h.jobs.Update(r.Context(), identity, jobID, in, imagePaths); err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("Job updated"))
}

// Delete handles DELETE /api/company/jobs/{id}.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	jobID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid job ID")
		return
	}

	if err := h.jobs.Delete(r.Context(), identity, jobID); err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("Job deleted"))
}
