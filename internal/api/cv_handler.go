package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/service"
)

// CVHandler serves the public CV submission and the authenticated company's
// CV review workflow.
type CVHandler struct {
	cvs    *service.CVService
	logger *slog.Logger
}

// NewCVHandler creates a new CVHandler.
func NewCVHandler(cvs *service.CVService, logger *slog.Logger) *CVHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CVHandler{
		cvs:    cvs,
		logger: logger.With(slog.String("component", "cv_handler")),
	}
}

// Submit handles POST /api/cvs, the public applicant submission.
func (h *CVHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitCVRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "jobId must be a valid ID")
		return
	}

	err = h.cvs.Submit(r.Context(), service.SubmitCVInput{
		JobID:    jobID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Success("CV submitted"))
}

// List handles GET /api/company/cvs.
func (h *CVHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	summaries, err := h.cvs.ListForCompany(r.Context(), identity)
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	items := make([]CVItem, 0, len(summaries))
	for _, cv := range summaries {
		items = append(items, CVItem{
			ID:          cv.ID,
			JobTitle:    cv.JobTitle,
			FullName:    cv.FullName,
			Email:       cv.Email,
			Phone:       cv.Phone,
			SalaryMin:   cv.JobSalaryMin,
			SalaryMax:   cv.JobSalaryMax,
			Position:    cv.JobPosition,
			WorkingForm: cv.JobWorkingForm,
			Viewed:      cv.Viewed,
			Status:      string(cv.Status),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CVListResponse{
		Envelope: shared.Success("CVs loaded"),
		CVs:      items,
	})
}

// MarkViewed handles PATCH /api/company/cvs/{id}/viewed.
func (h *CVHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	cvID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid CV ID")
		return
	}

	if err := h.cvs.MarkViewed(r.Context(), identity, cvID); err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("CV marked as viewed"))
}

// UpdateStatus handles PATCH /api/company/cvs/{id}/status.
func (h *CVHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthenticated", "Authentication required")
		return
	}

	cvID, err := urlParamUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", "Invalid CV ID")
		return
	}

	var req CVStatusRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	err = h.cvs.UpdateStatus(r.Context(), identity, cvID, domain.CVStatus(req.Status))
	if err != nil {
		status, kind, msg := mapServiceError(err)
		shared.RespondWithError(w, r, status, kind, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Success("CV status updated"))
}
