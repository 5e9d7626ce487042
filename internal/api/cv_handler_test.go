package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/mocks"
	"github.com/openhire/jobboard-api/internal/service"
	"github.com/openhire/jobboard-api/internal/store"
)

func TestCVHandler_Submit(t *testing.T) {
	t.Parallel()

	t.Run("valid submission returns 201", func(t *testing.T) {
		t.Parallel()

		job, err := domain.NewJob(uuid.New(), "Backend Engineer")
		require.NoError(t, err)

		jobs := &mocks.MockJobStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Job, error) {
				return job, nil
			},
		}
		var created *domain.CV
		cvs := &mocks.MockCVStore{
			CreateFn: func(_ context.Context, cv *domain.CV) error {
				created = cv
				return nil
			},
		}
		handler := NewCVHandler(service.NewCVService(cvs, jobs, nil), nil)

		body := `{"jobId":"` + job.ID.String() + `","fullName":"Jordan Doe","email":"jordan@mail.test","phone":"0123456789"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cvs", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Submit(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, job.ID, created.JobID)
	})

	t.Run("vanished job returns 404", func(t *testing.T) {
		t.Parallel()

		handler := NewCVHandler(service.NewCVService(&mocks.MockCVStore{}, &mocks.MockJobStore{}, nil), nil)

		body := `{"jobId":"` + uuid.NewString() + `","fullName":"Jordan Doe","email":"jordan@mail.test","phone":"0123456789"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cvs", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Submit(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()

		handler := NewCVHandler(service.NewCVService(&mocks.MockCVStore{}, &mocks.MockJobStore{}, nil), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cvs", strings.NewReader(`{"fullName":"Jordan Doe"}`))
		rec := httptest.NewRecorder()

		handler.Submit(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCVHandler_UpdateStatus(t *testing.T) {
	t.Parallel()

	identity := testJobIdentity()
	job, err := domain.NewJob(identity.ID, "Backend Engineer")
	require.NoError(t, err)
	cv, err := domain.NewCV(job.ID, "Jordan Doe", "jordan@mail.test", "0123456789")
	require.NoError(t, err)

	t.Run("valid transition returns 200", func(t *testing.T) {
		t.Parallel()

		cvs := &mocks.MockCVStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CV, error) {
				return cv, nil
			},
			SetStatusFn: func(_ context.Context, _ uuid.UUID, status domain.CVStatus) error {
				assert.Equal(t, domain.CVStatusApproved, status)
				return nil
			},
		}
		jobs := &mocks.MockJobStore{
			GetForCompanyFn: func(_ context.Context, _, _ uuid.UUID) (*domain.Job, error) {
				return job, nil
			},
		}
		handler := NewCVHandler(service.NewCVService(cvs, jobs, nil), nil)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/api/company/cvs/x/status", strings.NewReader(`{"status":"approved"}`)), identity)
		req = withURLParam(req, "id", cv.ID.String())
		rec := httptest.NewRecorder()

		handler.UpdateStatus(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewCVHandler(service.NewCVService(&mocks.MockCVStore{}, &mocks.MockJobStore{}, nil), nil)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/api/company/cvs/x/status", strings.NewReader(`{"status":"archived"}`)), identity)
		req = withURLParam(req, "id", cv.ID.String())
		rec := httptest.NewRecorder()

		handler.UpdateStatus(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign cv returns 404", func(t *testing.T) {
		t.Parallel()

		cvs := &mocks.MockCVStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.CV, error) {
				return cv, nil
			},
		}
		jobs := &mocks.MockJobStore{
			GetForCompanyFn: func(_ context.Context, _, _ uuid.UUID) (*domain.Job, error) {
				return nil, store.ErrJobNotFound
			},
		}
		handler := NewCVHandler(service.NewCVService(cvs, jobs, nil), nil)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/api/company/cvs/x/status", strings.NewReader(`{"status":"approved"}`)), identity)
		req = withURLParam(req, "id", cv.ID.String())
		rec := httptest.NewRecorder()

		handler.UpdateStatus(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCVHandler_List(t *testing.T) {
	t.Parallel()

	identity := testJobIdentity()
	job, err := domain.NewJob(identity.ID, "Backend Engineer")
	require.NoError(t, err)
	cv, err := domain.NewCV(job.ID, "Jordan Doe", "jordan@mail.test", "0123456789")
	require.NoError(t, err)

	jobs := &mocks.MockJobStore{
		ListAllByCompanyFn: func(_ context.Context, _ uuid.UUID) ([]*domain.Job, error) {
			return []*domain.Job{job}, nil
		},
		GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Job, error) {
			return job, nil
		},
	}
	cvs := &mocks.MockCVStore{
		ListByJobIDsFn: func(_ context.Context, _ []uuid.UUID) ([]*domain.CV, error) {
			return []*domain.CV{cv}, nil
		},
	}
	handler := NewCVHandler(service.NewCVService(cvs, jobs, nil), nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/company/cvs", nil), identity)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CVListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.CVs, 1)
	assert.Equal(t, "Backend Engineer", resp.CVs[0].JobTitle)
	assert.Equal(t, "pending", resp.CVs[0].Status)
	assert.False(t, resp.CVs[0].Viewed)
}
