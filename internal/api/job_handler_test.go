package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/domain"
	"github.com/openhire/jobboard-api/internal/mocks"
	"github.com/openhire/jobboard-api/internal/service"
	"github.com/openhire/jobboard-api/internal/store"
)

type stubSaver struct {
	paths []string
}

func (s *stubSaver) Save(header *multipart.FileHeader) (string, error) {
	path := "uploads/" + header.Filename
	s.paths = append(s.paths, path)
	return path, nil
}

func testJobIdentity() *service.Identity {
	return &service.Identity{
		ID:          uuid.New(),
		Email:       "hr@acme.test",
		CompanyName: "Acme",
		Logo:        "uploads/logo.png",
		CompanyCity: "Hanoi",
	}
}

func withIdentity(req *http.Request, identity *service.Identity) *http.Request {
	return req.WithContext(shared.WithIdentity(req.Context(), identity))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestJobHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("json body creates a job", func(t *testing.T) {
		t.Parallel()

		identity := testJobIdentity()
		var created *domain.Job
		jobs := &mocks.MockJobStore{
			CreateFn: func(_ context.Context, job *domain.Job) error {
				created = job
				return nil
			},
		}
		handler := NewJobHandler(service.NewJobService(jobs, 2, nil), &stubSaver{}, nil)

		body := `{"title":"Backend Engineer","salaryMin":1000,"salaryMax":2000,"technologies":"go, postgres"}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/company/jobs", strings.NewReader(body)), identity)
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, identity.ID, created.CompanyID)
		assert.Equal(t, []string{"go", "postgres"}, created.Technologies)
	})

	t.Run("multipart body stores images and attaches paths", func(t *testing.T) {
		t.Parallel()

		identity := testJobIdentity()
		var created *domain.Job
		jobs := &mocks.MockJobStore{
			CreateFn: func(_ context.Context, job *domain.Job) error {
				created = job
				return nil
			},
		}
		saver := &stubSaver{}
		handler := NewJobHandler(service.NewJobService(jobs, 2, nil), saver, nil)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Backend Engineer"))
		require.NoError(t, w.WriteField("salaryMin", "1000"))
		require.NoError(t, w.WriteField("technologies", "go"))
		part, err := w.CreateFormFile("images", "office.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/company/jobs", &buf), identity)
		req.Header.Set("Content-Type", w.FormDataContentType())
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, []string{"uploads/office.png"}, created.Images)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewJobHandler(service.NewJobService(&mocks.MockJobStore{}, 2, nil), &stubSaver{}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/company/jobs", strings.NewReader(`{}`)), testJobIdentity())
		rec := httptest.NewRecorder()

		handler.Create(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestJobHandler_List(t *testing.T) {
	t.Parallel()

	identity := testJobIdentity()
	job, err := domain.NewJob(identity.ID, "Backend Engineer")
	require.NoError(t, err)
	job.Technologies = []string{"go"}

	jobs := &mocks.MockJobStore{
		CountByCompanyFn: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 3, nil
		},
		ListByCompanyFn: func(_ context.Context, _ uuid.UUID, limit, offset int) ([]*domain.Job, error) {
			assert.Equal(t, 2, limit)
			assert.Equal(t, 2, offset)
			return []*domain.Job{job}, nil
		},
	}
	handler := NewJobHandler(service.NewJobService(jobs, 2, nil), &stubSaver{}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/company/jobs?page=2", nil), identity)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp JobListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalPage)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Acme", resp.Jobs[0].CompanyName)
	assert.Equal(t, "Hanoi", resp.Jobs[0].CompanyCity)
}

func TestJobHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("foreign job returns 404", func(t *testing.T) {
		t.Parallel()

		jobs := &mocks.MockJobStore{
			GetForCompanyFn: func(_ context.Context, _, _ uuid.UUID) (*domain.Job, error) {
				return nil, store.ErrJobNotFound
			},
		}
		handler := NewJobHandler(service.NewJobService(jobs, 2, nil), &stubSaver{}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/company/jobs/x", nil), testJobIdentity())
		req = withURLParam(req, "id", uuid.New().String())
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp shared.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "job_not_found", resp.Kind)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewJobHandler(service.NewJobService(&mocks.MockJobStore{}, 2, nil), &stubSaver{}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/company/jobs/nope", nil), testJobIdentity())
		req = withURLParam(req, "id", "nope")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
