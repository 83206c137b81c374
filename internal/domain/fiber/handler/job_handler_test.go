package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/middleware"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubJobStore struct {
	jobs       map[uuid.UUID]*model.Job
	listOut    []model.Job
	total      int64
	gotList    dto.JobFilter
	categories []string
	locations  []string
}

func newStubJobStore() *stubJobStore {
	return &stubJobStore{jobs: map[uuid.UUID]*model.Job{}}
}

func (s *stubJobStore) List(f dto.JobFilter) ([]model.Job, int64, error) {
	s.gotList = f
	return s.listOut, s.total, nil
}

func (s *stubJobStore) FindByID(id uuid.UUID) (*model.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

func (s *stubJobStore) Create(job *model.Job) error { s.jobs[job.ID] = job; return nil }
func (s *stubJobStore) Update(job *model.Job) error { s.jobs[job.ID] = job; return nil }
func (s *stubJobStore) Delete(id uuid.UUID) error   { delete(s.jobs, id); return nil }

func (s *stubJobStore) Categories() ([]string, error) { return s.categories, nil }
func (s *stubJobStore) Locations() ([]string, error)  { return s.locations, nil }

// stubTokens trades fixed opaque tokens for principals, standing in for the
// JWT service so handler tests can exercise the real auth middleware.
type stubTokens struct {
	principals map[string]model.Principal
}

func (s stubTokens) Generate(id uuid.UUID, role model.Role) (string, error) {
	return "", errors.New("not implemented")
}

func (s stubTokens) Verify(token string) (model.Principal, error) {
	p, ok := s.principals[token]
	if !ok {
		return model.Anonymous(), errors.New("unknown token")
	}
	return p, nil
}

func newJobApp(store *stubJobStore, tokens stubTokens) *fiber.App {
	app := fiber.New()
	h := NewJobHandler(usecase.NewJobUsecase(store))
	h.RegisterRoutes(app, middleware.Auth(tokens), middleware.RequireRole(model.RoleCompany))
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestJobListEnvelope(t *testing.T) {
	store := newStubJobStore()
	store.listOut = []model.Job{
		{ID: uuid.New(), Title: "Backend Engineer"},
		{ID: uuid.New(), Title: "Data Engineer"},
	}
	store.total = 5
	app := newJobApp(store, stubTokens{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs?page=2&limit=2&category=Engineering", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 5, body["total"])
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 3, body["pages"])
	assert.Len(t, body["data"], 2)

	assert.Equal(t, "Engineering", store.gotList.Category)
	assert.Equal(t, 2, store.gotList.Page)
	assert.Equal(t, 2, store.gotList.Limit)
}

func TestJobListDefaultPagination(t *testing.T) {
	store := newStubJobStore()
	app := newJobApp(store, stubTokens{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, 1, store.gotList.Page)
	assert.Equal(t, dto.DefaultPageSize, store.gotList.Limit)
}

func TestJobFacetValues(t *testing.T) {
	store := newStubJobStore()
	store.categories = []string{"Data", "Design", "Engineering"}
	store.locations = []string{"Austin, TX", "Remote", "Seattle, WA"}
	// A seeded job must not shadow the literal facet paths.
	job := &model.Job{ID: uuid.New()}
	store.jobs[job.ID] = job
	app := newJobApp(store, stubTokens{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"Data", "Design", "Engineering"}, body["data"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/jobs/locations", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, []any{"Austin, TX", "Remote", "Seattle, WA"}, body["data"])
}

func TestJobGet(t *testing.T) {
	store := newStubJobStore()
	job := &model.Job{ID: uuid.New(), Title: "Backend Engineer"}
	store.jobs[job.ID] = job
	app := newJobApp(store, stubTokens{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/"+job.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Backend Engineer", data["title"])
}

func TestJobGetNotFound(t *testing.T) {
	app := newJobApp(newStubJobStore(), stubTokens{})

	for _, path := range []string{
		"/api/jobs/" + uuid.New().String(),
		"/api/jobs/not-a-uuid",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Job not found", body["message"])
	}
}

func validJobBody() string {
	return `{
		"title": "Backend Engineer",
		"company": "Acme",
		"category": "Engineering",
		"location": "Berlin, Germany",
		"employmentType": "Full-time",
		"experienceLevel": "Senior",
		"salaryRange": "$120k - $150k",
		"description": "Build and run our Go services.",
		"skills": ["Go", "Postgres"]
	}`
}

func TestJobCreateAuth(t *testing.T) {
	companyID := uuid.New()
	tokens := stubTokens{principals: map[string]model.Principal{
		"company-token":   {Role: model.RoleCompany, ID: companyID},
		"candidate-token": {Role: model.RoleCandidate, ID: uuid.New()},
	}}
	store := newStubJobStore()
	app := newJobApp(store, tokens)

	post := func(token string) *http.Response {
		req := httptest.NewRequest("POST", "/api/jobs", strings.NewReader(validJobBody()))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, 401, post("").StatusCode)
	assert.Equal(t, 401, post("bogus").StatusCode)
	assert.Equal(t, 403, post("candidate-token").StatusCode)

	resp := post("company-token")
	assert.Equal(t, 201, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, companyID.String(), data["companyId"])
	assert.Equal(t, true, data["isActive"])
	require.Len(t, store.jobs, 1)
}

func TestJobCreateValidation(t *testing.T) {
	tokens := stubTokens{principals: map[string]model.Principal{
		"company-token": {Role: model.RoleCompany, ID: uuid.New()},
	}}
	app := newJobApp(newStubJobStore(), tokens)

	req := httptest.NewRequest("POST", "/api/jobs", strings.NewReader(`{"title":"x","category":"Gardening"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer company-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	fields := body["errors"].(map[string]any)
	assert.Contains(t, fields, "company")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "skills")
}

func TestJobUpdateOwnership(t *testing.T) {
	ownerID := uuid.New()
	tokens := stubTokens{principals: map[string]model.Principal{
		"owner-token":   {Role: model.RoleCompany, ID: ownerID},
		"foreign-token": {Role: model.RoleCompany, ID: uuid.New()},
	}}
	store := newStubJobStore()
	job := &model.Job{ID: uuid.New(), Title: "Backend Engineer", CompanyID: ownerID}
	store.jobs[job.ID] = job
	app := newJobApp(store, tokens)

	put := func(token string) *http.Response {
		req := httptest.NewRequest("PUT", "/api/jobs/"+job.ID.String(), strings.NewReader(`{"title":"Platform Engineer"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, 403, put("foreign-token").StatusCode)
	assert.Equal(t, "Backend Engineer", job.Title)

	resp := put("owner-token")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Platform Engineer", job.Title)
}

func TestJobDelete(t *testing.T) {
	ownerID := uuid.New()
	tokens := stubTokens{principals: map[string]model.Principal{
		"owner-token": {Role: model.RoleCompany, ID: ownerID},
	}}
	store := newStubJobStore()
	job := &model.Job{ID: uuid.New(), CompanyID: ownerID}
	store.jobs[job.ID] = job
	app := newJobApp(store, tokens)

	req := httptest.NewRequest("DELETE", "/api/jobs/"+job.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer owner-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Job deleted successfully", body["message"])
	assert.Empty(t, store.jobs)
}
