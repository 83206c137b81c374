package usecase

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCandidateStore struct {
	byEmail map[string]*model.Candidate
}

func newFakeCandidateStore() *fakeCandidateStore {
	return &fakeCandidateStore{byEmail: map[string]*model.Candidate{}}
}

func (f *fakeCandidateStore) Create(c *model.Candidate) error {
	if _, exists := f.byEmail[c.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.byEmail[c.Email] = c
	return nil
}

func (f *fakeCandidateStore) Update(c *model.Candidate) error { f.byEmail[c.Email] = c; return nil }

func (f *fakeCandidateStore) FindByID(id uuid.UUID) (*model.Candidate, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCandidateStore) FindByEmail(email string) (*model.Candidate, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeCompanyStore struct {
	byEmail map[string]*model.Company
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{byEmail: map[string]*model.Company{}}
}

func (f *fakeCompanyStore) Create(c *model.Company) error {
	if _, exists := f.byEmail[c.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.byEmail[c.Email] = c
	return nil
}

func (f *fakeCompanyStore) Update(c *model.Company) error { f.byEmail[c.Email] = c; return nil }

func (f *fakeCompanyStore) FindByID(id uuid.UUID) (*model.Company, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCompanyStore) FindByEmail(email string) (*model.Company, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeTokenService struct{}

func (fakeTokenService) Generate(id uuid.UUID, role model.Role) (string, error) {
	return fmt.Sprintf("token:%s:%s", role, id), nil
}

func (fakeTokenService) Verify(string) (model.Principal, error) {
	return model.Anonymous(), fmt.Errorf("not implemented")
}

func requireAppError(t *testing.T, err error, code int) *util.AppError {
	t.Helper()
	var appErr *util.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func newTestAuth() (*AuthUsecase, *fakeCandidateStore, *fakeCompanyStore) {
	candidates := newFakeCandidateStore()
	companies := newFakeCompanyStore()
	return NewAuthUsecase(candidates, companies, fakeTokenService{}), candidates, companies
}

func candidateRegistration(email string) dto.RegisterCandidateRequest {
	return dto.RegisterCandidateRequest{
		Email:    email,
		Password: "hunter22",
		Profile: dto.CandidateProfileRequest{
			FirstName: "Grace",
			LastName:  "Hopper",
		},
	}
}

func TestRegisterCandidate(t *testing.T) {
	uc, candidates, _ := newTestAuth()

	token, cand, err := uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "grace@example.com", cand.Email)
	assert.NotEqual(t, "hunter22", cand.Password, "password must be stored hashed")

	stored, err := candidates.FindByEmail("grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, cand.ID, stored.ID)
}

func TestRegisterCandidateDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestAuth()

	_, _, err := uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	require.NoError(t, err)

	_, _, err = uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	requireAppError(t, err, 409)
}

func TestRegisterCandidateValidation(t *testing.T) {
	uc, _, _ := newTestAuth()

	req := candidateRegistration("not-an-email")
	req.Password = "short"
	_, _, err := uc.RegisterCandidate(req)
	appErr := requireAppError(t, err, 400)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestLoginCandidate(t *testing.T) {
	uc, candidates, _ := newTestAuth()

	_, registered, err := uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	require.NoError(t, err)
	require.Nil(t, registered.LastLogin)

	token, cand, err := uc.LoginCandidate(dto.LoginRequest{Email: "grace@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, cand.ID)
	assert.NotNil(t, cand.LastLogin)

	stored, err := candidates.FindByEmail("grace@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginCandidateBadCredentials(t *testing.T) {
	uc, _, _ := newTestAuth()

	_, _, err := uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	require.NoError(t, err)

	_, _, err = uc.LoginCandidate(dto.LoginRequest{Email: "grace@example.com", Password: "wrong"})
	requireAppError(t, err, 401)

	_, _, err = uc.LoginCandidate(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	requireAppError(t, err, 401)
}

func TestRegisterAndLoginCompany(t *testing.T) {
	uc, _, _ := newTestAuth()

	token, comp, err := uc.RegisterCompany(dto.RegisterCompanyRequest{
		Email:    "jobs@acme.test",
		Password: "hunter22",
		Name:     "Acme",
		Location: "Berlin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "startup", comp.Size, "size defaults when omitted")

	_, _, err = uc.RegisterCompany(dto.RegisterCompanyRequest{
		Email:    "jobs@acme.test",
		Password: "hunter22",
		Name:     "Acme Again",
		Location: "Berlin",
	})
	requireAppError(t, err, 409)

	_, logged, err := uc.LoginCompany(dto.LoginRequest{Email: "jobs@acme.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, comp.ID, logged.ID)
}

func TestMe(t *testing.T) {
	uc, _, _ := newTestAuth()

	_, cand, err := uc.RegisterCandidate(candidateRegistration("grace@example.com"))
	require.NoError(t, err)

	me, err := uc.Me(model.Principal{Role: model.RoleCandidate, ID: cand.ID})
	require.NoError(t, err)
	payload, ok := me.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "candidate", payload["type"])
	assert.Equal(t, cand.Email, payload["email"])

	_, err = uc.Me(model.Anonymous())
	requireAppError(t, err, 401)

	_, err = uc.Me(model.Principal{Role: model.RoleCandidate, ID: uuid.New()})
	requireAppError(t, err, 401)
}
