package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/service"
	"github.com/rizkyfm/job-board-api/internal/util"
	"github.com/rizkyfm/job-board-api/internal/validation"
	"gorm.io/gorm"
)

type CandidateStore interface {
	Create(c *model.Candidate) error
	Update(c *model.Candidate) error
	FindByID(id uuid.UUID) (*model.Candidate, error)
	FindByEmail(email string) (*model.Candidate, error)
}

type CompanyStore interface {
	Create(c *model.Company) error
	Update(c *model.Company) error
	FindByID(id uuid.UUID) (*model.Company, error)
	FindByEmail(email string) (*model.Company, error)
}

type AuthUsecase struct {
	candidates CandidateStore
	companies  CompanyStore
	tokens     service.TokenServiceInterface
}

func NewAuthUsecase(candidates CandidateStore, companies CompanyStore, tokens service.TokenServiceInterface) *AuthUsecase {
	return &AuthUsecase{candidates: candidates, companies: companies, tokens: tokens}
}

func (uc *AuthUsecase) RegisterCandidate(req dto.RegisterCandidateRequest) (string, *model.Candidate, error) {
	if fields := validation.Struct(req); fields != nil {
		return "", nil, util.NewValidationError(fields)
	}

	if _, err := uc.candidates.FindByEmail(req.Email); err == nil {
		return "", nil, util.NewConflict("Candidate already exists with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.NewInternal(err)
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}

	cand := &model.Candidate{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: hash,
		Profile: model.CandidateProfile{
			FirstName:    req.Profile.FirstName,
			LastName:     req.Profile.LastName,
			Phone:        req.Profile.Phone,
			Location:     req.Profile.Location,
			LinkedinURL:  req.Profile.LinkedinURL,
			PortfolioURL: req.Profile.PortfolioURL,
		},
	}
	if err := uc.candidates.Create(cand); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, util.NewConflict("Candidate already exists with this email")
		}
		return "", nil, util.NewInternal(err)
	}

	token, err := uc.tokens.Generate(cand.ID, model.RoleCandidate)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	return token, cand, nil
}

func (uc *AuthUsecase) LoginCandidate(req dto.LoginRequest) (string, *model.Candidate, error) {
	if fields := validation.Struct(req); fields != nil {
		return "", nil, util.NewValidationError(fields)
	}

	cand, err := uc.candidates.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.NewUnauthenticated("Invalid credentials")
	}
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	if !service.ComparePassword(cand.Password, req.Password) {
		return "", nil, util.NewUnauthenticated("Invalid credentials")
	}

	now := time.Now()
	cand.LastLogin = &now
	if err := uc.candidates.Update(cand); err != nil {
		return "", nil, util.NewInternal(err)
	}

	token, err := uc.tokens.Generate(cand.ID, model.RoleCandidate)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	return token, cand, nil
}

func (uc *AuthUsecase) RegisterCompany(req dto.RegisterCompanyRequest) (string, *model.Company, error) {
	if fields := validation.Struct(req); fields != nil {
		return "", nil, util.NewValidationError(fields)
	}

	if _, err := uc.companies.FindByEmail(req.Email); err == nil {
		return "", nil, util.NewConflict("Company already exists with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.NewInternal(err)
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}

	comp := &model.Company{
		ID:          uuid.New(),
		Email:       req.Email,
		Password:    hash,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
	}
	if comp.Size == "" {
		comp.Size = "startup"
	}
	if err := uc.companies.Create(comp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, util.NewConflict("Company already exists with this email")
		}
		return "", nil, util.NewInternal(err)
	}

	token, err := uc.tokens.Generate(comp.ID, model.RoleCompany)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	return token, comp, nil
}

func (uc *AuthUsecase) LoginCompany(req dto.LoginRequest) (string, *model.Company, error) {
	if fields := validation.Struct(req); fields != nil {
		return "", nil, util.NewValidationError(fields)
	}

	comp, err := uc.companies.FindByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.NewUnauthenticated("Invalid credentials")
	}
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	if !service.ComparePassword(comp.Password, req.Password) {
		return "", nil, util.NewUnauthenticated("Invalid credentials")
	}

	now := time.Now()
	comp.LastLogin = &now
	if err := uc.companies.Update(comp); err != nil {
		return "", nil, util.NewInternal(err)
	}

	token, err := uc.tokens.Generate(comp.ID, model.RoleCompany)
	if err != nil {
		return "", nil, util.NewInternal(err)
	}
	return token, comp, nil
}

// Me resolves the acting principal back to its stored profile.
func (uc *AuthUsecase) Me(p model.Principal) (any, error) {
	switch p.Role {
	case model.RoleCandidate:
		cand, err := uc.candidates.FindByID(p.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewUnauthenticated("Not authorized, user not found")
		}
		if err != nil {
			return nil, util.NewInternal(err)
		}
		return map[string]any{
			"id":      cand.ID,
			"email":   cand.Email,
			"profile": cand.Profile,
			"type":    "candidate",
		}, nil
	case model.RoleCompany:
		comp, err := uc.companies.FindByID(p.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewUnauthenticated("Not authorized, company not found")
		}
		if err != nil {
			return nil, util.NewInternal(err)
		}
		return map[string]any{
			"id":         comp.ID,
			"email":      comp.Email,
			"name":       comp.Name,
			"location":   comp.Location,
			"isVerified": comp.IsVerified,
			"type":       "company",
		}, nil
	default:
		return nil, util.NewUnauthenticated("Not authenticated")
	}
}
