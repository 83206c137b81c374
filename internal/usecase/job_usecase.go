package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/util"
	"github.com/rizkyfm/job-board-api/internal/validation"
	"gorm.io/gorm"
)

type JobStore interface {
	List(f dto.JobFilter) ([]model.Job, int64, error)
	FindByID(id uuid.UUID) (*model.Job, error)
	Create(job *model.Job) error
	Update(job *model.Job) error
	Delete(id uuid.UUID) error
	Categories() ([]string, error)
	Locations() ([]string, error)
}

type JobUsecase struct {
	jobs JobStore
	now  func() time.Time
}

func NewJobUsecase(jobs JobStore) *JobUsecase {
	return &JobUsecase{jobs: jobs, now: time.Now}
}

func (uc *JobUsecase) List(f dto.JobFilter) ([]model.Job, int64, dto.JobFilter, error) {
	f = f.Normalized()
	jobs, total, err := uc.jobs.List(f)
	if err != nil {
		return nil, 0, f, util.NewInternal(err)
	}
	return jobs, total, f, nil
}

func (uc *JobUsecase) Categories() ([]string, error) {
	values, err := uc.jobs.Categories()
	if err != nil {
		return nil, util.NewInternal(err)
	}
	return values, nil
}

func (uc *JobUsecase) Locations() ([]string, error) {
	values, err := uc.jobs.Locations()
	if err != nil {
		return nil, util.NewInternal(err)
	}
	return values, nil
}

func (uc *JobUsecase) Get(id string) (*model.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, util.NewNotFound("Job not found")
	}
	job, err := uc.jobs.FindByID(jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("Job not found")
	}
	if err != nil {
		return nil, util.NewInternal(err)
	}
	return job, nil
}

func (uc *JobUsecase) Create(p model.Principal, req dto.CreateJobRequest) (*model.Job, error) {
	if fields := validation.Struct(req); fields != nil {
		return nil, util.NewValidationError(fields)
	}

	job := &model.Job{
		ID:              uuid.New(),
		Title:           req.Title,
		Company:         req.Company,
		CompanyLogo:     req.CompanyLogo,
		Category:        req.Category,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Description:     req.Description,
		Skills:          req.Skills,
		IsActive:        true,
		// Ownership comes from the authenticated company, never the body.
		CompanyID:  p.ID,
		PostedDate: uc.now(),
	}
	if job.CompanyLogo == "" {
		job.CompanyLogo = "/placeholder-logo.png"
	}

	if err := uc.jobs.Create(job); err != nil {
		return nil, util.NewInternal(err)
	}
	return job, nil
}

func (uc *JobUsecase) Update(p model.Principal, id string, req dto.UpdateJobRequest) (*model.Job, error) {
	if fields := validation.Struct(req); fields != nil {
		return nil, util.NewValidationError(fields)
	}

	job, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if !p.OwnsJob(job) {
		return nil, util.NewForbidden("Not authorized to update this job")
	}

	applyJobUpdate(job, req)

	if err := uc.jobs.Update(job); err != nil {
		return nil, util.NewInternal(err)
	}
	return job, nil
}

func (uc *JobUsecase) Delete(p model.Principal, id string) error {
	job, err := uc.Get(id)
	if err != nil {
		return err
	}
	if !p.OwnsJob(job) {
		return util.NewForbidden("Not authorized to delete this job")
	}
	if err := uc.jobs.Delete(job.ID); err != nil {
		return util.NewInternal(err)
	}
	return nil
}

func applyJobUpdate(job *model.Job, req dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.CompanyLogo != nil {
		job.CompanyLogo = *req.CompanyLogo
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
}
