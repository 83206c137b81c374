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

type ApplicationStore interface {
	FindByID(id uuid.UUID) (*model.Application, error)
	FindByJobAndCandidate(jobID, candidateID uuid.UUID) (*model.Application, error)
	Submit(app *model.Application) error
	UpdateStatus(app *model.Application, status string) error
	ListByCandidate(candidateID uuid.UUID, f dto.ApplicationFilter) ([]model.Application, int64, error)
	ListByJob(jobID uuid.UUID, f dto.ApplicationFilter) ([]model.Application, int64, error)
}

type ApplicationUsecase struct {
	apps  ApplicationStore
	jobs  JobStore
	files service.StorageServiceInterface
	now   func() time.Time
}

func NewApplicationUsecase(apps ApplicationStore, jobs JobStore, files service.StorageServiceInterface) *ApplicationUsecase {
	return &ApplicationUsecase{apps: apps, jobs: jobs, files: files, now: time.Now}
}

// Submit runs the application workflow: validate everything up front (every
// violated field reported at once), confirm the job exists, reject
// duplicates, store the attachments, then persist the record and counter
// increment together. The unique (job, candidate) index decides races the
// pre-check cannot see.
func (uc *ApplicationUsecase) Submit(candidateID uuid.UUID, req dto.SubmitApplicationRequest) (*model.Application, error) {
	fields := validation.Struct(req)
	if req.Resume == nil {
		fields = validation.Merge(fields, map[string]string{"resume": "missing-required-file"}, "")
	}
	if len(fields) > 0 {
		return nil, util.NewValidationError(fields)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, util.NewNotFound("Job not found")
	}
	if _, err := uc.jobs.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Job not found")
		}
		return nil, util.NewInternal(err)
	}

	// Optimization only; the unique index is the real guard.
	if _, err := uc.apps.FindByJobAndCandidate(jobID, candidateID); err == nil {
		return nil, util.NewConflict("You have already applied for this job")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewInternal(err)
	}

	resume, err := uc.files.Save(req.Resume, service.KindResume)
	if err != nil {
		return nil, util.NewValidationError(map[string]string{"resume": err.Error()})
	}
	var portfolioPath string
	if req.Portfolio != nil {
		portfolio, err := uc.files.Save(req.Portfolio, service.KindPortfolio)
		if err != nil {
			return nil, util.NewValidationError(map[string]string{"portfolio": err.Error()})
		}
		portfolioPath = portfolio.Path
	}

	app := &model.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      model.ApplicationStatusPending,
		AppliedDate: uc.now(),
		PersonalInfo: model.PersonalInfo{
			FirstName:    req.PersonalInfo.FirstName,
			LastName:     req.PersonalInfo.LastName,
			Email:        req.PersonalInfo.Email,
			Phone:        req.PersonalInfo.Phone,
			Location:     req.PersonalInfo.Location,
			LinkedinURL:  req.PersonalInfo.LinkedinURL,
			PortfolioURL: req.PersonalInfo.PortfolioURL,
		},
		ProfessionalInfo: model.ProfessionalInfo{
			Experience:        req.ProfessionalInfo.Experience,
			CurrentRole:       req.ProfessionalInfo.CurrentRole,
			CurrentCompany:    req.ProfessionalInfo.CurrentCompany,
			SalaryExpectation: req.ProfessionalInfo.SalaryExpectation,
			AvailabilityDate:  req.ProfessionalInfo.ParsedAvailability(),
			Skills:            req.ProfessionalInfo.Skills,
		},
		ApplicationDetails: model.ApplicationDetails{
			CoverLetter:   req.ApplicationDetails.CoverLetter,
			WhyInterested: req.ApplicationDetails.WhyInterested,
			ResumePath:    resume.Path,
			PortfolioPath: portfolioPath,
			References:    req.ApplicationDetails.References,
			Relocate:      req.ApplicationDetails.Relocate,
			RemoteWork:    req.ApplicationDetails.RemoteWork,
		},
	}

	if err := uc.apps.Submit(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewConflict("You have already applied for this job")
		}
		return nil, util.NewInternal(err)
	}
	return app, nil
}

func (uc *ApplicationUsecase) Get(p model.Principal, id string) (*model.Application, error) {
	app, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	job := uc.jobForGuard(app)
	if !p.CanViewApplication(app, job) {
		return nil, util.NewForbidden("Not authorized to view this application")
	}
	return app, nil
}

func (uc *ApplicationUsecase) UpdateStatus(p model.Principal, id string, req dto.UpdateApplicationStatusRequest) (*model.Application, error) {
	if fields := validation.Struct(req); fields != nil {
		return nil, util.NewValidationError(fields)
	}

	app, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	if !p.CanMutateApplication(uc.jobForGuard(app)) {
		return nil, util.NewForbidden("Not authorized to update this application")
	}

	if err := uc.apps.UpdateStatus(app, req.Status); err != nil {
		return nil, util.NewInternal(err)
	}
	return app, nil
}

func (uc *ApplicationUsecase) ListMine(candidateID uuid.UUID, f dto.ApplicationFilter) ([]model.Application, int64, dto.ApplicationFilter, error) {
	f = f.Normalized()
	apps, total, err := uc.apps.ListByCandidate(candidateID, f)
	if err != nil {
		return nil, 0, f, util.NewInternal(err)
	}
	return apps, total, f, nil
}

func (uc *ApplicationUsecase) ListForJob(p model.Principal, jobID string, f dto.ApplicationFilter) ([]model.Application, int64, dto.ApplicationFilter, error) {
	f = f.Normalized()

	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, 0, f, util.NewNotFound("Job not found")
	}
	job, err := uc.jobs.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, f, util.NewNotFound("Job not found")
	}
	if err != nil {
		return nil, 0, f, util.NewInternal(err)
	}
	if !p.OwnsJob(job) {
		return nil, 0, f, util.NewForbidden("Not authorized to view applications for this job")
	}

	apps, total, err := uc.apps.ListByJob(id, f)
	if err != nil {
		return nil, 0, f, util.NewInternal(err)
	}
	return apps, total, f, nil
}

func (uc *ApplicationUsecase) find(id string) (*model.Application, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, util.NewNotFound("Application not found")
	}
	app, err := uc.apps.FindByID(appID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("Application not found")
	}
	if err != nil {
		return nil, util.NewInternal(err)
	}
	return app, nil
}

// jobForGuard loads the referenced job for ownership checks; a missing job
// simply fails the company-side check.
func (uc *ApplicationUsecase) jobForGuard(app *model.Application) *model.Job {
	job, err := uc.jobs.FindByID(app.JobID)
	if err != nil {
		return nil
	}
	return job
}
