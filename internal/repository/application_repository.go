package repository

import (
	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var a model.Application
	err := r.db.First(&a, "id = ?", id).Error
	return &a, err
}

func (r *ApplicationRepository) FindByJobAndCandidate(jobID, candidateID uuid.UUID) (*model.Application, error) {
	var a model.Application
	err := r.db.First(&a, "job_id = ? AND candidate_id = ?", jobID, candidateID).Error
	return &a, err
}

// Submit inserts the application and bumps the job's denormalized counter in
// one transaction, so a crash between the two writes cannot leave an
// undercount. A unique violation on (job_id, candidate_id) rolls the whole
// thing back and surfaces as gorm.ErrDuplicatedKey.
func (r *ApplicationRepository) Submit(app *model.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return tx.Model(&model.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
}

func (r *ApplicationRepository) UpdateStatus(app *model.Application, status string) error {
	app.Status = status
	return r.db.Model(app).Update("status", status).Error
}

func (r *ApplicationRepository) ListByCandidate(candidateID uuid.UUID, f dto.ApplicationFilter) ([]model.Application, int64, error) {
	return r.list(r.db.Where("candidate_id = ?", candidateID), f)
}

func (r *ApplicationRepository) ListByJob(jobID uuid.UUID, f dto.ApplicationFilter) ([]model.Application, int64, error) {
	return r.list(r.db.Where("job_id = ?", jobID), f)
}

func (r *ApplicationRepository) list(base *gorm.DB, f dto.ApplicationFilter) ([]model.Application, int64, error) {
	f = f.Normalized()
	q := base.Model(&model.Application{})
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := q.Session(&gorm.Session{}).
		Order("applied_date DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&apps).Error
	return apps, total, err
}
