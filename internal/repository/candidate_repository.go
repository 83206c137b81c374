package repository

import (
	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) Create(c *model.Candidate) error {
	return r.db.Create(c).Error
}

func (r *CandidateRepository) Update(c *model.Candidate) error {
	return r.db.Save(c).Error
}

func (r *CandidateRepository) FindByID(id uuid.UUID) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CandidateRepository) FindByEmail(email string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "email = ?", email).Error
	return &c, err
}
