package repository

import (
	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(c *model.Company) error {
	return r.db.Create(c).Error
}

func (r *CompanyRepository) Update(c *model.Company) error {
	return r.db.Save(c).Error
}

func (r *CompanyRepository) FindByID(id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CompanyRepository) FindByEmail(email string) (*model.Company, error) {
	var c model.Company
	err := r.db.First(&c, "email = ?", email).Error
	return &c, err
}
