package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Job categories accepted by the board.
var JobCategories = []string{"Engineering", "Product", "Design", "Marketing", "Data", "Sales", "Operations"}

// Employment types. "Remote" doubles as the remote-work marker used by the
// remote listing filter.
var EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Remote"}

var ExperienceLevels = []string{"Entry", "Mid-Level", "Senior", "Lead"}

type Job struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title             string         `gorm:"type:varchar(100);not null" json:"title"`
	Company           string         `gorm:"type:varchar(100);not null" json:"company"`
	CompanyLogo       string         `gorm:"type:varchar(255);default:'/placeholder-logo.png'" json:"companyLogo"`
	Category          string         `gorm:"type:varchar(50);not null;index:idx_jobs_facets" json:"category"`
	Location          string         `gorm:"type:varchar(255);not null;index:idx_jobs_facets" json:"location"`
	EmploymentType    string         `gorm:"type:varchar(50);not null;index:idx_jobs_facets" json:"employmentType"`
	ExperienceLevel   string         `gorm:"type:varchar(50);not null;index:idx_jobs_facets" json:"experienceLevel"`
	SalaryRange       string         `gorm:"type:varchar(100);not null" json:"salaryRange"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	Skills            pq.StringArray `gorm:"type:text[]" json:"skills"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
	ApplicationsCount int            `gorm:"default:0" json:"applicationsCount"`
	CompanyID         uuid.UUID      `gorm:"type:uuid;index" json:"companyId"`
	PostedDate        time.Time      `gorm:"index" json:"postedDate"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
