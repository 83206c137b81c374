package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

type PersonalInfo struct {
	FirstName    string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string `gorm:"type:varchar(50);not null" json:"phone"`
	Location     string `gorm:"type:varchar(255);not null" json:"location"`
	LinkedinURL  string `gorm:"type:varchar(255)" json:"linkedinUrl,omitempty"`
	PortfolioURL string `gorm:"type:varchar(255)" json:"portfolioUrl,omitempty"`
}

type ProfessionalInfo struct {
	Experience        string         `gorm:"type:varchar(50);not null" json:"experience"`
	CurrentRole       string         `gorm:"type:varchar(100);not null" json:"currentRole"`
	CurrentCompany    string         `gorm:"type:varchar(100)" json:"currentCompany,omitempty"`
	SalaryExpectation string         `gorm:"type:varchar(100);not null" json:"salaryExpectation"`
	AvailabilityDate  time.Time      `gorm:"not null" json:"availabilityDate"`
	Skills            pq.StringArray `gorm:"type:text[]" json:"skills"`
}

type ApplicationDetails struct {
	CoverLetter   string `gorm:"type:text;not null" json:"coverLetter"`
	WhyInterested string `gorm:"type:text;not null" json:"whyInterested"`
	ResumePath    string `gorm:"type:varchar(255);not null" json:"resumePath"`
	PortfolioPath string `gorm:"type:varchar(255)" json:"portfolioPath,omitempty"`
	References    bool   `gorm:"default:false" json:"references"`
	Relocate      bool   `gorm:"default:false" json:"relocate"`
	RemoteWork    string `gorm:"type:varchar(20)" json:"remoteWork,omitempty"`
}

// Application is a candidate's submission against a job. The composite unique
// index on (job_id, candidate_id) is the source of truth for the
// one-application-per-candidate-per-job rule; any pre-insert check is an
// optimization only.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate;index:idx_applications_job_status" json:"jobId"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate;index" json:"candidateId"`
	Status      string    `gorm:"type:varchar(20);default:'pending';index:idx_applications_job_status" json:"status"`
	AppliedDate time.Time `gorm:"index" json:"appliedDate"`

	PersonalInfo       PersonalInfo       `gorm:"embedded;embeddedPrefix:personal_" json:"personalInfo"`
	ProfessionalInfo   ProfessionalInfo   `gorm:"embedded;embeddedPrefix:professional_" json:"professionalInfo"`
	ApplicationDetails ApplicationDetails `gorm:"embedded;embeddedPrefix:details_" json:"applicationDetails"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
