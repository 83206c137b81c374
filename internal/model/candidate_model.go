package model

import (
	"time"

	"github.com/google/uuid"
)

type CandidateProfile struct {
	FirstName    string `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName     string `gorm:"type:varchar(50);not null" json:"lastName"`
	Phone        string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Location     string `gorm:"type:varchar(255)" json:"location,omitempty"`
	LinkedinURL  string `gorm:"type:varchar(255)" json:"linkedinUrl,omitempty"`
	PortfolioURL string `gorm:"type:varchar(255)" json:"portfolioUrl,omitempty"`
	ResumePath   string `gorm:"type:varchar(255)" json:"resumePath,omitempty"`
}

type Candidate struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string           `gorm:"type:varchar(255);not null" json:"-"`
	Profile   CandidateProfile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	LastLogin *time.Time       `json:"lastLogin,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
