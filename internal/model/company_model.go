package model

import (
	"time"

	"github.com/google/uuid"
)

var CompanySizes = []string{"startup", "small", "medium", "large"}

type Company struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"`
	Logo        string     `gorm:"type:varchar(255);default:'/placeholder-logo.png'" json:"logo"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Website     string     `gorm:"type:varchar(255)" json:"website,omitempty"`
	Location    string     `gorm:"type:varchar(255);not null" json:"location"`
	Size        string     `gorm:"type:varchar(20);default:'startup'" json:"size"`
	Industry    string     `gorm:"type:varchar(100)" json:"industry,omitempty"`
	IsVerified  bool       `gorm:"default:false" json:"isVerified"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *Company) TableName() string {
	return "companies"
}
