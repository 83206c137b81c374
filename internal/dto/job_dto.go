package dto

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	Company         string   `json:"company" validate:"required,max=100"`
	CompanyLogo     string   `json:"companyLogo"`
	Category        string   `json:"category" validate:"required,oneof=Engineering Product Design Marketing Data Sales Operations"`
	Location        string   `json:"location" validate:"required"`
	EmploymentType  string   `json:"employmentType" validate:"required,oneof=Full-time Part-time Contract Remote"`
	ExperienceLevel string   `json:"experienceLevel" validate:"required,oneof=Entry Mid-Level Senior Lead"`
	SalaryRange     string   `json:"salaryRange" validate:"required"`
	Description     string   `json:"description" validate:"required,max=2000"`
	Skills          []string `json:"skills" validate:"required,min=1"`
}

// UpdateJobRequest is a partial update: nil fields are left untouched.
type UpdateJobRequest struct {
	Title           *string   `json:"title" validate:"omitempty,max=100"`
	Company         *string   `json:"company" validate:"omitempty,max=100"`
	CompanyLogo     *string   `json:"companyLogo"`
	Category        *string   `json:"category" validate:"omitempty,oneof=Engineering Product Design Marketing Data Sales Operations"`
	Location        *string   `json:"location"`
	EmploymentType  *string   `json:"employmentType" validate:"omitempty,oneof=Full-time Part-time Contract Remote"`
	ExperienceLevel *string   `json:"experienceLevel" validate:"omitempty,oneof=Entry Mid-Level Senior Lead"`
	SalaryRange     *string   `json:"salaryRange"`
	Description     *string   `json:"description" validate:"omitempty,max=2000"`
	Skills          []string  `json:"skills" validate:"omitempty,min=1"`
	IsActive        *bool     `json:"isActive"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// JobFilter holds the listing query parameters as sent by the client. Zero or
// "all" values mean the corresponding filter is not applied.
type JobFilter struct {
	Category   string `query:"category"`
	Location   string `query:"location"`
	Experience string `query:"experience"`
	Type       string `query:"type"`
	Remote     string `query:"remote"`
	Search     string `query:"search"`
	DatePosted string `query:"datePosted"`
	Sort       string `query:"sort"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

// Normalized clamps pagination to sane bounds. Page numbers are 1-indexed.
func (f JobFilter) Normalized() JobFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

func (f JobFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
