package dto

import (
	"mime/multipart"
	"time"
)

type PersonalInfoRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Location     string `json:"location" validate:"required"`
	LinkedinURL  string `json:"linkedinUrl"`
	PortfolioURL string `json:"portfolioUrl"`
}

type ProfessionalInfoRequest struct {
	Experience        string   `json:"experience" validate:"required"`
	CurrentRole       string   `json:"currentRole" validate:"required"`
	CurrentCompany    string   `json:"currentCompany"`
	SalaryExpectation string   `json:"salaryExpectation" validate:"required"`
	AvailabilityDate  string   `json:"availabilityDate" validate:"required,iso8601"`
	Skills            []string `json:"skills" validate:"required,min=1"`
}

// ParsedAvailability returns the availability date; AvailabilityDate must have
// passed the iso8601 rule first.
func (r ProfessionalInfoRequest) ParsedAvailability() time.Time {
	if t, err := time.Parse(time.RFC3339, r.AvailabilityDate); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", r.AvailabilityDate)
	return t
}

type ApplicationDetailsRequest struct {
	CoverLetter   string `json:"coverLetter" validate:"required,max=2000"`
	WhyInterested string `json:"whyInterested" validate:"required,max=1000"`
	References    bool   `json:"references"`
	Relocate      bool   `json:"relocate"`
	RemoteWork    string `json:"remoteWork" validate:"omitempty,oneof=remote hybrid onsite flexible"`
}

// SubmitApplicationRequest is assembled by the handler from the multipart
// form: three JSON parts plus the resume (required) and portfolio (optional)
// files.
type SubmitApplicationRequest struct {
	JobID              string                    `json:"jobId" validate:"required"`
	PersonalInfo       PersonalInfoRequest       `json:"personalInfo"`
	ProfessionalInfo   ProfessionalInfoRequest   `json:"professionalInfo"`
	ApplicationDetails ApplicationDetailsRequest `json:"applicationDetails"`

	Resume    *multipart.FileHeader `json:"-" validate:"-"`
	Portfolio *multipart.FileHeader `json:"-" validate:"-"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected hired"`
}

// ApplicationFilter pages through a candidate's or a job's applications,
// optionally narrowed to one status.
type ApplicationFilter struct {
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

func (f ApplicationFilter) Normalized() ApplicationFilter {
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

func (f ApplicationFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
