package dto

type CandidateProfileRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=50"`
	LastName     string `json:"lastName" validate:"required,max=50"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedinURL  string `json:"linkedinUrl"`
	PortfolioURL string `json:"portfolioUrl"`
}

type RegisterCandidateRequest struct {
	Email    string                  `json:"email" validate:"required,email"`
	Password string                  `json:"password" validate:"required,min=6"`
	Profile  CandidateProfileRequest `json:"profile"`
}

type RegisterCompanyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required,max=100"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Size        string `json:"size" validate:"omitempty,oneof=startup small medium large"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the token at the top level next to the envelope fields,
// which is the shape the frontend login flow consumes.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Data    any    `json:"data"`
}
