package model

import "github.com/google/uuid"

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

// Principal is the authenticated actor on a request: a candidate, a company,
// or nobody. Handlers never look at raw token claims, only at this value.
type Principal struct {
	Role Role
	ID   uuid.UUID
}

func Anonymous() Principal {
	return Principal{Role: RoleAnonymous}
}

func (p Principal) IsCandidate() bool { return p.Role == RoleCandidate }
func (p Principal) IsCompany() bool   { return p.Role == RoleCompany }
func (p Principal) IsAnonymous() bool { return p.Role == RoleAnonymous }

// CanViewApplication reports whether the principal may read an application:
// the candidate who submitted it, or the company that owns the referenced job.
func (p Principal) CanViewApplication(app *Application, job *Job) bool {
	switch p.Role {
	case RoleCandidate:
		return app.CandidateID == p.ID
	case RoleCompany:
		return job != nil && job.CompanyID == p.ID
	default:
		return false
	}
}

// CanMutateApplication reports whether the principal may change an
// application's status. Only the company owning the referenced job can.
func (p Principal) CanMutateApplication(job *Job) bool {
	return p.Role == RoleCompany && job != nil && job.CompanyID == p.ID
}

// OwnsJob reports whether the principal is the company that posted the job.
// Ownership always compares against the authenticated identity, never against
// anything supplied in a request body.
func (p Principal) OwnsJob(job *Job) bool {
	return p.Role == RoleCompany && job != nil && job.CompanyID == p.ID
}
