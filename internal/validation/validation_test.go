package validation

import (
	"strings"
	"testing"

	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		JobID: "5f2b7c9e-1111-2222-3333-444455556666",
		PersonalInfo: dto.PersonalInfoRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1 555 0100",
			Location:  "London",
		},
		ProfessionalInfo: dto.ProfessionalInfoRequest{
			Experience:        "Senior",
			CurrentRole:       "Engineer",
			SalaryExpectation: "$150k",
			AvailabilityDate:  "2026-04-01",
			Skills:            []string{"Go", "SQL"},
		},
		ApplicationDetails: dto.ApplicationDetailsRequest{
			CoverLetter:   "I would like to apply.",
			WhyInterested: "Great team.",
		},
	}
}

func TestStructValid(t *testing.T) {
	assert.Nil(t, Struct(validSubmitRequest()))
}

func TestStructEnumeratesEveryViolation(t *testing.T) {
	req := validSubmitRequest()
	req.PersonalInfo.FirstName = ""
	req.PersonalInfo.Email = "not-an-email"
	req.ProfessionalInfo.Skills = nil
	req.ApplicationDetails.CoverLetter = strings.Repeat("x", 2001)

	fields := Struct(req)
	require.NotNil(t, fields)

	assert.Contains(t, fields, "personalInfo.firstName")
	assert.Contains(t, fields, "personalInfo.email")
	assert.Contains(t, fields, "professionalInfo.skills")
	assert.Contains(t, fields, "applicationDetails.coverLetter")
	assert.Len(t, fields, 4)

	assert.Equal(t, "firstName is required", fields["personalInfo.firstName"])
	assert.Equal(t, "valid email is required", fields["personalInfo.email"])
	assert.Equal(t, "coverLetter cannot exceed 2000 characters", fields["applicationDetails.coverLetter"])
}

func TestStructISO8601(t *testing.T) {
	req := validSubmitRequest()

	for _, ok := range []string{"2026-04-01", "2026-04-01T09:30:00Z", "2026-04-01T09:30:00+07:00"} {
		req.ProfessionalInfo.AvailabilityDate = ok
		assert.Nil(t, Struct(req), "expected %q to be accepted", ok)
	}

	for _, bad := range []string{"01/04/2026", "April 1st", "2026-13-40"} {
		req.ProfessionalInfo.AvailabilityDate = bad
		fields := Struct(req)
		require.NotNil(t, fields, "expected %q to be rejected", bad)
		assert.Contains(t, fields, "professionalInfo.availabilityDate")
	}
}

func TestStructWhyInterestedLimit(t *testing.T) {
	req := validSubmitRequest()
	req.ApplicationDetails.WhyInterested = strings.Repeat("y", 1001)

	fields := Struct(req)
	require.NotNil(t, fields)
	assert.Equal(t, "whyInterested cannot exceed 1000 characters", fields["applicationDetails.whyInterested"])
}

func TestStructJobRequest(t *testing.T) {
	req := dto.CreateJobRequest{
		Title:           "Backend Engineer",
		Company:         "TechCorp Inc.",
		Category:        "Engineering",
		Location:        "Austin, TX",
		EmploymentType:  "Full-time",
		ExperienceLevel: "Senior",
		SalaryRange:     "$120k - $160k",
		Description:     "Build APIs.",
		Skills:          []string{"Go"},
	}
	assert.Nil(t, Struct(req))

	req.Category = "Gardening"
	req.EmploymentType = "Freelance"
	fields := Struct(req)
	require.NotNil(t, fields)
	assert.Equal(t, "invalid category", fields["category"])
	assert.Contains(t, fields, "employmentType")
}

func TestMerge(t *testing.T) {
	dst := Merge(nil, map[string]string{"resume": "missing-required-file"}, "")
	assert.Equal(t, map[string]string{"resume": "missing-required-file"}, dst)

	dst = Merge(dst, map[string]string{"firstName": "firstName is required"}, "personalInfo")
	assert.Equal(t, "firstName is required", dst["personalInfo.firstName"])
	assert.Len(t, dst, 2)
}
