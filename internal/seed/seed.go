// Package seed loads a small demo dataset for local development.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedCompany struct {
	name     string
	email    string
	location string
	size     string
	industry string
}

var seedCompanies = []seedCompany{
	{"TechCorp Inc.", "hr@techcorp.example", "San Francisco, CA", "large", "Technology"},
	{"StartupXYZ", "jobs@startupxyz.example", "New York, NY", "startup", "SaaS"},
	{"Design Studio", "talent@designstudio.example", "Remote", "small", "Design"},
	{"DataDriven LLC", "careers@datadriven.example", "Seattle, WA", "medium", "Analytics"},
}

type seedCandidate struct {
	email     string
	firstName string
	lastName  string
	location  string
}

var seedCandidates = []seedCandidate{
	{"john.doe@example.com", "John", "Doe", "San Francisco, CA"},
	{"jane.smith@example.com", "Jane", "Smith", "New York, NY"},
}

type seedJob struct {
	title           string
	company         string
	logo            string
	category        string
	location        string
	employmentType  string
	experienceLevel string
	salaryRange     string
	description     string
	skills          []string
	ageDays         int
}

var seedJobs = []seedJob{
	{"Senior Frontend Developer", "TechCorp Inc.", "/tech-company-logo.jpg", "Engineering", "San Francisco, CA", "Full-time", "Senior", "$120k - $160k",
		"We are looking for a Senior Frontend Developer to join our growing team. You will be responsible for building user-friendly interfaces and implementing responsive designs.",
		[]string{"5+ years React experience", "TypeScript proficiency", "UI/UX design"}, 2},
	{"Product Manager", "StartupXYZ", "/abstract-startup-logo.png", "Product", "New York, NY", "Full-time", "Mid-Level", "$100k - $130k",
		"Join our product team to drive the roadmap and strategy for our core platform. Work closely with engineering and design teams.",
		[]string{"3+ years product management", "Agile methodology", "Data analysis"}, 5},
	{"UX Designer", "Design Studio", "/design-studio-logo.png", "Design", "Remote", "Contract", "Mid-Level", "$80k - $100k",
		"Create beautiful and intuitive user experiences for our clients. Work on diverse projects across different industries.",
		[]string{"Figma expertise", "User research experience", "Prototyping"}, 1},
	{"Junior Software Engineer", "TechCorp Inc.", "/tech-company-logo.jpg", "Engineering", "Austin, TX", "Full-time", "Entry", "$70k - $90k",
		"Perfect opportunity for new graduates to start their career in software development. Work on exciting projects with mentorship.",
		[]string{"JavaScript/TypeScript", "React/Vue.js", "Git version control"}, 10},
	{"Platform Engineer", "StartupXYZ", "/abstract-startup-logo.png", "Engineering", "Remote (hybrid optional)", "Remote", "Senior", "$110k - $150k",
		"Manage infrastructure and deployment pipelines. Ensure high availability and performance.",
		[]string{"Docker", "Kubernetes", "CI/CD", "AWS"}, 3},
	{"Data Scientist", "DataDriven LLC", "/data-science-company-logo.jpg", "Data", "Seattle, WA", "Full-time", "Senior", "$130k - $170k",
		"Applying advanced statistical analysis and machine learning to solve complex business problems. Work with large datasets.",
		[]string{"Python/R", "Machine Learning", "SQL"}, 21},
}

// Run inserts the demo companies, candidates, and jobs. Existing rows are
// left alone, so running it twice is harmless.
func Run(db *gorm.DB) error {
	companies := make(map[string]uuid.UUID, len(seedCompanies))

	for _, sc := range seedCompanies {
		var existing model.Company
		err := db.First(&existing, "email = ?", sc.email).Error
		if err == nil {
			companies[sc.name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := service.HashPassword("password123")
		if err != nil {
			return err
		}
		comp := model.Company{
			ID:         uuid.New(),
			Name:       sc.name,
			Email:      sc.email,
			Password:   hash,
			Location:   sc.location,
			Size:       sc.size,
			Industry:   sc.industry,
			IsVerified: true,
		}
		if err := db.Create(&comp).Error; err != nil {
			return err
		}
		companies[sc.name] = comp.ID
		logrus.WithField("company", sc.name).Info("seeded company")
	}

	for _, sc := range seedCandidates {
		var count int64
		db.Model(&model.Candidate{}).Where("email = ?", sc.email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := service.HashPassword("password123")
		if err != nil {
			return err
		}
		cand := model.Candidate{
			ID:       uuid.New(),
			Email:    sc.email,
			Password: hash,
			Profile: model.CandidateProfile{
				FirstName: sc.firstName,
				LastName:  sc.lastName,
				Location:  sc.location,
			},
		}
		if err := db.Create(&cand).Error; err != nil {
			return err
		}
		logrus.WithField("candidate", sc.email).Info("seeded candidate")
	}

	for _, sj := range seedJobs {
		var count int64
		db.Model(&model.Job{}).
			Where("title = ? AND company = ?", sj.title, sj.company).
			Count(&count)
		if count > 0 {
			continue
		}

		job := model.Job{
			ID:              uuid.New(),
			Title:           sj.title,
			Company:         sj.company,
			CompanyLogo:     sj.logo,
			Category:        sj.category,
			Location:        sj.location,
			EmploymentType:  sj.employmentType,
			ExperienceLevel: sj.experienceLevel,
			SalaryRange:     sj.salaryRange,
			Description:     sj.description,
			Skills:          pq.StringArray(sj.skills),
			IsActive:        true,
			CompanyID:       companies[sj.company],
			PostedDate:      time.Now().AddDate(0, 0, -sj.ageDays),
		}
		if err := db.Create(&job).Error; err != nil {
			return err
		}
		logrus.WithField("job", sj.title).Info("seeded job")
	}

	return nil
}
