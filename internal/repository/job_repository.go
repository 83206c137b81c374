package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfm/job-board-api/internal/dto"
	"github.com/rizkyfm/job-board-api/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// listQuery is the effective listing predicate after filter composition.
// Building it separately from GORM keeps the remote-mode override rules (the
// remote filter rewrites the employment-type and location conditions it
// collides with) in one testable place.
type listQuery struct {
	category       string
	locationLikes  []string // OR'd case-insensitive substring matches
	experience     string
	employmentType string // exact match
	excludeRemote  bool   // employment_type <> 'Remote'
	search         string
	postedAfter    *time.Time
	orderBy        string
}

// postedWithin maps the symbolic age buckets to durations. Unknown buckets
// and "any" mean no cutoff.
var postedWithin = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"3d":  3 * 24 * time.Hour,
	"1w":  7 * 24 * time.Hour,
	"2w":  14 * 24 * time.Hour,
	"1m":  30 * 24 * time.Hour,
}

// sortClauses maps sort keys to ORDER BY clauses. salary_range is a free-text
// column, so the salary sorts are lexicographic, matching the original
// board's ordering on the same string field.
var sortClauses = map[string]string{
	"newest":      "posted_date DESC",
	"oldest":      "posted_date ASC",
	"salary-high": "salary_range DESC",
	"salary-low":  "salary_range ASC",
}

func buildListQuery(f dto.JobFilter, now time.Time) listQuery {
	q := listQuery{orderBy: sortClauses["newest"]}

	if f.Category != "" && f.Category != "all" {
		q.category = f.Category
	}
	if f.Location != "" && f.Location != "all" {
		q.locationLikes = []string{f.Location}
	}
	if f.Experience != "" && f.Experience != "all" {
		q.experience = f.Experience
	}
	if f.Type != "" && f.Type != "all" {
		q.employmentType = f.Type
	}

	// Remote mode is applied after the plain filters; when it targets the same
	// column, its condition replaces the earlier one (last writer wins).
	switch f.Remote {
	case "remote":
		q.employmentType = "Remote"
		q.excludeRemote = false
	case "hybrid":
		q.locationLikes = []string{"hybrid", "remote"}
	case "onsite":
		q.employmentType = ""
		q.excludeRemote = true
	}

	if f.Search != "" {
		q.search = f.Search
	}

	if d, ok := postedWithin[f.DatePosted]; ok {
		cutoff := now.Add(-d)
		q.postedAfter = &cutoff
	}

	if clause, ok := sortClauses[f.Sort]; ok {
		q.orderBy = clause
	}

	return q
}

func (q listQuery) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("is_active = ?", true)

	if q.category != "" {
		db = db.Where("category = ?", q.category)
	}
	if len(q.locationLikes) > 0 {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Where("location ILIKE ?", "%"+q.locationLikes[0]+"%")
		for _, loc := range q.locationLikes[1:] {
			sub = sub.Or("location ILIKE ?", "%"+loc+"%")
		}
		db = db.Where(sub)
	}
	if q.experience != "" {
		db = db.Where("experience_level = ?", q.experience)
	}
	if q.employmentType != "" {
		db = db.Where("employment_type = ?", q.employmentType)
	}
	if q.excludeRemote {
		db = db.Where("employment_type <> ?", "Remote")
	}
	if q.search != "" {
		db = db.Where(
			"to_tsvector('english', title || ' ' || description || ' ' || company) @@ plainto_tsquery('english', ?)",
			q.search,
		)
	}
	if q.postedAfter != nil {
		db = db.Where("posted_date >= ?", *q.postedAfter)
	}

	return db
}

// List returns one page of active jobs matching the filter, plus the total
// match count before pagination.
func (r *JobRepository) List(f dto.JobFilter) ([]model.Job, int64, error) {
	f = f.Normalized()
	q := buildListQuery(f, time.Now())

	var total int64
	if err := q.apply(r.db.Model(&model.Job{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := q.apply(r.db.Model(&model.Job{})).
		Order(q.orderBy).
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&jobs).Error
	return jobs, total, err
}

// Categories returns the distinct categories across active jobs, for the
// board's filter dropdowns.
func (r *JobRepository) Categories() ([]string, error) {
	return r.distinct("category")
}

// Locations returns the distinct locations across active jobs.
func (r *JobRepository) Locations() ([]string, error) {
	return r.distinct("location")
}

func (r *JobRepository) distinct(column string) ([]string, error) {
	var values []string
	err := r.db.Model(&model.Job{}).
		Where("is_active = ?", true).
		Distinct().
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}
