package database

import (
	"errors"
	"strings"

	"github.com/saibhanage/me-api-playground/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// sortSkills orders preloaded skill associations alphabetically so
// the aggregated skill list on a project is stable.
func sortSkills(db *gorm.DB) *gorm.DB {
	return db.Order("skills.name ASC")
}

func joinSkills(tx *gorm.DB) *gorm.DB {
	return tx.
		Joins("LEFT JOIN project_skills ON project_skills.project_id = projects.id").
		Joins("LEFT JOIN skills ON skills.id = project_skills.skill_id")
}

// List returns one page of projects ordered by creation time
// descending, plus the total count of distinct matches. When skill is
// non-empty only projects tagged with a skill whose name contains it
// (case-insensitive) are returned, and each row's skill list holds
// only the names that passed the filter.
func (r *ProjectRepo) List(skill string, page, limit int) ([]*models.Project, int64, error) {
	filtered := func() *gorm.DB {
		tx := joinSkills(r.db.Model(&models.Project{}))
		if skill != "" {
			tx = tx.Where("LOWER(skills.name) LIKE ?", "%"+strings.ToLower(skill)+"%")
		}
		return tx
	}

	var total int64
	if err := filtered().Distinct("projects.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err := filtered().
		Select("DISTINCT projects.*").
		Order("projects.created_at DESC, projects.id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachSkills(filtered, projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// attachSkills fills each project's skill list from the join rows that
// survive the caller's predicate, so a filtered listing aggregates only
// the skill names that matched. Names come back alphabetical.
func (r *ProjectRepo) attachSkills(filtered func() *gorm.DB, projects []*models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]int, 0, len(projects))
	byID := make(map[int]*models.Project, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
		byID[p.ID] = p
		p.Skills = []models.Skill{}
	}

	var rows []struct {
		ProjectID int
		Name      string
	}
	err := filtered().
		Where("projects.id IN ?", ids).
		Where("skills.id IS NOT NULL").
		Select("projects.id AS project_id, skills.name AS name").
		Order("skills.name ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		p := byID[row.ProjectID]
		p.Skills = append(p.Skills, models.Skill{Name: row.Name})
	}
	return nil
}

// FindByID returns a project with its skills, or nil when absent.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Skills", sortSkills).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Search returns one page of projects whose title, description or any
// associated skill name contains the query (case-insensitive). The
// substring match selects rows; a full-text rank over title and
// description orders them, with recency as tiebreak. ts_rank only
// exists on Postgres, so other dialects degrade to recency ordering.
// Skill names per row come from the join rows passing the same
// predicate: a title or description hit keeps every tagged skill, a
// skill-only hit keeps just the names that matched.
func (r *ProjectRepo) Search(query string, page, limit int) ([]*models.Project, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	filtered := func() *gorm.DB {
		return joinSkills(r.db.Model(&models.Project{})).
			Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ? OR LOWER(skills.name) LIKE ?",
				pattern, pattern, pattern)
	}

	var total int64
	if err := filtered().Distinct("projects.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	selectExpr := "DISTINCT projects.*, 0 AS rank"
	selectArgs := []interface{}{}
	if r.db.Dialector.Name() == "postgres" {
		selectExpr = "DISTINCT projects.*, " +
			"ts_rank(to_tsvector('english', projects.title || ' ' || projects.description), " +
			"plainto_tsquery('english', ?)) AS rank"
		selectArgs = append(selectArgs, query)
	}

	var projects []*models.Project
	err := filtered().
		Select(selectExpr, selectArgs...).
		Order("rank DESC, projects.created_at DESC, projects.id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachSkills(filtered, projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}
