package api

import (
	"net/http"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/saibhanage/me-api-playground/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination is the block every listing response carries. Pages is
// ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// parsePagination reads page/limit query parameters. Invalid or
// non-positive values fall back to defaults; limit is capped so one
// request cannot page the whole table.
func parsePagination(r *http.Request) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	return page, limit
}

// projectView is the wire shape of a project: the row's own columns
// with skills flattened to their names.
type projectView struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Links       datatypes.JSON `json:"links"`
	ImageURL    string         `json:"image_url"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Skills      []string       `json:"skills"`
}

func newProjectView(p *models.Project) projectView {
	return projectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Links:       p.Links,
		ImageURL:    p.ImageURL,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Skills:      p.SkillNames(),
	}
}

func newProjectViews(projects []*models.Project) []projectView {
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	return views
}

// projectListResponse is the GET /projects payload
type projectListResponse struct {
	Projects   []projectView `json:"projects"`
	Pagination Pagination    `json:"pagination"`
}

// searchResponse is the GET /search payload, echoing the trimmed query
type searchResponse struct {
	Query      string        `json:"query"`
	Results    []projectView `json:"results"`
	Pagination Pagination    `json:"pagination"`
}
