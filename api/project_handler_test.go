package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestListProjectsPaginationWithSkillFilter(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	goSkill := seedSkill(t, db, "Go", "language")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProject(t, db, fmt.Sprintf("Go Project %d", i), "service", base.Add(time.Duration(i)*time.Hour), goSkill)
	}
	// one project without the skill must not match
	seedProject(t, db, "Rust Project", "cli", base)

	resp := doRequest(t, router, http.MethodGet, "/projects?skill=go&page=1&limit=2", "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}

	var body projectListResponse
	decodeBody(t, resp, &body)
	if len(body.Projects) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(body.Projects))
	}
	want := Pagination{Page: 1, Limit: 2, Total: 5, Pages: 3}
	if body.Pagination != want {
		t.Fatalf("expected pagination %+v, got %+v", want, body.Pagination)
	}
	// newest first
	if body.Projects[0].Title != "Go Project 4" || body.Projects[1].Title != "Go Project 3" {
		t.Fatalf("unexpected order: %q, %q", body.Projects[0].Title, body.Projects[1].Title)
	}

	// last page holds the remainder
	last := doRequest(t, router, http.MethodGet, "/projects?skill=go&page=3&limit=2", "", false)
	var lastBody projectListResponse
	decodeBody(t, last, &lastBody)
	if len(lastBody.Projects) != 1 {
		t.Fatalf("expected 1 row on last page, got %d", len(lastBody.Projects))
	}
}

func TestListProjectsSkillFilterIsCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	ts := seedSkill(t, db, "TypeScript", "language")
	seedProject(t, db, "Web App", "frontend", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), ts)

	resp := doRequest(t, router, http.MethodGet, "/projects?skill=script", "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body projectListResponse
	decodeBody(t, resp, &body)
	if len(body.Projects) != 1 || body.Projects[0].Title != "Web App" {
		t.Fatalf("expected the TypeScript project for filter 'script', got %+v", body.Projects)
	}
	if len(body.Projects[0].Skills) != 1 || body.Projects[0].Skills[0] != "TypeScript" {
		t.Fatalf("expected flattened skill names, got %+v", body.Projects[0].Skills)
	}
}

func TestListProjectsDefaultsOnBadParams(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)
	seedProject(t, db, "Only", "one", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	resp := doRequest(t, router, http.MethodGet, "/projects?page=abc&limit=-3", "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body projectListResponse
	decodeBody(t, resp, &body)
	if body.Pagination.Page != 1 || body.Pagination.Limit != 10 {
		t.Fatalf("expected default pagination, got %+v", body.Pagination)
	}
}

func TestListProjectsNoDuplicatesWithMultipleSkillMatches(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	golang := seedSkill(t, db, "Golang", "language")
	google := seedSkill(t, db, "Google Cloud", "cloud")
	seedProject(t, db, "Infra", "deploy", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), golang, google)

	// both skills contain "go"; the project must appear once
	resp := doRequest(t, router, http.MethodGet, "/projects?skill=go", "", false)
	var body projectListResponse
	decodeBody(t, resp, &body)
	if len(body.Projects) != 1 {
		t.Fatalf("expected 1 row, got %d", len(body.Projects))
	}
	if body.Pagination.Total != 1 {
		t.Fatalf("expected total 1, got %d", body.Pagination.Total)
	}
}

func TestListProjectsFilterScopesSkillNames(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	goSkill := seedSkill(t, db, "Go", "language")
	react := seedSkill(t, db, "React", "frontend")
	seedProject(t, db, "Dashboard", "admin ui", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), goSkill, react)

	// unfiltered listing keeps every tag
	resp := doRequest(t, router, http.MethodGet, "/projects", "", false)
	var body projectListResponse
	decodeBody(t, resp, &body)
	if len(body.Projects) != 1 || len(body.Projects[0].Skills) != 2 {
		t.Fatalf("expected both skills without a filter, got %+v", body.Projects)
	}

	// filtering narrows the aggregated names to the matches
	resp = doRequest(t, router, http.MethodGet, "/projects?skill=go", "", false)
	decodeBody(t, resp, &body)
	if len(body.Projects) != 1 {
		t.Fatalf("expected 1 row, got %d", len(body.Projects))
	}
	if skills := body.Projects[0].Skills; len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("expected only the matched skill [Go], got %+v", skills)
	}
}

func TestGetProject(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	skill := seedSkill(t, db, "Go", "language")
	project := seedProject(t, db, "Service", "an api", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), skill)

	resp := doRequest(t, router, http.MethodGet, fmt.Sprintf("/projects/%d", project.ID), "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var view projectView
	decodeBody(t, resp, &view)
	if view.ID != project.ID || view.Title != "Service" {
		t.Fatalf("unexpected project %+v", view)
	}
	if len(view.Skills) != 1 || view.Skills[0] != "Go" {
		t.Fatalf("unexpected skills %+v", view.Skills)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	router := newTestRouter(t, newTestDB(t), nil)

	resp := doRequest(t, router, http.MethodGet, "/projects/999", "", false)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if msg := errorMessage(t, resp); msg != "Project not found" {
		t.Fatalf("unexpected body %q", msg)
	}

	bad := doRequest(t, router, http.MethodGet, "/projects/abc", "", false)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", bad.Code)
	}
}
