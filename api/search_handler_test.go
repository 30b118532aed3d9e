package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t, newTestDB(t), nil)

	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		resp := doRequest(t, router, http.MethodGet, target, "", false)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, resp.Code)
		}
		if msg := errorMessage(t, resp); msg != "Search query is required" {
			t.Fatalf("%s: unexpected body %q", target, msg)
		}
	}
}

func TestSearchMatchesTitleDescriptionAndSkill(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	goSkill := seedSkill(t, db, "Go", "language")
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedProject(t, db, "Chess Engine", "minimax with pruning", base.Add(time.Hour))
	seedProject(t, db, "Notes App", "a chess-themed journal", base.Add(2*time.Hour))
	seedProject(t, db, "API Server", "plain service", base.Add(3*time.Hour), goSkill)
	seedProject(t, db, "Paint Clone", "drawing tool", base)

	// title match
	resp := doRequest(t, router, http.MethodGet, "/search?q=CHESS", "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}
	var body searchResponse
	decodeBody(t, resp, &body)
	if body.Query != "CHESS" {
		t.Fatalf("expected echoed query, got %q", body.Query)
	}
	if len(body.Results) != 2 || body.Pagination.Total != 2 {
		t.Fatalf("expected 2 chess matches, got %d (total %d)", len(body.Results), body.Pagination.Total)
	}

	// skill-name match
	resp = doRequest(t, router, http.MethodGet, "/search?q=go", "", false)
	decodeBody(t, resp, &body)
	found := false
	for _, r := range body.Results {
		if r.Title == "API Server" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected skill-name match for 'go', got %+v", body.Results)
	}

	// no match
	resp = doRequest(t, router, http.MethodGet, "/search?q=zzzz", "", false)
	decodeBody(t, resp, &body)
	if len(body.Results) != 0 || body.Pagination.Total != 0 || body.Pagination.Pages != 0 {
		t.Fatalf("expected empty result set, got %+v", body)
	}
}

func TestSearchSkillNamesFollowTheMatch(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	goSkill := seedSkill(t, db, "Go", "language")
	react := seedSkill(t, db, "React", "frontend")
	seedProject(t, db, "Service", "an api", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), goSkill, react)

	// a skill-only hit lists just the matching name
	resp := doRequest(t, router, http.MethodGet, "/search?q=react", "", false)
	var body searchResponse
	decodeBody(t, resp, &body)
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(body.Results))
	}
	if skills := body.Results[0].Skills; len(skills) != 1 || skills[0] != "React" {
		t.Fatalf("expected only the matched skill [React], got %+v", skills)
	}

	// a title hit keeps every tagged skill
	resp = doRequest(t, router, http.MethodGet, "/search?q=service", "", false)
	decodeBody(t, resp, &body)
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(body.Results))
	}
	if skills := body.Results[0].Skills; len(skills) != 2 || skills[0] != "Go" || skills[1] != "React" {
		t.Fatalf("expected both skills for a title match, got %+v", skills)
	}
}

func TestSearchTrimsQueryAndPaginates(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil)

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedProject(t, db, "Widget", "reusable widget", base.Add(time.Duration(i)*time.Hour))
	}

	target := "/search?q=" + url.QueryEscape("  widget  ") + "&page=2&limit=2"
	resp := doRequest(t, router, http.MethodGet, target, "", false)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body searchResponse
	decodeBody(t, resp, &body)
	if body.Query != "widget" {
		t.Fatalf("expected trimmed query 'widget', got %q", body.Query)
	}
	want := Pagination{Page: 2, Limit: 2, Total: 3, Pages: 2}
	if body.Pagination != want {
		t.Fatalf("expected pagination %+v, got %+v", want, body.Pagination)
	}
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 row on page 2, got %d", len(body.Results))
	}
}
