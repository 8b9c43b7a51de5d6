package in_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	memoryin "missionctl/internal/modules/memory/adapter/in"
	"missionctl/internal/modules/memory/domain"
	"missionctl/internal/modules/memory/dto"
	memoryport "missionctl/internal/modules/memory/port/in"
)

type fakeUsecase struct {
	lastLimit int
	searches  int
}

func (f *fakeUsecase) Priorities(context.Context) dto.PrioritiesOutput {
	return dto.PrioritiesOutput{Priorities: []dto.PriorityOutput{}, Source: "empty"}
}

func (f *fakeUsecase) Notes(_ context.Context, input dto.NotesInput) (dto.NotesOutput, error) {
	f.lastLimit = input.Limit
	return dto.NotesOutput{Notes: []dto.NoteOutput{}, Source: "empty"}, nil
}

func (f *fakeUsecase) Ideas(context.Context) dto.IdeasOutput {
	return dto.IdeasOutput{Ideas: []dto.IdeaOutput{}, Source: "empty"}
}

func (f *fakeUsecase) Agents(context.Context) dto.AgentsOutput {
	return dto.AgentsOutput{Agents: []dto.AgentOutput{}, Source: "empty"}
}

func (f *fakeUsecase) Search(_ context.Context, input dto.SearchInput) (dto.SearchOutput, error) {
	f.searches++
	return dto.SearchOutput{
		Results:      []dto.FileMatchesOutput{{File: "MEMORY.md", Matches: []dto.MatchOutput{{Line: 3, Text: input.Query}}}},
		TotalMatches: 1,
	}, nil
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMemoryRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeUsecase{}
	r := gin.New()
	memoryin.NewHTTPHandler(fake).Register(r.Group("/api"))

	for _, target := range []string{"/api/search", "/api/search?q=%20%20", "/api/memory/notes?limit=0", "/api/memory/notes?limit=61", "/api/memory/notes?limit=abc"} {
		rec := serve(r, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
			t.Fatalf("%s: expected error body, got %s", target, rec.Body.String())
		}
	}
	if fake.searches != 0 {
		t.Fatalf("rejected searches must not reach the usecase")
	}

	if rec := serve(r, "/api/memory/notes?limit=14"); rec.Code != http.StatusOK || fake.lastLimit != 14 {
		t.Fatalf("expected 200 with limit 14, got %d limit=%d", rec.Code, fake.lastLimit)
	}
	if rec := serve(r, "/api/memory/notes"); rec.Code != http.StatusOK || fake.lastLimit != 0 {
		t.Fatalf("missing limit must use the default, got limit=%d", fake.lastLimit)
	}

	rec := serve(r, "/api/search?q=nova")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out dto.SearchOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalMatches != 1 || out.Results[0].Matches[0].Text != "nova" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	for _, target := range []string{"/api/memory/priorities", "/api/memory/ideas", "/api/agents"} {
		if rec := serve(r, target); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
	}
}

func TestNotesLimitFollowsServiceBound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if memoryport.MaxNoteLimit != domain.MaxNoteLimit {
		t.Fatalf("handler bound %d drifted from service bound %d", memoryport.MaxNoteLimit, domain.MaxNoteLimit)
	}
	fake := &fakeUsecase{}
	r := gin.New()
	memoryin.NewHTTPHandler(fake).Register(r.Group("/api"))

	if rec := serve(r, fmt.Sprintf("/api/memory/notes?limit=%d", domain.MaxNoteLimit)); rec.Code != http.StatusOK || fake.lastLimit != domain.MaxNoteLimit {
		t.Fatalf("limit at the bound must pass, got %d limit=%d", rec.Code, fake.lastLimit)
	}
	if rec := serve(r, fmt.Sprintf("/api/memory/notes?limit=%d", domain.MaxNoteLimit+1)); rec.Code != http.StatusBadRequest {
		t.Fatalf("limit above the bound must be rejected, got %d", rec.Code)
	}
}
