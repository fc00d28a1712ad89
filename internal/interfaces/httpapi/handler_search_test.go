package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/codescribler/playerprofile-sub000/internal/domain/user"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/memory"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
	"github.com/codescribler/playerprofile-sub000/internal/platform/id"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
)

const (
	testTokenScout = "token-scout"
	testTokenAlex  = "token-alex"
	testTokenCarla = "token-carla"
)

type stubVerifier struct {
	principals map[string]user.Principal
}

func (s stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := s.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

type stubGeocoder struct {
	points map[string]geo.Point
}

func (s stubGeocoder) Resolve(_ context.Context, postcode string) (geo.Point, error) {
	p, ok := s.points[postcode]
	if !ok {
		return geo.Point{}, fmt.Errorf("%w: postcode %s", usecase.ErrNotFound, postcode)
	}
	return p, nil
}

func newTestRouter() http.Handler {
	playerRepo := memory.NewPlayerRepository(
		memory.SeedPlayers(), memory.SeedPositions(), memory.SeedTeams(), memory.SeedAbilities(),
	)
	geocoder := stubGeocoder{points: map[string]geo.Point{
		"SW1A 1AA": {Latitude: 51.5014, Longitude: -0.1419},
	}}
	searchService := usecase.NewSearchService(playerRepo, playerRepo, geocoder)
	savedSearchService := usecase.NewSavedSearchService(
		memory.NewSavedSearchRepository(), searchService, id.NewRandomGenerator(),
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(searchService, savedSearchService, logger)
	verifier := stubVerifier{principals: map[string]user.Principal{
		testTokenScout: {UserID: "user-scout", Email: "scout@example.com", Role: user.RoleScout},
		testTokenAlex:  {UserID: memory.SeedOwnerAlex, Role: user.RolePlayer},
		testTokenCarla: {UserID: memory.SeedOwnerCarla, Role: user.RolePlayer},
	}}

	return NewRouter(handler, verifier, logger, false, nil)
}

type summaryListEnvelope struct {
	APIVersion string             `json:"apiVersion"`
	Data       []playerSummaryDTO `json:"data"`
	Error      *googleErrorBody   `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSummaries(t *testing.T, rec *httptest.ResponseRecorder) []playerSummaryDTO {
	t.Helper()

	var envelope summaryListEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion: %q", envelope.APIVersion)
	}
	return envelope.Data
}

func summaryIDs(summaries []playerSummaryDTO) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func TestHealthz_NoAuthRequired(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestSearchPlayers_RequiresAuth(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/players/search", "", "{}")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/players/search", "token-bogus", "{}")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown token, got %d", rec.Code)
	}
}

func TestSearchPlayers_ByPosition(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"playing":{"positions":["st"]}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	assertIDs(t, summaryIDs(decodeSummaries(t, rec)), []string{"ply-001", "ply-003"})
}

func TestSearchPlayers_HeightInFeetAndInches(t *testing.T) {
	router := newTestRouter()

	// 5 ft 3 in = 160.02 cm, rounded to 160: keeps the 168, 160 and 175 cm
	// players and drops the 152 cm one.
	rec := doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"physical":{"minHeightFeet":5,"minHeightInches":3}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	assertIDs(t, summaryIDs(decodeSummaries(t, rec)), []string{"ply-002", "ply-003", "ply-005"})
}

func TestSearchPlayers_LocationRadiusAnnotatesDistance(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"basic":{"postcode":"sw1a 1aa","radiusMiles":10},"sort":"distance"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	summaries := decodeSummaries(t, rec)
	assertIDs(t, summaryIDs(summaries), []string{"ply-001", "ply-002"})
	for _, s := range summaries {
		if s.DistanceMiles == nil {
			t.Fatalf("expected distance annotation on %s", s.ID)
		}
	}
	if *summaries[0].DistanceMiles > *summaries[1].DistanceMiles {
		t.Fatalf("results not sorted by distance: %+v", summaries)
	}
}

func TestSearchPlayers_RejectsMalformedAndInvalidPayloads(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout, `{"playing":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed JSON, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"skills":{"juggling":5}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown skill, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"skills":{"passing":11}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for out-of-scale skill threshold, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/players/search", testTokenScout,
		`{"basic":{"postcode":"ZZ99 9ZZ","radiusMiles":10}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unresolvable postcode, got %d", rec.Code)
	}
}

func TestQuickSearchPlayers(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/v1/players/quick-search?q=smith", testTokenScout, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	assertIDs(t, summaryIDs(decodeSummaries(t, rec)), []string{"ply-001", "ply-005"})

	rec = doRequest(t, router, http.MethodGet, "/v1/players/quick-search", testTokenScout, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for blank query, got %d", rec.Code)
	}
}

func TestListMyPlayers_IncludesUnpublished(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/v1/players/mine", testTokenAlex, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	assertIDs(t, summaryIDs(decodeSummaries(t, rec)), []string{"ply-001", "ply-005"})
}
