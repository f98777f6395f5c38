package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/poller"
)

type stubSource struct {
	games []domain.Game
	err   error
	dates []string
}

func (s *stubSource) GamesByDate(ctx context.Context, date string) ([]domain.Game, error) {
	s.dates = append(s.dates, date)
	if s.err != nil {
		return nil, s.err
	}
	return s.games, nil
}

func serveRequest(t *testing.T, handler *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(handler)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestGamesByDateReturnsGames(t *testing.T) {
	source := &stubSource{games: []domain.Game{
		{
			ID:        2024020500,
			GameDate:  "2025-01-10",
			GameState: domain.StateOfficial,
			HomeTeam: &domain.Team{
				ID:     6,
				Abbrev: "BOS",
				Name:   &domain.LocalizedName{Default: "Bruins"},
				Score:  3,
			},
		},
	}}
	handler := NewHandler(source, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/api/v1/games/2025-01-10")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
	if len(source.dates) != 1 || source.dates[0] != "2025-01-10" {
		t.Fatalf("expected one lookup for the date, got %v", source.dates)
	}

	var games []domain.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(games) != 1 || games[0].ID != 2024020500 {
		t.Fatalf("unexpected payload: %+v", games)
	}
	if games[0].HomeTeam == nil || games[0].HomeTeam.Name == nil || games[0].HomeTeam.Name.Default != "Bruins" {
		t.Fatalf("expected nested team shape, got %+v", games[0].HomeTeam)
	}
}

func TestGamesByDateSerializesCommonName(t *testing.T) {
	source := &stubSource{games: []domain.Game{
		{
			ID:       1,
			GameDate: "2025-01-10",
			HomeTeam: &domain.Team{
				ID:   6,
				Name: &domain.LocalizedName{Default: "Bruins"},
			},
		},
	}}
	handler := NewHandler(source, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/api/v1/games/2025-01-10")

	var payload []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	home, ok := payload[0]["homeTeam"].(map[string]any)
	if !ok {
		t.Fatalf("expected homeTeam object, got %+v", payload[0])
	}
	name, ok := home["commonName"].(map[string]any)
	if !ok || name["default"] != "Bruins" {
		t.Fatalf("expected commonName wrapper, got %+v", home)
	}
}

func TestGamesByDateRejectsInvalidDate(t *testing.T) {
	source := &stubSource{}
	handler := NewHandler(source, nil, nil)

	for _, target := range []string{
		"/api/v1/games/not-a-date",
		"/api/v1/games/2025-13-40",
		"/api/v1/games/20250110",
	} {
		rec := serveRequest(t, handler, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rec.Code)
		}
	}
	if len(source.dates) != 0 {
		t.Fatalf("expected no lookups for invalid dates, got %v", source.dates)
	}
}

func TestGamesByDateEmptyIsNoContent(t *testing.T) {
	handler := NewHandler(&stubSource{}, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/api/v1/games/2025-01-10")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestGamesByDateSourceErrorIsServerError(t *testing.T) {
	handler := NewHandler(&stubSource{err: errors.New("store down")}, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/api/v1/games/2025-01-10")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	handler := NewHandler(&stubSource{}, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyWithoutPollerIsReady(t *testing.T) {
	handler := NewHandler(&stubSource{}, nil, nil)

	rec := serveRequest(t, handler, http.MethodGet, "/ready")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	status := poller.Status{}
	handler := NewHandler(&stubSource{}, nil, func() poller.Status { return status })

	rec := serveRequest(t, handler, http.MethodGet, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status = poller.Status{LastSuccess: time.Now()}
	rec = serveRequest(t, handler, http.MethodGet, "/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}

	status = poller.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "boom"}
	rec = serveRequest(t, handler, http.MethodGet, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while failing, got %d", rec.Code)
	}
}
