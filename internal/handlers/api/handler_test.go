package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kantodex/pokedash/internal/database"
	"github.com/kantodex/pokedash/internal/ingest"
	"github.com/kantodex/pokedash/internal/models"
	"github.com/kantodex/pokedash/internal/stats"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "pokedash.db"))
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db := &database.DB{DB: sqlDB, Dialect: "sqlite"}
	ctx := database.NewContext(context.Background(), db)
	database.Migrate(ctx)

	err = ingest.Replace(ctx, []models.Pokemon{
		{Name: "Bulbasaur", Type1: "Grass", Type2: "Poison", HP: 45, Attack: 49, Defense: 49, SpAtk: 65, SpDef: 65, Speed: 45, Generation: 1},
		{Name: "Charmander", Type1: "Fire", HP: 39, Attack: 52, Defense: 43, SpAtk: 60, SpDef: 50, Speed: 65, Generation: 1},
		{Name: "Squirtle", Type1: "Water", HP: 44, Attack: 48, Defense: 65, SpAtk: 50, SpDef: 64, Speed: 43, Generation: 1},
		{Name: "Chikorita", Type1: "Grass", HP: 45, Attack: 49, Defense: 65, SpAtk: 49, SpDef: 65, Speed: 45, Generation: 2},
	})
	if err != nil {
		t.Fatalf("seeding relation: %v", err)
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(database.NewContext(req.Context(), db)))
		})
	})
	r.Route("/api/v1", NewHandler().Route)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestTypeCounts(t *testing.T) {
	srv := newTestServer(t)

	var resp typeCountsResponse
	if status := getJSON(t, srv.URL+"/api/v1/stats/types", &resp); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	if resp.Generation != nil {
		t.Error("expected no generation on the unfiltered response")
	}

	sum := 0
	for _, tc := range resp.Types {
		sum += tc.Count
	}
	if sum != 4 {
		t.Errorf("type counts sum to %d, want 4", sum)
	}
}

func TestTypeCountsFiltered(t *testing.T) {
	srv := newTestServer(t)

	var resp typeCountsResponse
	if status := getJSON(t, srv.URL+"/api/v1/stats/types?generation=2", &resp); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	if resp.Generation == nil || *resp.Generation != 2 {
		t.Fatal("expected the response to echo generation 2")
	}
	if len(resp.Types) != 1 || resp.Types[0].Type != "Grass" || resp.Types[0].Count != 1 {
		t.Errorf("unexpected generation 2 counts: %+v", resp.Types)
	}
}

func TestTypeCountsEmptyGeneration(t *testing.T) {
	srv := newTestServer(t)

	var resp typeCountsResponse
	if status := getJSON(t, srv.URL+"/api/v1/stats/types?generation=8", &resp); status != http.StatusOK {
		t.Fatalf("expected 200 for an empty generation, got %d", status)
	}
	if len(resp.Types) != 0 {
		t.Errorf("expected no counts for generation 8, got %+v", resp.Types)
	}
}

func TestTypeCountsBadGeneration(t *testing.T) {
	srv := newTestServer(t)

	if status := getJSON(t, srv.URL+"/api/v1/stats/types?generation=first", nil); status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestTopTotals(t *testing.T) {
	srv := newTestServer(t)

	var resp topTotalsResponse
	if status := getJSON(t, srv.URL+"/api/v1/stats/top", &resp); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	if len(resp.Pokemon) != 4 {
		t.Fatalf("expected 4 ranked rows, got %d", len(resp.Pokemon))
	}
	for i := 1; i < len(resp.Pokemon); i++ {
		if resp.Pokemon[i].Total > resp.Pokemon[i-1].Total {
			t.Fatalf("ranking not non-increasing at %d", i)
		}
	}
}

func TestTypePairCounts(t *testing.T) {
	srv := newTestServer(t)

	var resp typePairsResponse
	if status := getJSON(t, srv.URL+"/api/v1/stats/type-pairs", &resp); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	if len(resp.Pairs) == 0 || len(resp.Pairs) > 10 {
		t.Fatalf("unexpected pair count: %d", len(resp.Pairs))
	}
	for _, pair := range resp.Pairs {
		if pair.Count < 1 {
			t.Errorf("pair %s/%s has count %d", pair.Type1, pair.Type2, pair.Count)
		}
	}
}

func TestReport(t *testing.T) {
	srv := newTestServer(t)

	var report stats.Report
	if status := getJSON(t, srv.URL+"/api/v1/report", &report); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	if report.TotalRows != 4 || report.DistinctRows != 4 {
		t.Errorf("unexpected row counts: total=%d distinct=%d", report.TotalRows, report.DistinctRows)
	}
	if len(report.NullRows) != 3 {
		t.Errorf("expected 3 rows without a secondary type, got %d", len(report.NullRows))
	}
}
