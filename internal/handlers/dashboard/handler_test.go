package dashboard

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kantodex/pokedash/internal/database"
	"github.com/kantodex/pokedash/internal/ingest"
	"github.com/kantodex/pokedash/internal/models"
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
	r.Group(NewHandler().Route)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	for _, want := range []string{
		"Pokémon Dashboard",
		"generation-dropdown",
		`<option value="8"`,
		"/charts/type-counts?generation=1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}

	// Default selection is generation 1.
	if !strings.Contains(body, `<option value="1" selected>`) {
		t.Error("expected generation 1 to be preselected")
	}
}

func TestTypeCountsChart(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/charts/type-counts?generation=1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "Generation 1") {
		t.Error("chart missing the generation title")
	}
	if !strings.Contains(body, "Fire") || !strings.Contains(body, "Grass") {
		t.Error("chart missing generation 1 types")
	}
	if strings.Contains(body, `"Chikorita"`) {
		t.Error("chart should not include other generations")
	}
}

func TestTypeCountsChartAllGenerations(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/charts/type-counts")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "Distribution of Pokémon Types") {
		t.Error("chart missing the default title")
	}
}

func TestTypeCountsChartBadGeneration(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/charts/type-counts?generation=first")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(body, "generation must be an integer") {
		t.Errorf("unexpected error body: %s", body)
	}
}

func TestTypeCountsChartEmptyGeneration(t *testing.T) {
	srv := newTestServer(t)

	// No generation 8 rows: still a 200 with an empty chart.
	status, _ := get(t, srv.URL+"/charts/type-counts?generation=8")
	if status != http.StatusOK {
		t.Fatalf("expected 200 for an empty generation, got %d", status)
	}
}

func TestTopTotalsChart(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/charts/top-totals")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "Total Stats") {
		t.Error("chart missing the totals title")
	}
}

func TestAttackDefenseChart(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/charts/attack-defense")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "Attack vs. Defense") {
		t.Error("chart missing the scatter title")
	}
}
