package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/kantodex/pokedash/internal/charts"
	"github.com/kantodex/pokedash/internal/stats"
	"github.com/lrstanley/chix"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/charts/type-counts", h.typeCounts)
	r.Get("/charts/top-totals", h.topTotals)
	r.Get("/charts/attack-defense", h.attackDefense)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{Generations: generations, Selected: defaultGeneration}); err != nil {
		log.FromContext(r.Context()).WithError(err).Error("failed to render dashboard page")
	}
}

// typeCounts renders the type distribution bar. Without a generation
// parameter it covers the whole relation; with one, only that generation.
func (h *Handler) typeCounts(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	var (
		counts []stats.TypeCount
		title  = "Distribution of Pokémon Types"
		err    error
	)

	if raw := r.URL.Query().Get("generation"); raw != "" {
		generation, convErr := strconv.Atoi(raw)
		if convErr != nil {
			chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "generation must be an integer"})
			return
		}

		title = fmt.Sprintf("Distribution of Pokémon Types in Generation %d", generation)
		counts, err = stats.TypeCountsByGeneration(r.Context(), generation)
	} else {
		counts, err = stats.TypeCounts(r.Context())
	}

	if err != nil {
		logger.WithError(err).Error("failed to count types")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to count types"})
		return
	}

	if err := charts.TypeCountsBar(counts, title).Render(w); err != nil {
		logger.WithError(err).Error("failed to render type counts chart")
	}
}

func (h *Handler) topTotals(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	ranked, err := stats.TopTotals(r.Context())
	if err != nil {
		logger.WithError(err).Error("failed to rank totals")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to rank totals"})
		return
	}

	if err := charts.TopTotalsBar(ranked).Render(w); err != nil {
		logger.WithError(err).Error("failed to render top totals chart")
	}
}

func (h *Handler) attackDefense(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	points, err := stats.ScatterPoints(r.Context())
	if err != nil {
		logger.WithError(err).Error("failed to select scatter points")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to select scatter points"})
		return
	}

	if err := charts.AttackDefenseScatter(points).Render(w); err != nil {
		logger.WithError(err).Error("failed to render scatter chart")
	}
}
