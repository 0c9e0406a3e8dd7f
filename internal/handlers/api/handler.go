package api

import (
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/kantodex/pokedash/internal/stats"
	"github.com/lrstanley/chix"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/stats/types", h.typeCounts)
	r.Get("/stats/top", h.topTotals)
	r.Get("/stats/type-pairs", h.typePairCounts)
	r.Get("/report", h.report)
}

func (h *Handler) typeCounts(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	resp := typeCountsResponse{Types: []stats.TypeCount{}}

	var (
		counts []stats.TypeCount
		err    error
	)

	if raw := r.URL.Query().Get("generation"); raw != "" {
		generation, convErr := strconv.Atoi(raw)
		if convErr != nil {
			chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "generation must be an integer"})
			return
		}

		resp.Generation = &generation
		counts, err = stats.TypeCountsByGeneration(r.Context(), generation)
	} else {
		counts, err = stats.TypeCounts(r.Context())
	}

	if err != nil {
		logger.WithError(err).Error("failed to count types")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to count types"})
		return
	}

	if counts != nil {
		resp.Types = counts
	}

	chix.JSON(w, r, http.StatusOK, resp)
}

func (h *Handler) topTotals(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	ranked, err := stats.TopTotals(r.Context())
	if err != nil {
		logger.WithError(err).Error("failed to rank totals")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to rank totals"})
		return
	}

	resp := topTotalsResponse{Pokemon: []stats.RankedPokemon{}}
	if ranked != nil {
		resp.Pokemon = ranked
	}

	chix.JSON(w, r, http.StatusOK, resp)
}

func (h *Handler) typePairCounts(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	pairs, err := stats.TypePairCounts(r.Context())
	if err != nil {
		logger.WithError(err).Error("failed to count type pairs")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to count type pairs"})
		return
	}

	resp := typePairsResponse{Pairs: []stats.TypePairCount{}}
	if pairs != nil {
		resp.Pairs = pairs
	}

	chix.JSON(w, r, http.StatusOK, resp)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	report, err := stats.BuildReport(r.Context())
	if err != nil {
		logger.WithError(err).Error("failed to build report")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "failed to build report"})
		return
	}

	chix.JSON(w, r, http.StatusOK, report)
}
