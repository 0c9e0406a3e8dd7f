package api

import "github.com/kantodex/pokedash/internal/stats"

type typeCountsResponse struct {
	Generation *int              `json:"generation,omitempty"`
	Types      []stats.TypeCount `json:"types"`
}

type topTotalsResponse struct {
	Pokemon []stats.RankedPokemon `json:"pokemon"`
}

type typePairsResponse struct {
	Pairs []stats.TypePairCount `json:"pairs"`
}
