package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kantodex/pokedash/internal/stats"
)

func TestTypeCountsBar(t *testing.T) {
	counts := []stats.TypeCount{
		{Type: "Fire", Count: 3},
		{Type: "Grass", Count: 2},
		{Type: "Water", Count: 2},
	}

	bar := TypeCountsBar(counts, "Distribution of Pokémon Types in Generation 1")

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("rendering bar: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Distribution of", "Fire", "Grass", "Water"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}

func TestTypeCountsBarEmpty(t *testing.T) {
	bar := TypeCountsBar(nil, "Distribution of Pokémon Types in Generation 8")

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("rendering empty bar: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected an empty chart to still render a page")
	}
}

func TestTopTotalsBar(t *testing.T) {
	ranked := []stats.RankedPokemon{
		{Name: "Mewtwo", Total: 680},
		{Name: "Gyarados", Total: 540},
	}

	bar := TopTotalsBar(ranked)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("rendering bar: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Mewtwo") || !strings.Contains(out, "680") {
		t.Error("rendered chart missing ranked data")
	}
}

func TestAttackDefenseScatter(t *testing.T) {
	points := []stats.ScatterPoint{
		{Name: "Bulbasaur", Type1: "Grass", Attack: 49, Defense: 49},
		{Name: "Charmander", Type1: "Fire", Attack: 52, Defense: 43},
		{Name: "Chikorita", Type1: "Grass", Attack: 49, Defense: 65},
	}

	scatter := AttackDefenseScatter(points)

	// One series per primary type, so each type gets its own color.
	if len(scatter.MultiSeries) != 2 {
		t.Fatalf("expected 2 series, got %d", len(scatter.MultiSeries))
	}

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		t.Fatalf("rendering scatter: %v", err)
	}
	if !strings.Contains(buf.String(), "Bulbasaur") {
		t.Error("rendered scatter missing point names")
	}
}
