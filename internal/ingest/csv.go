package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kantodex/pokedash/internal/models"
)

// Column headers vary between published copies of the dataset ("Sp. Atk"
// vs "sp_atk" and so on), so headers are normalized before mapping and
// unknown columns are ignored.
var headerAliases = map[string]string{
	"name":         "name",
	"type1":        "type1",
	"type_1":       "type1",
	"type2":        "type2",
	"type_2":       "type2",
	"hp":           "hp",
	"attack":       "attack",
	"defense":      "defense",
	"sp_atk":       "sp_atk",
	"sp_attack":    "sp_atk",
	"spatk":        "sp_atk",
	"sp_def":       "sp_def",
	"sp_defense":   "sp_def",
	"spdef":        "sp_def",
	"speed":        "speed",
	"generation":   "generation",
	"legendary":    "legendary",
	"is_legendary": "legendary",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, ".", "")
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "__", "_")
	return h
}

// ReadFile parses a dataset CSV into records. The first row must be a
// header; columns are matched by name, not position.
func ReadFile(path string) ([]models.Pokemon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		if canonical, ok := headerAliases[normalizeHeader(h)]; ok {
			cols[canonical] = i
		}
	}

	for _, required := range []string{"name", "type1", "hp", "attack", "defense", "sp_atk", "sp_def", "speed", "generation"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset is missing the %q column", required)
		}
	}

	var pokemons []models.Pokemon
	line := 1
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}
		line++

		p := models.Pokemon{
			Name:  record[cols["name"]],
			Type1: record[cols["type1"]],
		}

		if i, ok := cols["type2"]; ok {
			p.Type2 = strings.TrimSpace(record[i])
		}

		for _, stat := range []struct {
			col string
			dst *int
		}{
			{"hp", &p.HP},
			{"attack", &p.Attack},
			{"defense", &p.Defense},
			{"sp_atk", &p.SpAtk},
			{"sp_def", &p.SpDef},
			{"speed", &p.Speed},
			{"generation", &p.Generation},
		} {
			v, err := strconv.Atoi(strings.TrimSpace(record[cols[stat.col]]))
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %w", line, stat.col, err)
			}
			*stat.dst = v
		}

		if i, ok := cols["legendary"]; ok {
			p.Legendary = parseBool(record[i])
		}

		pokemons = append(pokemons, p)
	}

	return pokemons, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	}
	return false
}
