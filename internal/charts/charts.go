// Package charts maps query results onto renderable ECharts objects. It
// only shapes data; rendering is left to the HTTP layer.
package charts

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/kantodex/pokedash/internal/stats"
)

// TypeCountsBar builds the categorical bar of primary-type counts.
func TypeCountsBar(counts []stats.TypeCount, title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	axis := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, tc := range counts {
		axis = append(axis, tc.Type)
		data = append(data, opts.BarData{Value: tc.Count, Name: tc.Type})
	}

	bar.SetXAxis(axis).AddSeries("count", data)
	return bar
}

// TopTotalsBar builds the bar of the ten strongest Pokémon by stat total.
func TopTotalsBar(ranked []stats.RankedPokemon) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top 10 Pokémon by Total Stats"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Pokémon"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Stats"}),
	)

	axis := make([]string, 0, len(ranked))
	data := make([]opts.BarData, 0, len(ranked))
	for _, rp := range ranked {
		axis = append(axis, rp.Name)
		data = append(data, opts.BarData{Value: rp.Total, Name: rp.Name})
	}

	bar.SetXAxis(axis).AddSeries("total", data)
	return bar
}

// AttackDefenseScatter builds the attack/defense scatter with one series
// per primary type, which gives each type its own color.
func AttackDefenseScatter(points []stats.ScatterPoint) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Attack vs. Defense by Primary Type"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Attack", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Defense", Type: "value"}),
	)

	byType := map[string][]opts.ScatterData{}
	for _, p := range points {
		byType[p.Type1] = append(byType[p.Type1], opts.ScatterData{
			Name:  p.Name,
			Value: []any{p.Attack, p.Defense},
		})
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		scatter.AddSeries(t, byType[t])
	}

	return scatter
}
