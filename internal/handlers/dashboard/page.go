package dashboard

import "html/template"

const defaultGeneration = 1

var generations = []int{1, 2, 3, 4, 5, 6, 7, 8}

type indexData struct {
	Generations []int
	Selected    int
}

// The shell page: one dropdown driving one chart region. Each selection
// reloads the frame with the generation-filtered chart, one request per
// selection, handled to completion before the next matters.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Pokémon Dashboard</title>
	<style>
		body { font-family: sans-serif; margin: 2rem; }
		select { margin-bottom: 1rem; }
		iframe { border: 0; width: 100%; height: 560px; }
		nav a { margin-right: 1rem; }
	</style>
</head>
<body>
	<h1>Pokémon Dashboard</h1>
	<nav>
		<a href="/charts/top-totals">Top 10 by total stats</a>
		<a href="/charts/attack-defense">Attack vs. defense</a>
	</nav>
	<select id="generation-dropdown">
	{{- range .Generations}}
		<option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>Generation {{.}}</option>
	{{- end}}
	</select>
	<iframe id="type-counts" src="/charts/type-counts?generation={{.Selected}}"></iframe>
	<script>
		document.getElementById("generation-dropdown").addEventListener("change", function () {
			document.getElementById("type-counts").src = "/charts/type-counts?generation=" + this.value;
		});
	</script>
</body>
</html>
`))
