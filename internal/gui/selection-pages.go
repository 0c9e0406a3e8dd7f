package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) databaseSelection(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	list.AddItem("sqlite", "Easiest to use, creates a database file on disk, good if running for yourself only, [::b]if you have no experience with databases, use this option", '1', func() {
		p.AddPage("db-config", g.databaseConfigPage(p, "sqlite"), true, false)
		p.SwitchToPage("db-config")
	})
	list.AddItem("MySql", "Requires a running instance of a MySql database, only useful if you already run one", '2', func() {
		p.AddPage("db-config", g.databaseConfigPage(p, "mysql"), true, false)
		p.SwitchToPage("db-config")
	})
	list.AddItem("Postgres", "Requires a running instance of a Postgres database, only useful if you already run one", '3', func() {
		p.AddPage("db-config", g.databaseConfigPage(p, "postgres"), true, false)
		p.SwitchToPage("db-config")
	})

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("Pokedash - Choosing Database")
	frame.AddText("Please select below what database you would like to use for storing the dataset", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - continue", false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}

func (g *Gui) datasetRefreshChoice(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	list.AddItem("Every start", "Reload the CSV into the database every time Pokedash starts, keeping the relation in sync with the file", '1', func() {
		g.config.Dataset.RefreshOnStartup = true
		p.AddPage("http-config", g.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})
	list.AddItem("Only when empty", "Load the CSV once; later starts reuse whatever is already in the database", '2', func() {
		g.config.Dataset.RefreshOnStartup = false
		p.AddPage("http-config", g.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("Pokedash - Dataset Refresh")
	frame.AddText("Please select below when Pokedash should (re)load the dataset CSV", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - continue", false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}
