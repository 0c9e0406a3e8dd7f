package gui

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/go-sql-driver/mysql"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/kantodex/pokedash/internal/models"
	"github.com/rivo/tview"
	_ "modernc.org/sqlite"
)

var blackListedChars = []rune{
	'\'', '$', '%', '@', '#', '!', ';', ':', '*', '?', '|', '>', '<', '&', '\\',
}

func (g *Gui) databaseConfigPage(p *tview.Pages, database string) tview.Primitive {
	form := tview.NewForm()

	var values []string
	var fieldNames []string
	connectionString := g.config.Database.ConnectionString

	switch database {
	case "sqlite":
		values = make([]string, 1)
		fieldNames = []string{"File Name"}
		values[0] = "pokedash.db"
		if strings.HasPrefix(connectionString, "file:") {
			val := strings.TrimPrefix(connectionString, "file:")
			if vals := strings.Split(val, "?"); vals[0] != "" {
				values[0] = vals[0]
			}
		}
		form.AddInputField(fieldNames[0], values[0], 20, func(textToCheck string, lastChar rune) bool {
			if slices.Contains(blackListedChars, lastChar) {
				return false
			}
			return true
		}, func(text string) {
			values[0] = text
		})
	case "mysql", "postgres":
		values = make([]string, 5)
		fieldNames = []string{"Username", "Password", "Host", "Port", "Database"}

		if connectionString != "" {
			if database == "postgres" && strings.HasPrefix(connectionString, "postgres:") {
				conConf, err := pgx.ParseConfig(connectionString)
				if err == nil {
					values[0] = conConf.User
					values[1] = conConf.Password
					values[2] = conConf.Host
					values[3] = strconv.FormatUint(uint64(conConf.Port), 10)
					values[4] = conConf.Database
				}
			} else if strings.Contains(connectionString, "@tcp(") {
				conConf, err := mysql.ParseDSN(connectionString)
				if err == nil {
					values[0] = conConf.User
					values[1] = conConf.Passwd
					addrSplit := strings.Split(conConf.Addr, ":")
					values[2] = addrSplit[0]
					values[3] = addrSplit[1]
					values[4] = conConf.DBName
				}
			}
		}

		form.AddInputField(fieldNames[0], values[0], 20, nil, func(text string) {
			values[0] = text
		})
		form.AddPasswordField(fieldNames[1], values[1], 20, '*', func(text string) {
			values[1] = text
		})
		form.AddInputField(fieldNames[2], values[2], 20, nil, func(text string) {
			values[2] = text
		})
		form.AddInputField(fieldNames[3], values[3], 20, func(textToCheck string, lastChar rune) bool {
			if !unicode.IsDigit(lastChar) {
				return false
			}

			// Make sure the port is between 1 and 65535
			num, _ := strconv.Atoi(textToCheck)

			return num > 0 && num <= 65535
		}, func(text string) {
			values[3] = text
		})
		form.AddInputField(fieldNames[4], values[4], 20, nil, func(text string) {
			values[4] = text
		})
	}

	frame := tview.NewFrame(form)
	frame.SetBorder(true)
	frame.SetTitle(fmt.Sprintf("Pokedash - Configuring Database: %s", database))
	frame.AddText("Please fill out the form below with your database information", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
	form.AddButton("Submit", func() {
		frame.Clear()
		frame.AddText("Please fill out the form below with your database information", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
		errors := []string{}
		// Basic validation first

		for i, fieldName := range fieldNames {
			if values[i] == "" {
				errors = append(errors, fmt.Sprintf("%s: is required", fieldName))
			}
		}

		switch database {
		case "sqlite":
			if values[0] == "" {
				break
			}

			connectionString = fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)", filepath.Join(values[0]))

			// Try connecting
			db, err := sql.Open("sqlite", connectionString)
			if err != nil {
				errors = append(errors, "Sqlite connection error: "+err.Error())
				break
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			err = db.PingContext(ctx)
			if err != nil {
				errors = append(errors, "Sqlite connection error: "+err.Error())
			}
			db.Close()
		case "mysql", "postgres":
			if values[0] == "" || values[1] == "" || values[2] == "" || values[3] == "" || values[4] == "" {
				break
			}

			port, err := strconv.Atoi(values[3])
			if err != nil {
				errors = append(errors, "Port: input is invalid")
			} else {
				if port < 1 || port > 65535 {
					errors = append(errors, "Port: input is out of range (1 - 65535)")
				}
			}

			// Try connecting to make sure it is valid
			if database == "postgres" {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
				defer cancel()
				connectionString = fmt.Sprintf("postgres://%s:%s@%s:%d/%s", values[0], url.QueryEscape(values[1]), values[2], port, values[4])
				db, err := pgx.Connect(ctx, connectionString)
				if err != nil {
					errors = append(errors, "Postgres connection error: "+err.Error())
					break
				}

				err = db.Ping(ctx)
				if err != nil {
					errors = append(errors, "Postgres connection error: "+err.Error())
				}
				db.Close(context.Background())
			} else {
				connectionString = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", values[0], values[1], values[2], port, values[4])
				db, err := sql.Open("mysql", connectionString)
				if err != nil {
					errors = append(errors, "MySQL connection error: "+err.Error())
					break
				}

				ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
				defer cancel()
				err = db.PingContext(ctx)
				if err != nil {
					errors = append(errors, "MySQL connection error: "+err.Error())
				}
				db.Close()
			}
		}

		if len(errors) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errors {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
		} else {
			// Update the config
			g.config.Database = models.DatabaseConfig{
				DBType:           database,
				ConnectionString: connectionString,
			}

			p.AddPage("dataset-config", g.datasetConfigPage(p), true, false)
			p.SwitchToPage("dataset-config")
		}
	})

	return frame
}

func (g *Gui) datasetConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	chosenPath := "pokemon.csv"
	if g.config.Dataset.CSVPath != "" {
		chosenPath = g.config.Dataset.CSVPath
	}

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please point Pokedash at your dataset CSV (the file with name/type/stat/generation columns)", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
	}

	defaultFrameDraw()

	form.AddInputField("CSV Path", chosenPath, 40, nil, func(text string) {
		chosenPath = text
	})

	form.AddButton("Submit", func() {
		defaultFrameDraw()

		if chosenPath == "" {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText("CSV Path: is required", true, tview.AlignLeft, tcell.ColorRed)
			return
		}

		if _, err := os.Stat(chosenPath); err != nil {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText("CSV Path: "+err.Error(), true, tview.AlignLeft, tcell.ColorRed)
			return
		}

		g.config.Dataset.CSVPath = chosenPath

		p.AddPage("dataset-refresh", g.datasetRefreshChoice(p), true, false)
		p.SwitchToPage("dataset-refresh")
	})

	frame.SetBorder(true)
	frame.SetTitle("Pokedash - Configuring Dataset")

	return frame
}

func (g *Gui) httpConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	chosenAddr := "127.0.0.1"
	chosenPort := "8050"

	if g.config.HTTP.ListeningAddr != "" {
		chosenAddr = g.config.HTTP.ListeningAddr
	}

	if g.config.HTTP.Port != 0 {
		chosenPort = fmt.Sprintf("%d", g.config.HTTP.Port)
	}

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below with your HTTP information", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
		if chosenAddr != "127.0.0.1" && chosenAddr != "localhost" && chosenAddr != "::1" {
			frame.AddText("The dashboard has no authentication, binding to anything other than localhost exposes it to your whole network", true, tview.AlignLeft, tcell.ColorRed)
		}
	}

	defaultFrameDraw()
	availableAddresses := []string{"127.0.0.1", "0.0.0.0"}

	ipHelpText := `
The dashboard is meant to be local: 127.0.0.1 keeps it reachable from this machine only, which is right for most users.

If you do want to share it on your network, pick 0.0.0.0 or a specific interface address from the dropdown.
Do keep in mind, that if the IP assignment changes, you will need to update the configuration file.
`

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		ipHelpText = fmt.Sprintf(`Due to an error, the application couldn't list the IPs assigned to your machine, as such it will fallback to offering 127.0.0.1 and 0.0.0.0 only
Error info: %s
`, err.Error())
	} else {
		for _, address := range addrs {
			if strings.HasPrefix(address.String(), "fe80") {
				continue
			}
			ip := strings.Split(address.String(), "/")[0]
			if !slices.Contains(availableAddresses, ip) {
				availableAddresses = append(availableAddresses, ip)
			}
		}
	}

	index := slices.Index(availableAddresses, chosenAddr)
	if index == -1 {
		index = 0
	}

	form.AddTextView("IP Info", ipHelpText, 0, 0, true, true)
	form.AddDropDown("Listening Address", availableAddresses, index, func(option string, optionIndex int) {
		chosenAddr = availableAddresses[optionIndex]
		defaultFrameDraw()
	})
	form.AddTextView("Port Info", `When choosing the port, keep in mind the following:
1. the port must be between 1 and 65535
2. on certain platforms (such as Linux), ports 1-1023 are "privileged ports", meaning you need to be running the server as root [::b](STRONGLY NOT RECOMMENDED)[-:-:-:-] to bind to them.
The default port (8050) should be good for most users, if it's in use, try incrementing it.`, 0, 0, true, true)
	form.AddInputField("Port", chosenPort, 20, func(textToCheck string, lastChar rune) bool {
		if !unicode.IsDigit(lastChar) {
			return false
		}

		// Make sure the port is between 1 and 65535
		num, _ := strconv.Atoi(textToCheck)

		return num > 0 && num <= 65535
	}, func(text string) {
		chosenPort = text
	})

	form.AddButton("Submit", func() {
		defaultFrameDraw()
		errors := []string{}
		if chosenPort == "" {
			errors = append(errors, "Port: Please enter a valid port number")
		}

		if len(errors) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errors {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
		} else {
			addr := chosenAddr + ":" + chosenPort
			if strings.Contains(chosenAddr, ":") {
				addr = "[" + chosenAddr + "]:" + chosenPort
			}
			l, err := net.Listen("tcp", addr)

			if err != nil {
				frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
				frame.AddText(err.Error(), true, tview.AlignLeft, tcell.ColorRed)
				return
			}

			l.Close()

			port, _ := strconv.Atoi(chosenPort)

			g.config.HTTP = models.HTTPConfig{
				ListeningAddr: chosenAddr,
				Port:          port,
			}

			p.AddPage("confirm", g.confirmationPage(p), true, false)
			p.SwitchToPage("confirm")
		}
	})

	frame.SetBorder(true)
	frame.SetTitle("Pokedash - Configuring HTTP")

	return frame
}
