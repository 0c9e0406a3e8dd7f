package models

type Flags struct {
	Mode       string `short:"m" long:"mode" env:"MODE" required:"true" description:"The mode Pokedash is running in: cli/docker" default:"cli"`
	CSVPath    string `short:"c" long:"csv" env:"CSV_PATH" description:"Override the dataset CSV path from the config"`
	IngestOnly bool   `long:"ingest-only" env:"INGEST_ONLY" description:"Load the dataset into the database and exit without serving HTTP"`
}
