package models

type Config struct {
	Database DatabaseConfig `json:"database"`
	Dataset  DatasetConfig  `json:"dataset"`
	HTTP     HTTPConfig     `json:"http"`
}

type DatabaseConfig struct {
	DBType           string `json:"db_type" validate:"required,oneof=sqlite postgres mysql"`
	ConnectionString string `json:"connection_string" validate:"required"`
}

type DatasetConfig struct {
	CSVPath          string `json:"csv_path" validate:"required"`
	RefreshOnStartup bool   `json:"refresh_on_startup"`
}

type HTTPConfig struct {
	Port          int    `json:"port" validate:"required,min=1,max=65535"`
	ListeningAddr string `json:"listening_addr" validate:"required"`
}
