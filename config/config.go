package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type MetricsConfig struct {
	// StockSnapshotCron is a cron expression for the per-plan stock snapshot
	// job; an empty value disables the job.
	StockSnapshotCron string `yaml:"stock_snapshot_cron" json:"stock_snapshot_cron"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system" json:"system"`
	Web      WebConfig     `yaml:"web" json:"web"`
	Database DBConfig      `yaml:"database" json:"database"`
	Logger   LoggerConfig  `yaml:"logger" json:"logger"`
	Metrics  MetricsConfig `yaml:"metrics" json:"metrics"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "cardstock",
		Location: "Asia/Baghdad",
		Workdir:  "/var/cardstock",
		Debug:    false,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 3000,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "cardstock",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LoggerConfig{
		Mode:       "production",
		FileEnable: false,
		Filename:   "/var/cardstock/cardstock.log",
	},
	Metrics: MetricsConfig{
		StockSnapshotCron: "@every 15m",
	},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig loads the YAML configuration file and applies environment
// overrides. A missing or empty path falls back to the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig

	if cfile != "" {
		if data, err := os.ReadFile(filepath.Clean(cfile)); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("CARDSTOCK_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("CARDSTOCK_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("CARDSTOCK_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("CARDSTOCK_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("CARDSTOCK_WEB_PORT", &cfg.Web.Port)

	setEnvValue("CARDSTOCK_DB_TYPE", &cfg.Database.Type)
	setEnvValue("CARDSTOCK_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("CARDSTOCK_DB_PORT", &cfg.Database.Port)
	setEnvValue("CARDSTOCK_DB_NAME", &cfg.Database.Name)
	setEnvValue("CARDSTOCK_DB_USER", &cfg.Database.User)
	setEnvValue("CARDSTOCK_DB_PWD", &cfg.Database.Passwd)
	setEnvBoolValue("CARDSTOCK_DB_DEBUG", &cfg.Database.Debug)

	setEnvValue("CARDSTOCK_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("CARDSTOCK_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("CARDSTOCK_LOGGER_FILENAME", &cfg.Logger.Filename)

	setEnvValue("CARDSTOCK_METRICS_STOCK_SNAPSHOT_CRON", &cfg.Metrics.StockSnapshotCron)

	return cfg
}
