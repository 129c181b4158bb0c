package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Ingest    IngestConfig
	Report    ReportConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string
}

type IngestConfig struct {
	BaseDir      string // Filenames are resolved relative to this directory
	MaxLineBytes int
}

type ReportConfig struct {
	LevelHeader string
	CountHeader string
	Output      string // text, json or yaml
	Color       string // auto, always or never
}

type SchedulerConfig struct {
	Schedule string
}

type LogConfig struct {
	Level string
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_BASE_DIR", ".")
	v.SetDefault("INGEST_MAX_LINE_BYTES", 1048576) // 1MB
	v.SetDefault("REPORT_LEVEL_HEADER", "Level")
	v.SetDefault("REPORT_COUNT_HEADER", "Count")
	v.SetDefault("REPORT_OUTPUT", "text")
	v.SetDefault("REPORT_COLOR", "never")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("WATCH_SCHEDULE", "*/30 * * * * *") // Every 30 seconds
	v.SetDefault("LOG_LEVEL", "warn")
}

// Load reads configFile (or .env in the working directory when empty) and the
// environment into a Config. A missing config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, err
		}
		log.Debug().Err(err).Msg("No config file loaded")
	}

	var config Config

	// --- Ingest ---
	config.Ingest.BaseDir = v.GetString("LOG_BASE_DIR")
	config.Ingest.MaxLineBytes = v.GetInt("INGEST_MAX_LINE_BYTES")

	// --- Report ---
	config.Report.LevelHeader = v.GetString("REPORT_LEVEL_HEADER")
	config.Report.CountHeader = v.GetString("REPORT_COUNT_HEADER")
	config.Report.Output = strings.ToLower(v.GetString("REPORT_OUTPUT"))
	config.Report.Color = strings.ToLower(v.GetString("REPORT_COLOR"))

	// --- Server ---
	config.Server.Port = v.GetString("SERVER_PORT")

	// --- Scheduler ---
	config.Scheduler.Schedule = v.GetString("WATCH_SCHEDULE")

	config.Log.Level = v.GetString("LOG_LEVEL")

	log.Debug().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
