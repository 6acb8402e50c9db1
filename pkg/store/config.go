package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the application where the slot lives and how to interpret dates.
type Config interface {
	BasePath() string
	StartYear() int
	EndYear() int
	Locale() string
	LogLevel() string
}

// LoadConfig reads `.timeline.yaml` from $TIMELINE_CONFIG_PATH or the working
// directory, layered with TIMELINE_* environment variables. A missing config
// file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.timeline")
	v.SetDefault("start_year", 1800)
	v.SetDefault("end_year", time.Now().Year())
	v.SetDefault("locale", "und")
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".timeline") // .yaml is implicit
	v.SetEnvPrefix("TIMELINE")
	v.AutomaticEnv()

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	cfg := &fileConfig{
		Path:     path,
		Start:    v.GetInt("start_year"),
		End:      v.GetInt("end_year"),
		Language: v.GetString("locale"),
		Level:    v.GetString("log_level"),
	}
	if cfg.End < cfg.Start {
		return nil, fmt.Errorf("store: end_year %d is before start_year %d", cfg.End, cfg.Start)
	}
	return cfg, nil
}

// StaticConfig is a Config with fixed values, for tests and embedding hosts.
func StaticConfig(path string, startYear, endYear int) Config {
	return &fileConfig{Path: path, Start: startYear, End: endYear, Language: "und", Level: "warn"}
}

type fileConfig struct {
	Path     string `json:"path"`
	Start    int    `json:"start_year"`
	End      int    `json:"end_year"`
	Language string `json:"locale"`
	Level    string `json:"log_level"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) StartYear() int   { return f.Start }
func (f *fileConfig) EndYear() int     { return f.End }
func (f *fileConfig) Locale() string   { return f.Language }
func (f *fileConfig) LogLevel() string { return f.Level }
