package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"missionctl/internal/platform/deadline"
)

const envPrefix = "MISSIONCTL"

type Config struct {
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Search    SearchConfig    `mapstructure:"search"`
	Notes     NotesConfig     `mapstructure:"notes"`
	Timezone  string          `mapstructure:"timezone"`
}

type WorkspaceConfig struct {
	Root string `mapstructure:"root"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Mode        string   `mapstructure:"mode"`
	SyncOnStart bool     `mapstructure:"sync_on_start"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type SearchConfig struct {
	MaxPerFile   int `mapstructure:"max_per_file"`
	MaxTotal     int `mapstructure:"max_total"`
	ContextLines int `mapstructure:"context_lines"`
}

type NotesConfig struct {
	RecentDays int `mapstructure:"recent_days"`
}

// Overrides come from command-line flags and win over file and environment.
type Overrides struct {
	ConfigFile string
	Workspace  string
	DBPath     string
	Addr       string
}

// Load reads an optional YAML file, MISSIONCTL_* environment variables and
// flag overrides, in increasing precedence.
func Load(o Overrides) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", o.ConfigFile, err)
		}
	} else {
		v.SetConfigName("missionctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if o.Workspace != "" {
		v.Set("workspace.root", o.Workspace)
	}
	if o.DBPath != "" {
		v.Set("database.path", o.DBPath)
	}
	if o.Addr != "" {
		v.Set("server.addr", o.Addr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.normalize()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace.root", ".")
	v.SetDefault("database.path", "")
	v.SetDefault("server.addr", ":8787")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.sync_on_start", false)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("search.max_per_file", 5)
	v.SetDefault("search.max_total", 50)
	v.SetDefault("search.context_lines", 2)
	v.SetDefault("notes.recent_days", 7)
	v.SetDefault("timezone", deadline.DefaultTimezone)
}

func (c Config) normalize() (Config, error) {
	if strings.TrimSpace(c.Workspace.Root) == "" {
		return Config{}, fmt.Errorf("workspace root is required")
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.Workspace.Root, ".missionctl", "missionctl.db")
	}
	if c.Search.MaxPerFile <= 0 {
		c.Search.MaxPerFile = 5
	}
	if c.Search.MaxTotal <= 0 {
		c.Search.MaxTotal = 50
	}
	if c.Search.ContextLines < 0 {
		c.Search.ContextLines = 0
	}
	if c.Notes.RecentDays <= 0 {
		c.Notes.RecentDays = 7
	}
	if c.Timezone == "" {
		c.Timezone = deadline.DefaultTimezone
	}
	return c, nil
}

// Location is the zone all "now" comparisons run in.
func (c Config) Location() *time.Location {
	return deadline.LoadLocation(c.Timezone)
}

// Default returns the configuration used when nothing is set, rooted at root.
func Default(root string) Config {
	cfg, err := Config{
		Workspace: WorkspaceConfig{Root: root},
		Server:    ServerConfig{Addr: ":8787", Mode: "release"},
		Log:       LogConfig{Level: "info"},
		Search:    SearchConfig{ContextLines: 2},
		Timezone:  deadline.DefaultTimezone,
	}.normalize()
	if err != nil {
		return Config{}
	}
	return cfg
}
