package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds runtime parameters for llmtools.
// Zero values mean "unspecified" and are replaced by Defaults.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`
	Engine EngineConfig `json:"engine" yaml:"engine" toml:"engine"`
	Runner RunnerConfig `json:"runner" yaml:"runner" toml:"runner"`
	Hub    HubConfig    `json:"hub" yaml:"hub" toml:"hub"`
	Tokens TokensConfig `json:"tokens" yaml:"tokens" toml:"tokens"`
	Editor EditorConfig `json:"editor" yaml:"editor" toml:"editor"`
	Log    LogConfig    `json:"log" yaml:"log" toml:"log"`

	// downloadFollowsModels is set when Hub.DownloadDir was filled in from
	// the models directory rather than configured.
	downloadFollowsModels bool
}

type ServerConfig struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	// Idle sessions are dropped after this many minutes.
	SessionIdleMinutes int        `json:"session_idle_minutes" yaml:"session_idle_minutes" toml:"session_idle_minutes"`
	CORS               CORSConfig `json:"cors" yaml:"cors" toml:"cors"`
}

type CORSConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Origins []string `json:"origins" yaml:"origins" toml:"origins"`
	Methods []string `json:"methods" yaml:"methods" toml:"methods"`
	Headers []string `json:"headers" yaml:"headers" toml:"headers"`
}

// EngineConfig selects how the container engine is reached.
// Mode "cli" shells out to Bin; mode "api" talks to the daemon socket.
type EngineConfig struct {
	Bin            string `json:"bin" yaml:"bin" toml:"bin"`
	Mode           string `json:"mode" yaml:"mode" toml:"mode"`
	Host           string `json:"host" yaml:"host" toml:"host"`
	MetricsWorkers int    `json:"metrics_workers" yaml:"metrics_workers" toml:"metrics_workers"`
	LogTail        int    `json:"log_tail" yaml:"log_tail" toml:"log_tail"`
	// Default auto-refresh interval for the dashboard, seconds.
	RefreshSeconds int `json:"refresh_seconds" yaml:"refresh_seconds" toml:"refresh_seconds"`
}

type RunnerConfig struct {
	// Split with shell-style quoting instead of plain whitespace.
	QuotedArgs bool `json:"quoted_args" yaml:"quoted_args" toml:"quoted_args"`
	// Empty means any subcommand is forwarded.
	AllowedSubcommands []string `json:"allowed_subcommands" yaml:"allowed_subcommands" toml:"allowed_subcommands"`
	// Container targeted by the quick actions.
	ServerContainer string `json:"server_container" yaml:"server_container" toml:"server_container"`
}

type HubConfig struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	Token       string `json:"token" yaml:"token" toml:"token"`
	PageSize    int    `json:"page_size" yaml:"page_size" toml:"page_size"`
	MaxResults  int    `json:"max_results" yaml:"max_results" toml:"max_results"`
	DownloadDir string `json:"download_dir" yaml:"download_dir" toml:"download_dir"`
}

type TokensConfig struct {
	CacheDir string `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	// Context size used when opening local GGUF files for tokenization.
	GGUFContext int `json:"gguf_context" yaml:"gguf_context" toml:"gguf_context"`
}

type EditorConfig struct {
	ModelsDir    string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	TemplateFile string `json:"template_file" yaml:"template_file" toml:"template_file"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
	// Optional rotating log file pattern base; empty logs to stderr only.
	File       string `json:"file" yaml:"file" toml:"file"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}

// ApplyEnv overlays environment variables onto cfg. getenv is injectable
// for tests; nil means os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv("MODELS_PATH"); v != "" {
		c.Editor.ModelsDir = v
		if c.Hub.DownloadDir == "" {
			c.Hub.DownloadDir = v
			c.downloadFollowsModels = true
		}
	}
	if v := getenv("LLMTOOLS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("HF_TOKEN"); v != "" {
		c.Hub.Token = v
	} else if v := getenv("HUGGING_FACE_HUB_TOKEN"); v != "" {
		c.Hub.Token = v
	}
	if v := getenv("HF_ENDPOINT"); v != "" {
		c.Hub.Endpoint = strings.TrimRight(v, "/")
	}
	if v := getenv("DOCKER_BIN"); v != "" {
		c.Engine.Bin = v
	}
	if v := getenv("LLMTOOLS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Defaults fills every unspecified field.
func (c *Config) Defaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8501"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Server.SessionIdleMinutes <= 0 {
		c.Server.SessionIdleMinutes = 60
	}
	if c.Engine.Bin == "" {
		c.Engine.Bin = "docker"
	}
	if c.Engine.Mode == "" {
		c.Engine.Mode = "cli"
	}
	if c.Engine.MetricsWorkers <= 0 {
		c.Engine.MetricsWorkers = 8
	}
	if c.Engine.LogTail <= 0 {
		c.Engine.LogTail = 100
	}
	if c.Engine.RefreshSeconds < 0 {
		c.Engine.RefreshSeconds = 0
	}
	if c.Runner.ServerContainer == "" {
		c.Runner.ServerContainer = "localai"
	}
	if c.Editor.ModelsDir == "" {
		c.Editor.ModelsDir = "models"
	}
	if c.Hub.Endpoint == "" {
		c.Hub.Endpoint = "https://huggingface.co"
	}
	if c.Hub.PageSize <= 0 {
		c.Hub.PageSize = 20
	}
	if c.Hub.MaxResults <= 0 {
		c.Hub.MaxResults = 1000
	}
	if c.Hub.DownloadDir == "" {
		c.Hub.DownloadDir = c.Editor.ModelsDir
		c.downloadFollowsModels = true
	}
	if c.Tokens.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		c.Tokens.CacheDir = filepath.Join(base, "llmtools", "tokenizers")
	}
	if c.Tokens.GGUFContext <= 0 {
		c.Tokens.GGUFContext = 512
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.MaxAgeDays <= 0 {
		c.Log.MaxAgeDays = 7
	}
}

// SetModelsDir overrides the models directory after resolution. A download
// directory that was defaulted from the models directory moves with it.
func (c *Config) SetModelsDir(dir string) {
	c.Editor.ModelsDir = dir
	if c.downloadFollowsModels || c.Hub.DownloadDir == "" {
		c.Hub.DownloadDir = dir
		c.downloadFollowsModels = true
	}
}

// Resolve loads path (when non-empty), applies the environment, then defaults.
func Resolve(path string, getenv func(string) string) (Config, error) {
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(getenv)
	cfg.Defaults()
	return cfg, nil
}
