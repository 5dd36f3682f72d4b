package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "inkdraft"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "inkdraft"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: INKDRAFT_* (highest among these sources)
	v.SetEnvPrefix("inkdraft")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize dependent values post-merge
	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	if strings.TrimSpace(v.GetString("tone.default")) == "" {
		v.Set("tone.default", "professional")
	}
	return nil
}

// defaultDataDir resolves default data dir: $XDG_DATA_HOME/inkdraft or ~/.local/share/inkdraft
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "inkdraft")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "inkdraft")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "inkdraft", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for defaults and config-file generation.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; snapshot DB is data_dir/inkdraft.db"},

		{Key: "tone.default", Default: "professional", Comment: "Starting tone for Change Tone: professional|casual|academic|persuasive|witty"},

		{Key: "genai.base_url", Default: "https://generativelanguage.googleapis.com", Comment: "Base URL of the generative-language API"},
		{Key: "genai.model", Default: "gemini-2.0-flash", Comment: "Model name used for all AI operations"},
		{Key: "genai.api_key", Default: "", Comment: "API key; prefer INKDRAFT_GENAI_API_KEY or 'inkdraft config set-key'"},
		{Key: "genai.max_retries", Default: 3, Comment: "Retries after the first failed attempt (backoff 1s, 2s, 4s, ...); 0 disables retrying"},

		{Key: "preview.word_wrap", Default: 80, Comment: "Word-wrap column for the terminal preview pane"},

		{Key: "serve.http_addr", Default: ":6126", Comment: "HTTP listen address for 'inkdraft serve'"},
		{Key: "serve.refresh_seconds", Default: 2, Comment: "Browser auto-refresh cadence; 0 disables"},

		{Key: "snapshots.enabled", Default: true, Comment: "Record a snapshot on every save"},
		{Key: "snapshots.keep", Default: 50, Comment: "Snapshots kept per document before pruning"},

		{Key: "editor.autosave_on_quit", Default: false, Comment: "Write unsaved changes to disk when quitting the editor"},
	}
}

// ResolveDBPath uses data_dir and defaults to return the sqlite DB file path.
func ResolveDBPath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "inkdraft.db")
}
