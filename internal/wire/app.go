// Package wire assembles the application services from merged configuration.
package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/inkdraft/inkdraft/internal/config"
	"github.com/inkdraft/inkdraft/internal/genai"
	"github.com/inkdraft/inkdraft/internal/keys"
	"github.com/inkdraft/inkdraft/internal/store"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg       *viper.Viper
	Log       *log.Logger
	Gen       *genai.Client
	Snapshots *store.Store
	Keys      keys.Store
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "inkdraft ", log.LstdFlags)

	var ks keys.Store
	if keys.Available() {
		ks = &keys.KeyringStore{}
	}

	retries := v.GetInt("genai.max_retries")
	if retries == 0 {
		// An explicit zero in config means single-attempt calls.
		retries = genai.NoRetries
	}
	gen := genai.New(genai.Config{
		BaseURL:    v.GetString("genai.base_url"),
		APIKey:     keys.ResolveAPIKey(v, ks),
		Model:      v.GetString("genai.model"),
		MaxRetries: retries,
	})

	snaps, err := store.Open(ctx, config.ResolveDBPath(v))
	if err != nil {
		return nil, err
	}

	return &App{
		Cfg:       v,
		Log:       logger,
		Gen:       gen,
		Snapshots: snaps,
		Keys:      ks,
	}, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.Snapshots != nil {
		_ = a.Snapshots.Close()
	}
}
