package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkdraft/inkdraft/internal/config"
	"github.com/inkdraft/inkdraft/internal/keys"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigGenerateCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigSetKeyCmd())
	cmd.AddCommand(newConfigClearKeyCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var out string
	var overwrite bool
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"init"},
		Short:   "Generate a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = config.DefaultConfigPath()
			}
			return writeConfigFile(cmd, out, overwrite)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing config (creates a backup)")
	return cmd
}

func writeConfigFile(cmd *cobra.Command, out string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
		return err
	}

	exists := fileExists(out)
	if exists && !overwrite {
		return fmt.Errorf("config already exists at %s; use --overwrite to replace (this creates a backup first)", out)
	}

	var backupPath string
	if exists {
		var err error
		backupPath, err = backupConfig(out)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, []byte(config.RenderDefaultTOML()), 0o600); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	if backupPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup: %s\n", backupPath)
	}
	return nil
}

func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak"
	if fileExists(backup) {
		backup = fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	}
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", err
	}
	return backup, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			out := cmd.OutOrStdout()
			for _, opt := range config.GetConfigOptions() {
				val := app.Cfg.Get(opt.Key)
				if opt.Key == keys.APIKeyName {
					if s, _ := val.(string); s != "" {
						val = "(set)"
					} else if keys.ResolveAPIKey(app.Cfg, app.Keys) != "" {
						val = "(keyring)"
					} else {
						val = "(missing)"
					}
				}
				fmt.Fprintf(out, "%s = %v\n", opt.Key, val)
			}
			if err := config.CheckConfigValidity(app.Cfg); err != nil {
				fmt.Fprintf(out, "\nwarning: %v\n", err)
			}
			return nil
		},
	}
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.DefaultConfigPath())
			return err
		},
	}
}

func newConfigSetKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the generation API key in the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			if app.Keys == nil {
				return fmt.Errorf("no system keyring available; set %s in the config file or INKDRAFT_GENAI_API_KEY instead", keys.APIKeyName)
			}

			key, err := readSecret(cmd)
			if err != nil {
				return err
			}
			if key == "" {
				return fmt.Errorf("empty key")
			}
			if err := app.Keys.Put(keys.APIKeyName, key); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
			return nil
		},
	}
	return cmd
}

func newConfigClearKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key",
		Short: "Remove the generation API key from the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			if app.Keys == nil {
				return fmt.Errorf("no system keyring available")
			}
			if err := app.Keys.Delete(keys.APIKeyName); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return nil
		},
	}
}

// readSecret prompts without echo on a terminal, and falls back to reading
// a line from stdin when piped.
func readSecret(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")
		data, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
