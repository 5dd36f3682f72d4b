package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkdraft/inkdraft/internal/ops"
	"github.com/inkdraft/inkdraft/internal/ui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Open a markdown file in the editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0])
		},
	}
	return cmd
}

func runEdit(cmd *cobra.Command, path string) error {
	app := getApp(cmd)
	defer app.Close()

	text, err := readDocument(path)
	if err != nil {
		return err
	}

	tone, err := ops.ParseTone(app.Cfg.GetString("tone.default"))
	if err != nil {
		return fmt.Errorf("tone.default: %w", err)
	}

	opts := ui.Options{
		Path:          path,
		Text:          text,
		Gen:           app.Gen,
		Log:           app.Log,
		Tone:          tone,
		WrapWidth:     app.Cfg.GetInt("preview.word_wrap"),
		KeepSnapshots: app.Cfg.GetInt("snapshots.keep"),
		AutosaveQuit:  app.Cfg.GetBool("editor.autosave_on_quit"),
	}
	if app.Cfg.GetBool("snapshots.enabled") && app.Snapshots != nil {
		opts.Snapshots = app.Snapshots
	}

	p := tea.NewProgram(ui.New(opts), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// readDocument loads the file, treating a missing file as a new empty
// buffer.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
