package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkdraft/inkdraft/internal/render"
	"github.com/inkdraft/inkdraft/pkg/doc"
)

func newRenderCmd() *cobra.Command {
	var out string
	var standalone bool
	var terminal bool
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a markdown file to HTML (or to the terminal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text := string(data)

			if terminal {
				width := app.Cfg.GetInt("preview.word_wrap")
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
					width = w
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), render.Terminal(text, width))
				return err
			}

			body, err := render.HTML(text)
			if err != nil {
				return err
			}
			if standalone {
				d := doc.Document{Path: args[0], Text: text}
				body = render.Page(d.Title(), body, 0)
			}

			if out != "" {
				return os.WriteFile(out, []byte(body), 0o600)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "wrap the fragment in a full HTML page")
	cmd.Flags().BoolVar(&terminal, "term", false, "render styled output for the terminal")
	return cmd
}
