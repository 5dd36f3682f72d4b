package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkdraft/inkdraft/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a live HTML preview of a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			if _, err := os.Stat(args[0]); err != nil {
				return err
			}
			if addr != "" {
				app.Cfg.Set("serve.http_addr", addr)
			}
			srv := server.New(app.Cfg, args[0], app.Log)
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", args[0], app.Cfg.GetString("serve.http_addr"))
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides serve.http_addr)")
	return cmd
}
