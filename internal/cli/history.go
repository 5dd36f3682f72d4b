package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkdraft/inkdraft/internal/store"
	"github.com/inkdraft/inkdraft/internal/util"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved document snapshots",
	}
	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryRestoreCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int
	var since, until string
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List snapshots of a file, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			snaps, err := app.Snapshots.List(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			snaps, err = filterByTime(snaps, since, until)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no snapshots")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tWORDS\tHASH")
			for _, sn := range snaps {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
					sn.ID, sn.CreatedAt.Local().Format("2006-01-02 15:04:05"), sn.Words, util.Truncate(sn.Hash, 12))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum snapshots to list")
	cmd.Flags().StringVar(&since, "since", "", "only snapshots after this time (e.g. 2h, 3d, 2026-01-02)")
	cmd.Flags().StringVar(&until, "until", "", "only snapshots before this time")
	return cmd
}

func filterByTime(snaps []store.Snapshot, since, until string) ([]store.Snapshot, error) {
	if since == "" && until == "" {
		return snaps, nil
	}
	now := time.Now()
	var s, u time.Time
	var err error
	if since != "" {
		if s, err = util.ParseTimeExpr(since, now); err != nil {
			return nil, fmt.Errorf("invalid --since: %w", err)
		}
	}
	if until != "" {
		if u, err = util.ParseTimeExpr(until, now); err != nil {
			return nil, fmt.Errorf("invalid --until: %w", err)
		}
	}
	if !s.IsZero() && !u.IsZero() && s.After(u) {
		s, u = u, s
	}
	out := snaps[:0]
	for _, sn := range snaps {
		if !s.IsZero() && sn.CreatedAt.Before(s) {
			continue
		}
		if !u.IsZero() && sn.CreatedAt.After(u) {
			continue
		}
		out = append(out, sn)
	}
	return out, nil
}

func newHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a snapshot's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q", args[0])
			}
			sn, err := app.Snapshots.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sn.Content)
			return err
		},
	}
	return cmd
}

func newHistoryRestoreCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Write a snapshot back to its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			defer app.Close()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q", args[0])
			}
			sn, err := app.Snapshots.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			dest := sn.DocPath
			if out != "" {
				dest = out
			}
			if err := os.WriteFile(dest, []byte(sn.Content), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored snapshot %d to %s\n", sn.ID, dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "restore to a different path")
	return cmd
}
