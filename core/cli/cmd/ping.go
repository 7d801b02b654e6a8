package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/config"
	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

func newPingCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "ping",
		Short:         "Probe every connection profile in a profiles file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(configPath)
			if err != nil {
				return err
			}
			mgr, err := f.Manager()
			if err != nil {
				return err
			}

			results := mgr.PingAll(context.Background())

			tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			failed := 0
			for _, name := range mgr.Names() {
				status := "ok"
				if !results[name] {
					status = "unreachable"
					failed++
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return errors.NewAppError(errors.ErrCodeConnection,
					fmt.Sprintf("%d of %d profile(s) unreachable", failed, mgr.Count()), nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "sqlbridge.yaml", "Path to the profiles file")
	return cmd
}

func init() {
	rootCmd.AddCommand(newPingCmd())
}
