package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newSQLiteCmd() *cobra.Command {
	var (
		path    string
		timeout int
		opts    queryOptions
	)

	cmd := &cobra.Command{
		Use:           "sqlite",
		Short:         "Connect to a SQLite database file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineSQLite, connect.Params{
				Path:    path,
				Timeout: time.Duration(timeout) * time.Second,
			}, opts)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Path to the .sqlite file")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Busy timeout in seconds")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newSQLiteCmd())
}
