package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newSQLServerCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "sqlserver",
		Short:         "Connect to a SQL Server database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineSQLServer, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Server, "server", "", "Server host, optionally with instance")
	cmd.Flags().IntVar(&params.Port, "port", 0, "Server port (default driver port)")
	cmd.Flags().StringVar(&params.DBName, "database", "", "Database name")
	cmd.Flags().BoolVar(&params.Trusted, "trusted-connection", false, "Use integrated authentication")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user (unless trusted-connection)")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newSQLServerCmd())
}
