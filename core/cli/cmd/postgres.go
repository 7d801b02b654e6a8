package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newPostgresCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "postgres",
		Short:         "Connect to a PostgreSQL database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EnginePostgres, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "", "Database host")
	cmd.Flags().IntVar(&params.Port, "port", 5432, "Database port")
	cmd.Flags().StringVar(&params.DBName, "dbname", "", "Database name")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	cmd.Flags().StringVar(&params.SSLMode, "sslmode", "", "SSL mode (disable, require, verify-full)")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newPostgresCmd())
}
