package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newMySQLCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "mysql",
		Short:         "Connect to a MySQL or MariaDB database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineMySQL, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "", "Database host")
	cmd.Flags().IntVar(&params.Port, "port", 3306, "Database port")
	cmd.Flags().StringVar(&params.DBName, "db", "", "Database name")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newMySQLCmd())
}
