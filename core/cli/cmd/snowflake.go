package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newSnowflakeCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "snowflake",
		Short:         "Connect to a Snowflake warehouse",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineSnowflake, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Account, "account", "", "Snowflake account identifier")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	cmd.Flags().StringVar(&params.Warehouse, "warehouse", "", "Virtual warehouse")
	cmd.Flags().StringVar(&params.DBName, "database", "", "Database name")
	cmd.Flags().StringVar(&params.Schema, "schema", "", "Schema name")
	cmd.Flags().StringVar(&params.Role, "role", "", "Role (optional)")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newSnowflakeCmd())
}
