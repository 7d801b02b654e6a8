package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newOracleCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "oracle",
		Short:         "Connect to an Oracle database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineOracle, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "", "Database host")
	cmd.Flags().IntVar(&params.Port, "port", 1521, "Database port")
	cmd.Flags().StringVar(&params.Service, "service-name", "", "Oracle service name")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newOracleCmd())
}
