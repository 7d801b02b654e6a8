package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

func newRedshiftCmd() *cobra.Command {
	var (
		params connect.Params
		opts   queryOptions
	)

	cmd := &cobra.Command{
		Use:           "redshift",
		Short:         "Connect to an Amazon Redshift cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(connect.EngineRedshift, params, opts)
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "", "Cluster endpoint host")
	cmd.Flags().IntVar(&params.Port, "port", 5439, "Cluster port")
	cmd.Flags().StringVar(&params.DBName, "dbname", "", "Database name")
	cmd.Flags().StringVar(&params.User, "user", "", "Database user")
	cmd.Flags().StringVar(&params.Password, "password", "", "Database password (or SQLBRIDGE_PASSWORD env)")
	cmd.Flags().StringVar(&params.SSLMode, "sslmode", "require", "SSL mode")
	addQueryFlags(cmd, &opts)
	return cmd
}

func init() {
	rootCmd.AddCommand(newRedshiftCmd())
}
