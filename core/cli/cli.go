package cli

import (
	"github.com/sqlbridge/sqlbridge/core/cli/cmd"
	"github.com/sqlbridge/sqlbridge/core/logger"
)

// Execute runs the CLI
func Execute() error {
	if err := cmd.Execute(); err != nil {
		logger.New("cli").Error(err.Error())
		return err
	}
	return nil
}
