package connect

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
	"github.com/sqlbridge/sqlbridge/core/shared/mask"
)

// SQLServerConnector implements the Connector contract for SQL Server.
// With Trusted set it uses integrated authentication, otherwise user and
// password credentials are required.
type SQLServerConnector struct {
	handle
	params Params
}

// NewSQLServerConnector creates an unconnected SQL Server connector
func NewSQLServerConnector(params Params) (*SQLServerConnector, error) {
	if err := requires(EngineSQLServer,
		"server", params.Server,
		"database", params.DBName,
	); err != nil {
		return nil, err
	}
	if !params.Trusted && (params.User == "" || params.Password == "") {
		return nil, errors.Configurationf(
			"engine 'sqlserver' requires user and password unless trusted_connection is set")
	}
	return &SQLServerConnector{
		handle: handle{driverName: "sqlserver"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *SQLServerConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "server=%s;database=%s", c.params.Server, c.params.DBName)
	if c.params.Port > 0 {
		fmt.Fprintf(&b, ";port=%d", c.params.Port)
	}
	if c.params.Trusted {
		b.WriteString(";trusted_connection=yes")
	} else {
		fmt.Fprintf(&b, ";user id=%s;password=%s", c.params.User, c.params.Password)
	}
	return c.open(ctx, b.String())
}

// DSNSummary returns the connection descriptor with the password masked
func (c *SQLServerConnector) DSNSummary() string {
	if c.params.Trusted {
		return fmt.Sprintf("engine=sqlserver server=%s database=%s trusted_connection=yes",
			c.params.Server, c.params.DBName)
	}
	return fmt.Sprintf("engine=sqlserver server=%s database=%s user=%s password=%s",
		c.params.Server, c.params.DBName, c.params.User, mask.Secret(c.params.Password))
}

// Engine identifies the adapter
func (c *SQLServerConnector) Engine() Engine {
	return EngineSQLServer
}
