package connect

import (
	"context"
	"fmt"
	"strings"

	"github.com/snowflakedb/gosnowflake"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
	"github.com/sqlbridge/sqlbridge/core/shared/mask"
)

// SnowflakeConnector implements the Connector contract for Snowflake.
type SnowflakeConnector struct {
	handle
	params Params
}

// NewSnowflakeConnector creates an unconnected Snowflake connector
func NewSnowflakeConnector(params Params) (*SnowflakeConnector, error) {
	if err := requires(EngineSnowflake,
		"account", params.Account,
		"user", params.User,
		"password", params.Password,
		"warehouse", params.Warehouse,
		"database", params.DBName,
		"schema", params.Schema,
	); err != nil {
		return nil, err
	}
	return &SnowflakeConnector{
		handle: handle{driverName: "snowflake"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *SnowflakeConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	cfg := &gosnowflake.Config{
		Account:   c.params.Account,
		User:      c.params.User,
		Password:  c.params.Password,
		Warehouse: c.params.Warehouse,
		Database:  c.params.DBName,
		Schema:    c.params.Schema,
		Role:      c.params.Role,
	}
	dsn, err := gosnowflake.DSN(cfg)
	if err != nil {
		return errors.WrapError(errors.ErrCodeConnection, "failed to build snowflake dsn", err)
	}
	return c.open(ctx, dsn)
}

// DSNSummary returns the connection descriptor with the password masked
func (c *SnowflakeConnector) DSNSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "engine=snowflake account=%s user=%s password=%s warehouse=%s database=%s schema=%s",
		c.params.Account, c.params.User, mask.Secret(c.params.Password),
		c.params.Warehouse, c.params.DBName, c.params.Schema)
	if c.params.Role != "" {
		fmt.Fprintf(&b, " role=%s", c.params.Role)
	}
	return b.String()
}

// Engine identifies the adapter
func (c *SnowflakeConnector) Engine() Engine {
	return EngineSnowflake
}
