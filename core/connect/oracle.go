package connect

import (
	"context"
	"fmt"

	go_ora "github.com/sijms/go-ora/v2"

	"github.com/sqlbridge/sqlbridge/core/shared/mask"
)

// OracleConnector implements the Connector contract for Oracle.
type OracleConnector struct {
	handle
	params Params
}

// NewOracleConnector creates an unconnected Oracle connector
func NewOracleConnector(params Params) (*OracleConnector, error) {
	if err := requires(EngineOracle,
		"host", params.Host,
		"service_name", params.Service,
		"user", params.User,
		"password", params.Password,
	); err != nil {
		return nil, err
	}
	if params.Port == 0 {
		params.Port = 1521
	}
	return &OracleConnector{
		// Oracle has no bare SELECT; probe against DUAL instead.
		handle: handle{driverName: "oracle", pingStmt: "SELECT 1 FROM DUAL"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *OracleConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	dsn := go_ora.BuildUrl(c.params.Host, c.params.Port, c.params.Service,
		c.params.User, c.params.Password, nil)
	return c.open(ctx, dsn)
}

// DSNSummary returns the connection descriptor with the password masked
func (c *OracleConnector) DSNSummary() string {
	return fmt.Sprintf("engine=oracle host=%s port=%d service_name=%s user=%s password=%s",
		c.params.Host, c.params.Port, c.params.Service, c.params.User,
		mask.Secret(c.params.Password))
}

// Engine identifies the adapter
func (c *OracleConnector) Engine() Engine {
	return EngineOracle
}
