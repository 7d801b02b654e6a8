package connect

import (
	"context"

	_ "github.com/lib/pq"
)

// RedshiftConnector implements the Connector contract for Amazon Redshift.
// Redshift speaks the PostgreSQL wire protocol; the cluster defaults differ
// (port 5439, TLS required), so it gets its own adapter and driver.
type RedshiftConnector struct {
	handle
	params Params
}

// NewRedshiftConnector creates an unconnected Redshift connector
func NewRedshiftConnector(params Params) (*RedshiftConnector, error) {
	if err := requires(EngineRedshift,
		"host", params.Host,
		"dbname", params.DBName,
		"user", params.User,
		"password", params.Password,
	); err != nil {
		return nil, err
	}
	if params.Port == 0 {
		params.Port = 5439
	}
	if params.SSLMode == "" {
		params.SSLMode = "require"
	}
	return &RedshiftConnector{
		handle: handle{driverName: "postgres"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *RedshiftConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	return c.open(ctx, keywordDSN(c.params, false))
}

// DSNSummary returns the keyword descriptor with the password masked
func (c *RedshiftConnector) DSNSummary() string {
	return "engine=redshift " + keywordDSN(c.params, true)
}

// Engine identifies the adapter
func (c *RedshiftConnector) Engine() Engine {
	return EngineRedshift
}
