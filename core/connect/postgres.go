package connect

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sqlbridge/sqlbridge/core/shared/mask"
)

// PostgresConnector implements the Connector contract for PostgreSQL.
type PostgresConnector struct {
	handle
	params Params
}

// NewPostgresConnector creates an unconnected PostgreSQL connector
func NewPostgresConnector(params Params) (*PostgresConnector, error) {
	if err := requires(EnginePostgres,
		"host", params.Host,
		"dbname", params.DBName,
		"user", params.User,
	); err != nil {
		return nil, err
	}
	if params.Port == 0 {
		params.Port = 5432
	}
	return &PostgresConnector{
		handle: handle{driverName: "pgx"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *PostgresConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	return c.open(ctx, keywordDSN(c.params, false))
}

// DSNSummary returns the keyword descriptor with the password masked
func (c *PostgresConnector) DSNSummary() string {
	return "engine=postgres " + keywordDSN(c.params, true)
}

// Engine identifies the adapter
func (c *PostgresConnector) Engine() Engine {
	return EnginePostgres
}

// keywordDSN renders a libpq-style keyword DSN shared by the PostgreSQL and
// Redshift adapters. With maskSecret set the password is replaced by its
// masked form; an empty password is omitted either way.
func keywordDSN(p Params, maskSecret bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "host=%s port=%d dbname=%s user=%s", p.Host, p.Port, p.DBName, p.User)
	if p.Password != "" {
		if maskSecret {
			fmt.Fprintf(&b, " password=%s", mask.Secret(p.Password))
		} else {
			fmt.Fprintf(&b, " password=%s", p.Password)
		}
	}
	if p.SSLMode != "" {
		fmt.Fprintf(&b, " sslmode=%s", p.SSLMode)
	}
	if p.Timeout > 0 && !maskSecret {
		fmt.Fprintf(&b, " connect_timeout=%d", int(p.Timeout.Seconds()))
	}
	return b.String()
}
