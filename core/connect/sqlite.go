package connect

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

const defaultSQLiteTimeout = 5 * time.Second

// SQLiteConnector implements the Connector contract for SQLite database files.
type SQLiteConnector struct {
	handle
	params Params
}

// NewSQLiteConnector creates an unconnected SQLite connector
func NewSQLiteConnector(params Params) (*SQLiteConnector, error) {
	if err := requires(EngineSQLite, "path", params.Path); err != nil {
		return nil, err
	}
	if params.Timeout == 0 {
		params.Timeout = defaultSQLiteTimeout
	}
	return &SQLiteConnector{
		handle: handle{driverName: "sqlite"},
		params: params,
	}, nil
}

// Connect opens the database file. The file must already exist; opening a
// missing path would silently create an empty database.
func (c *SQLiteConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	if _, err := os.Stat(c.params.Path); err != nil {
		return errors.WrapError(errors.ErrCodeConnection,
			fmt.Sprintf("sqlite database file '%s' not found", c.params.Path), err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)",
		c.params.Path, c.params.Timeout.Milliseconds())
	return c.open(ctx, dsn)
}

// DSNSummary returns the connection descriptor; SQLite carries no secret
func (c *SQLiteConnector) DSNSummary() string {
	return fmt.Sprintf("engine=sqlite path=%s", c.params.Path)
}

// Engine identifies the adapter
func (c *SQLiteConnector) Engine() Engine {
	return EngineSQLite
}
