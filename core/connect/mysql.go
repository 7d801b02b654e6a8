package connect

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLConnector implements the Connector contract for MySQL and MariaDB.
type MySQLConnector struct {
	handle
	params Params
}

// NewMySQLConnector creates an unconnected MySQL connector
func NewMySQLConnector(params Params) (*MySQLConnector, error) {
	if err := requires(EngineMySQL,
		"host", params.Host,
		"dbname", params.DBName,
		"user", params.User,
	); err != nil {
		return nil, err
	}
	if params.Port == 0 {
		params.Port = 3306
	}
	return &MySQLConnector{
		handle: handle{driverName: "mysql"},
		params: params,
	}, nil
}

// Connect establishes the connection; no-op when already connected
func (c *MySQLConnector) Connect(ctx context.Context) error {
	if c.connected() {
		return nil
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
		c.params.User, c.params.Password, c.params.Host, c.params.Port, c.params.DBName)
	if c.params.Timeout > 0 {
		dsn += fmt.Sprintf("&timeout=%s", c.params.Timeout)
	}
	return c.open(ctx, dsn)
}

// DSNSummary returns the connection descriptor without the password
func (c *MySQLConnector) DSNSummary() string {
	return fmt.Sprintf("engine=mysql host=%s port=%d dbname=%s user=%s",
		c.params.Host, c.params.Port, c.params.DBName, c.params.User)
}

// Engine identifies the adapter
func (c *MySQLConnector) Engine() Engine {
	return EngineMySQL
}
