package connect

import (
	"strings"
	"time"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// Params carries the connection parameters for every supported engine.
// Which fields are required depends on the engine; the factory validates
// them before a connector is constructed. A connector copies its Params at
// construction time, so the set is immutable afterwards.
type Params struct {
	Host     string
	Port     int
	DBName   string
	User     string
	Password string

	// Path is the database file for file-based engines (SQLite).
	Path string

	// Timeout is passed through to the driver (busy timeout for SQLite,
	// connect timeout elsewhere). Zero means driver default.
	Timeout time.Duration

	// SSLMode applies to PostgreSQL and Redshift.
	SSLMode string

	// Server and Trusted apply to SQL Server. Trusted selects integrated
	// authentication, making User and Password optional.
	Server  string
	Trusted bool

	// Service is the Oracle service name.
	Service string

	// Account, Warehouse, Schema, and Role apply to Snowflake.
	Account   string
	Warehouse string
	Schema    string
	Role      string
}

// requires validates required parameters given as alternating name/value
// pairs and reports every missing one in a single configuration error.
func requires(engine Engine, kv ...string) error {
	var missing []string
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			missing = append(missing, kv[i])
		}
	}
	if len(missing) > 0 {
		return errors.Configurationf("engine '%s' missing required parameters: %s",
			engine, strings.Join(missing, ", "))
	}
	return nil
}
