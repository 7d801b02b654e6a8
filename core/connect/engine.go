package connect

import (
	"strings"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// Engine identifies a supported database engine.
type Engine string

const (
	EngineSQLite    Engine = "sqlite"
	EnginePostgres  Engine = "postgres"
	EngineMySQL     Engine = "mysql"
	EngineSQLServer Engine = "sqlserver"
	EngineOracle    Engine = "oracle"
	EngineSnowflake Engine = "snowflake"
	EngineRedshift  Engine = "redshift"
)

// Engines lists the supported engines in stable order.
func Engines() []Engine {
	return []Engine{
		EngineSQLite,
		EnginePostgres,
		EngineMySQL,
		EngineSQLServer,
		EngineOracle,
		EngineSnowflake,
		EngineRedshift,
	}
}

// String returns the engine identifier
func (e Engine) String() string {
	return string(e)
}

// ParseEngine resolves a case-insensitive engine identifier. Unknown
// identifiers yield a configuration error.
func ParseEngine(s string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Engines() {
		if e == known {
			return e, nil
		}
	}
	return "", errors.Configurationf("unsupported engine '%s'", s)
}
