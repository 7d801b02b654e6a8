package connect

import (
	"sync"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// Builder constructs an unconnected connector from a parameter set.
type Builder func(Params) (Connector, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[Engine]Builder)
)

func init() {
	Register(EngineSQLite, func(p Params) (Connector, error) { return NewSQLiteConnector(p) })
	Register(EnginePostgres, func(p Params) (Connector, error) { return NewPostgresConnector(p) })
	Register(EngineMySQL, func(p Params) (Connector, error) { return NewMySQLConnector(p) })
	Register(EngineSQLServer, func(p Params) (Connector, error) { return NewSQLServerConnector(p) })
	Register(EngineOracle, func(p Params) (Connector, error) { return NewOracleConnector(p) })
	Register(EngineSnowflake, func(p Params) (Connector, error) { return NewSnowflakeConnector(p) })
	Register(EngineRedshift, func(p Params) (Connector, error) { return NewRedshiftConnector(p) })
}

// Register maps an engine identifier to a connector builder. Adding an
// engine never requires touching existing connectors.
func Register(engine Engine, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[engine] = builder
}

// New constructs the connector registered for the engine. The returned
// connector is not yet connected; New has no side effect beyond
// construction. Unknown engines and missing required parameters yield a
// configuration error.
func New(engine Engine, params Params) (Connector, error) {
	registryMu.RLock()
	builder, ok := registry[engine]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Configurationf("unsupported engine '%s'", engine)
	}
	return builder(params)
}
