package connect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/core/connect"
	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// validParams returns a complete parameter set for every supported engine.
func validParams() map[connect.Engine]connect.Params {
	return map[connect.Engine]connect.Params{
		connect.EngineSQLite:   {Path: "/tmp/fixture.sqlite"},
		connect.EnginePostgres: {Host: "localhost", DBName: "app", User: "u", Password: "pw"},
		connect.EngineMySQL:    {Host: "localhost", DBName: "app", User: "u", Password: "pw"},
		connect.EngineSQLServer: {
			Server: "localhost", DBName: "App", User: "sa", Password: "pw",
		},
		connect.EngineOracle: {
			Host: "localhost", Service: "orclpdb1", User: "scott", Password: "tiger",
		},
		connect.EngineSnowflake: {
			Account: "xy12345.us-east-1", User: "me", Password: "pw",
			Warehouse: "WH", DBName: "DB", Schema: "PUBLIC",
		},
		connect.EngineRedshift: {
			Host: "cluster.example.redshift.amazonaws.com", DBName: "dev",
			User: "awsuser", Password: "pw",
		},
	}
}

func TestNew_AllEngines(t *testing.T) {
	for engine, params := range validParams() {
		t.Run(engine.String(), func(t *testing.T) {
			conn, err := connect.New(engine, params)
			require.NoError(t, err)
			require.NotNil(t, conn)

			assert.Equal(t, engine, conn.Engine())
			assert.NotEmpty(t, conn.DSNSummary())
			// Construction must not connect.
			assert.False(t, conn.Ping(context.Background()))
		})
	}
}

func TestNew_UnknownEngine(t *testing.T) {
	conn, err := connect.New("mongodb", connect.Params{Host: "localhost"})
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.True(t, errors.IsConfiguration(err))
}

func TestNew_MissingParameters(t *testing.T) {
	tests := []struct {
		name    string
		engine  connect.Engine
		params  connect.Params
		wantMsg string
	}{
		{
			name:    "sqlite without path",
			engine:  connect.EngineSQLite,
			params:  connect.Params{},
			wantMsg: "path",
		},
		{
			name:    "postgres without dbname",
			engine:  connect.EnginePostgres,
			params:  connect.Params{Host: "localhost", User: "u"},
			wantMsg: "dbname",
		},
		{
			name:    "mysql without host and user",
			engine:  connect.EngineMySQL,
			params:  connect.Params{DBName: "app"},
			wantMsg: "host, user",
		},
		{
			name:    "sqlserver without credentials",
			engine:  connect.EngineSQLServer,
			params:  connect.Params{Server: "localhost", DBName: "App"},
			wantMsg: "trusted_connection",
		},
		{
			name:    "oracle without service name",
			engine:  connect.EngineOracle,
			params:  connect.Params{Host: "localhost", User: "scott", Password: "tiger"},
			wantMsg: "service_name",
		},
		{
			name:    "snowflake without warehouse",
			engine:  connect.EngineSnowflake,
			params:  connect.Params{Account: "acc", User: "me", Password: "pw", DBName: "DB", Schema: "PUBLIC"},
			wantMsg: "warehouse",
		},
		{
			name:    "redshift without password",
			engine:  connect.EngineRedshift,
			params:  connect.Params{Host: "h", DBName: "dev", User: "awsuser"},
			wantMsg: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := connect.New(tt.engine, tt.params)
			require.Error(t, err)
			assert.Nil(t, conn)
			assert.True(t, errors.IsConfiguration(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNew_SQLServerTrustedConnection(t *testing.T) {
	conn, err := connect.New(connect.EngineSQLServer, connect.Params{
		Server: "localhost", DBName: "App", Trusted: true,
	})
	require.NoError(t, err)
	assert.Contains(t, conn.DSNSummary(), "trusted_connection=yes")
}

func TestParseEngine(t *testing.T) {
	engine, err := connect.ParseEngine(" Postgres ")
	require.NoError(t, err)
	assert.Equal(t, connect.EnginePostgres, engine)

	_, err = connect.ParseEngine("db2")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestRegister_CustomEngine(t *testing.T) {
	custom := connect.Engine("duckdb-test")
	connect.Register(custom, func(p connect.Params) (connect.Connector, error) {
		return connect.NewSQLiteConnector(p)
	})

	conn, err := connect.New(custom, connect.Params{Path: "/tmp/duck.sqlite"})
	require.NoError(t, err)
	assert.NotNil(t, conn)
}
