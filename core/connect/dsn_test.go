package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/core/connect"
)

const testSecret = "s3cretpw"

func TestDSNSummary_NeverContainsPassword(t *testing.T) {
	params := validParams()
	for engine := range params {
		p := params[engine]
		p.Password = testSecret

		t.Run(engine.String(), func(t *testing.T) {
			conn, err := connect.New(engine, p)
			require.NoError(t, err)

			summary := conn.DSNSummary()
			assert.NotContains(t, summary, testSecret)
			assert.Contains(t, summary, "engine="+engine.String())
		})
	}
}

func TestDSNSummary_PostgresKeywords(t *testing.T) {
	conn, err := connect.New(connect.EnginePostgres, connect.Params{
		Host:   "localhost",
		Port:   5432,
		DBName: "x",
		User:   "u",
	})
	require.NoError(t, err)

	summary := conn.DSNSummary()
	assert.Contains(t, summary, "host=localhost")
	assert.Contains(t, summary, "port=5432")
	assert.Contains(t, summary, "dbname=x")
	assert.Contains(t, summary, "user=u")
	// No password was given, so no password field may appear at all.
	assert.NotContains(t, summary, "password=")
}

func TestDSNSummary_MasksInsteadOfOmitting(t *testing.T) {
	conn, err := connect.New(connect.EnginePostgres, connect.Params{
		Host: "localhost", DBName: "x", User: "u", Password: testSecret,
	})
	require.NoError(t, err)

	summary := conn.DSNSummary()
	assert.Contains(t, summary, "password=s****w")
	assert.NotContains(t, summary, testSecret)
}

func TestDSNSummary_DefaultPorts(t *testing.T) {
	tests := []struct {
		engine connect.Engine
		want   string
	}{
		{connect.EnginePostgres, "port=5432"},
		{connect.EngineMySQL, "port=3306"},
		{connect.EngineOracle, "port=1521"},
		{connect.EngineRedshift, "port=5439"},
	}

	params := validParams()
	for _, tt := range tests {
		t.Run(tt.engine.String(), func(t *testing.T) {
			p := params[tt.engine]
			p.Port = 0
			conn, err := connect.New(tt.engine, p)
			require.NoError(t, err)
			assert.Contains(t, conn.DSNSummary(), tt.want)
		})
	}
}

func TestDSNSummary_RedshiftDefaultsToTLS(t *testing.T) {
	p := validParams()[connect.EngineRedshift]
	conn, err := connect.New(connect.EngineRedshift, p)
	require.NoError(t, err)
	assert.Contains(t, conn.DSNSummary(), "sslmode=require")
}
