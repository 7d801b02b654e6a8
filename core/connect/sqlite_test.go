package connect_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlbridge/sqlbridge/core/connect"
	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

var fixtureCustomers = []string{
	"Atelier graphique",
	"Signal Gift Stores",
	"Australian Collectors, Co.",
	"La Rochelle Gifts",
	"Baane Mini Imports",
}

// newFixtureDB creates a sqlite database file with a customers table
// holding five rows and returns its path.
func newFixtureDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "toys_and_models.sqlite")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	conn, err := connect.NewSQLiteConnector(connect.Params{Path: path})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	_, err = conn.Execute(ctx, "CREATE TABLE customers (customerNumber INTEGER PRIMARY KEY, customerName TEXT NOT NULL)")
	require.NoError(t, err)
	for i, name := range fixtureCustomers {
		affected, err := conn.Execute(ctx, "INSERT INTO customers (customerNumber, customerName) VALUES (?, ?)", i+1, name)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	}
	return path
}

func newFixtureConnector(t *testing.T) *connect.SQLiteConnector {
	t.Helper()
	conn, err := connect.NewSQLiteConnector(connect.Params{Path: newFixtureDB(t)})
	require.NoError(t, err)
	return conn
}

func TestSQLiteConnector_Read(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	table, err := conn.Read(ctx, "SELECT customerName FROM customers LIMIT 2")
	require.NoError(t, err)

	assert.Equal(t, []string{"customerName"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Atelier graphique", table.Rows[0]["customerName"])
	assert.Equal(t, "Signal Gift Stores", table.Rows[1]["customerName"])
}

func TestSQLiteConnector_ReadWithArgs(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	table, err := conn.Read(ctx, "SELECT customerNumber, customerName FROM customers WHERE customerNumber > ?", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"customerNumber", "customerName"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "La Rochelle Gifts", table.Rows[0]["customerName"])
}

func TestSQLiteConnector_ReadChunks(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	reader, err := conn.ReadChunks(ctx, "SELECT customerName FROM customers", 2)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, []string{"customerName"}, reader.Columns())

	var sizes []int
	var names []string
	for chunk, ok := reader.Next(); ok; chunk, ok = reader.Next() {
		sizes = append(sizes, len(chunk.Rows))
		for _, row := range chunk.Rows {
			names = append(names, row["customerName"].(string))
		}
	}
	require.NoError(t, reader.Err())

	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, fixtureCustomers, names)

	// Exhausted readers stay exhausted.
	chunk, ok := reader.Next()
	assert.Nil(t, chunk)
	assert.False(t, ok)
}

func TestSQLiteConnector_ReadChunks_InvalidSize(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	_, err := conn.ReadChunks(ctx, "SELECT customerName FROM customers", 0)
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestSQLiteConnector_QueryError(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	_, err := conn.Read(ctx, "SELECT nope FROM missing_table")
	require.Error(t, err)
	assert.True(t, errors.IsQuery(err))

	_, err = conn.Execute(ctx, "this is not sql")
	require.Error(t, err)
	assert.True(t, errors.IsQuery(err))
}

func TestSQLiteConnector_ConnectMissingFile(t *testing.T) {
	conn, err := connect.NewSQLiteConnector(connect.Params{
		Path: filepath.Join(t.TempDir(), "does_not_exist.sqlite"),
	})
	require.NoError(t, err)

	err = conn.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsConnection(err))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestSQLiteConnector_ConnectTwiceIsNoOp(t *testing.T) {
	conn := newFixtureConnector(t)
	ctx := context.Background()
	require.NoError(t, conn.Connect(ctx))
	defer conn.Close()

	require.NoError(t, conn.Connect(ctx))
	assert.True(t, conn.Ping(ctx))
}

func TestSQLiteConnector_PingNeverConnected(t *testing.T) {
	conn := newFixtureConnector(t)
	assert.False(t, conn.Ping(context.Background()))
}

func TestSQLiteConnector_CloseIdempotent(t *testing.T) {
	conn := newFixtureConnector(t)
	require.NoError(t, conn.Connect(context.Background()))

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
}

func TestSQLiteConnector_ReadBeforeConnect(t *testing.T) {
	conn := newFixtureConnector(t)
	_, err := conn.Read(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.True(t, errors.IsConnection(err))
}

// countingConnector counts Close calls to verify scoped release semantics.
type countingConnector struct {
	connect.Connector
	closeCalls int
}

func (c *countingConnector) Close() error {
	c.closeCalls++
	return c.Connector.Close()
}

func TestWith_ClosesOnceOnSuccess(t *testing.T) {
	conn := &countingConnector{Connector: newFixtureConnector(t)}
	ctx := context.Background()

	err := connect.With(ctx, conn, func(c connect.Connector) error {
		assert.True(t, c.Ping(ctx))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, conn.closeCalls)
	assert.False(t, conn.Ping(ctx))
}

func TestWith_ClosesOnceOnError(t *testing.T) {
	conn := &countingConnector{Connector: newFixtureConnector(t)}
	ctx := context.Background()
	boom := stderrors.New("boom")

	err := connect.With(ctx, conn, func(connect.Connector) error {
		return boom
	})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, boom))

	assert.Equal(t, 1, conn.closeCalls)
	assert.False(t, conn.Ping(ctx))
}

func TestWith_ClosesOnPanic(t *testing.T) {
	conn := &countingConnector{Connector: newFixtureConnector(t)}
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = connect.With(ctx, conn, func(connect.Connector) error {
			panic("boom")
		})
	})

	assert.Equal(t, 1, conn.closeCalls)
	assert.False(t, conn.Ping(ctx))
}

func TestWith_PropagatesConnectError(t *testing.T) {
	conn, err := connect.NewSQLiteConnector(connect.Params{
		Path: filepath.Join(t.TempDir(), "missing.sqlite"),
	})
	require.NoError(t, err)

	called := false
	err = connect.With(context.Background(), conn, func(connect.Connector) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.IsConnection(err))
	assert.False(t, called)
}
