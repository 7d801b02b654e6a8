// Package connect normalizes heterogeneous relational database engines
// behind one connector contract. Each engine adapter wraps exactly one
// database/sql handle; all protocol, authentication, and SQL execution is
// delegated to the registered driver.
package connect

import (
	"context"
	"errors"
)

// Row is a single result row keyed by column name.
type Row = map[string]any

// Table is a fully materialized tabular result. Columns preserves the
// driver's column order; Rows preserves query result order.
type Table struct {
	Columns []string
	Rows    []Row
}

// Connector is the unified contract every engine adapter satisfies.
// A connector owns at most one live driver handle. Instances are not safe
// for concurrent use without external synchronization.
type Connector interface {
	// Connect establishes the underlying driver connection from the stored
	// parameters and verifies it with a round-trip. Calling Connect on an
	// already-connected instance is a no-op; a second handle is never opened.
	Connect(ctx context.Context) error

	// Close releases the handle if one is open. Idempotent; a second Close
	// never returns an error.
	Close() error

	// Ping reports liveness with a minimal round-trip. It never returns an
	// error: any failure, including a connection that was never established,
	// yields false.
	Ping(ctx context.Context) bool

	// Execute runs a non-returning statement (DDL/DML) and reports the
	// affected row count where the driver provides one.
	Execute(ctx context.Context, statement string, args ...any) (int64, error)

	// Read runs a query and materializes the full result set.
	Read(ctx context.Context, statement string, args ...any) (*Table, error)

	// ReadChunks runs a query and returns a forward-only reader producing
	// row chunks of at most size rows. The caller must Close the reader.
	ReadChunks(ctx context.Context, statement string, size int, args ...any) (*ChunkReader, error)

	// DSNSummary returns a human-readable connection descriptor with the
	// password masked. It never contains the raw secret.
	DSNSummary() string

	// Engine identifies the adapter.
	Engine() Engine
}

// With runs fn inside a connector scope: Connect is guaranteed to have
// succeeded before fn runs, and Close is invoked exactly once on every exit
// path, including an error returned by fn and a panic raised inside it.
func With(ctx context.Context, c Connector, fn func(Connector) error) error {
	if err := c.Connect(ctx); err != nil {
		return err
	}
	var closeErr error
	closed := false
	closeOnce := func() {
		if !closed {
			closed = true
			closeErr = c.Close()
		}
	}
	defer closeOnce()

	if err := fn(c); err != nil {
		closeOnce()
		return errors.Join(err, closeErr)
	}
	closeOnce()
	return closeErr
}
