package connect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// handle wraps the single database/sql connection a connector owns and
// implements every contract method that does not depend on the engine.
// Engine adapters embed it and contribute Connect, DSNSummary, and Engine.
type handle struct {
	driverName string
	pingStmt   string
	db         *sql.DB
}

// open establishes the driver connection and verifies it with a round-trip.
// On ping failure the half-open handle is closed before the error returns.
func (h *handle) open(ctx context.Context, dsn string) error {
	db, err := sql.Open(h.driverName, dsn)
	if err != nil {
		return errors.WrapError(errors.ErrCodeConnection,
			fmt.Sprintf("failed to open %s connection", h.driverName), err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return errors.WrapError(errors.ErrCodeConnection,
			fmt.Sprintf("failed to reach %s database", h.driverName), err)
	}
	h.db = db
	return nil
}

func (h *handle) connected() bool {
	return h.db != nil
}

// Close releases the handle if one is open. Never errors on double-close.
func (h *handle) Close() error {
	if h.db == nil {
		return nil
	}
	db := h.db
	h.db = nil
	return db.Close()
}

// Ping issues the engine's probe statement and converts any failure,
// including a missing connection, into false.
func (h *handle) Ping(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	stmt := h.pingStmt
	if stmt == "" {
		stmt = "SELECT 1"
	}
	var probe int
	if err := h.db.QueryRowContext(ctx, stmt).Scan(&probe); err != nil {
		return false
	}
	return true
}

// Execute runs a non-returning statement and reports affected rows.
func (h *handle) Execute(ctx context.Context, statement string, args ...any) (int64, error) {
	if h.db == nil {
		return 0, errors.NewAppError(errors.ErrCodeConnection, "no active connection, call Connect first", nil)
	}
	result, err := h.db.ExecContext(ctx, statement, args...)
	if err != nil {
		return 0, errors.WrapError(errors.ErrCodeQuery, "failed to execute statement", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		// Some drivers cannot report a count; the statement still succeeded.
		return 0, nil
	}
	return affected, nil
}

// Read runs a query and materializes the full result set.
func (h *handle) Read(ctx context.Context, statement string, args ...any) (*Table, error) {
	if h.db == nil {
		return nil, errors.NewAppError(errors.ErrCodeConnection, "no active connection, call Connect first", nil)
	}
	rows, err := h.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeQuery, "failed to execute query", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeQuery, "failed to get columns", err)
	}

	table := &Table{Columns: columns}
	for rows.Next() {
		row, err := scanRow(rows, columns)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapError(errors.ErrCodeQuery, "error iterating rows", err)
	}
	return table, nil
}

// ReadChunks runs a query and returns a lazy chunked reader over the rows.
func (h *handle) ReadChunks(ctx context.Context, statement string, size int, args ...any) (*ChunkReader, error) {
	if h.db == nil {
		return nil, errors.NewAppError(errors.ErrCodeConnection, "no active connection, call Connect first", nil)
	}
	if size <= 0 {
		return nil, errors.Configurationf("chunk size must be positive, got %d", size)
	}
	rows, err := h.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeQuery, "failed to execute query", err)
	}
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, errors.WrapError(errors.ErrCodeQuery, "failed to get columns", err)
	}
	return &ChunkReader{rows: rows, columns: columns, size: size}, nil
}

// scanRow scans the current row into a column-keyed map. []byte values are
// converted to string for stable display and serialization.
func scanRow(rows *sql.Rows, columns []string) (Row, error) {
	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, errors.WrapError(errors.ErrCodeQuery, "failed to scan row", err)
	}

	row := make(Row, len(columns))
	for i, col := range columns {
		if b, ok := values[i].([]byte); ok {
			row[col] = string(b)
		} else {
			row[col] = values[i]
		}
	}
	return row, nil
}

// ChunkReader produces a finite, forward-only sequence of row chunks over a
// live result set. Restarting requires issuing the query again.
type ChunkReader struct {
	rows    *sql.Rows
	columns []string
	size    int
	err     error
	done    bool
}

// Columns returns the column names of the underlying result set.
func (r *ChunkReader) Columns() []string {
	return r.columns
}

// Next returns the next chunk of at most the configured size. The final
// chunk may be smaller. It returns nil, false once the sequence is exhausted
// or a scan error occurred; check Err afterwards.
func (r *ChunkReader) Next() (*Table, bool) {
	if r.done {
		return nil, false
	}
	chunk := &Table{Columns: r.columns}
	for len(chunk.Rows) < r.size && r.rows.Next() {
		row, err := scanRow(r.rows, r.columns)
		if err != nil {
			r.err = err
			r.finish()
			return nil, false
		}
		chunk.Rows = append(chunk.Rows, row)
	}
	if err := r.rows.Err(); err != nil {
		r.err = errors.WrapError(errors.ErrCodeQuery, "error iterating rows", err)
		r.finish()
		return nil, false
	}
	if len(chunk.Rows) == 0 {
		r.finish()
		return nil, false
	}
	if len(chunk.Rows) < r.size {
		// Short chunk means the result set is exhausted.
		r.finish()
	}
	return chunk, true
}

// Err returns the first error encountered while reading chunks.
func (r *ChunkReader) Err() error {
	return r.err
}

// Close releases the underlying result set. Safe to call more than once.
func (r *ChunkReader) Close() error {
	r.done = true
	return r.rows.Close()
}

func (r *ChunkReader) finish() {
	r.done = true
	r.rows.Close()
}
