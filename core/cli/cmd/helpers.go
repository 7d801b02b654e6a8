package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/core/connect"
	"github.com/sqlbridge/sqlbridge/core/logger"
	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// queryOptions carries the query flags shared by every engine subcommand.
type queryOptions struct {
	query     string
	limit     int
	chunkSize int
}

func addQueryFlags(cmd *cobra.Command, o *queryOptions) {
	cmd.Flags().StringVar(&o.query, "query", "", "Read-only SQL query to execute after connecting")
	cmd.Flags().IntVar(&o.limit, "limit", 20, "Maximum rows to print with --query")
	cmd.Flags().IntVar(&o.chunkSize, "chunk-size", 0, "Fetch query results in chunks of this many rows")
}

// runConnect is the shared engine-subcommand flow: build the connector via
// the factory, connect inside a scope, run the query if one was given, and
// print the result table to stdout.
func runConnect(engine connect.Engine, params connect.Params, o queryOptions) error {
	if params.Password == "" {
		params.Password = os.Getenv("SQLBRIDGE_PASSWORD")
	}

	conn, err := connect.New(engine, params)
	if err != nil {
		return err
	}

	ctx := context.Background()
	log := logger.New("cli")
	return connect.With(ctx, conn, func(c connect.Connector) error {
		log.Infof("connected: %s", c.DSNSummary())

		if o.query == "" {
			if !c.Ping(ctx) {
				return errors.NewAppError(errors.ErrCodeConnection, "ping failed", nil)
			}
			fmt.Println("ping ok")
			return nil
		}

		if o.chunkSize > 0 {
			return printChunks(ctx, c, o)
		}

		table, err := c.Read(ctx, o.query)
		if err != nil {
			return err
		}
		return printTable(os.Stdout, table, o.limit)
	})
}

func printTable(w io.Writer, t *connect.Table, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for i, row := range t.Rows {
		if limit > 0 && i >= limit {
			break
		}
		cells := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = fmt.Sprint(row[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func printChunks(ctx context.Context, c connect.Connector, o queryOptions) error {
	reader, err := c.ReadChunks(ctx, o.query, o.chunkSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(reader.Columns(), "\t"))

	printed := 0
	for chunk, ok := reader.Next(); ok; chunk, ok = reader.Next() {
		for _, row := range chunk.Rows {
			if o.limit > 0 && printed >= o.limit {
				return tw.Flush()
			}
			cells := make([]string, len(chunk.Columns))
			for j, col := range chunk.Columns {
				cells[j] = fmt.Sprint(row[col])
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
			printed++
		}
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return tw.Flush()
}
