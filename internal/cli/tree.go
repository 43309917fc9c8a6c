package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/iamOgunyinka/DSA/bst"
	"github.com/iamOgunyinka/DSA/internal/config"
)

// parseValues converts command arguments into integers.
func parseValues(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not an integer", a)
		}
		vals = append(vals, v)
	}

	return vals, nil
}

// buildTree parses args and inserts them, in order, into a tree configured
// from ctx.
func buildTree(ctx context.Context, args []string) (*bst.Tree[int], error) {
	vals, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	cfg := getConfig(ctx)

	return bst.FromValues(cfg.Less(), vals, bst.WithLogger[int](getLogger(ctx))), nil
}

// joinInts renders values space separated.
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// newTable returns a go-pretty writer mirrored to w.
func newTable(w io.Writer, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))

	return t
}

// writeValues prints a traversal either as one line or as a table of
// position and value.
func writeValues(w io.Writer, cfg *config.Config, order bst.Order, vals []int) {
	if cfg.Output != config.OutputTable {
		_, _ = fmt.Fprintln(w, joinInts(vals))
		return
	}
	t := newTable(w, "#", order.String())
	for i, v := range vals {
		t.AppendRow(table.Row{i + 1, v})
	}
	t.Render()
}
