package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iamOgunyinka/DSA/bst"
	"github.com/iamOgunyinka/DSA/internal/config"
)

func newTraverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "traverse [values...]",
		Short: "Print the tree in the configured order",
		Long: `Insert the values left to right and print them in the order selected
with --order (pre, in, post or breadth). Pre-order is the default.`,
		Example: "  bstree traverse --order breadth 50 30 70 20 40",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}
			cfg := getConfig(cmd.Context())
			order := cfg.TraversalOrder()
			writeValues(cmd.OutOrStdout(), cfg, order, tr.Values(order))

			return nil
		},
	}
}

func newFindCommand() *cobra.Command {
	var targets []int

	cmd := &cobra.Command{
		Use:     "find --value N [values...]",
		Short:   "Look up values and their parents",
		Example: "  bstree find --value 40 --value 99 50 30 70 20 40",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}
			cfg := getConfig(cmd.Context())
			w := cmd.OutOrStdout()

			var t table.Writer
			if cfg.Output == config.OutputTable {
				t = newTable(w, "value", "found", "parent")
			}
			for _, v := range targets {
				res := tr.FindParent(v)
				parent := res.Kind.String()
				if res.Kind == bst.ParentFound {
					parent = fmt.Sprint(res.Parent.Value())
				}
				found := res.Kind != bst.ParentNotFound
				if t != nil {
					t.AppendRow(table.Row{v, found, parent})
					continue
				}
				_, _ = fmt.Fprintf(w, "%d: found=%t parent=%s\n", v, found, parent)
			}
			if t != nil {
				t.Render()
			}

			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&targets, "value", "x", nil, "value to look up (repeatable)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newRemoveCommand() *cobra.Command {
	var targets []int

	cmd := &cobra.Command{
		Use:   "remove --value N [values...]",
		Short: "Remove values and print the result",
		Long: `Insert the values left to right, remove every --value in turn, then
print whether each removal happened, the in-order sequence and the size.`,
		Example: "  bstree remove --value 50 50 30 70 20 40",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, v := range targets {
				_, _ = fmt.Fprintf(w, "remove %d: %t\n", v, tr.Remove(v))
			}
			if err := tr.Check(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "in-order: %s\n", joinInts(tr.Values(bst.InOrder)))
			_, _ = fmt.Fprintf(w, "size: %d\n", tr.Size())

			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&targets, "value", "x", nil, "value to remove (repeatable)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newDOTCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dot [values...]",
		Short:   "Export the tree shape as a Graphviz digraph",
		Example: "  bstree dot 50 30 70 20 40 | dot -Tpng -o tree.png",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}
			if getConfig(cmd.Context()).Output == config.OutputTable {
				el := bst.NewEdgeList[int]()
				if err := tr.ExportGraph(el); err != nil {
					return err
				}
				t := newTable(cmd.OutOrStdout(), "from", "to")
				for _, e := range el.Edges {
					t.AppendRow(table.Row{
						fmt.Sprintf("%s (%d)", e.From, el.Values[e.From]),
						fmt.Sprintf("%s (%d)", e.To, el.Values[e.To]),
					})
				}
				t.Render()
				return nil
			}

			return tr.WriteDOT(cmd.OutOrStdout())
		},
	}
}

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [values...]",
		Short: "Draw the tree sideways in ASCII",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}

			return tr.Render(cmd.OutOrStdout())
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [values...]",
		Short: "Show size, height, minimum and maximum",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd.Context(), args)
			if err != nil {
				return err
			}

			rows := [][2]string{
				{"size", fmt.Sprint(tr.Size())},
				{"height", fmt.Sprint(tr.Height())},
				{"min", "-"},
				{"max", "-"},
			}
			if v, ok := tr.Min(); ok {
				rows[2][1] = fmt.Sprint(v)
			}
			if v, ok := tr.Max(); ok {
				rows[3][1] = fmt.Sprint(v)
			}

			w := cmd.OutOrStdout()
			if getConfig(cmd.Context()).Output != config.OutputTable {
				for _, r := range rows {
					_, _ = fmt.Fprintf(w, "%s: %s\n", r[0], r[1])
				}
				return nil
			}
			t := newTable(w, "stat", "value")
			for _, r := range rows {
				t.AppendRow(table.Row{r[0], r[1]})
			}
			t.Render()

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bstree v%s\n", Version)
		},
	}
}
