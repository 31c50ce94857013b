package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldsa/internal/fixtures"
	"github.com/katalvlaran/lvldsa/internal/render"
)

// ErrUnknownGraph is returned for a graph name missing from the fixtures.
var ErrUnknownGraph = errors.New("unknown graph")

// renderFlags are the output switches shared by tree and graph.
type renderFlags struct {
	dot bool
	svg string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dot, "dot", false, "print Graphviz DOT instead of text")
	cmd.Flags().StringVar(&f.svg, "svg", "", "render SVG to this file")
}

// emit writes the DOT or SVG form of dot; it reports false when neither was requested.
func (f *renderFlags) emit(cmd *cobra.Command, dot string) (bool, error) {
	if f.svg != "" {
		ctx := cmd.Context()
		prog := newProgress(loggerFromContext(ctx))
		data, err := render.SVG(ctx, dot)
		if err != nil {
			return false, fmt.Errorf("render svg: %w", err)
		}
		if err := os.WriteFile(f.svg, data, 0o644); err != nil {
			return false, fmt.Errorf("write svg: %w", err)
		}
		prog.done("Rendered " + f.svg)
		printSuccess(cmd.OutOrStdout(), "wrote %s", f.svg)
	}
	if f.dot {
		_, err := io.WriteString(cmd.OutOrStdout(), dot)
		return true, err
	}

	return f.svg != "", nil
}

func newTreeCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "tree <tuple>",
		Short: "Parse a tuple-notation tree and display it",
		Long: `Tree parses a binary tree written as nested (left, key, right) tuples,
for example "((1,3,None),2,((None,3,4),5,(6,7,8)))", then prints its
statistics and renderings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseTree(args[0])
			if err != nil {
				return err
			}
			done, err := flags.emit(cmd, render.TreeDOT(root))
			if err != nil || done {
				return err
			}
			printTreeReport(cmd.OutOrStdout(), root)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newGraphCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "graph <name>",
		Short: "Display a fixture graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := fixtures.Load()
			if err != nil {
				return fmt.Errorf("load fixtures: %w", err)
			}
			c, ok := fx.Graph(args[0])
			if !ok {
				names := make([]string, 0, len(fx.Graphs))
				for _, g := range fx.Graphs {
					names = append(names, g.Name)
				}
				return fmt.Errorf("%w: %q (have %s)", ErrUnknownGraph, args[0], strings.Join(names, ", "))
			}
			g, err := c.Build()
			if err != nil {
				return fmt.Errorf("build graph: %w", err)
			}
			done, err := flags.emit(cmd, render.GraphDOT(g))
			if err != nil || done {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %s vertices, %s edges, directed %v, weighted %v\n",
				c.Name, num(g.VertexCount()), num(g.EdgeCount()), g.Directed(), g.Weighted())
			for _, v := range g.Vertices() {
				nb, _ := g.NeighborIDs(v)
				printDetail(w, "%s -> %v", v, nb)
			}

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
