package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abbykyun/daa-visual/bellmanford"
	"github.com/abbykyun/daa-visual/builder"
	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/dijkstra"
	"github.com/abbykyun/daa-visual/trace"
)

// runFlags are the inputs of the run command.
type runFlags struct {
	algo     string
	source   string
	nodes    []string
	edges    []string
	random   int
	seed     int64
	directed bool
	format   string
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a traced shortest-path algorithm and print its steps",
		Example: `  daa-visual run --algo dijkstra --source A --directed \
      --nodes A,B,C --edge A:B:2 --edge B:C:3 --edge A:C:10
  daa-visual run --algo bellman-ford --source A --random 6 --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.algo, "algo", string(trace.Dijkstra), "dijkstra|bellman-ford")
	cmd.Flags().StringVar(&f.source, "source", "", "Source node label")
	cmd.Flags().StringSliceVar(&f.nodes, "nodes", nil, "Comma-separated node labels")
	cmd.Flags().StringArrayVar(&f.edges, "edge", nil, "Edge FROM:TO:WEIGHT by label (repeatable)")
	cmd.Flags().IntVar(&f.random, "random", 0, "Generate a random graph with N nodes instead")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed for --random")
	cmd.Flags().BoolVar(&f.directed, "directed", false, "Add edges one way only")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format: table|json")
	_ = cmd.MarkFlagRequired("source")
	cmd.MarkFlagsMutuallyExclusive("random", "nodes")
	cmd.MarkFlagsMutuallyExclusive("random", "edge")

	return cmd
}

func runTrace(w io.Writer, f runFlags) error {
	alg, err := trace.ParseAlgorithm(f.algo)
	if err != nil {
		return err
	}
	g, err := buildGraph(f)
	if err != nil {
		return err
	}
	snap := g.Snapshot()
	source, ok := nodeByLabel(snap, f.source)
	if !ok {
		return fmt.Errorf("source %q is not a node label", f.source)
	}

	var run *trace.Run
	switch alg {
	case trace.BellmanFord:
		run, err = bellmanford.Run(snap, source, bellmanford.WithStrictSource())
	default:
		run, err = dijkstra.Run(snap, source, dijkstra.WithStrictSource())
	}
	if err != nil {
		return err
	}

	switch f.format {
	case "json":
		return formatJSON(w, run)
	case "table":
		printRun(w, run)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table|json)", f.format)
	}
}

// buildGraph assembles the graph from --random or from --nodes/--edge.
func buildGraph(f runFlags) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(f.directed)}
	if f.random > 0 {
		return builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(f.seed)}, builder.Random(f.random))
	}

	g := core.NewGraph(gopts...)
	ids := make(map[string]core.NodeID, len(f.nodes))
	for _, label := range f.nodes {
		label = strings.TrimSpace(label)
		if _, dup := ids[label]; dup {
			return nil, fmt.Errorf("duplicate node label %q", label)
		}
		id, ok := g.AddNode(label)
		if !ok {
			return nil, fmt.Errorf("blank node label in --nodes")
		}
		ids[label] = id
	}
	for _, raw := range f.edges {
		from, to, weight, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		if len(g.AddEdge(ids[from], ids[to], weight)) == 0 {
			return nil, fmt.Errorf("edge %q: unknown endpoint, self-loop or invalid weight", raw)
		}
	}

	return g, nil
}

// parseEdge splits FROM:TO:WEIGHT.
func parseEdge(raw string) (from, to string, weight float64, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("edge %q: want FROM:TO:WEIGHT", raw)
	}
	weight, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("edge %q: weight: %w", raw, err)
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), weight, nil
}

// nodeByLabel returns the first node carrying label.
func nodeByLabel(s core.Snapshot, label string) (core.NodeID, bool) {
	for _, n := range s.Nodes {
		if n.Label == label {
			return n.ID, true
		}
	}

	return "", false
}
