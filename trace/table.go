package trace

import (
	"math"
	"strconv"

	"github.com/abbykyun/daa-visual/core"
)

// Table cell placeholders.
const (
	InfinitySymbol = "∞"
	NoPredecessor  = "-"
)

// Row is one line of the distance/predecessor table.
type Row struct {
	Node        core.NodeID `json:"node"`
	Label       string      `json:"label"`
	Distance    string      `json:"distance"`
	Predecessor string      `json:"predecessor"`
}

// Table renders r as display rows in snapshot node order. Distances use the
// shortest decimal form ("5", "2.5"); unreachable nodes show ∞. Predecessors
// are shown by label, or "-" when absent.
func Table(s core.Snapshot, r *Result) []Row {
	rows := make([]Row, 0, s.NodeCount())
	for _, n := range s.Nodes {
		row := Row{
			Node:        n.ID,
			Label:       n.Label,
			Distance:    FormatDistance(r.Dist(n.ID)),
			Predecessor: NoPredecessor,
		}
		if p, ok := r.Pred(n.ID); ok {
			row.Predecessor = s.Label(p)
		}
		rows = append(rows, row)
	}

	return rows
}

// FormatDistance renders a distance for display.
func FormatDistance(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return InfinitySymbol
	case math.IsInf(d, -1):
		return "-" + InfinitySymbol
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}
