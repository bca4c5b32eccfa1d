package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abbykyun/daa-visual/core"
	"github.com/abbykyun/daa-visual/trace"
)

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, wd := range widths {
		seps[i] = strings.Repeat("-", wd)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// printRun writes the step list, then the distance table.
func printRun(w io.Writer, run *trace.Run) {
	snap := run.Snapshot
	rows := make([][]string, 0, len(run.Trace))
	for i, s := range run.Trace {
		rows = append(rows, []string{strconv.Itoa(i), s.Kind.String(), describeStep(snap, s)})
	}
	formatTable(w, []string{"STEP", "KIND", "DETAIL"}, rows)
	fmt.Fprintln(w)

	table := trace.Table(snap, run.Result)
	rows = rows[:0]
	for _, r := range table {
		rows = append(rows, []string{r.Label, r.Distance, r.Predecessor})
	}
	formatTable(w, []string{"NODE", "DISTANCE", "PREDECESSOR"}, rows)
}

func describeStep(snap core.Snapshot, s trace.Step) string {
	switch s.Kind {
	case trace.KindVisit:
		return snap.Label(s.Node)
	case trace.KindRelax:
		return describeEdge(snap, s.Edge)
	case trace.KindDone:
		parts := make([]string, 0, len(s.Paths))
		for _, id := range s.Paths {
			parts = append(parts, describeEdge(snap, id))
		}
		return strings.Join(parts, ", ")
	}

	return ""
}

func describeEdge(snap core.Snapshot, id core.EdgeID) string {
	e, ok := snap.Edge(id)
	if !ok {
		return string(id)
	}

	return fmt.Sprintf("%s→%s (%s)", snap.Label(e.From), snap.Label(e.To), trace.FormatDistance(e.Weight))
}
