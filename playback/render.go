package playback

import "github.com/abbykyun/daa-visual/trace"

// Render returns the view after applying step i of run; i = -1 is the ready
// state. i is not range-checked beyond that; callers clamp.
func Render(run *trace.Run, i int) View {
	v := View{Index: i, Total: len(run.Trace)}
	if i < 0 || i >= len(run.Trace) {
		v.Index = -1
		v.Status = StatusReady(run.Algorithm)
		return v
	}

	s := run.Trace[i]
	v.Kind = s.Kind.String()
	switch s.Kind {
	case trace.KindVisit:
		v.VisitedNode = s.Node
		v.Status = StatusVisiting
	case trace.KindRelax:
		v.HighlightEdge = s.Edge
		v.Status = StatusRelaxing
	case trace.KindDone:
		v.PathEdges = s.Paths
		v.Status = StatusFinished
		v.Finished = true
		v.Table = trace.Table(run.Snapshot, run.Result)
	}

	return v
}
