package trace

import (
	"encoding/json"
	"math"

	"github.com/abbykyun/daa-visual/core"
)

// Result holds the final distance and predecessor maps of a run.
//
// Distance has an entry for every node of the snapshot (+Inf when
// unreachable). Predecessor has entries only for nodes that were reached
// through a relaxation. Lookups through Dist/Pred are total: a missing key
// reads as +Inf / none.
type Result struct {
	Distance    map[core.NodeID]float64
	Predecessor map[core.NodeID]core.NodeID
}

// NewResult initialises every node of s to +Inf with no predecessor.
// Complexity: O(V).
func NewResult(s core.Snapshot) *Result {
	r := &Result{
		Distance:    make(map[core.NodeID]float64, s.NodeCount()),
		Predecessor: make(map[core.NodeID]core.NodeID),
	}
	for _, n := range s.Nodes {
		r.Distance[n.ID] = math.Inf(1)
	}

	return r
}

// Dist returns the distance to id, +Inf when unknown.
func (r *Result) Dist(id core.NodeID) float64 {
	if r == nil {
		return math.Inf(1)
	}
	d, ok := r.Distance[id]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Pred returns the predecessor of id on its shortest path.
func (r *Result) Pred(id core.NodeID) (core.NodeID, bool) {
	if r == nil {
		return "", false
	}
	p, ok := r.Predecessor[id]

	return p, ok
}

// Reachable reports whether id has a finite distance.
func (r *Result) Reachable(id core.NodeID) bool {
	return !math.IsInf(r.Dist(id), 1)
}

// relax applies d[v] = d, pred[v] = u. Shared by both engines.
func (r *Result) relax(u, v core.NodeID, d float64) {
	r.Distance[v] = d
	r.Predecessor[v] = u
}

// TryRelax applies the relaxation rule for edge e:
// if d[From] + Weight < d[To], update d[To] and pred[To] and report true.
// An infinite d[From] never relaxes.
func (r *Result) TryRelax(e core.Edge) bool {
	du := r.Dist(e.From)
	if math.IsInf(du, 1) {
		return false
	}
	nd := du + e.Weight
	if !(nd < r.Dist(e.To)) { // also false for NaN
		return false
	}
	r.relax(e.From, e.To, nd)

	return true
}

// PathTo returns the node sequence source … id following predecessors.
// It fails (false) when id is unreachable, or when the walk exceeds |V|
// nodes, which only happens along a predecessor cycle.
func (r *Result) PathTo(s core.Snapshot, source, id core.NodeID) ([]core.NodeID, bool) {
	if !r.Reachable(id) {
		return nil, false
	}
	limit := s.NodeCount()
	rev := []core.NodeID{id}
	for cur := id; cur != source; {
		p, ok := r.Pred(cur)
		if !ok || len(rev) >= limit {
			return nil, false
		}
		rev = append(rev, p)
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}

// MarshalJSON writes infinite distances as null (JSON has no Infinity).
func (r *Result) MarshalJSON() ([]byte, error) {
	dist := make(map[core.NodeID]*float64, len(r.Distance))
	for id, d := range r.Distance {
		if math.IsInf(d, 0) || math.IsNaN(d) {
			dist[id] = nil
			continue
		}
		v := d
		dist[id] = &v
	}

	return json.Marshal(struct {
		Distance    map[core.NodeID]*float64    `json:"distance"`
		Predecessor map[core.NodeID]core.NodeID `json:"predecessor"`
	}{dist, r.Predecessor})
}

// UnmarshalJSON restores null distances as +Inf.
func (r *Result) UnmarshalJSON(b []byte) error {
	var w struct {
		Distance    map[core.NodeID]*float64    `json:"distance"`
		Predecessor map[core.NodeID]core.NodeID `json:"predecessor"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.Distance = make(map[core.NodeID]float64, len(w.Distance))
	for id, d := range w.Distance {
		if d == nil {
			r.Distance[id] = math.Inf(1)
			continue
		}
		r.Distance[id] = *d
	}
	r.Predecessor = w.Predecessor
	if r.Predecessor == nil {
		r.Predecessor = make(map[core.NodeID]core.NodeID)
	}

	return nil
}
