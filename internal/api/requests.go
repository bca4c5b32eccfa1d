package api

// Request bodies. Binding tags are checked by gin's validator before any
// handler logic runs.

type addNodeRequest struct {
	Label string `json:"label" binding:"required,max=64"`
}

type addEdgeRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Weight *float64 `json:"weight" binding:"required"`
}

type directedRequest struct {
	Directed *bool `json:"directed" binding:"required"`
}

type randomRequest struct {
	Nodes int    `json:"nodes" binding:"omitempty,min=1,max=702"`
	Seed  *int64 `json:"seed"`
}

type presetRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Nodes int    `json:"nodes" binding:"required,min=1,max=702"`
	Seed  *int64 `json:"seed"`
}

type runRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Source    string `json:"source" binding:"required"`
}
