// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: Circular placement of new nodes on the drawing canvas.

package core

import "math"

// Default canvas geometry.
const (
	defaultCanvasWidth   = 1200
	defaultCanvasHeight  = 700
	defaultRadiusDivisor = 2.5
	defaultYOffset       = -150
	minLayoutSlots       = 8 // angular slots are never fewer than this
	extraLayoutSlots     = 6
)

// CircleLayout places the i-th node on a circle centred on the canvas.
//
// The angle of node i is i·2π / max(8, i+6), so early nodes spread over a
// fixed set of slots and later ones compress the spacing.
type CircleLayout struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	RadiusDivisor float64 `json:"radius_divisor"` // radius = min(Width, Height) / RadiusDivisor
	YOffset       float64 `json:"y_offset"`       // vertical shift of the centre
}

// DefaultLayout returns the 1200×700 canvas layout.
func DefaultLayout() CircleLayout {
	return CircleLayout{
		Width:         defaultCanvasWidth,
		Height:        defaultCanvasHeight,
		RadiusDivisor: defaultRadiusDivisor,
		YOffset:       defaultYOffset,
	}
}

// Place returns the coordinates of the node with zero-based ordinal i.
// Complexity: O(1).
func (l CircleLayout) Place(i int) Position {
	if l.RadiusDivisor <= 0 {
		l.RadiusDivisor = defaultRadiusDivisor
	}
	radius := math.Min(l.Width, l.Height) / l.RadiusDivisor
	slots := math.Max(minLayoutSlots, float64(i+extraLayoutSlots))
	angle := float64(i) * 2 * math.Pi / slots

	return Position{
		X: l.Width/2 + radius*math.Cos(angle),
		Y: l.Height/2 + l.YOffset + radius*math.Sin(angle),
	}
}
