// Package core provides the platform-neutral types shared by the game and its hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed interval [Min, Max] on one world axis.
// Collision in world units is done per axis, both ends inclusive.
type Span struct {
	Min, Max float64
}

// NewSpan creates a span centered on c extending half to each side.
func NewSpan(c, half float64) Span {
	return Span{Min: c - half, Max: c + half}
}

// Overlaps returns true if the two spans share at least one point.
func (s Span) Overlaps(other Span) bool {
	return s.Max >= other.Min && s.Min <= other.Max
}

// Contains returns true if v lies within the span, ends included.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
