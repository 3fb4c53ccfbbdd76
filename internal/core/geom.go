// Package core provides fundamental types and utilities shared by the trail
// game, its physics world and the platform layers. It contains no external
// dependencies (no Bubble Tea, no Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
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

// FloorInt converts a float64 to the largest int not greater than it.
// Plain int() conversion truncates toward zero, which is wrong for
// negative world coordinates left of the camera.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}

// CeilInt converts a float64 to the smallest int not less than it.
func CeilInt(v float64) int {
	return int(math.Ceil(v))
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
