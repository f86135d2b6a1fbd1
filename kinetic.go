package kinetic

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a paint publishes its style for drawing.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default paint color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied 8-bit color, optionally scaled by an
// extra opacity factor in [0, 1].
func (c Color) toRGBA(opacity float64) color.RGBA {
	a := clamp01(c.A * opacity)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// PaintStyle selects how a Paint rasterizes its drawables.
type PaintStyle uint8

const (
	PaintStyleFill   PaintStyle = iota // filled shapes
	PaintStyleStroke                   // outlined shapes using the paint's stroke width
)

// DefaultDuration is the transition duration, in seconds, used when
// TransitionBuilder.WithAnimation is given a non-positive duration.
var DefaultDuration = 0.8

// DefaultEasing is the easing curve used when TransitionBuilder.WithAnimation
// is given a nil easing function.
var DefaultEasing ease.TweenFunc = ease.OutCubic

// animationsDisabled mirrors the most recently set global animation switch so
// that motion values (which lack a canvas pointer) can check it cheaply.
// Toggle it while no frame is in flight; the switch is consulted both on
// retarget and on every frame.
var animationsDisabled bool

// SetAnimationsDisabled globally disables (or re-enables) animations. While
// disabled, every motion value jumps to its target immediately: new targets
// apply without interpolation and DrawFrame force-completes any transition
// still in flight. Intended for headless rendering, tests, and reduced-motion
// accessibility settings.
func SetAnimationsDisabled(disabled bool) {
	animationsDisabled = disabled
}

// AnimationsDisabled reports whether animations are globally disabled.
func AnimationsDisabled() bool {
	return animationsDisabled
}
