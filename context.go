package kinetic

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is the capability set the frame scheduler needs from anything a
// paint task can draw: advance to a point in time, draw with the active
// style, and report whether all of its motions have settled. Concrete
// geometries embed Animatable, which supplies everything but Draw.
type Drawable interface {
	// Animator exposes the drawable's property registry for registration,
	// retargeting, and transition configuration.
	Animator() *Animatable

	// SetCurrentTime advances every motion to t (seconds).
	SetCurrentTime(t float64)

	// IsValid reports whether the drawable has settled as of the last
	// SetCurrentTime.
	IsValid() bool

	// CompleteTransitions force-completes the named motions (all, when
	// empty).
	CompleteTransitions(names ...string)

	// Draw renders the drawable using the evaluated style in ctx.
	Draw(ctx *DrawContext)
}

// DrawContext carries per-frame draw state: the render target, the canvas
// identity, the frame time, and the style published by the paint task
// currently drawing. One context is reused across a frame; the active paint
// rewrites the style fields before its drawables draw.
type DrawContext struct {
	// Target is the image drawables render into. The owning paint may have
	// narrowed it to a clip region.
	Target *ebiten.Image

	// Canvas identifies the canvas being drawn, for paints shared across
	// several canvases.
	Canvas *MotionCanvas

	// FrameTime is the frame's evaluation time in seconds since the canvas
	// clock started.
	FrameTime float64

	style       PaintStyle
	paintColor  Color
	strokeWidth float32
}

// Style returns the active paint's style.
func (ctx *DrawContext) Style() PaintStyle {
	return ctx.style
}

// StrokeWidth returns the active paint's evaluated stroke width.
func (ctx *DrawContext) StrokeWidth() float32 {
	return ctx.strokeWidth
}

// Tint returns the active paint's evaluated color as a premultiplied RGBA,
// scaled by the given opacity in [0, 1].
func (ctx *DrawContext) Tint(opacity float64) color.RGBA {
	return ctx.paintColor.toRGBA(opacity)
}
