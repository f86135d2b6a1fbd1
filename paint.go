package kinetic

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Paint is a drawing task: one stroke or fill style plus the drawables it
// paints. A chart series typically owns several paints layered by ZIndex
// (area fill below stroke below point markers below labels). The style's
// color and stroke width are themselves motion properties, so a paint can
// fade or thicken over time and participates in the canvas validity gate
// like any drawable.
//
// A paint may be shared across canvases (e.g. a legend clone of a series
// paint); drawables are therefore tracked per canvas, and every structural
// method takes the canvas identity.
type Paint struct {
	Animatable

	// Style selects fill or stroke rasterization.
	Style PaintStyle

	// ZIndex orders paints within a frame, ascending. Fractional values
	// support fine-grained layering inside one series. Mutable at any time;
	// the canvas re-sorts every frame.
	ZIndex float64

	// ClipRect, when non-zero, restricts drawing to the given region of the
	// target.
	ClipRect Rect

	// Color and StrokeWidth are the paint's animatable style properties.
	Color       *ColorMotion
	StrokeWidth *FloatMotion

	drawables map[*MotionCanvas]*drawableList
}

// drawableList is an insertion-ordered set of drawables.
type drawableList struct {
	items []Drawable
	set   map[Drawable]struct{}
}

// NewPaint creates a paint with the given style, white color, and stroke
// width 1.
func NewPaint(style PaintStyle) *Paint {
	p := &Paint{
		Style:       style,
		Color:       NewColorMotion(PropColor, ColorWhite),
		StrokeWidth: NewFloatMotion(PropStrokeWidth, 1),
		drawables:   make(map[*MotionCanvas]*drawableList),
	}
	p.RegisterProperty(p.Color)
	p.RegisterProperty(p.StrokeWidth)
	return p
}

// AddDrawable registers d under the given canvas. Adding a drawable twice is
// a no-op; the first insertion position is kept.
func (p *Paint) AddDrawable(c *MotionCanvas, d Drawable) {
	if d == nil {
		return // a gap in the data, not an error
	}
	list := p.drawables[c]
	if list == nil {
		list = &drawableList{set: make(map[Drawable]struct{})}
		p.drawables[c] = list
	}
	if _, exists := list.set[d]; exists {
		return
	}
	list.set[d] = struct{}{}
	list.items = append(list.items, d)
	d.Animator().task = p
}

// RemoveDrawable detaches d from the given canvas. Removing an absent
// drawable is a no-op.
func (p *Paint) RemoveDrawable(c *MotionCanvas, d Drawable) {
	list := p.drawables[c]
	if list == nil {
		return
	}
	if _, exists := list.set[d]; !exists {
		return
	}
	delete(list.set, d)
	for i, item := range list.items {
		if item == d {
			list.items = append(list.items[:i], list.items[i+1:]...)
			break
		}
	}
	if d.Animator().task == p {
		d.Animator().task = nil
	}
}

// Drawables returns the drawables registered under the given canvas, in
// insertion order. Drawables added under a different canvas do not appear.
// The returned slice MUST NOT be mutated.
func (p *Paint) Drawables(c *MotionCanvas) []Drawable {
	list := p.drawables[c]
	if list == nil {
		return nil
	}
	return list.items
}

// ContainsDrawable reports whether d is registered under the given canvas.
func (p *Paint) ContainsDrawable(c *MotionCanvas, d Drawable) bool {
	list := p.drawables[c]
	if list == nil {
		return false
	}
	_, exists := list.set[d]
	return exists
}

// CompleteTransitions force-completes the named motions on the paint's own
// style and cascades to every drawable on every canvas. Invoked canvas-wide
// when animations are globally disabled so the first frame renders in final
// state.
func (p *Paint) CompleteTransitions(names ...string) {
	p.Animatable.CompleteTransitions(names...)
	for _, list := range p.drawables {
		for _, d := range list.items {
			if d != nil {
				d.CompleteTransitions(names...)
			}
		}
	}
}

// drawableCount returns the number of drawables registered under c.
func (p *Paint) drawableCount(c *MotionCanvas) int {
	list := p.drawables[c]
	if list == nil {
		return 0
	}
	return len(list.items)
}

// releaseCanvas drops the per-canvas drawable list when a canvas is disposed
// or cleared.
func (p *Paint) releaseCanvas(c *MotionCanvas) {
	delete(p.drawables, c)
}

// prepare evaluates the paint's style at its stamped time and publishes it
// into the context, narrowing the target to ClipRect when one is set.
func (p *Paint) prepare(ctx *DrawContext) {
	t := p.CurrentTime()
	ctx.style = p.Style
	ctx.paintColor = p.Color.Evaluate(t)
	ctx.strokeWidth = float32(p.StrokeWidth.Evaluate(t))
	if p.ClipRect != (Rect{}) && ctx.Target != nil {
		clip := image.Rect(
			int(p.ClipRect.X), int(p.ClipRect.Y),
			int(p.ClipRect.X+p.ClipRect.Width), int(p.ClipRect.Y+p.ClipRect.Height),
		)
		ctx.Target = ctx.Target.SubImage(clip).(*ebiten.Image)
	}
}
