package kinetic

import (
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Property names registered by the built-in geometries and paints.
const (
	PropX           = "x"
	PropY           = "y"
	PropRadius      = "radius"
	PropWidth       = "width"
	PropHeight      = "height"
	PropX1          = "x1"
	PropY1          = "y1"
	PropX2          = "x2"
	PropY2          = "y2"
	PropPoint       = "point"
	PropOpacity     = "opacity"
	PropColor       = "color"
	PropStrokeWidth = "strokeWidth"
)

// minVisibleOpacity is the opacity below which a geometry skips its draw call
// entirely.
const minVisibleOpacity = 1.0 / 255

// CircleGeometry is a circle centered at (X, Y). Typical use is scatter and
// line-series point markers, animating Radius from 0 on entry and back to 0
// on exit.
type CircleGeometry struct {
	Animatable
	X, Y, Radius *FloatMotion
	Opacity      *FloatMotion
}

// NewCircleGeometry creates a circle settled at the given center and radius.
func NewCircleGeometry(x, y, radius float64) *CircleGeometry {
	g := &CircleGeometry{
		X:       NewFloatMotion(PropX, x),
		Y:       NewFloatMotion(PropY, y),
		Radius:  NewFloatMotion(PropRadius, radius),
		Opacity: NewFloatMotion(PropOpacity, 1),
	}
	g.RegisterProperty(g.X)
	g.RegisterProperty(g.Y)
	g.RegisterProperty(g.Radius)
	g.RegisterProperty(g.Opacity)
	return g
}

// Animator implements Drawable.
func (g *CircleGeometry) Animator() *Animatable { return &g.Animatable }

// Draw implements Drawable.
func (g *CircleGeometry) Draw(ctx *DrawContext) {
	t := g.CurrentTime()
	opacity := g.Opacity.Evaluate(t)
	if opacity < minVisibleOpacity {
		return
	}
	cx := float32(g.X.Evaluate(t))
	cy := float32(g.Y.Evaluate(t))
	r := float32(g.Radius.Evaluate(t))
	if r <= 0 {
		return
	}
	clr := ctx.Tint(opacity)
	if ctx.Style() == PaintStyleStroke {
		vector.StrokeCircle(ctx.Target, cx, cy, r, ctx.StrokeWidth(), clr, true)
		return
	}
	vector.DrawFilledCircle(ctx.Target, cx, cy, r, clr, true)
}

// RectGeometry is an axis-aligned rectangle with its top-left corner at
// (X, Y). Typical use is bar and heat-map cells, animating Height from 0.
type RectGeometry struct {
	Animatable
	X, Y, Width, Height *FloatMotion
	Opacity             *FloatMotion
}

// NewRectGeometry creates a rectangle settled at the given position and size.
func NewRectGeometry(x, y, width, height float64) *RectGeometry {
	g := &RectGeometry{
		X:       NewFloatMotion(PropX, x),
		Y:       NewFloatMotion(PropY, y),
		Width:   NewFloatMotion(PropWidth, width),
		Height:  NewFloatMotion(PropHeight, height),
		Opacity: NewFloatMotion(PropOpacity, 1),
	}
	g.RegisterProperty(g.X)
	g.RegisterProperty(g.Y)
	g.RegisterProperty(g.Width)
	g.RegisterProperty(g.Height)
	g.RegisterProperty(g.Opacity)
	return g
}

// Animator implements Drawable.
func (g *RectGeometry) Animator() *Animatable { return &g.Animatable }

// Draw implements Drawable.
func (g *RectGeometry) Draw(ctx *DrawContext) {
	t := g.CurrentTime()
	opacity := g.Opacity.Evaluate(t)
	if opacity < minVisibleOpacity {
		return
	}
	x := float32(g.X.Evaluate(t))
	y := float32(g.Y.Evaluate(t))
	w := float32(g.Width.Evaluate(t))
	h := float32(g.Height.Evaluate(t))
	if w <= 0 || h <= 0 {
		return
	}
	clr := ctx.Tint(opacity)
	if ctx.Style() == PaintStyleStroke {
		vector.StrokeRect(ctx.Target, x, y, w, h, ctx.StrokeWidth(), clr, true)
		return
	}
	vector.DrawFilledRect(ctx.Target, x, y, w, h, clr, true)
}

// LineGeometry is a straight segment from (X1, Y1) to (X2, Y2). It is always
// stroked, regardless of the paint style.
type LineGeometry struct {
	Animatable
	X1, Y1, X2, Y2 *FloatMotion
	Opacity        *FloatMotion
}

// NewLineGeometry creates a line settled at the given endpoints.
func NewLineGeometry(x1, y1, x2, y2 float64) *LineGeometry {
	g := &LineGeometry{
		X1:      NewFloatMotion(PropX1, x1),
		Y1:      NewFloatMotion(PropY1, y1),
		X2:      NewFloatMotion(PropX2, x2),
		Y2:      NewFloatMotion(PropY2, y2),
		Opacity: NewFloatMotion(PropOpacity, 1),
	}
	g.RegisterProperty(g.X1)
	g.RegisterProperty(g.Y1)
	g.RegisterProperty(g.X2)
	g.RegisterProperty(g.Y2)
	g.RegisterProperty(g.Opacity)
	return g
}

// Animator implements Drawable.
func (g *LineGeometry) Animator() *Animatable { return &g.Animatable }

// Draw implements Drawable.
func (g *LineGeometry) Draw(ctx *DrawContext) {
	t := g.CurrentTime()
	opacity := g.Opacity.Evaluate(t)
	if opacity < minVisibleOpacity {
		return
	}
	width := ctx.StrokeWidth()
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(ctx.Target,
		float32(g.X1.Evaluate(t)), float32(g.Y1.Evaluate(t)),
		float32(g.X2.Evaluate(t)), float32(g.Y2.Evaluate(t)),
		width, ctx.Tint(opacity), true)
}

// LineSegment is one animatable vertex of a PathGeometry. Segments animate
// independently, so individual points of a series can slide to new positions
// while the rest of the path stays put.
type LineSegment struct {
	Animatable
	Point *PointMotion
}

// NewLineSegment creates a segment settled at the given point.
func NewLineSegment(p Vec2) *LineSegment {
	s := &LineSegment{Point: NewPointMotion(PropPoint, p)}
	s.RegisterProperty(s.Point)
	return s
}

// PathGeometry is a polyline through an ordered list of animatable segments.
// Typical use is the stroke (or area fill outline) of a line series. Nil
// segments are tolerated and skipped; they represent gaps in the data.
type PathGeometry struct {
	Animatable
	Opacity *FloatMotion

	segments []*LineSegment
}

// NewPathGeometry creates an empty path.
func NewPathGeometry() *PathGeometry {
	g := &PathGeometry{Opacity: NewFloatMotion(PropOpacity, 1)}
	g.RegisterProperty(g.Opacity)
	return g
}

// AddSegment appends a segment to the path.
func (g *PathGeometry) AddSegment(s *LineSegment) {
	g.segments = append(g.segments, s)
}

// InsertSegment inserts a segment at index i, shifting later segments right.
// Out-of-range indices append.
func (g *PathGeometry) InsertSegment(i int, s *LineSegment) {
	if i < 0 || i >= len(g.segments) {
		g.segments = append(g.segments, s)
		return
	}
	g.segments = append(g.segments[:i], append([]*LineSegment{s}, g.segments[i:]...)...)
}

// RemoveSegment removes the first occurrence of s from the path.
func (g *PathGeometry) RemoveSegment(s *LineSegment) {
	for i, seg := range g.segments {
		if seg == s {
			g.segments = append(g.segments[:i], g.segments[i+1:]...)
			return
		}
	}
}

// Segments returns the path's segment list. The returned slice MUST NOT be
// mutated.
func (g *PathGeometry) Segments() []*LineSegment {
	return g.segments
}

// Animator implements Drawable.
func (g *PathGeometry) Animator() *Animatable { return &g.Animatable }

// SetCurrentTime advances the path's own motions and every segment.
func (g *PathGeometry) SetCurrentTime(t float64) {
	g.Animatable.SetCurrentTime(t)
	for _, s := range g.segments {
		if s != nil {
			s.SetCurrentTime(t)
		}
	}
}

// IsValid reports whether the path's own motions and every segment have
// settled.
func (g *PathGeometry) IsValid() bool {
	if !g.Animatable.IsValid() {
		return false
	}
	for _, s := range g.segments {
		if s != nil && !s.IsValid() {
			return false
		}
	}
	return true
}

// CompleteTransitions force-completes the path's own motions and cascades to
// every segment.
func (g *PathGeometry) CompleteTransitions(names ...string) {
	g.Animatable.CompleteTransitions(names...)
	for _, s := range g.segments {
		if s != nil {
			s.CompleteTransitions(names...)
		}
	}
}

// Draw implements Drawable, stroking between consecutive evaluated segment
// points. A nil segment breaks the polyline, leaving a gap.
func (g *PathGeometry) Draw(ctx *DrawContext) {
	t := g.CurrentTime()
	opacity := g.Opacity.Evaluate(t)
	if opacity < minVisibleOpacity {
		return
	}
	width := ctx.StrokeWidth()
	if width <= 0 {
		width = 1
	}
	clr := ctx.Tint(opacity)
	havePrev := false
	var prev Vec2
	for _, s := range g.segments {
		if s == nil {
			havePrev = false
			continue
		}
		p := s.Point.Evaluate(t)
		if havePrev {
			vector.StrokeLine(ctx.Target,
				float32(prev.X), float32(prev.Y),
				float32(p.X), float32(p.Y),
				width, clr, true)
		}
		prev = p
		havePrev = true
	}
}

// LabelGeometry draws a short text at (X, Y), for data labels and axis
// annotations. Text is rendered with the ebitenutil debug font; hosts that
// need styled typography should wrap their own text node in a Drawable.
type LabelGeometry struct {
	Animatable
	X, Y    *FloatMotion
	Opacity *FloatMotion

	// Text is the string to draw. Mutable at any time; not animated.
	Text string
}

// NewLabelGeometry creates a label settled at the given position.
func NewLabelGeometry(text string, x, y float64) *LabelGeometry {
	g := &LabelGeometry{
		X:       NewFloatMotion(PropX, x),
		Y:       NewFloatMotion(PropY, y),
		Opacity: NewFloatMotion(PropOpacity, 1),
		Text:    text,
	}
	g.RegisterProperty(g.X)
	g.RegisterProperty(g.Y)
	g.RegisterProperty(g.Opacity)
	return g
}

// Animator implements Drawable.
func (g *LabelGeometry) Animator() *Animatable { return &g.Animatable }

// Draw implements Drawable. The debug font has no alpha channel, so opacity
// only gates visibility rather than fading; the label stays visible until
// the same cutoff the other geometries use.
func (g *LabelGeometry) Draw(ctx *DrawContext) {
	if g.Text == "" {
		return
	}
	t := g.CurrentTime()
	if g.Opacity.Evaluate(t) < minVisibleOpacity {
		return
	}
	x := int(g.X.Evaluate(t))
	y := int(g.Y.Evaluate(t))
	ebitenutil.DebugPrintAt(ctx.Target, g.Text, x, y)
}
