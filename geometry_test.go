package kinetic

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// fillContext returns a context targeting a fresh image with a plain fill
// style, bypassing the canvas for direct geometry tests.
func fillContext(style PaintStyle) *DrawContext {
	return &DrawContext{
		Target:      ebiten.NewImage(64, 64),
		style:       style,
		paintColor:  ColorWhite,
		strokeWidth: 2,
	}
}

func TestCircleGeometryDrawSmoke(t *testing.T) {
	g := NewCircleGeometry(32, 32, 10)
	g.SetCurrentTime(0)
	g.Draw(fillContext(PaintStyleFill))
	g.Draw(fillContext(PaintStyleStroke))
}

func TestRectGeometryDrawSmoke(t *testing.T) {
	g := NewRectGeometry(4, 4, 20, 12)
	g.SetCurrentTime(0)
	g.Draw(fillContext(PaintStyleFill))
	g.Draw(fillContext(PaintStyleStroke))
}

func TestLineGeometryDrawSmoke(t *testing.T) {
	g := NewLineGeometry(0, 0, 64, 64)
	g.SetCurrentTime(0)
	g.Draw(fillContext(PaintStyleStroke))
}

func TestLabelGeometryDrawSmoke(t *testing.T) {
	g := NewLabelGeometry("42", 10, 10)
	g.SetCurrentTime(0)
	g.Draw(fillContext(PaintStyleFill))

	g.Text = ""
	g.Draw(fillContext(PaintStyleFill)) // empty text is skipped
}

func TestGeometryZeroOpacitySkipsDraw(t *testing.T) {
	g := NewCircleGeometry(32, 32, 10)
	g.Opacity.SetTarget(0)
	g.SetCurrentTime(0)

	ctx := fillContext(PaintStyleFill)
	ctx.Target = nil // a draw attempt would panic
	g.Draw(ctx)
}

func TestLabelGeometryFadeCutoff(t *testing.T) {
	g := NewLabelGeometry("q3", 10, 10)
	ctx := fillContext(PaintStyleFill)
	ctx.Target = nil // a draw attempt would panic

	g.Opacity.SetTarget(minVisibleOpacity / 2)
	g.SetCurrentTime(0)
	g.Draw(ctx)

	// A mid-fade label still reaches its draw call, with the same cutoff as
	// every other geometry.
	g.Opacity.SetTarget(0.25)
	g.SetCurrentTime(0)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("mid-fade label should not be skipped")
			}
		}()
		g.Draw(ctx)
	}()
}

func TestCircleGeometryAnimatesRadius(t *testing.T) {
	g := NewCircleGeometry(10, 10, 0)
	g.Transition(PropRadius).WithAnimation(1.0, ease.Linear)
	g.Radius.SetTarget(20)

	g.SetCurrentTime(0)
	if g.IsValid() {
		t.Fatal("radius transition should be in flight")
	}
	if got := g.Radius.Evaluate(0.5); math.Abs(got-10) > 0.001 {
		t.Errorf("radius at midpoint = %f, want 10", got)
	}
	g.SetCurrentTime(1.0)
	if !g.IsValid() {
		t.Fatal("geometry should settle when all motions settle")
	}
}

func TestPathGeometrySegmentsCascade(t *testing.T) {
	g := NewPathGeometry()
	s1 := NewLineSegment(Vec2{X: 0, Y: 0})
	s2 := NewLineSegment(Vec2{X: 10, Y: 10})
	g.AddSegment(s1)
	g.AddSegment(s2)

	s2.Transition().WithAnimation(1.0, ease.Linear)
	s2.Point.SetTarget(Vec2{X: 20, Y: 0})

	g.SetCurrentTime(0)
	if g.IsValid() {
		t.Fatal("path with a moving segment should not be valid")
	}
	if s2.CurrentTime() != 0 {
		t.Error("SetCurrentTime should cascade to segments")
	}

	g.SetCurrentTime(1.0)
	if !g.IsValid() {
		t.Fatal("path should settle once all segments settle")
	}
	if got := s2.Point.Evaluate(1.0); got != (Vec2{X: 20, Y: 0}) {
		t.Errorf("segment point = %+v, want target", got)
	}
}

func TestPathGeometryCompleteTransitionsCascades(t *testing.T) {
	g := NewPathGeometry()
	s := NewLineSegment(Vec2{})
	g.AddSegment(s)
	s.Transition().WithAnimation(1.0, ease.Linear)
	s.Point.SetTarget(Vec2{X: 5, Y: 5})
	g.SetCurrentTime(0)

	g.CompleteTransitions()

	if !g.IsValid() {
		t.Fatal("completion should cascade to segments")
	}
}

func TestPathGeometryInsertRemoveSegments(t *testing.T) {
	g := NewPathGeometry()
	s1 := NewLineSegment(Vec2{X: 1})
	s2 := NewLineSegment(Vec2{X: 2})
	s3 := NewLineSegment(Vec2{X: 3})
	g.AddSegment(s1)
	g.AddSegment(s3)
	g.InsertSegment(1, s2)

	segs := g.Segments()
	if len(segs) != 3 || segs[0] != s1 || segs[1] != s2 || segs[2] != s3 {
		t.Fatalf("segments out of order after insert")
	}

	g.RemoveSegment(s2)
	segs = g.Segments()
	if len(segs) != 2 || segs[0] != s1 || segs[1] != s3 {
		t.Fatalf("segments wrong after remove")
	}
}

func TestPathGeometryDrawWithGap(t *testing.T) {
	g := NewPathGeometry()
	g.AddSegment(NewLineSegment(Vec2{X: 0, Y: 0}))
	g.AddSegment(NewLineSegment(Vec2{X: 10, Y: 10}))
	g.AddSegment(nil) // gap in the data
	g.AddSegment(NewLineSegment(Vec2{X: 20, Y: 20}))
	g.AddSegment(NewLineSegment(Vec2{X: 30, Y: 30}))
	g.SetCurrentTime(0)

	g.Draw(fillContext(PaintStyleStroke))

	if !g.IsValid() {
		t.Error("nil segments must not affect validity")
	}
}

func TestGeometriesDrawThroughCanvas(t *testing.T) {
	// End-to-end rasterization pass: real geometries, both styles, a clip,
	// and a label. Mostly a does-not-panic test.
	c := NewMotionCanvas()
	c.clock = func() float64 { return 0 }
	screen := ebiten.NewImage(128, 128)

	fill := NewPaint(PaintStyleFill)
	fill.ZIndex = 0.1
	fill.Color.SetTarget(Color{R: 0.2, G: 0.4, B: 1, A: 1})
	fill.AddDrawable(c, NewRectGeometry(10, 40, 30, 60))
	fill.AddDrawable(c, NewCircleGeometry(64, 64, 12))

	stroke := NewPaint(PaintStyleStroke)
	stroke.ZIndex = 0.2
	stroke.StrokeWidth.SetTarget(3)
	stroke.ClipRect = Rect{X: 0, Y: 0, Width: 100, Height: 100}
	path := NewPathGeometry()
	path.AddSegment(NewLineSegment(Vec2{X: 0, Y: 100}))
	path.AddSegment(NewLineSegment(Vec2{X: 50, Y: 30}))
	path.AddSegment(NewLineSegment(Vec2{X: 100, Y: 70}))
	stroke.AddDrawable(c, path)
	stroke.AddDrawable(c, NewLineGeometry(0, 120, 128, 120))

	labels := NewPaint(PaintStyleFill)
	labels.ZIndex = 0.3
	labels.AddDrawable(c, NewLabelGeometry("y", 4, 4))

	c.SetPaintTasks([]*Paint{fill, stroke, labels})
	c.DrawFrame(screen)

	if !c.IsValid() {
		t.Fatal("everything settled: frame should be valid")
	}
}
