// Package kinetic is an animation-aware drawing pipeline for [Ebitengine],
// built for interactive charts: discrete property changes become
// time-interpolated motion, and a per-frame scheduler draws everything,
// tracks what has settled, and retires what has finished its exit animation.
//
// # Quick start
//
// Create a [MotionCanvas], attach a [Paint] with some geometry, and draw a
// frame whenever your host wants one:
//
//	canvas := kinetic.NewMotionCanvas()
//
//	stroke := kinetic.NewPaint(kinetic.PaintStyleStroke)
//	stroke.ZIndex = 0.2
//	canvas.AddPaintTask(stroke)
//
//	dot := kinetic.NewCircleGeometry(100, 100, 0)
//	dot.Transition().WithAnimation(0.8, ease.OutCubic)
//	dot.Radius.SetTarget(12)
//	stroke.AddDrawable(canvas, dot)
//
//	// in your ebiten.Game Draw:
//	canvas.DrawFrame(screen)
//
// Setting a motion property's target while a transition is in flight never
// jumps: the currently evaluated value becomes the new start value and the
// configured duration plays out from there.
//
// # Redraw loop
//
// DrawFrame guarantees correct state at whatever cadence it is called, not a
// frame rate. The intended loop: on [MotionCanvas.Invalidate] (or any
// subscriber of OnInvalidated) keep scheduling redraws; once OnValidated
// fires, every animation has settled and the host can stop.
//
// # Concurrency
//
// Data updates may arrive from other goroutines while a frame renders. Hold
// the guard returned by [MotionCanvas.Sync] around any structural mutation
// or batch of retargets; DrawFrame takes the same guard, so each frame is
// atomic with respect to guarded updates.
//
// # Removal
//
// Mark a drawable's RemoveOnCompleted and give it an exit transition (fade
// opacity to 0, shrink radius to 0). It is drawn one final time in the frame
// where it settles, then detached, and that frame reports invalid so the
// vacated region is repainted.
//
// Easing curves come from [gween]'s ease package.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package kinetic
