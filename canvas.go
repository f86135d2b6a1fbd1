package kinetic

import (
	"sort"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MotionCanvas owns the paint tasks and trackers attached to one drawing
// surface and schedules their animation clocks. The host drives it: call
// DrawFrame once per desired frame, typically rescheduling redraws while the
// canvas is invalid and stopping once the validated notification fires.
//
// Structural mutation (adding or removing tasks, drawables, and trackers, or
// retargeting motion values) may come from goroutines other than the render
// one. All such mutation must happen while holding the canvas guard returned
// by Sync; DrawFrame takes the same guard, so a frame is atomic with respect
// to properly guarded external updates.
type MotionCanvas struct {
	mu    *sync.Mutex
	clock func() float64 // seconds since canvas construction, monotonic

	tasks    map[*Paint]int // value is the insertion sequence, for stable z ties
	nextSeq  int
	trackers map[*Animatable]struct{}

	valid       bool
	invalidated []func()
	validated   []func()

	sortBuf   []taskEntry
	removeBuf []removal

	debug bool
}

type taskEntry struct {
	task *Paint
	seq  int
}

type removal struct {
	task     *Paint
	drawable Drawable
}

// NewMotionCanvas creates a canvas with its clock started at zero. The clock
// is monotonic (immune to wall-clock adjustments).
func NewMotionCanvas() *MotionCanvas {
	start := time.Now()
	return &MotionCanvas{
		mu:       &sync.Mutex{},
		clock:    func() float64 { return time.Since(start).Seconds() },
		tasks:    make(map[*Paint]int),
		trackers: make(map[*Animatable]struct{}),
	}
}

// Sync returns the canvas guard. External callers hold it to make a
// multi-step update (add drawables, retarget values, invalidate) atomic with
// respect to frame drawing.
func (c *MotionCanvas) Sync() *sync.Mutex {
	return c.mu
}

// SetSync replaces the canvas guard, e.g. when re-parenting content under a
// different synchronization domain. The caller must ensure no frame is in
// flight on the old guard.
func (c *MotionCanvas) SetSync(mu *sync.Mutex) {
	c.mu = mu
}

// AddPaintTask attaches a paint task to the canvas. Adding a task twice is a
// no-op. The caller must hold the canvas guard if a frame may be in flight.
func (c *MotionCanvas) AddPaintTask(p *Paint) {
	if _, exists := c.tasks[p]; exists {
		return
	}
	c.tasks[p] = c.nextSeq
	c.nextSeq++
}

// RemovePaintTask detaches a paint task. The paint keeps its per-canvas
// drawable list, so re-adding it restores its drawables.
func (c *MotionCanvas) RemovePaintTask(p *Paint) {
	delete(c.tasks, p)
}

// SetPaintTasks replaces the task set with the given paints, in order.
func (c *MotionCanvas) SetPaintTasks(paints []*Paint) {
	for p := range c.tasks {
		delete(c.tasks, p)
	}
	for _, p := range paints {
		c.AddPaintTask(p)
	}
}

// ContainsPaintTask reports whether p is attached to the canvas.
func (c *MotionCanvas) ContainsPaintTask(p *Paint) bool {
	_, exists := c.tasks[p]
	return exists
}

// AddTracker attaches a non-geometric animatable. Trackers are stamped every
// frame and gate the canvas validity, but are never drawn; they let
// animations with no geometry (a legend fade, an axis slide) keep the redraw
// loop alive until they settle.
func (c *MotionCanvas) AddTracker(a *Animatable) {
	c.trackers[a] = struct{}{}
}

// RemoveTracker detaches a tracker.
func (c *MotionCanvas) RemoveTracker(a *Animatable) {
	delete(c.trackers, a)
}

// TaskCount returns the number of attached paint tasks.
func (c *MotionCanvas) TaskCount() int {
	return len(c.tasks)
}

// CountGeometries returns the total number of drawables registered for this
// canvas across all attached paint tasks.
func (c *MotionCanvas) CountGeometries() int {
	n := 0
	for p := range c.tasks {
		n += p.drawableCount(c)
	}
	return n
}

// Clear detaches every paint task and tracker, releases the tasks'
// references to this canvas, and invalidates.
func (c *MotionCanvas) Clear() {
	for p := range c.tasks {
		p.releaseCanvas(c)
		delete(c.tasks, p)
	}
	for a := range c.trackers {
		delete(c.trackers, a)
	}
	c.Invalidate()
}

// Dispose tears the canvas down: detaches all content and drops all
// notification subscribers. The canvas must not be drawn afterwards.
func (c *MotionCanvas) Dispose() {
	for p := range c.tasks {
		p.releaseCanvas(c)
		delete(c.tasks, p)
	}
	for a := range c.trackers {
		delete(c.trackers, a)
	}
	c.invalidated = nil
	c.validated = nil
	c.valid = false
}

// IsValid reports whether, at the end of the most recent frame, every task,
// drawable, and tracker had settled and nothing was removed during that
// frame.
func (c *MotionCanvas) IsValid() bool {
	return c.valid
}

// OnInvalidated registers fn to run whenever the canvas is invalidated.
// Multiple subscribers are supported; no ordering between them is
// guaranteed.
func (c *MotionCanvas) OnInvalidated(fn func()) {
	c.invalidated = append(c.invalidated, fn)
}

// OnValidated registers fn to run whenever a frame completes with the canvas
// fully settled.
func (c *MotionCanvas) OnValidated(fn func()) {
	c.validated = append(c.validated, fn)
}

// Invalidate unconditionally marks the canvas invalid and notifies
// subscribers. Hosts use the notification to (re)start their redraw loop.
// Callable from any context.
func (c *MotionCanvas) Invalidate() {
	c.valid = false
	for _, fn := range c.invalidated {
		fn()
	}
}

// DrawFrame runs one frame: under the canvas guard it clears the target,
// advances every task, drawable, and tracker to the current clock time,
// draws them in ascending ZIndex order (ties broken by task insertion
// order), detaches completed drawables flagged RemoveOnCompleted, and
// recomputes validity. Any removal forces the frame invalid so the vacated
// region is repainted at least once more. If the frame ends valid, the
// validated notification fires after the guard is released.
func (c *MotionCanvas) DrawFrame(target *ebiten.Image) {
	if target == nil {
		panic("kinetic: DrawFrame on nil target")
	}
	mu := c.mu
	mu.Lock()
	var valid bool
	func() {
		defer mu.Unlock()
		valid = c.drawFrameLocked(target)
	}()
	if valid {
		for _, fn := range c.validated {
			fn()
		}
	}
}

func (c *MotionCanvas) drawFrameLocked(target *ebiten.Image) bool {
	var stats frameStats
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	target.Clear()
	frameTime := c.clock()

	entries := c.sortBuf[:0]
	for p, seq := range c.tasks {
		entries = append(entries, taskEntry{task: p, seq: seq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].task.ZIndex != entries[j].task.ZIndex {
			return entries[i].task.ZIndex < entries[j].task.ZIndex
		}
		return entries[i].seq < entries[j].seq
	})
	c.sortBuf = entries

	if c.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	valid := true
	removals := c.removeBuf[:0]
	var doneTasks []*Paint
	ctx := &DrawContext{Canvas: c, FrameTime: frameTime}

	for _, e := range entries {
		p := e.task
		if animationsDisabled {
			p.CompleteTransitions()
		}
		p.SetCurrentTime(frameTime)
		ctx.Target = target
		p.prepare(ctx)

		taskValid := p.Animatable.IsValid()
		for _, d := range p.Drawables(c) {
			if d == nil {
				continue // gap in the data, not an error
			}
			if animationsDisabled {
				d.CompleteTransitions()
			}
			d.SetCurrentTime(frameTime)
			if !p.Paused && !d.Animator().Paused {
				c.safeDraw(d, ctx)
			}
			if c.debug {
				stats.drawableCount++
			}
			dv := d.IsValid()
			taskValid = taskValid && dv
			if dv && d.Animator().RemoveOnCompleted {
				removals = append(removals, removal{task: p, drawable: d})
			}
		}
		valid = valid && taskValid
		if taskValid && p.RemoveOnCompleted {
			doneTasks = append(doneTasks, p)
		}
	}

	for tr := range c.trackers {
		tr.SetCurrentTime(frameTime)
		valid = valid && tr.IsValid()
	}

	for _, r := range removals {
		r.task.RemoveDrawable(c, r.drawable)
	}
	for _, p := range doneTasks {
		delete(c.tasks, p)
		p.releaseCanvas(c)
	}
	// A removal is itself a visual change: the next frame must render the
	// geometry's absence, so the frame reports invalid even if everything
	// left has settled.
	if len(removals) > 0 || len(doneTasks) > 0 {
		valid = false
	}
	// Zero the reused buffer so detached drawables are not pinned by the
	// backing array.
	clear(removals)
	c.removeBuf = removals[:0]

	if c.debug {
		stats.drawTime = time.Since(t0)
		stats.taskCount = len(entries)
		stats.removedCount = len(removals) + len(doneTasks)
		c.debugLog(stats)
	}

	c.valid = valid
	return valid
}
