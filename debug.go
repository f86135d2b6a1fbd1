package kinetic

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and workload metrics.
// Only populated when MotionCanvas debug mode is on.
type frameStats struct {
	sortTime      time.Duration
	drawTime      time.Duration
	taskCount     int
	drawableCount int
	removedCount  int
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and workload stats are logged to stderr.
func (c *MotionCanvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog prints frame stats to stderr.
func (c *MotionCanvas) debugLog(stats frameStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[kinetic] sort: %v | draw: %v | tasks: %d | drawables: %d | removed: %d\n",
		stats.sortTime, stats.drawTime, stats.taskCount, stats.drawableCount, stats.removedCount)
}

// safeDraw isolates a drawable's backend draw call: a panic in one drawable
// is logged and must not stop the rest of the frame. Recovery happens on the
// next scheduled frame.
func (c *MotionCanvas) safeDraw(d Drawable, ctx *DrawContext) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[kinetic] draw failed: %v\n", r)
		}
	}()
	d.Draw(ctx)
}
