package kinetic

import (
	"math"

	"github.com/tanema/gween/ease"
)

// MotionProperty is a single animatable value owned by an Animatable. It
// interpolates between a start and a target value over a configured duration,
// evaluated against the owning canvas's clock. Concrete implementations are
// FloatMotion, ColorMotion, and PointMotion.
type MotionProperty interface {
	// Name returns the property key this motion is registered under.
	Name() string

	// Advance evaluates the motion at time t (seconds), updating its
	// completion flag. Called once per frame by Animatable.SetCurrentTime.
	Advance(t float64)

	// IsValid reports whether the transition has fully played out as of the
	// last Advance. A valid motion keeps returning its target value until a
	// new target is set.
	IsValid() bool

	// CompleteTransition jumps the motion to its target value immediately.
	CompleteTransition()

	// SetMotion configures the duration (seconds) and easing curve applied to
	// the next retarget. It does not affect a transition already in flight.
	SetMotion(duration float64, fn ease.TweenFunc)

	bind(owner *Animatable)
	setDuration(d float64)
	setEasing(fn ease.TweenFunc)
}

// motionState holds the timing fields shared by all motion kinds.
//
// A retarget does not record its start time directly: the new target may be
// set from another goroutine between frames, long after the owner was last
// stamped. Instead the motion is marked pending and latches its start time on
// the first Advance that follows, so the transition plays its full duration
// from the frame it first appears on.
type motionState struct {
	owner *Animatable
	name  string

	// Active transition. Latched from the configured values on retarget, so
	// reconfiguring never disturbs a transition already in flight.
	start    float64
	duration float64
	easing   ease.TweenFunc

	// Configured values for the next retarget.
	confDuration float64
	confEasing   ease.TweenFunc

	pending bool
	valid   bool
}

func (m *motionState) Name() string  { return m.name }
func (m *motionState) IsValid() bool { return m.valid }

func (m *motionState) bind(owner *Animatable) {
	m.owner = owner
}

func (m *motionState) SetMotion(duration float64, fn ease.TweenFunc) {
	m.confDuration = duration
	m.confEasing = fn
}

func (m *motionState) setDuration(d float64)       { m.confDuration = d }
func (m *motionState) setEasing(fn ease.TweenFunc) { m.confEasing = fn }

// retarget latches the configured duration and easing for a new transition
// and reports whether the new target applies immediately (no duration, or
// animations globally disabled).
func (m *motionState) retarget() bool {
	m.duration = m.confDuration
	m.easing = m.confEasing
	m.pending = true
	m.valid = false
	if m.duration <= 0 || animationsDisabled {
		m.complete()
		return true
	}
	return false
}

// ownerTime returns the owning Animatable's last stamped time, or 0 when the
// motion is unbound (not yet registered).
func (m *motionState) ownerTime() float64 {
	if m.owner == nil {
		return 0
	}
	return m.owner.currentTime
}

// progress resolves the timing state at time t and reports the eased
// interpolation inputs. done is true when the transition has fully played
// out; before is true when t precedes the start time.
func (m *motionState) progress(t float64) (elapsed float64, before, done bool) {
	if m.pending {
		m.start = t
		m.pending = false
	}
	elapsed = t - m.start
	if m.duration <= 0 || animationsDisabled {
		m.valid = true
		return elapsed, false, true
	}
	if elapsed < 0 {
		m.valid = false
		return elapsed, true, false
	}
	if elapsed >= m.duration {
		m.valid = true
		return elapsed, false, true
	}
	m.valid = false
	return elapsed, false, false
}

// complete collapses the motion so any future evaluation lands past the end
// of the transition.
func (m *motionState) complete() {
	m.start = math.Inf(-1)
	m.pending = false
	m.valid = true
}

// eased applies the configured easing curve to one scalar component.
func (m *motionState) eased(elapsed, from, to float64) float64 {
	fn := m.easing
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(elapsed), float32(from), float32(to-from), float32(m.duration)))
}

// --- FloatMotion ---

// FloatMotion animates a single float64 value.
type FloatMotion struct {
	motionState
	from, to float64
}

// NewFloatMotion creates a float motion with the given property name, already
// settled at the initial value.
func NewFloatMotion(name string, initial float64) *FloatMotion {
	m := &FloatMotion{from: initial, to: initial}
	m.name = name
	m.valid = true
	return m
}

// Evaluate returns the interpolated value at time t (seconds) and updates the
// completion flag. Evaluation is idempotent: repeated calls at the same t
// return the same value.
func (m *FloatMotion) Evaluate(t float64) float64 {
	elapsed, before, done := m.progress(t)
	if done {
		return m.to
	}
	if before {
		return m.from
	}
	return m.eased(elapsed, m.from, m.to)
}

// Advance implements MotionProperty.
func (m *FloatMotion) Advance(t float64) { m.Evaluate(t) }

// Target returns the value the motion is heading toward.
func (m *FloatMotion) Target() float64 { return m.to }

// SetTarget starts a transition toward v. The current evaluated value becomes
// the new start value, so a retarget mid-flight never jumps. While animations
// are globally disabled, or with no duration configured, the value applies
// immediately.
func (m *FloatMotion) SetTarget(v float64) {
	m.from = m.Evaluate(m.ownerTime())
	m.to = v
	if m.retarget() {
		m.from = v
	}
}

// CompleteTransition implements MotionProperty, jumping to the target value.
func (m *FloatMotion) CompleteTransition() {
	m.from = m.to
	m.complete()
}

// --- ColorMotion ---

// ColorMotion animates a Color, interpolating each channel independently
// through the same easing curve.
type ColorMotion struct {
	motionState
	from, to Color
}

// NewColorMotion creates a color motion with the given property name, already
// settled at the initial color.
func NewColorMotion(name string, initial Color) *ColorMotion {
	m := &ColorMotion{from: initial, to: initial}
	m.name = name
	m.valid = true
	return m
}

// Evaluate returns the interpolated color at time t (seconds) and updates the
// completion flag.
func (m *ColorMotion) Evaluate(t float64) Color {
	elapsed, before, done := m.progress(t)
	if done {
		return m.to
	}
	if before {
		return m.from
	}
	return Color{
		R: m.eased(elapsed, m.from.R, m.to.R),
		G: m.eased(elapsed, m.from.G, m.to.G),
		B: m.eased(elapsed, m.from.B, m.to.B),
		A: m.eased(elapsed, m.from.A, m.to.A),
	}
}

// Advance implements MotionProperty.
func (m *ColorMotion) Advance(t float64) { m.Evaluate(t) }

// Target returns the color the motion is heading toward.
func (m *ColorMotion) Target() Color { return m.to }

// SetTarget starts a transition toward c. See FloatMotion.SetTarget.
func (m *ColorMotion) SetTarget(c Color) {
	m.from = m.Evaluate(m.ownerTime())
	m.to = c
	if m.retarget() {
		m.from = c
	}
}

// CompleteTransition implements MotionProperty, jumping to the target color.
func (m *ColorMotion) CompleteTransition() {
	m.from = m.to
	m.complete()
}

// --- PointMotion ---

// PointMotion animates a Vec2, interpolating X and Y independently through
// the same easing curve.
type PointMotion struct {
	motionState
	from, to Vec2
}

// NewPointMotion creates a point motion with the given property name, already
// settled at the initial point.
func NewPointMotion(name string, initial Vec2) *PointMotion {
	m := &PointMotion{from: initial, to: initial}
	m.name = name
	m.valid = true
	return m
}

// Evaluate returns the interpolated point at time t (seconds) and updates the
// completion flag.
func (m *PointMotion) Evaluate(t float64) Vec2 {
	elapsed, before, done := m.progress(t)
	if done {
		return m.to
	}
	if before {
		return m.from
	}
	return Vec2{
		X: m.eased(elapsed, m.from.X, m.to.X),
		Y: m.eased(elapsed, m.from.Y, m.to.Y),
	}
}

// Advance implements MotionProperty.
func (m *PointMotion) Advance(t float64) { m.Evaluate(t) }

// Target returns the point the motion is heading toward.
func (m *PointMotion) Target() Vec2 { return m.to }

// SetTarget starts a transition toward p. See FloatMotion.SetTarget.
func (m *PointMotion) SetTarget(p Vec2) {
	m.from = m.Evaluate(m.ownerTime())
	m.to = p
	if m.retarget() {
		m.from = p
	}
}

// CompleteTransition implements MotionProperty, jumping to the target point.
func (m *PointMotion) CompleteTransition() {
	m.from = m.to
	m.complete()
}
