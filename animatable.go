package kinetic

import "fmt"

// Animatable is the base for everything driven by the motion system: it owns
// a set of named motion properties and the evaluation clock they share.
// Drawable geometries and Paint tasks embed it; a bare Animatable also serves
// as a tracker (a non-geometric participant in the canvas validity gate, such
// as a legend fade).
type Animatable struct {
	names   []string // registration order, for deterministic iteration
	motions map[string]MotionProperty

	currentTime float64

	// RemoveOnCompleted marks the entity for detachment once all of its
	// motions have settled. The entity is drawn one final time at its settled
	// state in the frame where it becomes valid, then detached.
	RemoveOnCompleted bool

	// Paused suppresses drawing without suppressing time advancement.
	Paused bool

	task *Paint
}

// RegisterProperty adds a motion property to the registry. Registering two
// properties under the same name is a contract violation and panics.
func (a *Animatable) RegisterProperty(m MotionProperty) {
	if a.motions == nil {
		a.motions = make(map[string]MotionProperty)
	}
	name := m.Name()
	if _, exists := a.motions[name]; exists {
		panic(fmt.Sprintf("kinetic: property %q registered twice", name))
	}
	a.motions[name] = m
	a.names = append(a.names, name)
	m.bind(a)
}

// Property returns the motion registered under name, or nil if absent.
func (a *Animatable) Property(name string) MotionProperty {
	return a.motions[name]
}

// FloatProperty returns the FloatMotion registered under name. Requesting a
// missing property or one of a different kind is a contract violation and
// panics.
func (a *Animatable) FloatProperty(name string) *FloatMotion {
	m, ok := a.motions[name].(*FloatMotion)
	if !ok {
		panic(fmt.Sprintf("kinetic: no float property %q", name))
	}
	return m
}

// ColorProperty returns the ColorMotion registered under name, panicking if
// it is missing or of a different kind.
func (a *Animatable) ColorProperty(name string) *ColorMotion {
	m, ok := a.motions[name].(*ColorMotion)
	if !ok {
		panic(fmt.Sprintf("kinetic: no color property %q", name))
	}
	return m
}

// PointProperty returns the PointMotion registered under name, panicking if
// it is missing or of a different kind.
func (a *Animatable) PointProperty(name string) *PointMotion {
	m, ok := a.motions[name].(*PointMotion)
	if !ok {
		panic(fmt.Sprintf("kinetic: no point property %q", name))
	}
	return m
}

// SetCurrentTime stamps the evaluation clock at t (seconds) and advances
// every registered motion to it. Called once per frame by the canvas.
func (a *Animatable) SetCurrentTime(t float64) {
	a.currentTime = t
	for _, name := range a.names {
		a.motions[name].Advance(t)
	}
}

// CurrentTime returns the last stamped evaluation time.
func (a *Animatable) CurrentTime() float64 {
	return a.currentTime
}

// IsValid reports whether every registered motion has settled as of the last
// SetCurrentTime.
func (a *Animatable) IsValid() bool {
	for _, name := range a.names {
		if !a.motions[name].IsValid() {
			return false
		}
	}
	return true
}

// CompleteTransitions jumps the named motions to their targets immediately.
// With no names, every registered motion is completed.
func (a *Animatable) CompleteTransitions(names ...string) {
	if len(names) == 0 {
		names = a.names
	}
	for _, name := range names {
		if m := a.motions[name]; m != nil {
			m.CompleteTransition()
		}
	}
}

// Task returns the paint task this entity was last added to, or nil. The
// reference is a lookup convenience only; the paint does not own the entity
// through it.
func (a *Animatable) Task() *Paint {
	return a.task
}
