package kinetic

import "github.com/tanema/gween/ease"

// TransitionBuilder batches animation configuration across a set of named
// motion properties on one Animatable: a shared duration and easing for their
// next retargets, or an immediate force-completion of transitions already in
// flight. Obtain one via Animatable.Transition; calls chain.
//
// The builder mutates the per-property configuration in place. It never
// changes a motion's current start or target value.
type TransitionBuilder struct {
	owner *Animatable
	props []string
}

// Transition returns a builder over the named properties. With no names, the
// builder covers every registered property.
func (a *Animatable) Transition(props ...string) *TransitionBuilder {
	return &TransitionBuilder{owner: a, props: props}
}

func (b *TransitionBuilder) each(fn func(m MotionProperty)) *TransitionBuilder {
	props := b.props
	if len(props) == 0 {
		props = b.owner.names
	}
	for _, name := range props {
		if m := b.owner.motions[name]; m != nil {
			fn(m)
		}
	}
	return b
}

// WithAnimation sets the duration (seconds) and easing applied to the covered
// properties' next retargets. A non-positive duration falls back to
// DefaultDuration and a nil easing to DefaultEasing.
func (b *TransitionBuilder) WithAnimation(duration float64, fn ease.TweenFunc) *TransitionBuilder {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fn == nil {
		fn = DefaultEasing
	}
	return b.each(func(m MotionProperty) { m.SetMotion(duration, fn) })
}

// WithDuration sets only the duration (seconds), keeping each property's
// configured easing.
func (b *TransitionBuilder) WithDuration(duration float64) *TransitionBuilder {
	return b.each(func(m MotionProperty) { m.setDuration(duration) })
}

// WithEasing sets only the easing curve, keeping each property's configured
// duration.
func (b *TransitionBuilder) WithEasing(fn ease.TweenFunc) *TransitionBuilder {
	return b.each(func(m MotionProperty) { m.setEasing(fn) })
}

// CompleteCurrentTransitions finalizes any transition already in flight on
// the covered properties. Typical use is right after constructing a drawable
// whose initial property assignments should not animate in from defaults.
func (b *TransitionBuilder) CompleteCurrentTransitions() *TransitionBuilder {
	return b.each(func(m MotionProperty) { m.CompleteTransition() })
}
