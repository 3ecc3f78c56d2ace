package inset

// Config is the per-session configuration. It is supplied once when the
// session is created and never mutated afterwards.
type Config struct {
	// SupportedKinds lists the input kinds the session reacts to. An empty
	// list means every transition is a no-op.
	SupportedKinds []Kind

	// DistanceToKeyboard is the breathing room kept between the focused
	// input's bottom edge and the keyboard's top edge.
	DistanceToKeyboard float64

	// DismissOnOutsideTap enables resigning focus when a tap lands outside
	// any supported input.
	DismissOnOutsideTap bool
}

func (c Config) kindSet() map[Kind]struct{} {
	set := make(map[Kind]struct{}, len(c.SupportedKinds))
	for _, k := range c.SupportedKinds {
		set[k] = struct{}{}
	}
	return set
}
