package inset

import "sync/atomic"

// Metrics holds lightweight counters for session activity. All counters are
// monotonic; read them through Snapshot.
type Metrics struct {
	transitions       atomic.Int64
	adjusted          atomic.Int64
	scrolled          atomic.Int64
	skippedNoFocus    atomic.Int64
	skippedKind       atomic.Int64
	skippedDegenerate atomic.Int64
	hides             atomic.Int64
	dismissals        atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Transitions       int64 // keyboard-changing events seen
	Adjusted          int64 // transitions that changed the inset
	Scrolled          int64 // adjustments that also moved the offset
	SkippedNoFocus    int64 // no focused input at transition time
	SkippedKind       int64 // focused input kind not supported
	SkippedDegenerate int64 // degenerate keyboard frame
	Hides             int64 // keyboard-hiding events
	Dismissals        int64 // outside taps that resigned focus
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Transitions:       m.transitions.Load(),
		Adjusted:          m.adjusted.Load(),
		Scrolled:          m.scrolled.Load(),
		SkippedNoFocus:    m.skippedNoFocus.Load(),
		SkippedKind:       m.skippedKind.Load(),
		SkippedDegenerate: m.skippedDegenerate.Load(),
		Hides:             m.hides.Load(),
		Dismissals:        m.dismissals.Load(),
	}
}
