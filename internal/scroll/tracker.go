package scroll

import (
	"sync"

	"fitfolio/internal/logging"
)

// AnchorRatio is the fraction of the viewport height added to the scroll top
// to form the anchor position that decides which section is "current". A
// section becomes current once the reader has scrolled roughly a third of a
// screen past its top edge, which avoids flicker exactly at section
// boundaries. Tunable, not a law; chosen for visual feel.
const AnchorRatio = 0.35

// Metrics are the ambient read-only viewport values the tracker consumes:
// the live scroll offset, the viewport height, and the total document height.
type Metrics struct {
	ScrollY        int
	ViewportHeight int
	DocHeight      int
}

// ProgressState is the tracker's output: a normalized [0,1] progress value
// and the registry index of the current section. Consumers read it but never
// mutate it.
type ProgressState struct {
	Progress     float64
	CurrentIndex int
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Compute maps a scroll position onto the section sequence. It is a pure
// function of its inputs: same metrics and layout always yield the same
// state.
//
// Fewer than two resolvable sections (page not fully laid out) is a defined
// degenerate case that yields the zero state, not an error. Zero or negative
// spans between adjacent sections are treated as span 1 so the interpolation
// stays defined.
func Compute(reg Registry, oracle LayoutOracle, m Metrics) ProgressState {
	type resolved struct {
		index int // position in the registry
		top   int
	}

	tops := make([]resolved, 0, reg.Len())
	for i, id := range reg.IDs() {
		if top, ok := oracle.SectionTop(id); ok {
			tops = append(tops, resolved{index: i, top: top})
		}
	}
	if len(tops) < 2 {
		return ProgressState{}
	}

	anchor := float64(m.ScrollY) + AnchorRatio*float64(m.ViewportHeight)

	// Last one wins: the highest resolved section whose top the anchor has
	// passed. Sections are laid out in registry order, so tops ascend.
	pos := 0
	for i, r := range tops {
		if anchor >= float64(r.top) {
			pos = i
		}
	}

	var fraction float64
	if pos < len(tops)-1 {
		span := tops[pos+1].top - tops[pos].top
		if span < 1 {
			span = 1
		}
		fraction = clamp01((anchor - float64(tops[pos].top)) / float64(span))
	} else {
		// Inside the last section the anchor would never reach a "next top",
		// so measure the raw scroll offset against the remaining scrollable
		// distance to the bottom of the document instead.
		remaining := (m.DocHeight - m.ViewportHeight) - tops[pos].top
		if remaining < 1 {
			remaining = 1
		}
		fraction = clamp01(float64(m.ScrollY-tops[pos].top) / float64(remaining))
	}

	denom := len(tops) - 1
	if denom < 1 {
		denom = 1
	}

	return ProgressState{
		Progress:     clamp01((float64(pos) + fraction) / float64(denom)),
		CurrentIndex: tops[pos].index,
	}
}

// Tracker owns a ProgressState and recomputes it reactively. Scroll and
// resize events do not recompute directly: they call Invalidate, which
// reports whether the caller should schedule a recomputation. While one is
// already scheduled further events are absorbed, so at most one
// recomputation runs per scheduled frame regardless of event rate.
type Tracker struct {
	mu        sync.Mutex
	reg       Registry
	oracle    LayoutOracle
	scheduled bool
	closed    bool
	state     ProgressState
	log       *logging.Logger
}

// NewTracker creates a tracker over the given registry and layout oracle.
// Initial state is {0, 0}.
func NewTracker(reg Registry, oracle LayoutOracle) *Tracker {
	return &Tracker{
		reg:    reg,
		oracle: oracle,
		log:    logging.Get(logging.CategoryScroll),
	}
}

// SetOracle swaps the layout oracle. The display layer calls this after each
// re-render, since section offsets never survive a layout change.
func (t *Tracker) SetOracle(oracle LayoutOracle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.oracle = oracle
}

// Invalidate records that the scroll state changed. It returns true when the
// caller must schedule a recomputation; false when one is already pending or
// the tracker is closed.
func (t *Tracker) Invalidate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.scheduled {
		return false
	}
	t.scheduled = true
	return true
}

// Pending reports whether a recomputation is scheduled but has not run yet.
func (t *Tracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scheduled
}

// Recompute clears the pending slot and recomputes the state from the given
// metrics. After Close it returns the frozen state unchanged.
func (t *Tracker) Recompute(m Metrics) ProgressState {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scheduled = false
	if t.closed {
		return t.state
	}
	t.state = Compute(t.reg, t.oracle, m)
	t.log.Debug("recompute: scrollY=%d viewport=%d doc=%d -> index=%d progress=%.3f",
		m.ScrollY, m.ViewportHeight, m.DocHeight, t.state.CurrentIndex, t.state.Progress)
	return t.state
}

// State returns the last computed state.
func (t *Tracker) State() ProgressState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close tears the tracker down: any pending recomputation is cancelled and
// further invalidations are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.scheduled = false
}
