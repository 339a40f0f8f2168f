package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixSections lays the standard page out at 800-unit intervals.
func sixSections() OffsetTable {
	return OffsetTable{
		SectionHome:         0,
		SectionAbout:        800,
		SectionResults:      1600,
		SectionPrograms:     2400,
		SectionTestimonials: 3200,
		SectionContact:      4000,
	}
}

func TestCompute_ConcreteScenario(t *testing.T) {
	// scrollY 750 with a 1000-high viewport puts the anchor at 1100: past
	// the about top (800), short of results (1600).
	state := Compute(DefaultRegistry(), sixSections(), Metrics{
		ScrollY:        750,
		ViewportHeight: 1000,
		DocHeight:      5000,
	})

	assert.Equal(t, 1, state.CurrentIndex)
	assert.InDelta(t, 0.275, state.Progress, 1e-9)
}

func TestCompute_TopOfPage(t *testing.T) {
	state := Compute(DefaultRegistry(), sixSections(), Metrics{
		ScrollY:        0,
		ViewportHeight: 1000,
		DocHeight:      5000,
	})

	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 0.0, state.Progress)
}

func TestCompute_BottomOfPage(t *testing.T) {
	// Maximum scrollable position: scrollY = docHeight - viewportHeight.
	state := Compute(DefaultRegistry(), sixSections(), Metrics{
		ScrollY:        4000,
		ViewportHeight: 1000,
		DocHeight:      5000,
	})

	assert.Equal(t, 5, state.CurrentIndex)
	assert.Equal(t, 1.0, state.Progress)
}

func TestCompute_BoundsHoldForAllOffsets(t *testing.T) {
	reg := DefaultRegistry()
	oracle := sixSections()

	for scrollY := -500; scrollY <= 6000; scrollY += 37 {
		state := Compute(reg, oracle, Metrics{
			ScrollY:        scrollY,
			ViewportHeight: 1000,
			DocHeight:      5000,
		})
		require.GreaterOrEqual(t, state.Progress, 0.0, "scrollY=%d", scrollY)
		require.LessOrEqual(t, state.Progress, 1.0, "scrollY=%d", scrollY)
		require.GreaterOrEqual(t, state.CurrentIndex, 0, "scrollY=%d", scrollY)
		require.Less(t, state.CurrentIndex, reg.Len(), "scrollY=%d", scrollY)
	}
}

func TestCompute_IndexMonotonicWhileScrollingDown(t *testing.T) {
	reg := DefaultRegistry()
	oracle := sixSections()

	prev := -1
	for scrollY := 0; scrollY <= 4000; scrollY += 50 {
		state := Compute(reg, oracle, Metrics{
			ScrollY:        scrollY,
			ViewportHeight: 1000,
			DocHeight:      5000,
		})
		require.GreaterOrEqual(t, state.CurrentIndex, prev, "index regressed at scrollY=%d", scrollY)
		prev = state.CurrentIndex
	}
}

func TestCompute_FewerThanTwoResolvedIsZeroState(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name   string
		oracle OffsetTable
	}{
		{"nothing mounted", OffsetTable{}},
		{"single section", OffsetTable{SectionHome: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Compute(reg, tt.oracle, Metrics{
				ScrollY:        1200,
				ViewportHeight: 1000,
				DocHeight:      5000,
			})
			assert.Equal(t, ProgressState{}, state)
		})
	}
}

func TestCompute_PartialResolutionKeepsRegistryIndices(t *testing.T) {
	// Only three of six sections are laid out; the current index still
	// points at the real registry entry, not the position in the resolved
	// subsequence.
	oracle := OffsetTable{
		SectionHome:    0,
		SectionResults: 1000,
		SectionContact: 2000,
	}

	state := Compute(DefaultRegistry(), oracle, Metrics{
		ScrollY:        900,
		ViewportHeight: 1000,
		DocHeight:      3000,
	})

	// anchor = 1250, past the results top.
	assert.Equal(t, 2, state.CurrentIndex)
}

func TestCompute_ZeroSpanBetweenSections(t *testing.T) {
	// Adjacent sections at the same offset must not divide by zero.
	oracle := OffsetTable{
		SectionHome:  0,
		SectionAbout: 500,
		// results collapsed onto about
		SectionResults: 500,
	}
	reg := NewRegistry(SectionHome, SectionAbout, SectionResults)

	state := Compute(reg, oracle, Metrics{
		ScrollY:        400,
		ViewportHeight: 400,
		DocHeight:      1200,
	})

	require.GreaterOrEqual(t, state.Progress, 0.0)
	require.LessOrEqual(t, state.Progress, 1.0)
	assert.Equal(t, 2, state.CurrentIndex)
}

func TestCompute_ExactBoundaryLastOneWins(t *testing.T) {
	// Anchor exactly on a section top selects that section.
	state := Compute(DefaultRegistry(), sixSections(), Metrics{
		ScrollY:        450,
		ViewportHeight: 1000, // anchor = 800, exactly the about top
		DocHeight:      5000,
	})

	assert.Equal(t, 1, state.CurrentIndex)
	assert.InDelta(t, 0.2, state.Progress, 1e-9)
}

func TestCompute_Idempotent(t *testing.T) {
	m := Metrics{ScrollY: 1234, ViewportHeight: 900, DocHeight: 5000}
	a := Compute(DefaultRegistry(), sixSections(), m)
	b := Compute(DefaultRegistry(), sixSections(), m)
	assert.Equal(t, a, b)
}

func TestTracker_CoalescesRapidInvalidations(t *testing.T) {
	tr := NewTracker(DefaultRegistry(), sixSections())

	// First invalidation claims the frame slot.
	require.True(t, tr.Invalidate())

	// Nine more events inside the same burst do not schedule again.
	for i := 0; i < 9; i++ {
		assert.False(t, tr.Invalidate(), "event %d scheduled a second recompute", i)
	}
	assert.True(t, tr.Pending())

	tr.Recompute(Metrics{ScrollY: 750, ViewportHeight: 1000, DocHeight: 5000})
	assert.False(t, tr.Pending())

	// The slot is free again after the recompute ran.
	assert.True(t, tr.Invalidate())
}

func TestTracker_RecomputeUpdatesState(t *testing.T) {
	tr := NewTracker(DefaultRegistry(), sixSections())

	state := tr.Recompute(Metrics{ScrollY: 750, ViewportHeight: 1000, DocHeight: 5000})
	assert.Equal(t, 1, state.CurrentIndex)
	assert.InDelta(t, 0.275, state.Progress, 1e-9)
	assert.Equal(t, state, tr.State())
}

func TestTracker_InitialStateIsZero(t *testing.T) {
	tr := NewTracker(DefaultRegistry(), sixSections())
	assert.Equal(t, ProgressState{}, tr.State())
}

func TestTracker_CloseCancelsAndFreezes(t *testing.T) {
	tr := NewTracker(DefaultRegistry(), sixSections())
	require.True(t, tr.Invalidate())

	tr.Close()

	assert.False(t, tr.Pending(), "pending recompute should be cancelled by close")
	assert.False(t, tr.Invalidate(), "closed tracker must ignore invalidations")

	// A late recompute does not disturb the frozen state.
	state := tr.Recompute(Metrics{ScrollY: 4000, ViewportHeight: 1000, DocHeight: 5000})
	assert.Equal(t, ProgressState{}, state)
}

func TestTracker_SetOracleTakesEffect(t *testing.T) {
	tr := NewTracker(DefaultRegistry(), OffsetTable{})

	m := Metrics{ScrollY: 750, ViewportHeight: 1000, DocHeight: 5000}
	assert.Equal(t, ProgressState{}, tr.Recompute(m), "empty layout yields the zero state")

	tr.SetOracle(sixSections())
	assert.Equal(t, 1, tr.Recompute(m).CurrentIndex)
}
