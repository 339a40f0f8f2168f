// Package scroll converts raw scroll position into a normalized page-progress
// value and a discrete current-section pointer. The geometry of the rendered
// document is abstracted behind the LayoutOracle interface so the math is
// testable against synthetic offset tables.
package scroll

import "strings"

// SectionID identifies a named, vertically stacked region of the page.
type SectionID string

// The canonical section order for the site. Order is semantically
// significant: it defines the progress axis from 0 (first) to 1 (last).
const (
	SectionHome         SectionID = "home"
	SectionAbout        SectionID = "about"
	SectionResults      SectionID = "results"
	SectionPrograms     SectionID = "programs"
	SectionTestimonials SectionID = "testimonials"
	SectionContact      SectionID = "contact"
)

// Registry is the fixed, ordered list of sections that make up the page.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	ids   []SectionID
	index map[SectionID]int
}

// NewRegistry builds a registry from the given sections, preserving order.
// Duplicate IDs keep their first position.
func NewRegistry(ids ...SectionID) Registry {
	r := Registry{
		ids:   make([]SectionID, 0, len(ids)),
		index: make(map[SectionID]int, len(ids)),
	}
	for _, id := range ids {
		if _, dup := r.index[id]; dup {
			continue
		}
		r.index[id] = len(r.ids)
		r.ids = append(r.ids, id)
	}
	return r
}

// DefaultRegistry returns the registry for the standard six-section page.
func DefaultRegistry() Registry {
	return NewRegistry(
		SectionHome,
		SectionAbout,
		SectionResults,
		SectionPrograms,
		SectionTestimonials,
		SectionContact,
	)
}

// Len returns the number of registered sections.
func (r Registry) Len() int { return len(r.ids) }

// At returns the section at position i. The index is clamped to the
// registry bounds so callers holding a stale index never fault.
func (r Registry) At(i int) SectionID {
	if len(r.ids) == 0 {
		return ""
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.ids) {
		i = len(r.ids) - 1
	}
	return r.ids[i]
}

// Index returns the position of id in the registry.
func (r Registry) Index(id SectionID) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// IDs returns a copy of the ordered section list.
func (r Registry) IDs() []SectionID {
	out := make([]SectionID, len(r.ids))
	copy(out, r.ids)
	return out
}

// Resolve maps a symbolic anchor ("#about" or "about") to its section.
// Unknown anchors report ok=false; navigation to them is a no-op by policy.
func (r Registry) Resolve(anchor string) (SectionID, bool) {
	id := SectionID(strings.TrimPrefix(strings.TrimSpace(anchor), "#"))
	_, ok := r.index[id]
	return id, ok
}

// Anchor returns the symbolic anchor for a section ("#about").
func (r Registry) Anchor(id SectionID) string {
	return "#" + string(id)
}
