package scroll

import "testing"

func TestRegistry_OrderAndIndex(t *testing.T) {
	reg := DefaultRegistry()

	if reg.Len() != 6 {
		t.Fatalf("expected 6 sections, got %d", reg.Len())
	}

	want := []SectionID{
		SectionHome, SectionAbout, SectionResults,
		SectionPrograms, SectionTestimonials, SectionContact,
	}
	for i, id := range want {
		if got := reg.At(i); got != id {
			t.Errorf("At(%d) = %q, want %q", i, got, id)
		}
		idx, ok := reg.Index(id)
		if !ok || idx != i {
			t.Errorf("Index(%q) = %d, %v; want %d, true", id, idx, ok, i)
		}
	}
}

func TestRegistry_AtClampsOutOfRange(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.At(-5); got != SectionHome {
		t.Errorf("At(-5) = %q, want %q", got, SectionHome)
	}
	if got := reg.At(99); got != SectionContact {
		t.Errorf("At(99) = %q, want %q", got, SectionContact)
	}
}

func TestRegistry_ResolveAnchors(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		anchor string
		want   SectionID
		ok     bool
	}{
		{"#about", SectionAbout, true},
		{"about", SectionAbout, true},
		{" #contact ", SectionContact, true},
		{"#nutrition", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := reg.Resolve(tt.anchor)
		if ok != tt.ok {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.anchor, ok, tt.ok)
			continue
		}
		if ok && id != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.anchor, id, tt.want)
		}
	}
}

func TestRegistry_DuplicatesKeepFirstPosition(t *testing.T) {
	reg := NewRegistry(SectionHome, SectionAbout, SectionHome)

	if reg.Len() != 2 {
		t.Fatalf("expected 2 sections after dedup, got %d", reg.Len())
	}
	if idx, _ := reg.Index(SectionHome); idx != 0 {
		t.Errorf("home index = %d, want 0", idx)
	}
}

func TestRegistry_Anchor(t *testing.T) {
	reg := DefaultRegistry()
	if got := reg.Anchor(SectionResults); got != "#results" {
		t.Errorf("Anchor = %q, want %q", got, "#results")
	}
}
