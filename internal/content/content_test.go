package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in content must validate: %v", err)
	}
}

func TestParse_PartialOverrideKeepsDefaults(t *testing.T) {
	site, err := Parse([]byte("brand: Iron Works\nhero:\n  headline: Lift heavy, live long\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if site.Brand != "Iron Works" {
		t.Errorf("brand = %q, want %q", site.Brand, "Iron Works")
	}
	if site.Hero.Headline != "Lift heavy, live long" {
		t.Errorf("headline = %q, want override", site.Hero.Headline)
	}

	// Everything the override left alone stays at the defaults.
	def := Default()
	if diff := cmp.Diff(def.Programs, site.Programs); diff != "" {
		t.Errorf("programs changed by unrelated override (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(def.Contact, site.Contact); diff != "" {
		t.Errorf("contact changed by unrelated override (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("brand: [unclosed")); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}

func TestParse_RejectsInvalidContent(t *testing.T) {
	// Valid YAML that blanks a required field.
	if _, err := Parse([]byte(`brand: ""`)); err == nil {
		t.Fatal("expected validation error for empty brand")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
	}{
		{"empty headline", func(s *Site) { s.Hero.Headline = "" }},
		{"empty bio", func(s *Site) { s.About.Bio = "  " }},
		{"no programs", func(s *Site) { s.Programs = nil }},
		{"unnamed program", func(s *Site) { s.Programs[0].Name = "" }},
		{"unpriced program", func(s *Site) { s.Programs[1].Price = "" }},
		{"anonymous transformation", func(s *Site) { s.Results[0].Client = "" }},
		{"empty testimonial", func(s *Site) { s.Testimonials[0].Quote = "" }},
		{"no goals", func(s *Site) { s.Contact.Goals = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Default()
			tt.mutate(&site)
			if err := site.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestContact_ParsedGoals(t *testing.T) {
	c := Contact{Goals: []string{
		"hypertrophy|Build muscle",
		"strength",
		"  ",
		" fat-loss | Lose fat ",
	}}

	want := []Goal{
		{Value: "hypertrophy", Label: "Build muscle"},
		{Value: "strength", Label: "strength"},
		{Value: "fat-loss", Label: "Lose fat"},
	}
	if diff := cmp.Diff(want, c.ParsedGoals()); diff != "" {
		t.Errorf("ParsedGoals mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		site, err := LoadOrDefault("")
		if err != nil {
			t.Fatalf("LoadOrDefault: %v", err)
		}
		if site.Brand != Default().Brand {
			t.Errorf("expected built-in content, got brand %q", site.Brand)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		site, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadOrDefault: %v", err)
		}
		if site.Brand != Default().Brand {
			t.Errorf("expected built-in content, got brand %q", site.Brand)
		}
	})

	t.Run("broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fitfolio.yaml")
		if err := os.WriteFile(path, []byte("brand: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Fatal("expected error for broken content file")
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fitfolio.yaml")
		if err := os.WriteFile(path, []byte("brand: Iron Works\n"), 0644); err != nil {
			t.Fatal(err)
		}
		site, err := LoadOrDefault(path)
		if err != nil {
			t.Fatalf("LoadOrDefault: %v", err)
		}
		if site.Brand != "Iron Works" {
			t.Errorf("brand = %q, want %q", site.Brand, "Iron Works")
		}
	})
}
