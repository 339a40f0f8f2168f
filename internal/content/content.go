// Package content defines the site copy for the fitfolio page: hero, bio,
// transformation gallery, pricing plans, testimonials, and the contact block.
// Content is literal data; it carries no behavior beyond loading and
// validation. Long-form fields (the bio, testimonial quotes) are authored as
// markdown and rendered by the display layer.
package content

import (
	"fmt"
	"strings"
)

// Site is the root content document.
type Site struct {
	Brand   string `yaml:"brand"`
	Tagline string `yaml:"tagline"`

	Hero         Hero             `yaml:"hero"`
	About        About            `yaml:"about"`
	Results      []Transformation `yaml:"results"`
	Programs     []Plan           `yaml:"programs"`
	Testimonials []Testimonial    `yaml:"testimonials"`
	Contact      Contact          `yaml:"contact"`
}

// Hero is the opening section: the pitch above the fold.
type Hero struct {
	Headline string `yaml:"headline"`
	Subhead  string `yaml:"subhead"`
	CTA      string `yaml:"cta"`
}

// About is the trainer bio block. Bio is markdown.
type About struct {
	Heading     string   `yaml:"heading"`
	Bio         string   `yaml:"bio"`
	Credentials []string `yaml:"credentials"`
}

// Transformation is one before/after entry in the results gallery.
type Transformation struct {
	Client   string `yaml:"client"`
	Duration string `yaml:"duration"`
	Before   string `yaml:"before"`
	After    string `yaml:"after"`
	Note     string `yaml:"note"`
}

// Plan is one column of the pricing table.
type Plan struct {
	Name      string   `yaml:"name"`
	Price     string   `yaml:"price"`
	Period    string   `yaml:"period"`
	Features  []string `yaml:"features"`
	Highlight bool     `yaml:"highlight"`
}

// Testimonial is a client quote. Quote is markdown.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Detail string `yaml:"detail"`
}

// Contact is the closing section with the inert enquiry form. Goals feed the
// training-goal dropdown; each entry is "value|label" or a bare value.
type Contact struct {
	Heading string   `yaml:"heading"`
	Blurb   string   `yaml:"blurb"`
	Email   string   `yaml:"email"`
	Phone   string   `yaml:"phone"`
	Goals   []string `yaml:"goals"`
}

// Goal is a parsed training-goal dropdown entry.
type Goal struct {
	Value string
	Label string
}

// ParsedGoals returns the contact goals split into value/label pairs.
func (c Contact) ParsedGoals() []Goal {
	goals := make([]Goal, 0, len(c.Goals))
	for _, raw := range c.Goals {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		value, label, found := strings.Cut(raw, "|")
		if !found {
			label = value
		}
		goals = append(goals, Goal{Value: strings.TrimSpace(value), Label: strings.TrimSpace(label)})
	}
	return goals
}

// Validate checks the document for the holes that would render as blank
// blocks. It reports the first problem found.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Brand) == "" {
		return fmt.Errorf("brand is required")
	}
	if strings.TrimSpace(s.Hero.Headline) == "" {
		return fmt.Errorf("hero headline is required")
	}
	if strings.TrimSpace(s.About.Bio) == "" {
		return fmt.Errorf("about bio is required")
	}
	if len(s.Programs) == 0 {
		return fmt.Errorf("at least one pricing plan is required")
	}
	for i, p := range s.Programs {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("program %d has no name", i)
		}
		if strings.TrimSpace(p.Price) == "" {
			return fmt.Errorf("program %q has no price", p.Name)
		}
	}
	for i, tr := range s.Results {
		if strings.TrimSpace(tr.Client) == "" {
			return fmt.Errorf("transformation %d has no client name", i)
		}
	}
	for i, ts := range s.Testimonials {
		if strings.TrimSpace(ts.Quote) == "" {
			return fmt.Errorf("testimonial %d has no quote", i)
		}
	}
	if len(s.Contact.ParsedGoals()) == 0 {
		return fmt.Errorf("contact goals are required")
	}
	return nil
}
