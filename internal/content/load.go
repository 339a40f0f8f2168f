package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fitfolio/internal/logging"
)

// Load reads a site content file. The file is a partial override: fields the
// document leaves empty keep their built-in defaults, so a content file can
// be as small as a brand name and a new headline.
func Load(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content on top of the defaults and validates the result.
func Parse(data []byte) (Site, error) {
	site := Default()
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, fmt.Errorf("invalid content: %w", err)
	}
	logging.ContentDebug("parsed content: brand=%q programs=%d results=%d testimonials=%d",
		site.Brand, len(site.Programs), len(site.Results), len(site.Testimonials))
	return site, nil
}

// LoadOrDefault loads the content file at path, falling back to the built-in
// content when path is empty or the file does not exist. A file that exists
// but fails to parse is still an error: silently showing default copy over a
// broken edit would hide the mistake from the author.
func LoadOrDefault(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Content("content file %s not found, using built-in content", path)
		return Default(), nil
	}
	return Load(path)
}
