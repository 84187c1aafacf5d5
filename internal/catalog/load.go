package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBank []byte

// bankFile mirrors the YAML layout of the question bank. Per-question
// options/weight fall back to the file-level defaults when omitted.
type bankFile struct {
	Options   []string        `yaml:"options"`
	Areas     map[string]Area `yaml:"areas"`
	Questions []Question      `yaml:"questions"`
}

// Load reads and validates a question bank from path. An empty path loads
// the embedded default bank.
func Load(path string) (*Catalog, error) {
	data := defaultBank
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading question bank %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML question bank and validates it.
func Parse(data []byte) (*Catalog, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}

	c := &Catalog{
		Areas:     file.Areas,
		Questions: file.Questions,
	}
	for i := range c.Questions {
		if len(c.Questions[i].Options) == 0 {
			c.Questions[i].Options = file.Options
		}
		if c.Questions[i].Weight == 0 {
			c.Questions[i].Weight = 1.0
		}
	}
	// Report areas in the order questions first reference them, so the
	// breakdown is stable regardless of YAML map iteration.
	seen := make(map[string]bool, len(c.Areas))
	for _, q := range c.Questions {
		if !seen[q.Area] {
			seen[q.Area] = true
			c.AreaOrder = append(c.AreaOrder, q.Area)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid question bank: %w", err)
	}
	c.index()
	return c, nil
}
