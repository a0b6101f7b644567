package casestudy

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helmcode/interview-coach/pkg/model"
)

//go:embed cases.yaml
var defaultCatalog []byte

// Catalog is an immutable set of case studies keyed by id.
type Catalog struct {
	cases map[string]model.CaseStudy
	order []string
}

type catalogFile struct {
	Cases []model.CaseStudy `yaml:"cases"`
}

// Summary is the listing form of a case study.
type Summary struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Industry   string `json:"industry,omitempty" yaml:"industry,omitempty"`
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the bundled one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case studies: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Every case needs an id and a prompt, and ids
// must be unique.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing case studies: %w", err)
	}

	c := &Catalog{cases: make(map[string]model.CaseStudy, len(f.Cases))}
	for i, cs := range f.Cases {
		cs.ID = strings.TrimSpace(cs.ID)
		if cs.ID == "" {
			return nil, fmt.Errorf("case study #%d has no id", i+1)
		}
		if strings.TrimSpace(cs.Prompt) == "" {
			return nil, fmt.Errorf("case study %q has no prompt", cs.ID)
		}
		if _, dup := c.cases[cs.ID]; dup {
			return nil, fmt.Errorf("duplicate case study id %q", cs.ID)
		}
		cs.Prompt = strings.TrimSpace(cs.Prompt)
		cs.Context = strings.TrimSpace(cs.Context)
		c.cases[cs.ID] = cs
		c.order = append(c.order, cs.ID)
	}
	return c, nil
}

// Get looks up a case study by id.
func (c *Catalog) Get(id string) (model.CaseStudy, bool) {
	cs, ok := c.cases[strings.TrimSpace(id)]
	return cs, ok
}

// List returns summaries sorted by id.
func (c *Catalog) List() []Summary {
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)

	out := make([]Summary, 0, len(ids))
	for _, id := range ids {
		cs := c.cases[id]
		out = append(out, Summary{ID: cs.ID, Title: cs.Title, Industry: cs.Industry, Difficulty: cs.Difficulty})
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.cases)
}
