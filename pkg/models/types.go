package models

import "fmt"

// Tutorial categories. Seller tutorials cover the mobile point-of-sale app,
// admin tutorials cover the web back office.
const (
	CategorySeller = "seller"
	CategoryAdmin  = "admin"
)

// Step is one page of a tutorial
type Step struct {
	Title        string   `yaml:"title" json:"title"`
	Body         string   `yaml:"body" json:"body"`
	Instructions []string `yaml:"instructions" json:"instructions"`
}

// Tutorial is a named, ordered sequence of steps
type Tutorial struct {
	Key      string `yaml:"key" json:"key"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	Steps    []Step `yaml:"steps" json:"steps"`
}

// Catalog maps tutorial keys to tutorials. It is built once and never
// mutated afterwards, so it can be shared between readers.
type Catalog struct {
	tutorials []*Tutorial
	byKey     map[string]*Tutorial
}

// NewCatalog builds a catalog preserving the given order.
// Keys must be unique and every tutorial needs at least one step.
func NewCatalog(tutorials []*Tutorial) (*Catalog, error) {
	c := &Catalog{
		tutorials: make([]*Tutorial, 0, len(tutorials)),
		byKey:     make(map[string]*Tutorial, len(tutorials)),
	}

	for i, t := range tutorials {
		if t == nil {
			return nil, fmt.Errorf("tutorial #%d is empty", i+1)
		}
		if t.Key == "" {
			return nil, fmt.Errorf("tutorial #%d (%q) has no key", i+1, t.Title)
		}
		if _, exists := c.byKey[t.Key]; exists {
			return nil, fmt.Errorf("duplicate tutorial key: %s", t.Key)
		}
		if len(t.Steps) == 0 {
			return nil, fmt.Errorf("tutorial %s has no steps", t.Key)
		}
		if t.Category == "" {
			t.Category = CategoryAdmin
		}
		c.tutorials = append(c.tutorials, t)
		c.byKey[t.Key] = t
	}

	return c, nil
}

// Get looks up a tutorial by key
func (c *Catalog) Get(key string) (*Tutorial, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.byKey[key]
	return t, ok
}

// Tutorials returns all tutorials in catalog order
func (c *Catalog) Tutorials() []*Tutorial {
	if c == nil {
		return nil
	}
	out := make([]*Tutorial, len(c.tutorials))
	copy(out, c.tutorials)
	return out
}

// Keys returns the tutorial keys in catalog order
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.tutorials))
	for _, t := range c.tutorials {
		keys = append(keys, t.Key)
	}
	return keys
}

// ByCategory returns the tutorials of one category, in catalog order
func (c *Catalog) ByCategory(category string) []*Tutorial {
	if c == nil {
		return nil
	}
	var out []*Tutorial
	for _, t := range c.tutorials {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of tutorials
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tutorials)
}

// ScreenshotIndex maps tutorial titles to the screenshot file of each step.
// Titles listed in Seller live in the seller asset folder, all others in
// the admin folder.
type ScreenshotIndex struct {
	Files  map[string][]string `yaml:"files" json:"files"`
	Seller []string            `yaml:"seller" json:"seller"`
}

// IsSeller reports whether a tutorial title belongs to the seller set
func (s *ScreenshotIndex) IsSeller(title string) bool {
	if s == nil {
		return false
	}
	for _, t := range s.Seller {
		if t == title {
			return true
		}
	}
	return false
}

// Lookup returns the screenshot filenames mapped to a title
func (s *ScreenshotIndex) Lookup(title string) ([]string, bool) {
	if s == nil || s.Files == nil {
		return nil, false
	}
	files, ok := s.Files[title]
	return files, ok
}
