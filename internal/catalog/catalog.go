// Package catalog provides the read-only item catalog: categories of
// rankable items. Categories come from the built-in definitions or from a
// user-supplied YAML file; the rest of the tool never creates or mutates
// catalog records.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is an immutable catalog record. Glyph is presentation-only and is
// dropped before anything leaves the tool.
type Item struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Glyph string `json:"glyph,omitempty" yaml:"glyph,omitempty"`
}

// Category groups a fixed list of items under a name.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Item returns the item with the given id, if present.
func (c Category) Item(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// catalogFile is the on-disk shape of a user catalog.
type catalogFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadFile reads categories from a YAML catalog file.
func LoadFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	for _, cat := range f.Categories {
		if err := validate(cat); err != nil {
			return nil, fmt.Errorf("catalog category %q: %w", cat.ID, err)
		}
	}

	return f.Categories, nil
}

// Find returns the category with the given id from cats.
func Find(cats []Category, id string) (Category, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func validate(c Category) error {
	if c.ID == "" {
		return fmt.Errorf("missing id")
	}
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.ID == "" {
			return fmt.Errorf("item %q missing id", it.Name)
		}
		if it.Name == "" {
			return fmt.Errorf("item %q missing name", it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}
