package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltin(t *testing.T) {
	cats := Builtin()
	if len(cats) == 0 {
		t.Fatal("expected built-in categories")
	}

	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true

		if err := validate(c); err != nil {
			t.Errorf("built-in category %q invalid: %v", c.ID, err)
		}
	}
}

func TestFind(t *testing.T) {
	cats := Builtin()

	cat, ok := Find(cats, "movies")
	if !ok {
		t.Fatal("movies category should exist")
	}
	if cat.Name != "Movies" {
		t.Errorf("name = %q, want Movies", cat.Name)
	}

	if _, ok := Find(cats, "nope"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestCategoryItem(t *testing.T) {
	cat, _ := Find(Builtin(), "movies")

	it, ok := cat.Item("inception")
	if !ok || it.Name != "Inception" {
		t.Errorf("Item(inception) = %+v, %v", it, ok)
	}

	if _, ok := cat.Item("nope"); ok {
		t.Error("unknown item should not be found")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `categories:
  - id: snacks
    name: Snacks
    items:
      - id: chips
        name: Chips
        glyph: "🍟"
      - id: popcorn
        name: Popcorn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "snacks" || len(cats[0].Items) != 2 {
		t.Errorf("unexpected catalog: %+v", cats)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing id":   "categories:\n  - name: NoID\n",
		"missing name": "categories:\n  - id: noname\n",
		"dup items":    "categories:\n  - id: c\n    name: C\n    items:\n      - {id: x, name: X}\n      - {id: x, name: X2}\n",
		"bad yaml":     "categories: [",
	}

	dir := t.TempDir()
	for name, content := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}
