package catalog

// CatalogVersion is the version of the built-in category definitions.
// Bump this when built-in content changes.
const CatalogVersion = "0.1.0"

// Builtin returns the bundled starter categories. These make the tool usable
// without any catalog file; a user catalog loaded via LoadFile is appended
// after these, so built-in ids should not be reused.
func Builtin() []Category {
	return []Category{
		{
			ID:   "movies",
			Name: "Movies",
			Items: []Item{
				{ID: "inception", Name: "Inception", Glyph: "🌀"},
				{ID: "the-matrix", Name: "The Matrix", Glyph: "💊"},
				{ID: "interstellar", Name: "Interstellar", Glyph: "🚀"},
				{ID: "parasite", Name: "Parasite", Glyph: "🏠"},
				{ID: "spirited-away", Name: "Spirited Away", Glyph: "🐉"},
				{ID: "the-godfather", Name: "The Godfather", Glyph: "🎩"},
				{ID: "alien", Name: "Alien", Glyph: "👽"},
				{ID: "jaws", Name: "Jaws", Glyph: "🦈"},
			},
		},
		{
			ID:   "languages",
			Name: "Programming Languages",
			Items: []Item{
				{ID: "go", Name: "Go", Glyph: "🐹"},
				{ID: "rust", Name: "Rust", Glyph: "🦀"},
				{ID: "python", Name: "Python", Glyph: "🐍"},
				{ID: "typescript", Name: "TypeScript", Glyph: "🔷"},
				{ID: "zig", Name: "Zig", Glyph: "⚡"},
				{ID: "haskell", Name: "Haskell", Glyph: "λ"},
				{ID: "c", Name: "C", Glyph: "🔧"},
			},
		},
		{
			ID:   "breakfast",
			Name: "Breakfast Foods",
			Items: []Item{
				{ID: "pancakes", Name: "Pancakes", Glyph: "🥞"},
				{ID: "waffles", Name: "Waffles", Glyph: "🧇"},
				{ID: "bagel", Name: "Bagel", Glyph: "🥯"},
				{ID: "croissant", Name: "Croissant", Glyph: "🥐"},
				{ID: "eggs", Name: "Eggs", Glyph: "🍳"},
				{ID: "cereal", Name: "Cereal", Glyph: "🥣"},
			},
		},
	}
}
