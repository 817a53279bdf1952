package domain

import (
	"maps"
	"slices"
)

// DefaultFontName is used whenever a caller asks for a font that does not exist.
const DefaultFontName = "segoe"

// Font pairs a short name with the CSS font-family declaration emitted into the card.
type Font struct {
	Name   string
	Family string
}

var fonts = map[string]Font{
	"segoe":     {Name: "segoe", Family: "'Segoe UI', Ubuntu, sans-serif"},
	"roboto":    {Name: "roboto", Family: "'Roboto', sans-serif"},
	"ubuntu":    {Name: "ubuntu", Family: "'Ubuntu', sans-serif"},
	"raleway":   {Name: "raleway", Family: "'Raleway', sans-serif"},
	"jetbrains": {Name: "jetbrains", Family: "'JetBrains Mono', monospace"},
	"cascadia":  {Name: "cascadia", Family: "'Cascadia Code', monospace"},
	"fira":      {Name: "fira", Family: "'Fira Code', monospace"},
}

// LookupFont returns the font registered under name.
func LookupFont(name string) (Font, bool) {
	f, ok := fonts[name]
	return f, ok
}

// ResolveFont returns the named font, falling back to segoe.
func ResolveFont(name string) Font {
	if f, ok := fonts[name]; ok {
		return f
	}

	return fonts[DefaultFontName]
}

// FontNames lists the supported font names in sorted order.
func FontNames() []string {
	return slices.Sorted(maps.Keys(fonts))
}
