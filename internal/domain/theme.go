package domain

import (
	"maps"
	"slices"
)

// DefaultThemeName is used whenever a caller asks for a theme that does not exist.
const DefaultThemeName = "radical"

// Theme is a named color palette for a quote card.
type Theme struct {
	Name       string
	Background string
	Border     string
	Text       string
	Author     string
}

var themes = map[string]Theme{
	"radical": {
		Name:       "radical",
		Background: "#141321",
		Border:     "#FE428E",
		Text:       "#A9FEF7",
		Author:     "#F8D847",
	},
	"dark": {
		Name:       "dark",
		Background: "#0D1117",
		Border:     "#58A6FF",
		Text:       "#C9D1D9",
		Author:     "#58A6FF",
	},
	"dracula": {
		Name:       "dracula",
		Background: "#282A36",
		Border:     "#FF79C6",
		Text:       "#F8F8F2",
		Author:     "#8BE9FD",
	},
	"tokyonight": {
		Name:       "tokyonight",
		Background: "#1A1B26",
		Border:     "#7AA2F7",
		Text:       "#A9B1D6",
		Author:     "#BB9AF7",
	},
	"monokai": {
		Name:       "monokai",
		Background: "#272822",
		Border:     "#E6DB74",
		Text:       "#F8F8F2",
		Author:     "#A6E22E",
	},
}

// LookupTheme returns the theme registered under name.
// Names are matched exactly.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ResolveTheme returns the named theme, or the radical theme if the name is unknown.
func ResolveTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}

	return themes[DefaultThemeName]
}

// ThemeNames lists the supported theme names in sorted order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}
