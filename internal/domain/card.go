package domain

// Orientation selects the card layout.
type Orientation string

const (
	// Horizontal is the wide layout and the default.
	Horizontal Orientation = "horizontal"

	// Vertical is the narrow layout.
	Vertical Orientation = "vertical"
)

// Layout constants shared by every card, in pixels unless noted.
const (
	HorizontalWidth = 800
	VerticalWidth   = 500

	// Wrap widths are character counts, not pixels.
	HorizontalWrapWidth = 80
	VerticalWrapWidth   = 50

	LineHeight      = 24
	Padding         = 30
	AuthorAllowance = 30
	AuthorGap       = 20

	QuoteFontSize  = 18
	AuthorFontSize = 16
)

// ParseOrientation maps a request value to an orientation.
// Only the exact string "vertical" selects the vertical layout.
func ParseOrientation(s string) Orientation {
	if s == string(Vertical) {
		return Vertical
	}

	return Horizontal
}

// CanvasWidth is the SVG width for the orientation.
func (o Orientation) CanvasWidth() int {
	if o == Vertical {
		return VerticalWidth
	}

	return HorizontalWidth
}

// WrapWidth is the maximum number of characters per quote line.
func (o Orientation) WrapWidth() int {
	if o == Vertical {
		return VerticalWrapWidth
	}

	return HorizontalWrapWidth
}

// CanvasHeight returns the SVG height for a quote wrapped into lineCount lines.
func CanvasHeight(lineCount int) int {
	return lineCount*LineHeight + AuthorAllowance + Padding + AuthorGap
}

// FirstLineY is the baseline of the first quote line.
func FirstLineY() int {
	return Padding + AuthorGap
}

// Style is the fully resolved presentation of a card.
type Style struct {
	Theme       Theme
	Font        Font
	Orientation Orientation
}

// ResolveStyle turns raw request values into a Style. It never fails:
// unknown values fall back to the defaults.
func ResolveStyle(themeName, fontName, orientation string) Style {
	return Style{
		Theme:       ResolveTheme(themeName),
		Font:        ResolveFont(fontName),
		Orientation: ParseOrientation(orientation),
	}
}

// Card is a rendered quote card.
type Card struct {
	Quote  Quote
	Style  Style
	Lines  []string
	Width  int
	Height int

	// SVG is the complete document.
	SVG string
}
