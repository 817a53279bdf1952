// Package svg renders quote cards as SVG documents.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/jsamuelsen/quote-card/internal/domain"
)

// FontStylesheetURL imports the web fonts the card may reference.
// The ampersands are pre-escaped because the URL is written into XML.
const FontStylesheetURL = "https://fonts.googleapis.com/css2?family=Roboto:wght@400;700" +
	"&amp;family=Ubuntu:wght@400;700&amp;family=Raleway:wght@400;700" +
	"&amp;family=JetBrains+Mono:wght@400;700&amp;family=Fira+Code:wght@400;700&amp;display=swap"

const (
	backgroundRadius = 10
	borderInset      = 5
	borderRadius     = 8
	borderStroke     = 2
)

// Renderer produces quote card SVG documents. The zero value is ready to use
// and safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out q using style and returns the card with its SVG document.
func (r *Renderer) Render(q domain.Quote, style domain.Style) *domain.Card {
	lines := Wrap(q.Text, style.Orientation.WrapWidth())
	width := style.Orientation.CanvasWidth()
	height := domain.CanvasHeight(len(lines))

	var sb strings.Builder
	writeDocument(&sb, q.Author, lines, style, width, height)

	return &domain.Card{
		Quote:  q,
		Style:  style,
		Lines:  lines,
		Width:  width,
		Height: height,
		SVG:    sb.String(),
	}
}

// RenderByName resolves theme, font and orientation by name and renders q.
// Unknown names fall back to the defaults.
func RenderByName(q domain.Quote, theme, font, orientation string) string {
	return NewRenderer().Render(q, domain.ResolveStyle(theme, font, orientation)).SVG
}

func writeDocument(w io.Writer, author string, lines []string, style domain.Style, width, height int) {
	canvas := svgo.New(w)
	canvas.Start(width, height)

	canvas.Def()
	fmt.Fprintf(canvas.Writer, "<style>\n  @import url('%s');\n</style>\n", FontStylesheetURL)
	canvas.DefEnd()

	canvas.Roundrect(0, 0, width, height, backgroundRadius, backgroundRadius,
		attr("fill", style.Theme.Background),
	)
	canvas.Roundrect(borderInset, borderInset, width-2*borderInset, height-2*borderInset, borderRadius, borderRadius,
		attr("fill", "none"),
		attr("stroke", style.Theme.Border),
		fmt.Sprintf(`stroke-width="%d"`, borderStroke),
	)

	canvas.Gid("quote")

	y := domain.FirstLineY()
	for i, line := range lines {
		fmt.Fprintf(canvas.Writer,
			`<text x="50%%" y="%d" text-anchor="middle" fill="%s" font-size="%d" font-family="%s">%s</text>`+"\n",
			y+i*domain.LineHeight, style.Theme.Text, domain.QuoteFontSize, style.Font.Family, EscapeText(line),
		)
	}

	authorY := y + len(lines)*domain.LineHeight + domain.AuthorGap
	fmt.Fprintf(canvas.Writer,
		`<text x="50%%" y="%d" text-anchor="middle" fill="%s" font-size="%d" font-family="%s" font-style="italic">— %s</text>`+"\n",
		authorY, style.Theme.Author, domain.AuthorFontSize, style.Font.Family, EscapeText(author),
	)

	canvas.Gend()
	canvas.End()
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, EscapeText(value))
}
