// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote is a quotation with its author.
// Quotes are values: the catalog hands out copies and nothing mutates them.
type Quote struct {
	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string
}

// Validate reports whether the quote can be rendered.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "must not be empty")
	}

	return nil
}

// BuiltinQuotes returns the quotes that ship with the service.
// A fresh slice is returned on each call so callers cannot alter the table.
func BuiltinQuotes() []Quote {
	out := make([]Quote, len(builtinQuotes))
	copy(out, builtinQuotes)

	return out
}

var builtinQuotes = []Quote{
	{Text: "Code is like humor. When you have to explain it, it's bad.", Author: "Cory House"},
	{Text: "First, solve the problem. Then, write the code.", Author: "John Johnson"},
	{Text: "Experience is the name everyone gives to their mistakes.", Author: "Oscar Wilde"},
	{Text: "In order to be irreplaceable, one must always be different.", Author: "Coco Chanel"},
	{Text: "Java is to JavaScript what car is to Carpet.", Author: "Chris Heilmann"},
	{Text: "Knowledge is power.", Author: "Francis Bacon"},
	{
		Text:   "Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging Monday's code.",
		Author: "Dan Salomon",
	},
	{
		Text:   "Perfection is achieved not when there is nothing more to add, but rather when there is nothing more to take away.",
		Author: "Antoine de Saint-Exupery",
	},
	{Text: "Code never lies, comments sometimes do.", Author: "Ron Jeffries"},
	{Text: "Simplicity is the soul of efficiency.", Author: "Austin Freeman"},
	{Text: "Before software can be reusable it first has to be usable.", Author: "Ralph Johnson"},
	{Text: "Make it work, make it right, make it fast.", Author: "Kent Beck"},
	{Text: "The best error message is the one that never shows up.", Author: "Thomas Fuchs"},
	{
		Text:   "Any fool can write code that a computer can understand. Good programmers write code that humans can understand.",
		Author: "Martin Fowler",
	},
	{Text: "Talk is cheap. Show me the code.", Author: "Linus Torvalds"},
}
