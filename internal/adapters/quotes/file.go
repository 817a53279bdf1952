package quotes

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/quote-card/internal/domain"
)

// fileEntry is one quote as written in a quotes file.
type fileEntry struct {
	Text   string `koanf:"text"   validate:"quotetext"`
	Author string `koanf:"author"`
}

// quotesFile is the layout of a quotes file:
//
//	quotes:
//	  - text: "Simplicity is prerequisite for reliability."
//	    author: "Edsger W. Dijkstra"
type quotesFile struct {
	Quotes []fileEntry `koanf:"quotes" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("quotetext", validateQuoteText); err != nil {
		panic(fmt.Sprintf("registering quotetext validation: %v", err))
	}

	return v
}

// validateQuoteText applies the domain rule for quote text.
func validateQuoteText(fl validator.FieldLevel) bool {
	return domain.Quote{Text: fl.Field().String()}.Validate() == nil
}

// LoadFile reads additional quotes from a YAML file.
// Every entry must have non-blank text; the author may be empty.
func LoadFile(path string) ([]domain.Quote, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading quotes file %q: %w", path, err)
	}

	var qf quotesFile
	if err := k.Unmarshal("", &qf); err != nil {
		return nil, fmt.Errorf("decoding quotes file %q: %w", path, err)
	}

	if err := validate.Struct(qf); err != nil {
		return nil, fmt.Errorf("quotes file %q: %w", path, toDomainError(err))
	}

	out := make([]domain.Quote, 0, len(qf.Quotes))
	for _, e := range qf.Quotes {
		out = append(out, domain.Quote{Text: e.Text, Author: e.Author})
	}

	return out, nil
}

// toDomainError reports the first failing field as a domain validation error.
func toDomainError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("quotes", err.Error())
	}

	return domain.NewValidationError(verrs[0].Namespace(), "must not be empty")
}
