package cascade

import (
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"go.uber.org/multierr"
)

// Validate checks a style sheet against a schema. It reports every
// declaration of an unknown attribute as a style.UnknownAttributeError,
// combined with multierr. Such declarations are ignored by the cascade, so
// these errors are warnings, never reasons to reject a style sheet.
func Validate(sheet *cssom.StyleSheet, schema *style.Schema) error {
	var errs error
	for i := 0; i < sheet.Len(); i++ {
		for _, a := range sheet.Rule(i).Attributes {
			if !schema.Knows(a.Name) {
				err := style.UnknownAttributeError{Name: a.Name, Rule: i}
				tracer().Infof("%v", err)
				errs = multierr.Append(errs, err)
			}
		}
	}
	return errs
}
