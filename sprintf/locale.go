package sprintf

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// converter turns a single value into its plain-text conversion, applying
// a modifier and conversion term of the specifier grammar. A converter with
// a nil printer performs invariant (non-localized) conversion.
type converter struct {
	printer *message.Printer
}

func newConverter(lang language.Tag) converter {
	if lang == language.Und {
		return converter{} // no localization, raw conversion
	}
	return converter{printer: message.NewPrinter(lang)}
}

// convert applies "%<mod><verb>" to arg. A verb/operand combination which
// the conversion primitive rejects surfaces as ErrUnsupportedConversion;
// the primitive's diagnostic is carried along verbatim.
func (c converter) convert(mod, verb string, arg interface{}) (string, error) {
	f := "%" + mod + verb
	var s string
	if c.printer == nil {
		s = fmt.Sprintf(f, arg)
	} else {
		s = c.printer.Sprintf(f, arg)
	}
	// fmt reports bad verb/operand pairings in-band with a "%!" marker.
	// The argument's own content may legitimately contain "%!", so only a
	// marker the conversion itself introduced counts as a rejection.
	if strings.Count(s, "%!") > strings.Count(fmt.Sprint(arg), "%!") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedConversion, s)
	}
	return s, nil
}

// ambientLanguage detects the calling user's locale. It falls back to
// English if detection or parsing fails.
func ambientLanguage() language.Tag {
	loc, err := jibber_jabber.DetectIETF()
	if err != nil {
		tracer().Debugf("sprintf: cannot detect ambient locale: %v", err)
		return language.English
	}
	lang, err := language.Parse(loc)
	if err != nil {
		tracer().Debugf("sprintf: cannot parse ambient locale %q: %v", loc, err)
		return language.English
	}
	return lang
}
