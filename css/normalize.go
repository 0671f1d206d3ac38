package css

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// unitlessProperties are numeric properties that never receive a unit.
var unitlessProperties = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"border-image-outset":       true,
	"border-image-slice":        true,
	"border-image-width":        true,
	"column-count":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-column-end":           true,
	"grid-column-start":         true,
	"grid-row":                  true,
	"grid-row-end":              true,
	"grid-row-start":            true,
	"line-clamp":                true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
	"fill-opacity":              true,
	"flood-opacity":             true,
	"stop-opacity":              true,
	"stroke-dasharray":          true,
	"stroke-dashoffset":         true,
	"stroke-miterlimit":         true,
	"stroke-opacity":            true,
	"stroke-width":              true,
}

// timeProperties are numeric properties measured in milliseconds.
var timeProperties = map[string]bool{
	"animation-delay":     true,
	"animation-duration":  true,
	"transition-delay":    true,
	"transition-duration": true,
}

// colorProperties get their values parsed as colors under strict validation.
var colorProperties = map[string]bool{
	"accent-color":              true,
	"background-color":          true,
	"border-bottom-color":       true,
	"border-color":              true,
	"border-inline-end-color":   true,
	"border-inline-start-color": true,
	"border-left-color":         true,
	"border-right-color":        true,
	"border-top-color":          true,
	"caret-color":               true,
	"color":                     true,
	"outline-color":             true,
	"text-decoration-color":     true,
}

// cssWideKeywords are valid for any property and skip domain validation.
var cssWideKeywords = map[string]bool{
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"revert":       true,
	"unset":        true,
}

const importantSuffix = "!important"

// normalizeValue converts a raw style value into canonical CSS value text
// for the given physical property. Numbers get a default unit injected
// ("px", "ms" for time properties) unless the property is unitless; the
// value 0 keeps its unit too, "0px" not "0". The returned important flag is
// set when a string value carries an !important marker.
func normalizeValue(property string, v Value, strict bool) (text string, important bool, err error) {
	switch v.Kind {
	case ValueNumber:
		return normalizeNumber(property, v.Number)
	case ValueString:
		return normalizeString(property, v.Text, strict)
	default:
		return "", false, &UnsupportedValueError{
			Property: property,
			Reason:   "nested blocks are not allowed here",
		}
	}
}

func normalizeNumber(property string, n float64) (string, bool, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "", false, &UnsupportedValueError{
			Property: property,
			Value:    strconv.FormatFloat(n, 'g', -1, 64),
			Reason:   "numeric values must be finite",
		}
	}
	// 'f' never switches to exponent notation, keeping the text a plain
	// CSS number for any magnitude.
	text := strconv.FormatFloat(n, 'f', -1, 64)
	switch {
	case unitlessProperties[property]:
		return text, false, nil
	case timeProperties[property]:
		return text + "ms", false, nil
	default:
		return text + "px", false, nil
	}
}

func normalizeString(property, raw string, strict bool) (string, bool, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false, &UnsupportedValueError{
			Property: property,
			Value:    raw,
			Reason:   "string values must be non-empty",
		}
	}

	var important bool
	if tail := strings.TrimSuffix(text, importantSuffix); tail != text {
		important = true
		text = strings.TrimSpace(tail)
		if text == "" {
			return "", false, &UnsupportedValueError{
				Property: property,
				Value:    raw,
				Reason:   "!important needs a value",
			}
		}
	}

	// Characters that would terminate the declaration or smuggle in another
	// one change the meaning of the rule, escaping them would too.
	if strings.ContainsAny(text, ";{}") || strings.Contains(text, "!") {
		return "", false, &UnsupportedValueError{
			Property: property,
			Value:    raw,
			Reason:   "value contains declaration-terminating characters",
		}
	}

	if strict {
		if err := validateStrict(property, text); err != nil {
			return "", false, err
		}
	}

	if important {
		text += importantSuffix
	}
	return text, important, nil
}

// validateStrict tokenizes the value text and, for color-valued properties,
// parses plain values as colors.
func validateStrict(property, text string) error {
	lexer := cssparse.NewLexer(parse.NewInputString(text))
	for {
		tt, _ := lexer.Next()
		if tt != cssparse.ErrorToken {
			continue
		}
		if err := lexer.Err(); err != nil && err != io.EOF {
			return &UnsupportedValueError{
				Property: property,
				Value:    text,
				Reason:   "value does not tokenize as CSS: " + err.Error(),
			}
		}
		break
	}

	// Functional notation (var(), color-mix(), ...) and CSS-wide keywords
	// are left alone, only plain color values are checked.
	if colorProperties[property] && !strings.Contains(text, "(") && !cssWideKeywords[strings.ToLower(text)] {
		if _, err := csscolorparser.Parse(text); err != nil {
			return &UnsupportedValueError{
				Property: property,
				Value:    text,
				Reason:   "not a valid color value",
			}
		}
	}
	return nil
}
