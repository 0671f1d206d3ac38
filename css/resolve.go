package css

import "strings"

// shorthandProperties expands a shorthand into its ordered longhands. Every
// longhand receives the shorthand's value and is then resolved on its own,
// so logical longhands still go through direction mapping. Tables are data:
// new properties are added here, not as code branches.
var shorthandProperties = map[string][]string{
	"margin":         {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding":        {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"inset":          {"top", "right", "bottom", "left"},
	"inset-inline":   {"inset-inline-start", "inset-inline-end"},
	"inset-block":    {"top", "bottom"},
	"margin-inline":  {"margin-inline-start", "margin-inline-end"},
	"margin-block":   {"margin-top", "margin-bottom"},
	"padding-inline": {"padding-inline-start", "padding-inline-end"},
	"padding-block":  {"padding-top", "padding-bottom"},
	"border-width":   {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-style":   {"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"},
	"border-color":   {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"border-radius":  {"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
	"overflow":       {"overflow-x", "overflow-y"},
	"gap":            {"row-gap", "column-gap"},
}

// logicalEntry maps one logical property to its physical renderings.
type logicalEntry struct {
	logical string // direction-agnostic CSS property (ModeLogical)
	ltr     string // physical property for left-to-right (ModePhysical)
	rtl     string // physical property for right-to-left (ModePhysical)
}

// logicalProperties resolves start/end concepts. In logical mode the output
// is the standard logical property and no RTL variant is needed; in physical
// mode the ltr/rtl pair is used and a variant is derived when they differ.
var logicalProperties = map[string]logicalEntry{
	"start":                      {"inset-inline-start", "left", "right"},
	"end":                        {"inset-inline-end", "right", "left"},
	"inset-inline-start":         {"inset-inline-start", "left", "right"},
	"inset-inline-end":           {"inset-inline-end", "right", "left"},
	"margin-start":               {"margin-inline-start", "margin-left", "margin-right"},
	"margin-end":                 {"margin-inline-end", "margin-right", "margin-left"},
	"margin-inline-start":        {"margin-inline-start", "margin-left", "margin-right"},
	"margin-inline-end":          {"margin-inline-end", "margin-right", "margin-left"},
	"padding-start":              {"padding-inline-start", "padding-left", "padding-right"},
	"padding-end":                {"padding-inline-end", "padding-right", "padding-left"},
	"padding-inline-start":       {"padding-inline-start", "padding-left", "padding-right"},
	"padding-inline-end":         {"padding-inline-end", "padding-right", "padding-left"},
	"border-start-width":         {"border-inline-start-width", "border-left-width", "border-right-width"},
	"border-end-width":           {"border-inline-end-width", "border-right-width", "border-left-width"},
	"border-inline-start-width":  {"border-inline-start-width", "border-left-width", "border-right-width"},
	"border-inline-end-width":    {"border-inline-end-width", "border-right-width", "border-left-width"},
	"border-start-color":         {"border-inline-start-color", "border-left-color", "border-right-color"},
	"border-end-color":           {"border-inline-end-color", "border-right-color", "border-left-color"},
	"border-inline-start-color":  {"border-inline-start-color", "border-left-color", "border-right-color"},
	"border-inline-end-color":    {"border-inline-end-color", "border-right-color", "border-left-color"},
	"border-start-style":         {"border-inline-start-style", "border-left-style", "border-right-style"},
	"border-end-style":           {"border-inline-end-style", "border-right-style", "border-left-style"},
	"border-inline-start-style":  {"border-inline-start-style", "border-left-style", "border-right-style"},
	"border-inline-end-style":    {"border-inline-end-style", "border-right-style", "border-left-style"},
	"border-top-start-radius":    {"border-start-start-radius", "border-top-left-radius", "border-top-right-radius"},
	"border-top-end-radius":      {"border-start-end-radius", "border-top-right-radius", "border-top-left-radius"},
	"border-bottom-start-radius": {"border-end-start-radius", "border-bottom-left-radius", "border-bottom-right-radius"},
	"border-bottom-end-radius":   {"border-end-end-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
}

// directionalValueProperties take the logical keywords "start"/"end" as
// values. In physical mode those values render as left/right and mirror in
// the RTL variant; in logical mode they pass through unchanged.
var directionalValueProperties = map[string]bool{
	"clear":      true,
	"float":      true,
	"text-align": true,
}

// resolved is one declaration with everything later stages need: the LTR
// rendering, the RTL rendering when the declaration is direction-sensitive,
// and the !important flag feeding priority assignment.
type resolved struct {
	ltr         Declaration
	rtl         Declaration // meaningful only when directional is set
	directional bool
	important   bool
}

// dashify converts a camelCase property key to kebab-case:
// "backgroundColor" becomes "background-color", a leading capital marks a
// vendor prefix ("WebkitTransition" becomes "-webkit-transition").
// Kebab-case input comes back unchanged.
func dashify(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validPropertyKey reports whether the dashified key is usable as a CSS
// property name. Anything else would break out of the declaration.
func validPropertyKey(key string) bool {
	if key == "" || (key[0] >= '0' && key[0] <= '9') {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// resolveStyle turns an input style definition into an ordered set of
// resolved declarations: shorthand expansion first, then logical-to-physical
// mapping, then value normalization. A physical property occurring twice
// keeps its first position and the later value, so a later entry still wins
// the cascade without disturbing declaration order.
func resolveStyle(style Style, opts Options) ([]resolved, error) {
	out := make([]resolved, 0, len(style))
	index := make(map[string]int, len(style))

	push := func(r resolved) {
		if at, ok := index[r.ltr.Property]; ok {
			out[at] = r
			return
		}
		index[r.ltr.Property] = len(out)
		out = append(out, r)
	}

	for _, p := range style {
		key := dashify(p.Key)
		if !validPropertyKey(key) {
			return nil, &UnsupportedValueError{
				Property: p.Key,
				Reason:   "property name is not a valid CSS identifier",
			}
		}

		longhands, isShorthand := shorthandProperties[key]
		if !isShorthand {
			longhands = []string{key}
		}
		for _, longhand := range longhands {
			r, err := resolveLonghand(longhand, p.Value, opts)
			if err != nil {
				return nil, err
			}
			push(r)
		}
	}
	return out, nil
}

// resolveLonghand resolves a single (already expanded) property.
func resolveLonghand(key string, v Value, opts Options) (resolved, error) {
	if entry, ok := logicalProperties[key]; ok {
		text, important, err := normalizeValue(entry.logical, v, opts.Strict)
		if err != nil {
			return resolved{}, err
		}
		if opts.Mode == ModeLogical {
			return resolved{
				ltr:       Declaration{Property: entry.logical, Value: text},
				important: important,
			}, nil
		}
		return resolved{
			ltr:         Declaration{Property: entry.ltr, Value: text},
			rtl:         Declaration{Property: entry.rtl, Value: text},
			directional: entry.ltr != entry.rtl,
			important:   important,
		}, nil
	}

	// Compatibility fallback: a property absent from every table passes
	// through unchanged unless strict validation was requested.
	if opts.Strict && !knownProperty(key) {
		return resolved{}, &UnknownPropertyError{Property: key}
	}

	text, important, err := normalizeValue(key, v, opts.Strict)
	if err != nil {
		return resolved{}, err
	}

	if opts.Mode == ModePhysical && directionalValueProperties[key] {
		if flipped, ok := mirrorKeyword(text); ok {
			return resolved{
				ltr:         Declaration{Property: key, Value: keywordToPhysical(text, false)},
				rtl:         Declaration{Property: key, Value: flipped},
				directional: true,
				important:   important,
			}, nil
		}
	}

	return resolved{
		ltr:       Declaration{Property: key, Value: text},
		important: important,
	}, nil
}

// mirrorKeyword maps a start/end keyword to its RTL physical rendering.
func mirrorKeyword(text string) (string, bool) {
	switch text {
	case "start":
		return "right", true
	case "end":
		return "left", true
	default:
		return "", false
	}
}

// keywordToPhysical maps a start/end keyword to a physical side.
func keywordToPhysical(text string, rtl bool) string {
	switch text {
	case "start":
		if rtl {
			return "right"
		}
		return "left"
	case "end":
		if rtl {
			return "left"
		}
		return "right"
	default:
		return text
	}
}
