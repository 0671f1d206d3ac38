// Package css compiles declarative style definitions into deterministic,
// content-addressed atomic CSS fragments. Given a style object it produces a
// stable short identifier (class or animation name), the CSS text realizing
// it, and the ordering metadata needed to merge many fragments into one
// stylesheet. The compiler is a pure function: no state is kept between
// calls, identical input always yields identical output on every platform.
package css

import "fmt"

// ValueKind discriminates the shapes a style-definition value can take.
type ValueKind int

const (
	ValueString ValueKind = iota // a CSS token string
	ValueNumber                  // a numeric magnitude, unit injected during normalization
	ValueBlock                   // a nested declaration block (pseudo-class or at-rule)
)

// Value is a single style-definition value. Exactly one of Text, Number or
// Block is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Block  Style
}

// Str wraps a CSS token string.
func Str(s string) Value { return Value{Kind: ValueString, Text: s} }

// Num wraps a numeric magnitude.
func Num(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// Nested wraps a nested declaration block keyed by a pseudo-class or at-rule.
func Nested(s Style) Value { return Value{Kind: ValueBlock, Block: s} }

// Property is one input property/value pair.
type Property struct {
	Key   string
	Value Value
}

// Style is an ordered style definition. Order is significant: it fixes both
// the declaration order of the emitted CSS and the canonical input of the
// content hash, so two definitions with the same pairs in a different order
// are different styles.
type Style []Property

// Get returns the value for a property key and whether it is present.
func (s Style) Get(key string) (Value, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Frame is a single keyframe: a selector ("from", "to" or a percentage such
// as "50%") with its declarations.
type Frame struct {
	Selector string
	Style    Style
}

// Keyframes is an ordered keyframes definition. Selectors must be unique and
// at least one frame is required.
type Keyframes []Frame

// Declaration is one resolved physical CSS declaration: kebab-case property
// name and canonical value text.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered, duplicate-free set of resolved declarations.
type Declarations []Declaration

// CompiledRule is the result of one compilation.
type CompiledRule struct {
	Identifier string
	LTR        string
	RTL        *string // nil when no declaration is direction-sensitive
	Priority   int
}

// Category tags the kind of rule an identifier names. The category suffix is
// part of the identifier, so identifiers from different categories never
// collide even when their hash input coincides.
type Category int

const (
	CategoryStyle     Category = iota // plain declaration rule, suffix "s"
	CategoryKeyframes                 // @keyframes rule, suffix "k"
)

func (c Category) String() string {
	switch c {
	case CategoryStyle:
		return "style"
	case CategoryKeyframes:
		return "keyframes"
	default:
		// this should never happen
		panic("unsupported rule category")
	}
}

// suffix returns the single identifier character reserved for the category.
func (c Category) suffix() string {
	switch c {
	case CategoryStyle:
		return "s"
	case CategoryKeyframes:
		return "k"
	default:
		// this should never happen
		panic("unsupported rule category")
	}
}

// Mode selects how logical (start/end) properties resolve.
type Mode int

const (
	// ModeLogical emits direction-agnostic logical properties
	// (inset-inline-start and friends). No RTL variants are needed.
	ModeLogical Mode = iota
	// ModePhysical emits legacy left/right physical properties and derives
	// an RTL variant whenever a declaration is direction-sensitive.
	ModePhysical
)

// Options control a compilation. The zero value (and nil) compiles in
// logical mode with permissive validation.
type Options struct {
	Mode Mode
	// Strict rejects unknown properties and values whose shape does not fit
	// the property's domain. Default is pass-through so one bad entry does
	// not fail a whole compilation batch.
	Strict bool
}

func (o *Options) orDefault() Options {
	if o == nil {
		return Options{}
	}
	return *o
}

// UnsupportedValueError reports a value whose shape is incompatible with its
// property's expected domain.
type UnsupportedValueError struct {
	Property string
	Value    string
	Reason   string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value %q for property %q: %s", e.Value, e.Property, e.Reason)
}

// UnknownPropertyError reports a property absent from the resolver tables.
// It is raised only under strict validation, default mode passes the
// property through unchanged.
type UnknownPropertyError struct {
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property %q", e.Property)
}

// MalformedKeyframesError reports a keyframes definition with no frames, a
// bad selector, or a duplicate selector.
type MalformedKeyframesError struct {
	Selector string
	Reason   string
}

func (e *MalformedKeyframesError) Error() string {
	if e.Selector == "" {
		return "malformed keyframes: " + e.Reason
	}
	return fmt.Sprintf("malformed keyframes selector %q: %s", e.Selector, e.Reason)
}
