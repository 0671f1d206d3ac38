package css

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// identifierPrefix keeps identifiers valid CSS names: a base-36 digest can
// start with a digit, a CSS identifier cannot.
const identifierPrefix = "x"

// identifier derives the rule's name from its canonical input: a 32-bit
// digest encoded in base 36, prefixed with a fixed letter and suffixed with
// the category character. xxhash is seedless and layout-independent, so the
// same canonical input yields the same identifier on every platform and in
// every run.
func identifier(cat Category, canonical string) string {
	digest := uint32(xxhash.Sum64String(canonical))
	return identifierPrefix + strconv.FormatUint(uint64(digest), 36) + cat.suffix()
}

// canonicalRule serializes a plain rule for hashing: category tag, nesting
// context and the ordered declaration pairs. The RTL mirror participates
// when present, otherwise a physical-mode "start" rule and a plain "left"
// rule with identical LTR text would collide on one identifier.
func canonicalRule(cat Category, pseudo, atRule string, ltr, rtl Declarations) string {
	var b strings.Builder
	b.WriteString(cat.String())
	b.WriteByte('|')
	b.WriteString(atRule)
	b.WriteByte('|')
	b.WriteString(pseudo)
	b.WriteByte('|')
	writeCanonicalDeclarations(&b, ltr)
	if rtl != nil {
		b.WriteString("|rtl|")
		writeCanonicalDeclarations(&b, rtl)
	}
	return b.String()
}

// canonicalKeyframes serializes a keyframes definition for hashing: category
// tag followed by the ordered per-selector declaration blocks.
func canonicalKeyframes(cat Category, ltr, rtl []frameDecls) string {
	var b strings.Builder
	b.WriteString(cat.String())
	b.WriteByte('|')
	writeCanonicalFrames(&b, ltr)
	if rtl != nil {
		b.WriteString("|rtl|")
		writeCanonicalFrames(&b, rtl)
	}
	return b.String()
}

func writeCanonicalDeclarations(b *strings.Builder, decls Declarations) {
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
}

func writeCanonicalFrames(b *strings.Builder, frames []frameDecls) {
	for _, f := range frames {
		b.WriteString(f.selector)
		b.WriteByte('{')
		writeCanonicalDeclarations(b, f.decls)
		b.WriteByte('}')
	}
}
