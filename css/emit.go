package css

import "strings"

// frameDecls is one keyframe selector with its resolved declarations.
type frameDecls struct {
	selector string
	decls    Declarations
}

// emitRule renders a class rule as compact CSS: declarations in insertion
// order, a trailing semicolon after each, no whitespace. A pseudo-class is
// appended to the selector, an at-rule wraps the whole rule.
func emitRule(id, pseudo, atRule string, decls Declarations) string {
	var b strings.Builder
	if atRule != "" {
		b.WriteString(atRule)
		b.WriteByte('{')
	}
	b.WriteByte('.')
	b.WriteString(id)
	b.WriteString(pseudo)
	b.WriteByte('{')
	writeDeclarations(&b, decls)
	b.WriteByte('}')
	if atRule != "" {
		b.WriteByte('}')
	}
	return b.String()
}

// emitKeyframes renders "@keyframes <id>{...}" with the selector blocks in
// definition order.
func emitKeyframes(id string, frames []frameDecls) string {
	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(id)
	b.WriteByte('{')
	for _, f := range frames {
		b.WriteString(f.selector)
		b.WriteByte('{')
		writeDeclarations(&b, f.decls)
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}

func writeDeclarations(b *strings.Builder, decls Declarations) {
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
}
