package css

import (
	"strconv"
	"strings"
)

// CompileDeclarationBlock compiles a plain style object into a single
// class rule. The identifier is derived from the resolved content, so the
// same definition always compiles to the same rule.
func CompileDeclarationBlock(style Style, opts *Options) (CompiledRule, error) {
	return compileBlock(style, "", "", opts.orDefault())
}

// CompileKeyframes compiles a keyframes definition into a single
// "@keyframes" rule whose animation name is the content-derived identifier.
func CompileKeyframes(def Keyframes, opts *Options) (CompiledRule, error) {
	o := opts.orDefault()

	if len(def) == 0 {
		return CompiledRule{}, &MalformedKeyframesError{Reason: "at least one frame is required"}
	}

	seen := make(map[string]bool, len(def))
	ltrFrames := make([]frameDecls, 0, len(def))
	rtlFrames := make([]frameDecls, 0, len(def))
	directional := false

	for _, frame := range def {
		if !validFrameSelector(frame.Selector) {
			return CompiledRule{}, &MalformedKeyframesError{
				Selector: frame.Selector,
				Reason:   `must be "from", "to" or a percentage`,
			}
		}
		if seen[frame.Selector] {
			return CompiledRule{}, &MalformedKeyframesError{
				Selector: frame.Selector,
				Reason:   "duplicate selector",
			}
		}
		seen[frame.Selector] = true

		rs, err := resolveStyle(frame.Style, o)
		if err != nil {
			return CompiledRule{}, err
		}
		ltrFrames = append(ltrFrames, frameDecls{selector: frame.Selector, decls: ltrDeclarations(rs)})
		rtlFrames = append(rtlFrames, frameDecls{selector: frame.Selector, decls: rtlDeclarations(rs)})
		directional = directional || needsRTL(rs)
	}

	if !directional {
		rtlFrames = nil
	}

	id := identifier(CategoryKeyframes, canonicalKeyframes(CategoryKeyframes, ltrFrames, rtlFrames))
	rule := CompiledRule{
		Identifier: id,
		LTR:        emitKeyframes(id, ltrFrames),
		Priority:   Priority(CategoryKeyframes, Context{}),
	}
	if directional {
		text := emitKeyframes(id, rtlFrames)
		rule.RTL = &text
	}
	return rule, nil
}

// Compile compiles a style object that may contain nested blocks keyed by a
// pseudo-class (":hover") or an at-rule ("@media ..."), producing one rule
// per context. Top-level declarations compile first, nested blocks follow in
// definition order.
func Compile(style Style, opts *Options) ([]CompiledRule, error) {
	o := opts.orDefault()

	type nestedBlock struct {
		pseudo string
		atRule string
		style  Style
	}

	var base Style
	var blocks []nestedBlock

	for _, p := range style {
		if p.Value.Kind != ValueBlock {
			base = append(base, p)
			continue
		}
		key := strings.TrimSpace(p.Key)
		switch {
		case strings.HasPrefix(key, ":"):
			blocks = append(blocks, nestedBlock{pseudo: key, style: p.Value.Block})
		case strings.HasPrefix(key, "@"):
			blocks = append(blocks, nestedBlock{atRule: key, style: p.Value.Block})
		default:
			return nil, &UnsupportedValueError{
				Property: p.Key,
				Reason:   "nested blocks must be keyed by a pseudo-class or at-rule",
			}
		}
	}

	var rules []CompiledRule
	if len(base) > 0 {
		rule, err := compileBlock(base, "", "", o)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	for _, blk := range blocks {
		rule, err := compileBlock(blk.style, blk.pseudo, blk.atRule, o)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// compileBlock runs the full pipeline for one declaration set: resolve,
// hash, emit LTR and, when direction-sensitive, the RTL mirror.
func compileBlock(style Style, pseudo, atRule string, o Options) (CompiledRule, error) {
	rs, err := resolveStyle(style, o)
	if err != nil {
		return CompiledRule{}, err
	}

	ltr := ltrDeclarations(rs)
	var rtl Declarations
	if needsRTL(rs) {
		rtl = rtlDeclarations(rs)
	}

	id := identifier(CategoryStyle, canonicalRule(CategoryStyle, pseudo, atRule, ltr, rtl))
	rule := CompiledRule{
		Identifier: id,
		LTR:        emitRule(id, pseudo, atRule, ltr),
		Priority: Priority(CategoryStyle, Context{
			Pseudo:    pseudo != "",
			AtRule:    atRule != "",
			Important: anyImportant(rs),
		}),
	}
	if rtl != nil {
		text := emitRule(id, pseudo, atRule, rtl)
		rule.RTL = &text
	}
	return rule, nil
}

// validFrameSelector accepts the reserved keywords and plain percentages in
// the 0-100 range ("50%", "33.3%"). Signs and exponents are not selectors.
func validFrameSelector(s string) bool {
	if s == "from" || s == "to" {
		return true
	}
	num, ok := strings.CutSuffix(s, "%")
	if !ok || num == "" {
		return false
	}
	dot := false
	for i := 0; i < len(num); i++ {
		c := num[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot && i > 0 && i < len(num)-1:
			dot = true
		default:
			return false
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	return err == nil && v <= 100
}
