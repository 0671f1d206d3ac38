package css_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"sxc/css"
)

func TestCompileKeyframes_DirectionInvariant(t *testing.T) {
	def := css.Keyframes{
		{Selector: "from", Style: css.Style{{Key: "backgroundColor", Value: css.Str("red")}}},
		{Selector: "to", Style: css.Style{{Key: "backgroundColor", Value: css.Str("blue")}}},
	}

	rule, err := css.CompileKeyframes(def, nil)
	if err != nil {
		t.Fatalf("CompileKeyframes() error = %v", err)
	}

	if !strings.HasSuffix(rule.Identifier, "k") {
		t.Errorf("identifier %q does not end with the keyframes suffix", rule.Identifier)
	}
	want := fmt.Sprintf("@keyframes %s{from{background-color:red;}to{background-color:blue;}}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
	if rule.RTL != nil {
		t.Errorf("RTL = %q, want nil", *rule.RTL)
	}
	if rule.Priority != 1 {
		t.Errorf("Priority = %d, want 1", rule.Priority)
	}
}

func TestCompileKeyframes_LogicalProperty(t *testing.T) {
	def := css.Keyframes{
		{Selector: "from", Style: css.Style{{Key: "start", Value: css.Num(0)}}},
		{Selector: "to", Style: css.Style{{Key: "start", Value: css.Num(500)}}},
	}

	rule, err := css.CompileKeyframes(def, nil)
	if err != nil {
		t.Fatalf("CompileKeyframes() error = %v", err)
	}

	want := fmt.Sprintf("@keyframes %s{from{inset-inline-start:0px;}to{inset-inline-start:500px;}}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
	// inset-inline-start is direction-agnostic at the CSS level.
	if rule.RTL != nil {
		t.Errorf("RTL = %q, want nil", *rule.RTL)
	}
	if rule.Priority != 1 {
		t.Errorf("Priority = %d, want 1", rule.Priority)
	}
}

func TestCompileKeyframes_PhysicalModeMirrors(t *testing.T) {
	def := css.Keyframes{
		{Selector: "from", Style: css.Style{{Key: "start", Value: css.Num(0)}}},
		{Selector: "to", Style: css.Style{{Key: "start", Value: css.Num(500)}}},
	}

	rule, err := css.CompileKeyframes(def, &css.Options{Mode: css.ModePhysical})
	if err != nil {
		t.Fatalf("CompileKeyframes() error = %v", err)
	}

	wantLTR := fmt.Sprintf("@keyframes %s{from{left:0px;}to{left:500px;}}", rule.Identifier)
	if rule.LTR != wantLTR {
		t.Errorf("LTR = %q, want %q", rule.LTR, wantLTR)
	}
	if rule.RTL == nil {
		t.Fatal("RTL = nil, want mirrored keyframes")
	}
	wantRTL := fmt.Sprintf("@keyframes %s{from{right:0px;}to{right:500px;}}", rule.Identifier)
	if *rule.RTL != wantRTL {
		t.Errorf("RTL = %q, want %q", *rule.RTL, wantRTL)
	}
}

func TestCompileKeyframes_Malformed(t *testing.T) {
	tests := []struct {
		name string
		def  css.Keyframes
	}{
		{"no frames", css.Keyframes{}},
		{"bad selector", css.Keyframes{{Selector: "middle", Style: css.Style{{Key: "top", Value: css.Num(0)}}}}},
		{"out of range percent", css.Keyframes{{Selector: "150%", Style: css.Style{{Key: "top", Value: css.Num(0)}}}}},
		{"signed percent", css.Keyframes{{Selector: "+50%", Style: css.Style{{Key: "top", Value: css.Num(0)}}}}},
		{"duplicate selector", css.Keyframes{
			{Selector: "from", Style: css.Style{{Key: "top", Value: css.Num(0)}}},
			{Selector: "from", Style: css.Style{{Key: "top", Value: css.Num(1)}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := css.CompileKeyframes(tt.def, nil)
			var kerr *css.MalformedKeyframesError
			if !errors.As(err, &kerr) {
				t.Fatalf("CompileKeyframes() error = %v, want *MalformedKeyframesError", err)
			}
		})
	}
}

func TestCompileKeyframes_PercentSelectors(t *testing.T) {
	def := css.Keyframes{
		{Selector: "0%", Style: css.Style{{Key: "opacity", Value: css.Num(0)}}},
		{Selector: "33.3%", Style: css.Style{{Key: "opacity", Value: css.Num(0.5)}}},
		{Selector: "100%", Style: css.Style{{Key: "opacity", Value: css.Num(1)}}},
	}

	rule, err := css.CompileKeyframes(def, nil)
	if err != nil {
		t.Fatalf("CompileKeyframes() error = %v", err)
	}
	want := fmt.Sprintf("@keyframes %s{0%%{opacity:0;}33.3%%{opacity:0.5;}100%%{opacity:1;}}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
}

func TestCompileDeclarationBlock_ShorthandExpansion(t *testing.T) {
	rule, err := css.CompileDeclarationBlock(css.Style{{Key: "margin", Value: css.Num(10)}}, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}

	if !strings.HasSuffix(rule.Identifier, "s") {
		t.Errorf("identifier %q does not end with the style suffix", rule.Identifier)
	}
	want := fmt.Sprintf(".%s{margin-top:10px;margin-right:10px;margin-bottom:10px;margin-left:10px;}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
	if rule.RTL != nil {
		t.Errorf("RTL = %q, want nil", *rule.RTL)
	}
	if rule.Priority != 0 {
		t.Errorf("Priority = %d, want 0", rule.Priority)
	}
}

func TestCompileDeclarationBlock_UnknownPassThrough(t *testing.T) {
	rule, err := css.CompileDeclarationBlock(css.Style{{Key: "fancyNewProp", Value: css.Str("magic")}}, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}
	want := fmt.Sprintf(".%s{fancy-new-prop:magic;}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
}

func TestCompileDeclarationBlock_RTLVariant(t *testing.T) {
	style := css.Style{
		{Key: "marginStart", Value: css.Num(8)},
		{Key: "color", Value: css.Str("red")},
	}

	rule, err := css.CompileDeclarationBlock(style, &css.Options{Mode: css.ModePhysical})
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}

	wantLTR := fmt.Sprintf(".%s{margin-left:8px;color:red;}", rule.Identifier)
	if rule.LTR != wantLTR {
		t.Errorf("LTR = %q, want %q", rule.LTR, wantLTR)
	}
	if rule.RTL == nil {
		t.Fatal("RTL = nil, want mirrored rule")
	}
	wantRTL := fmt.Sprintf(".%s{margin-right:8px;color:red;}", rule.Identifier)
	if *rule.RTL != wantRTL {
		t.Errorf("RTL = %q, want %q", *rule.RTL, wantRTL)
	}
}

func TestCompileDeclarationBlock_Important(t *testing.T) {
	rule, err := css.CompileDeclarationBlock(css.Style{{Key: "color", Value: css.Str("red !important")}}, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}
	want := fmt.Sprintf(".%s{color:red!important;}", rule.Identifier)
	if rule.LTR != want {
		t.Errorf("LTR = %q, want %q", rule.LTR, want)
	}
	if rule.Priority != 4 {
		t.Errorf("Priority = %d, want 4", rule.Priority)
	}
}

func TestCompile_NestedContexts(t *testing.T) {
	style := css.Style{
		{Key: "color", Value: css.Str("black")},
		{Key: ":hover", Value: css.Nested(css.Style{{Key: "color", Value: css.Str("blue")}})},
		{Key: "@media (min-width: 600px)", Value: css.Nested(css.Style{{Key: "color", Value: css.Str("green")}})},
	}

	rules, err := css.Compile(style, nil)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("Compile() produced %d rules, want 3", len(rules))
	}

	base, hover, media := rules[0], rules[1], rules[2]

	if base.Priority != 0 || hover.Priority != 2 || media.Priority != 3 {
		t.Errorf("priorities = %d/%d/%d, want 0/2/3", base.Priority, hover.Priority, media.Priority)
	}
	if want := fmt.Sprintf(".%s:hover{color:blue;}", hover.Identifier); hover.LTR != want {
		t.Errorf("hover LTR = %q, want %q", hover.LTR, want)
	}
	if want := fmt.Sprintf("@media (min-width: 600px){.%s{color:green;}}", media.Identifier); media.LTR != want {
		t.Errorf("media LTR = %q, want %q", media.LTR, want)
	}

	ids := map[string]bool{base.Identifier: true, hover.Identifier: true, media.Identifier: true}
	if len(ids) != 3 {
		t.Error("rules from different contexts must not share identifiers")
	}
}

func TestCompile_RejectsUnmarkedNestedBlock(t *testing.T) {
	_, err := css.Compile(css.Style{
		{Key: "colors", Value: css.Nested(css.Style{{Key: "color", Value: css.Str("red")}})},
	}, nil)
	var uerr *css.UnsupportedValueError
	if !errors.As(err, &uerr) {
		t.Fatalf("Compile() error = %v, want *UnsupportedValueError", err)
	}
}

func TestCompile_Determinism(t *testing.T) {
	style := css.Style{
		{Key: "margin", Value: css.Num(10)},
		{Key: "backgroundColor", Value: css.Str("rebeccapurple")},
		{Key: "start", Value: css.Num(0)},
	}

	first, err := css.CompileDeclarationBlock(style, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}
	for i := 0; i < 50; i++ {
		got, err := css.CompileDeclarationBlock(style, nil)
		if err != nil {
			t.Fatalf("CompileDeclarationBlock() error = %v", err)
		}
		if got.Identifier != first.Identifier || got.LTR != first.LTR || got.Priority != first.Priority {
			t.Fatalf("repeat %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestCompile_OrderChangesIdentifier(t *testing.T) {
	a, err := css.CompileDeclarationBlock(css.Style{
		{Key: "color", Value: css.Str("red")},
		{Key: "width", Value: css.Num(1)},
	}, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}
	b, err := css.CompileDeclarationBlock(css.Style{
		{Key: "width", Value: css.Num(1)},
		{Key: "color", Value: css.Str("red")},
	}, nil)
	if err != nil {
		t.Fatalf("CompileDeclarationBlock() error = %v", err)
	}
	if a.Identifier == b.Identifier {
		t.Error("declaration order is significant and must reach the hash input")
	}
}

func TestCompile_ErrorsNameOffendingProperty(t *testing.T) {
	_, err := css.CompileDeclarationBlock(css.Style{
		{Key: "color", Value: css.Str("red")},
		{Key: "width", Value: css.Str("100px; position:fixed")},
	}, nil)
	var uerr *css.UnsupportedValueError
	if !errors.As(err, &uerr) {
		t.Fatalf("CompileDeclarationBlock() error = %v, want *UnsupportedValueError", err)
	}
	if uerr.Property != "width" {
		t.Errorf("error names property %q, want %q", uerr.Property, "width")
	}
}
