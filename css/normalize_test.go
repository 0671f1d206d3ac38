package css

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeValue_UnitInjection(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    Value
		want     string
	}{
		{"length gets px", "width", Num(100), "100px"},
		{"zero keeps unit", "margin-top", Num(0), "0px"},
		{"negative length", "left", Num(-4), "-4px"},
		{"fractional length", "top", Num(0.5), "0.5px"},
		{"opacity stays bare", "opacity", Num(0.25), "0.25"},
		{"z-index stays bare", "z-index", Num(10), "10"},
		{"font-weight stays bare", "font-weight", Num(700), "700"},
		{"duration gets ms", "transition-duration", Num(300), "300ms"},
		{"delay gets ms", "animation-delay", Num(0), "0ms"},
		{"string passes through", "color", Str("red"), "red"},
		{"string is trimmed", "display", Str("  flex  "), "flex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := normalizeValue(tt.property, tt.value, false)
			if err != nil {
				t.Fatalf("normalizeValue(%q) error = %v", tt.property, err)
			}
			if got != tt.want {
				t.Errorf("normalizeValue(%q) = %q, want %q", tt.property, got, tt.want)
			}
		})
	}
}

func TestNormalizeValue_Important(t *testing.T) {
	got, important, err := normalizeValue("color", Str("red !important"), false)
	if err != nil {
		t.Fatalf("normalizeValue() error = %v", err)
	}
	if !important {
		t.Error("expected important flag to be set")
	}
	if got != "red!important" {
		t.Errorf("normalizeValue() = %q, want %q", got, "red!important")
	}
}

func TestNormalizeValue_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    Value
		strict   bool
	}{
		{"empty string", "color", Str("   "), false},
		{"declaration terminator", "color", Str("red;}"), false},
		{"smuggled block", "color", Str("red}{"), false},
		{"bare bang", "color", Str("red !wichtig"), false},
		{"bang only", "color", Str("!important"), false},
		{"nested block", "color", Nested(Style{}), false},
		{"infinite number", "width", Num(math.Inf(1)), false},
		{"bad color strict", "color", Str("notacolor"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := normalizeValue(tt.property, tt.value, tt.strict)
			var uerr *UnsupportedValueError
			if !errors.As(err, &uerr) {
				t.Fatalf("normalizeValue() error = %v, want *UnsupportedValueError", err)
			}
			if uerr.Property != tt.property {
				t.Errorf("error names property %q, want %q", uerr.Property, tt.property)
			}
		})
	}
}

func TestNormalizeValue_StrictColorAccepts(t *testing.T) {
	for _, value := range []string{"red", "#ff0000", "rgb(255 0 0)", "var(--accent)", "inherit", "transparent"} {
		if _, _, err := normalizeValue("background-color", Str(value), true); err != nil {
			t.Errorf("strict normalizeValue(%q) error = %v, want nil", value, err)
		}
	}
}
