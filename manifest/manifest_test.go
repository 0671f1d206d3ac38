package manifest_test

import (
	"io"
	"strings"
	"testing"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sxc/css"
	"sxc/manifest"
)

const sampleManifest = `
button:
  backgroundColor: red
  margin: 10
  ":hover":
    backgroundColor: blue
link:
  color: rebeccapurple
  textDecoration: none
fade:
  keyframes:
    from: {opacity: 0}
    to: {opacity: 1}
`

func TestLoad_PreservesOrder(t *testing.T) {
	m, err := manifest.Load([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(m.Definitions) != 3 {
		t.Fatalf("got %d definitions, want 3", len(m.Definitions))
	}
	for i, want := range []string{"button", "link", "fade"} {
		if m.Definitions[i].Name != want {
			t.Errorf("definition %d = %q, want %q", i, m.Definitions[i].Name, want)
		}
	}

	button := m.Definitions[0]
	if button.Keyframes != nil {
		t.Error("button must not be a keyframes definition")
	}
	if len(button.Style) != 3 || button.Style[0].Key != "backgroundColor" || button.Style[1].Key != "margin" {
		t.Errorf("button style order wrong: %+v", button.Style)
	}
	if button.Style[1].Value.Kind != css.ValueNumber || button.Style[1].Value.Number != 10 {
		t.Errorf("margin value = %+v, want number 10", button.Style[1].Value)
	}
	if button.Style[2].Value.Kind != css.ValueBlock {
		t.Errorf(":hover value = %+v, want nested block", button.Style[2].Value)
	}

	fade := m.Definitions[2]
	if fade.Keyframes == nil {
		t.Fatal("fade must be a keyframes definition")
	}
	if len(fade.Keyframes) != 2 || fade.Keyframes[0].Selector != "from" || fade.Keyframes[1].Selector != "to" {
		t.Errorf("fade frames wrong: %+v", fade.Keyframes)
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"root sequence", "- a\n- b\n"},
		{"scalar definition", "button: red\n"},
		{"null value", "button:\n  color: null\n"},
		{"sequence value", "button:\n  color: [red, blue]\n"},
		{"duplicate definition", "button:\n  color: red\nbutton:\n  color: blue\n"},
		{"nested inside nested", "button:\n  \":hover\":\n    \":focus\":\n      color: red\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := manifest.Load([]byte(tt.yaml)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestCompiler_Compile(t *testing.T) {
	m, err := manifest.Load([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	c := manifest.NewCompiler(zap.NewNop(), nil)
	res, err := c.Compile(m)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	// button compiles to a base rule and a :hover rule.
	if classes := strings.Fields(res.Names["button"]); len(classes) != 2 {
		t.Errorf("button classes = %q, want two class names", res.Names["button"])
	}
	if res.Names["fade"] == "" || !strings.HasSuffix(res.Names["fade"], "k") {
		t.Errorf("fade animation name = %q, want keyframes identifier", res.Names["fade"])
	}
	if res.Sheet.Len() != 4 {
		t.Errorf("Sheet.Len() = %d, want 4", res.Sheet.Len())
	}

	out := res.Sheet.RenderLTR()
	if !strings.Contains(out, "@keyframes "+res.Names["fade"]) {
		t.Errorf("rendered sheet is missing the keyframes rule:\n%s", out)
	}

	// The whole sheet must tokenize as CSS without error.
	lexer := cssparse.NewLexer(parse.NewInputString(out))
	for {
		tt, _ := lexer.Next()
		if tt == cssparse.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				t.Errorf("rendered sheet does not tokenize: %v", err)
			}
			break
		}
	}
}

func TestCompiler_ErrorIsolation(t *testing.T) {
	const bad = `
good:
  color: red
broken:
  keyframes:
    middle: {opacity: 0}
alsobroken:
  color: "red;}"
`
	m, err := manifest.Load([]byte(bad))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	c := manifest.NewCompiler(nil, nil)
	res, err := c.Compile(m)
	if err == nil {
		t.Fatal("Compile() error = nil, want aggregated errors")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("got %d errors, want 2: %v", got, err)
	}
	if res.Names["good"] == "" {
		t.Error("good definition must compile despite failing siblings")
	}
	if _, ok := res.Names["broken"]; ok {
		t.Error("broken definition must not appear in the name map")
	}
	for _, e := range multierr.Errors(err) {
		if !strings.Contains(e.Error(), "broken") {
			t.Errorf("error %q does not name the failing definition", e)
		}
	}
}

func TestCompiler_DeterministicAcrossRuns(t *testing.T) {
	build := func() (string, string) {
		m, err := manifest.Load([]byte(sampleManifest))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		res, err := manifest.NewCompiler(nil, nil).Compile(m)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		return res.Sheet.RenderLTR(), res.Names["button"]
	}

	ltr, names := build()
	for i := 0; i < 10; i++ {
		gotLTR, gotNames := build()
		if gotLTR != ltr || gotNames != names {
			t.Fatalf("output differs on repeat %d", i)
		}
	}
}
