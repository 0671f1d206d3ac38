// Package manifest loads YAML style manifests and compiles them in batch.
//
// A manifest is a mapping from definition name to either a style object or a
// keyframes definition (a mapping with the single key "keyframes"):
//
//	button:
//	  backgroundColor: red
//	  margin: 10
//	  ":hover":
//	    backgroundColor: blue
//	fade:
//	  keyframes:
//	    from: {opacity: 0}
//	    to: {opacity: 1}
//
// Mapping order is preserved: it determines declaration order and therefore
// the generated identifiers.
package manifest

import (
	"fmt"
	"strconv"

	yaml "gopkg.in/yaml.v3"

	"sxc/css"
)

const keyframesKey = "keyframes"

// Definition is one named entry of a manifest. Exactly one of Style and
// Keyframes is set.
type Definition struct {
	Name      string
	Style     css.Style
	Keyframes css.Keyframes
}

// Manifest is an ordered list of style definitions.
type Manifest struct {
	Definitions []Definition
}

// Load parses manifest YAML. Definition and property order follow the
// document, not any map iteration order.
func Load(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Manifest{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest root must be a mapping, got %s at line %d", nodeKind(root), root.Line)
	}

	m := &Manifest{}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value
		if seen[name] {
			return nil, fmt.Errorf("duplicate definition %q at line %d", name, keyNode.Line)
		}
		seen[name] = true

		def, err := definitionFromNode(name, valNode)
		if err != nil {
			return nil, err
		}
		m.Definitions = append(m.Definitions, def)
	}
	return m, nil
}

func definitionFromNode(name string, n *yaml.Node) (Definition, error) {
	if n.Kind != yaml.MappingNode {
		return Definition{}, fmt.Errorf("definition %q must be a mapping, got %s at line %d", name, nodeKind(n), n.Line)
	}

	// A mapping with the single key "keyframes" is an animation definition.
	if len(n.Content) == 2 && n.Content[0].Value == keyframesKey {
		frames, err := keyframesFromNode(name, n.Content[1])
		if err != nil {
			return Definition{}, err
		}
		return Definition{Name: name, Keyframes: frames}, nil
	}

	style, err := styleFromNode(name, n, true)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Name: name, Style: style}, nil
}

func keyframesFromNode(name string, n *yaml.Node) (css.Keyframes, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("keyframes of %q must be a mapping, got %s at line %d", name, nodeKind(n), n.Line)
	}
	var frames css.Keyframes
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		style, err := styleFromNode(name, valNode, false)
		if err != nil {
			return nil, err
		}
		frames = append(frames, css.Frame{Selector: keyNode.Value, Style: style})
	}
	return frames, nil
}

// styleFromNode converts a YAML mapping into an ordered style definition.
// Nested mappings are allowed only at the top level of a definition, where
// they carry pseudo-class and at-rule blocks.
func styleFromNode(name string, n *yaml.Node, allowNested bool) (css.Style, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style of %q must be a mapping, got %s at line %d", name, nodeKind(n), n.Line)
	}
	var style css.Style
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		value, err := valueFromNode(name, keyNode.Value, valNode, allowNested)
		if err != nil {
			return nil, err
		}
		style = append(style, css.Property{Key: keyNode.Value, Value: value})
	}
	return style, nil
}

func valueFromNode(name, key string, n *yaml.Node, allowNested bool) (css.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int", "!!float":
			num, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return css.Value{}, fmt.Errorf("definition %q, property %q: bad number %q at line %d", name, key, n.Value, n.Line)
			}
			return css.Num(num), nil
		case "!!null":
			return css.Value{}, fmt.Errorf("definition %q, property %q: null value at line %d", name, key, n.Line)
		default:
			return css.Str(n.Value), nil
		}
	case yaml.MappingNode:
		if !allowNested {
			return css.Value{}, fmt.Errorf("definition %q, property %q: nested mapping not allowed at line %d", name, key, n.Line)
		}
		nested, err := styleFromNode(name, n, false)
		if err != nil {
			return css.Value{}, err
		}
		return css.Nested(nested), nil
	default:
		return css.Value{}, fmt.Errorf("definition %q, property %q: unsupported %s value at line %d", name, key, nodeKind(n), n.Line)
	}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
