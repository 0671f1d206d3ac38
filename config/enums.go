package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"sxc/css"
)

// Specification of logical property resolution mode.
type StyleMode int

const (
	StyleModeLogical StyleMode = iota
	StyleModePhysical
)

func (m StyleMode) String() string {
	switch m {
	case StyleModeLogical:
		return "logical"
	case StyleModePhysical:
		return "physical"
	default:
		// this should never happen
		panic("unsupported style mode")
	}
}

// StyleModeNames lists accepted mode names for usage strings.
func StyleModeNames() []string {
	return []string{StyleModeLogical.String(), StyleModePhysical.String()}
}

// ParseStyleMode converts a mode name to its value.
func ParseStyleMode(name string) (StyleMode, error) {
	switch name {
	case "logical":
		return StyleModeLogical, nil
	case "physical":
		return StyleModePhysical, nil
	default:
		return 0, fmt.Errorf("unknown style mode %q (supported: logical, physical)", name)
	}
}

// CSSMode maps the configuration value to the compiler's mode.
func (m StyleMode) CSSMode() css.Mode {
	if m == StyleModePhysical {
		return css.ModePhysical
	}
	return css.ModeLogical
}

func (m StyleMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *StyleMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	mode, err := ParseStyleMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
