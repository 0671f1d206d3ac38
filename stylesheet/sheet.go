// Package stylesheet aggregates compiled rules into final CSS text, one
// sheet per writing direction. Rules are deduplicated by identifier and
// ordered by ascending priority so higher-priority rules win the cascade by
// emission order.
package stylesheet

import (
	"io"
	"sort"
	"strings"

	"sxc/css"
)

// Sheet collects compiled rules. The zero value is not usable, call New.
type Sheet struct {
	rules []css.CompiledRule
	seen  map[string]bool
}

func New() *Sheet {
	return &Sheet{seen: make(map[string]bool)}
}

// Insert adds a rule unless one with the same identifier is already present.
// Identifiers are content-derived, so a duplicate identifier means the same
// rule. Reports whether the rule was added.
func (s *Sheet) Insert(rule css.CompiledRule) bool {
	if s.seen[rule.Identifier] {
		return false
	}
	s.seen[rule.Identifier] = true
	s.rules = append(s.rules, rule)
	return true
}

// Len returns the number of distinct rules collected.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// ordered returns the rules sorted by ascending priority. The sort is
// stable: rules of equal priority keep insertion order, so output is
// deterministic for a given insertion sequence.
func (s *Sheet) ordered() []css.CompiledRule {
	out := make([]css.CompiledRule, len(s.rules))
	copy(out, s.rules)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// WriteLTR writes the left-to-right stylesheet to w.
func (s *Sheet) WriteLTR(w io.Writer) (int64, error) {
	return s.write(w, false)
}

// WriteRTL writes the right-to-left stylesheet to w. Rules without an RTL
// variant render their LTR text, direction-invariant rules are shared.
func (s *Sheet) WriteRTL(w io.Writer) (int64, error) {
	return s.write(w, true)
}

func (s *Sheet) write(w io.Writer, rtl bool) (int64, error) {
	var total int64
	for _, rule := range s.ordered() {
		text := rule.LTR
		if rtl && rule.RTL != nil {
			text = *rule.RTL
		}
		n, err := io.WriteString(w, text)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RenderLTR returns the left-to-right stylesheet text.
func (s *Sheet) RenderLTR() string {
	var b strings.Builder
	s.WriteLTR(&b) //nolint:errcheck
	return b.String()
}

// RenderRTL returns the right-to-left stylesheet text.
func (s *Sheet) RenderRTL() string {
	var b strings.Builder
	s.WriteRTL(&b) //nolint:errcheck
	return b.String()
}
