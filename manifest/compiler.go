package manifest

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sxc/css"
	"sxc/stylesheet"
)

// Compiler compiles whole manifests into a stylesheet plus a name-to-class
// mapping. Failures stay local to their definition: the batch continues and
// all errors come back aggregated.
type Compiler struct {
	log  *zap.Logger
	opts *css.Options
}

// NewCompiler creates a manifest compiler.
func NewCompiler(log *zap.Logger, opts *css.Options) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("style-compiler"), opts: opts}
}

// Result is the outcome of a batch compilation.
type Result struct {
	Sheet *stylesheet.Sheet
	// Names maps a definition name to the class name(s) to splice into
	// application code: a space-joined class list for style definitions, a
	// single animation name for keyframes definitions.
	Names map[string]string
}

// Compile compiles every definition of the manifest. On partial failure the
// returned result covers the definitions that compiled and the error
// aggregates one entry per failed definition.
func (c *Compiler) Compile(m *Manifest) (*Result, error) {
	res := &Result{
		Sheet: stylesheet.New(),
		Names: make(map[string]string, len(m.Definitions)),
	}

	var errs error
	for _, def := range m.Definitions {
		if def.Keyframes != nil {
			rule, err := css.CompileKeyframes(def.Keyframes, c.opts)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("definition %q: %w", def.Name, err))
				continue
			}
			res.Names[def.Name] = rule.Identifier
			res.Sheet.Insert(rule)
			c.log.Debug("Compiled keyframes", zap.String("name", def.Name), zap.String("id", rule.Identifier))
			continue
		}

		rules, err := css.Compile(def.Style, c.opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("definition %q: %w", def.Name, err))
			continue
		}
		if len(rules) == 0 {
			c.log.Warn("Definition has no declarations", zap.String("name", def.Name))
			continue
		}

		ids := make([]string, 0, len(rules))
		for _, rule := range rules {
			ids = append(ids, rule.Identifier)
			res.Sheet.Insert(rule)
		}
		res.Names[def.Name] = strings.Join(ids, " ")
		c.log.Debug("Compiled style", zap.String("name", def.Name), zap.Int("rules", len(rules)), zap.String("classes", res.Names[def.Name]))
	}

	c.log.Info("Manifest compiled",
		zap.Int("definitions", len(m.Definitions)),
		zap.Int("rules", res.Sheet.Len()),
		zap.Int("failed", len(multierr.Errors(errs))))
	return res, errs
}
