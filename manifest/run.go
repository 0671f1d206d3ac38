package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"sxc/config"
	"sxc/state"
)

// Run implements the compile subcommand: read a style manifest, compile it
// and write the generated stylesheets and the class-name map.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("no manifest file specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	src := cmd.Args().Get(0)
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read manifest '%s': %w", src, err)
	}

	m, err := Load(data)
	if err != nil {
		return fmt.Errorf("unable to load manifest '%s': %w", src, err)
	}
	env.Log.Debug("Loaded manifest", zap.String("file", src), zap.Int("definitions", len(m.Definitions)))

	opts := env.Cfg.Compiler.Options()
	if name := cmd.String("mode"); len(name) > 0 {
		mode, err := config.ParseStyleMode(name)
		if err != nil {
			return err
		}
		opts.Mode = mode.CSSMode()
	}
	if cmd.Bool("strict") {
		opts.Strict = true
	}

	res, err := NewCompiler(env.Log, opts).Compile(m)
	if err != nil {
		return fmt.Errorf("manifest '%s' did not compile: %w", src, err)
	}

	outDir := cmd.Args().Get(1)
	if len(outDir) == 0 {
		outDir = env.Cfg.Output.Dir
	}
	if len(outDir) == 0 {
		outDir = filepath.Dir(src)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("unable to create destination '%s': %w", outDir, err)
	}

	base := config.CleanFileName(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)))

	type output struct {
		name string
		data []byte
	}

	ltr, rtl := res.Sheet.RenderLTR(), res.Sheet.RenderRTL()
	outputs := []output{
		{base + ".css", []byte(ltr)},
	}
	// A separate RTL sheet is only worth writing when it differs.
	if rtl != ltr {
		outputs = append(outputs, output{base + ".rtl.css", []byte(rtl)})
	}
	names, err := yaml.Marshal(res.Names)
	if err != nil {
		return fmt.Errorf("unable to marshal class names: %w", err)
	}
	outputs = append(outputs, output{base + ".classes.yaml", names})

	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if !env.Overwrite {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("destination '%s' already exists, use --overwrite", path)
			}
		}
		if err := os.WriteFile(path, out.data, 0644); err != nil {
			return fmt.Errorf("unable to write '%s': %w", path, err)
		}
		env.Log.Info("Wrote output", zap.String("file", path), zap.Int("bytes", len(out.data)))
	}

	env.Log.Info("Compilation finished",
		zap.String("manifest", src),
		zap.Int("definitions", len(m.Definitions)),
		zap.Int("rules", res.Sheet.Len()))
	return nil
}
