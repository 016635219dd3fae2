package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gridkit/css"
	"gridkit/layout"
	"gridkit/markup"
	"gridkit/state"
)

// stdout is where command results go.
var stdout io.Writer = os.Stdout

// Run renders page description into XHTML file.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no page description has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst != "-" {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Rendering starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	doc, p, err := render(ctx, src, env, log)
	if err != nil {
		return err
	}

	if path := env.Cfg.Lint.StylesheetPath; path != "" {
		if _, err := lintDocument(doc, path, env.Cfg.Lint.Strict, log); err != nil {
			return err
		}
	}

	if dst == "-" {
		return markup.Write(stdout, doc, env.Cfg.Output.Indent)
	}
	return writeOutput(doc, buildOutputPath(p, dst, &env.Cfg.Output, log), env, log)
}

func render(ctx context.Context, src string, env *state.LocalEnv, log *zap.Logger) (*etree.Document, *Page, error) {
	p, err := Load(src)
	if err != nil {
		return nil, nil, err
	}
	if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
		log.Warn("Unable to save page description to report", zap.Error(err))
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("debug/"+filepath.Base(src)+".txt", []byte(p.String()))
	}

	doc, err := NewRenderer(env.Markup(), log, env.Cfg.Layout.Strict).Render(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to render page (%s): %w", src, err)
	}
	return doc, p, nil
}

func writeOutput(doc *etree.Document, outputName string, env *state.LocalEnv, log *zap.Logger) error {
	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := markup.Write(f, doc, env.Cfg.Output.Indent); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Store rendering result for debugging
	env.Rpt.Store("result/"+filepath.Base(outputName), outputName)

	log.Debug("Output written", zap.String("file", outputName))
	return nil
}

// lintDocument checks classes used in document against stylesheet and
// returns unknown ones. In strict mode unknown classes are an error.
func lintDocument(doc *etree.Document, stylesheet string, strict bool, log *zap.Logger) ([]string, error) {
	if doc.Root() == nil {
		return nil, nil
	}
	data, err := os.ReadFile(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet %q: %w", stylesheet, err)
	}
	sheet := css.NewParser(log).Parse(data, stylesheet)

	unknown := css.Lint(sheet, markup.CollectClasses(doc.Root()))
	for _, name := range unknown {
		log.Warn("Class is not defined in stylesheet", zap.String("class", name), zap.String("stylesheet", stylesheet))
	}
	if strict && len(unknown) > 0 {
		return unknown, fmt.Errorf("%d class(es) not defined in stylesheet: %s", len(unknown), strings.Join(unknown, " "))
	}
	return unknown, nil
}

// Lint renders page and reports classes missing from stylesheet.
func Lint(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lint")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no page description has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	stylesheet := cmd.String("stylesheet")
	if stylesheet == "" {
		stylesheet = env.Cfg.Lint.StylesheetPath
	}
	if stylesheet == "" {
		return errors.New("no stylesheet has been specified")
	}

	doc, _, err := render(ctx, src, env, log)
	if err != nil {
		return err
	}

	unknown, err := lintDocument(doc, stylesheet, env.Cfg.Lint.Strict || cmd.Bool("strict"), log)
	for _, name := range unknown {
		fmt.Fprintln(stdout, name)
	}
	return err
}

// Classes prints class list for breakpoint specification given on command
// line.
func Classes(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	spec := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(spec) == "" {
		return errors.New("no column specification given")
	}

	out, err := resolveClasses(spec, cmd.String("prefix"), env.Cfg.Layout.Strict || cmd.Bool("strict"), env.Markup())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}

func resolveClasses(spec, prefix string, strict bool, b *markup.Builder) (string, error) {
	in, err := layout.ParseInput([]byte(spec))
	if err != nil {
		return "", err
	}
	if strict {
		if err := layout.Validate(in); err != nil {
			return "", err
		}
	}
	th := b.Theme()
	return th.Mapper(nil).Append("", layout.Resolve(in, th.Prefix(prefix, "col"))...), nil
}
