package page

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"gridkit/config"
)

const outputExt = ".xhtml"

// Values holds variables available for output name template expansion.
type Values struct {
	Context    string
	Title      string
	Language   string
	SourceFile string
	Components int
}

func expandTemplate(p *Page, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      p.Title,
		Language:   p.Lang,
		SourceFile: baseName(p.SrcName),
		Components: len(p.Components),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func baseName(src string) string {
	return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

// isDirDestination reports whether output name has to be generated: existing
// directory or path ending with separator.
func isDirDestination(dst string) bool {
	if strings.HasSuffix(dst, string(os.PathSeparator)) || strings.HasSuffix(dst, "/") {
		return true
	}
	fi, err := os.Stat(dst)
	return err == nil && fi.IsDir()
}

// buildOutputPath returns output file name. When destination is a directory
// name comes from configured template or source file name, cleaned and, if
// requested, transliterated.
func buildOutputPath(p *Page, dst string, cfg *config.OutputConfig, log *zap.Logger) string {
	if !isDirDestination(dst) {
		return dst
	}

	name := baseName(p.SrcName)
	if cfg.NameTemplate != "" {
		expanded, err := expandTemplate(p, config.OutputNameTemplateFieldName, cfg.NameTemplate)
		switch {
		case err != nil:
			log.Warn("Unable to prepare output filename", zap.Error(err))
		case strings.TrimSpace(expanded) == "":
			log.Warn("Output name template expanded to nothing, using source name")
		default:
			name = expanded
		}
	}
	if cfg.Transliterate {
		name = slug.Make(name)
	}
	return filepath.Join(dst, config.CleanFileName(name)+outputExt)
}
