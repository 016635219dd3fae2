package page

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"

	"gridkit/config"
)

func runAction(ctx context.Context, action cli.ActionFunc, args ...string) error {
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite"},
			&cli.BoolFlag{Name: "strict"},
			&cli.StringFlag{Name: "stylesheet"},
			&cli.StringFlag{Name: "prefix"},
		},
		Action: action,
	}
	return cmd.Run(ctx, append([]string{"test"}, args...))
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	saved := stdout
	stdout = buf
	t.Cleanup(func() { stdout = saved })
	return buf
}

func TestRun_WritesFile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "index.yaml", samplePage)
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatal(err)
	}

	if err := runAction(ctx, Run, src, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filepath.Join(out, "index.xhtml")); err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if title := doc.FindElement("/html/head/title"); title == nil || title.Text() != "Sample Page" {
		t.Error("output has no title")
	}
	if link := doc.FindElement("/html/head/link"); link == nil || link.SelectAttrValue("href", "") != "grid.css" {
		t.Error("output has no stylesheet link")
	}
	if html := doc.Root(); html.SelectAttrValue("lang", "") != "en-US" {
		t.Errorf("lang = %q", html.SelectAttrValue("lang", ""))
	}
	if n := len(doc.FindElements("/html/body/*")); n != 4 {
		t.Errorf("body has %d elements, want 4", n)
	}

	err := runAction(ctx, Run, src, out)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Run() error = %v, want already exists", err)
	}
	if err := runAction(ctx, Run, "--overwrite", src, out); err != nil {
		t.Errorf("Run() with overwrite error = %v", err)
	}
}

func TestRun_Stdout(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Output.Indent = 0
	buf := captureStdout(t)
	src := writeFile(t, t.TempDir(), "index.yaml", "version: 1\ncomponents:\n  - type: col\n    md: 6\n")

	if err := runAction(ctx, Run, src, "-"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(buf.String(), `<body><div class="col-md-6"/></body>`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestRun_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()

	if err := runAction(ctx, Run); err == nil {
		t.Error("Run() without source expected error")
	}
	if err := runAction(ctx, Run, filepath.Join(dir, "absent.yaml"), dir); err == nil {
		t.Error("Run() with missing source expected error")
	}

	src := writeFile(t, dir, "bad.yaml", "version: 1\ncomponents:\n  - type: carousel\n")
	err := runAction(ctx, Run, src, dir)
	if err == nil || !strings.Contains(err.Error(), "components[0]") {
		t.Errorf("Run() error = %v, want node path", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.xhtml")); !os.IsNotExist(err) {
		t.Error("failed page must not be written")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	if err := Run(ctx, &cli.Command{}); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_Report(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	conf := config.ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	env.Rpt = rpt

	src := writeFile(t, dir, "index.yaml", samplePage)
	if err := runAction(ctx, Run, src, dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("report Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"manifest.txt", "source/index.yaml", "debug/index.yaml.txt", "result/index.xhtml"} {
		if !names[want] {
			t.Errorf("report has no %s, got %v", want, names)
		}
	}
}

const lintCSS = `.col-md-6 { float: left }
@media (min-width: 576px) { .pagination, .page-item { display: flex } }
`

const lintPage = `version: 1
components:
  - type: col
    md: 6
  - type: col
    class: ghost
`

func TestLint(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	css := writeFile(t, dir, "grid.css", lintCSS)
	src := writeFile(t, dir, "index.yaml", lintPage)

	buf := captureStdout(t)
	if err := runAction(ctx, Lint, "--stylesheet", css, src); err != nil {
		t.Fatalf("Lint() error = %v", err)
	}
	if got := buf.String(); got != "col\nghost\n" {
		t.Errorf("Lint() printed %q", got)
	}

	buf.Reset()
	err := runAction(ctx, Lint, "--stylesheet", css, "--strict", src)
	if err == nil || !strings.Contains(err.Error(), "2 class(es)") {
		t.Errorf("strict Lint() error = %v", err)
	}
}

func TestLint_NoStylesheet(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	src := writeFile(t, t.TempDir(), "index.yaml", lintPage)
	if err := runAction(ctx, Lint, src); err == nil {
		t.Error("Lint() without stylesheet expected error")
	}
}

func TestRun_LintConfigured(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	env.Cfg.Lint.StylesheetPath = writeFile(t, dir, "grid.css", lintCSS)
	src := writeFile(t, dir, "index.yaml", lintPage)

	// unknown classes are only reported
	if err := runAction(ctx, Run, src, dir); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	env.Cfg.Lint.Strict = true
	if err := runAction(ctx, Run, "--overwrite", src, dir); err == nil {
		t.Error("Run() with strict lint expected error")
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		strict  bool
		want    string
		wantErr bool
	}{
		{name: "bare and structured", args: []string{"{md: 6, lg: {span: 3, order: first}}"}, want: "col-lg-3 col-md-6 order-lg-first"},
		{name: "prefix", args: []string{"--prefix", "column", "{xs: true, sm: auto}"}, want: "column-sm-auto column"},
		{name: "split arguments", args: []string{"{md:", "4}"}, want: "col-md-4"},
		{name: "nothing truthy", args: []string{"{md: false}"}, want: "col"},
		{name: "permissive", args: []string{"{md: 13}"}, want: "col-md-13"},
		{name: "value with space", args: []string{`{md: "a b"}`}, want: "col-md-a b"},
		{name: "strict flag", args: []string{"--strict", "{md: 13}"}, wantErr: true},
		{name: "strict config", args: []string{"{md: 13}"}, strict: true, wantErr: true},
		{name: "unknown breakpoint", args: []string{"{xxl: 3}"}, wantErr: true},
		{name: "no spec", args: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			env.Cfg.Layout.Strict = tt.strict
			buf := captureStdout(t)

			err := runAction(ctx, Classes, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Classes() expected error, printed %q", buf.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("Classes() error = %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("Classes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClasses_ThemeClassMap(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Theme.Prefixes = map[string]string{"col": "c"}
	env.Cfg.Theme.ClassMap = map[string]string{"c-md-6": "a1"}
	buf := captureStdout(t)

	if err := runAction(ctx, Classes, "{md: 6, xl: 2}"); err != nil {
		t.Fatalf("Classes() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "c-xl-2 a1" {
		t.Errorf("Classes() = %q", got)
	}
}
