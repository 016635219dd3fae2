package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"gridkit/theme"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ThemeConfig struct {
		Prefixes map[string]string `yaml:"prefixes" validate:"dive,keys,oneof=col pagination tooltip,endkeys,required"`
		ClassMap map[string]string `yaml:"class_map" validate:"dive,keys,required,endkeys,required"`
	}

	LayoutConfig struct {
		Strict bool `yaml:"strict"`
	}

	A11yConfig struct {
		GenerateIDs bool `yaml:"generate_ids"`
		Strict      bool `yaml:"strict"`
	}

	OutputConfig struct {
		NameTemplate  string `yaml:"name_template"`
		Transliterate bool   `yaml:"transliterate"`
		Indent        int    `yaml:"indent" validate:"gte=0,lte=8"`
	}

	LintConfig struct {
		StylesheetPath string `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		Strict         bool   `yaml:"strict"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Theme     ThemeConfig    `yaml:"theme"`
		Layout    LayoutConfig   `yaml:"layout"`
		A11y      A11yConfig     `yaml:"a11y"`
		Output    OutputConfig   `yaml:"output"`
		Lint      LintConfig     `yaml:"lint"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// NOTE: must match yaml field name above
const OutputNameTemplateFieldName TemplateFieldName = "name_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// BuildTheme returns theme described by configuration. Maps are copied so theme
// does not share state with configuration.
func (c *Config) BuildTheme() *theme.Theme {
	return &theme.Theme{
		Prefixes: maps.Clone(c.Theme.Prefixes),
		ClassMap: maps.Clone(c.Theme.ClassMap),
	}
}
