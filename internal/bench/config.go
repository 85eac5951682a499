package bench

import (
	"bytes"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// MuFixture names one LTS/formula pair to check under a set of
// algorithms.
type MuFixture struct {
	Name        string   `yaml:"name"`
	LTSPath     string   `yaml:"lts_path"`
	FormulaPath string   `yaml:"formula_path"`
	Algorithms  []string `yaml:"algorithms"`
	Repeat      int      `yaml:"repeat"`
}

// GameFixture names one parity-game file to solve under a set of lifting
// strategies.
type GameFixture struct {
	Name             string   `yaml:"name"`
	GamePath         string   `yaml:"game_path"`
	Strategies       []string `yaml:"strategies"`
	Seed             int64    `yaml:"seed"`
	FocusMaxSize     int      `yaml:"focus_max_size"`
	FocusMaxAttempts int      `yaml:"focus_max_attempts"`
	Repeat           int      `yaml:"repeat"`
}

// SuiteConfig is the top-level suite-configuration document.
type SuiteConfig struct {
	Version      int           `yaml:"version"`
	FixtureGlobs []string      `yaml:"fixture_globs"`
	MuFixtures   []MuFixture   `yaml:"mu_fixtures"`
	GameFixtures []GameFixture `yaml:"game_fixtures"`
}

// LoadSuiteConfig reads and parses a YAML suite-configuration file at
// path, optionally validating it against suiteConfigSchema first — any
// schema violation is reported before a single byte of it is treated as
// fixture data.
func LoadSuiteConfig(path string, validate bool) (*SuiteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: reading suite config: %w", err)
	}

	if validate {
		if err := validateSuiteConfig(raw); err != nil {
			return nil, fmt.Errorf("bench: suite config schema: %w", err)
		}
	}

	var cfg SuiteConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("bench: parsing suite config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	return &cfg, nil
}

// validateSuiteConfig checks raw against suiteConfigSchema via
// jsonschema/v5. YAML is structurally a superset of JSON, so the schema
// is written once in JSON and applied directly to the decoded document.
func validateSuiteConfig(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decoding for validation: %w", err)
	}
	doc = normalizeForSchema(doc)

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("suite-config.json", bytes.NewReader([]byte(suiteConfigSchema))); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	schema, err := compiler.Compile("suite-config.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	return schema.Validate(doc)
}

// normalizeForSchema converts yaml.v3's map[string]interface{} decode
// output into the map[string]any / []any shapes jsonschema/v5 expects;
// yaml.v3 already decodes string-keyed maps this way for YAML documents
// (unlike some YAML libraries that produce map[interface{}]interface{}),
// so this is a recursive identity pass that exists only to make the
// conversion point explicit and future-proof against a library swap.
func normalizeForSchema(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalizeForSchema(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeForSchema(e)
		}
		return out
	default:
		return v
	}
}

// suiteConfigSchema is the JSON Schema validated against before decode.
const suiteConfigSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "version": {"type": "integer"},
    "fixture_globs": {"type": "array", "items": {"type": "string"}},
    "mu_fixtures": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "lts_path", "formula_path"],
        "properties": {
          "name": {"type": "string"},
          "lts_path": {"type": "string"},
          "formula_path": {"type": "string"},
          "algorithms": {"type": "array", "items": {"type": "string"}},
          "repeat": {"type": "integer"}
        }
      }
    },
    "game_fixtures": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "game_path"],
        "properties": {
          "name": {"type": "string"},
          "game_path": {"type": "string"},
          "strategies": {"type": "array", "items": {"type": "string"}},
          "seed": {"type": "integer"},
          "focus_max_size": {"type": "integer"},
          "focus_max_attempts": {"type": "integer"},
          "repeat": {"type": "integer"}
        }
      }
    }
  }
}`
