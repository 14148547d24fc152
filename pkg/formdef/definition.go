package formdef

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML shape of one form.
type Definition struct {
	Name            string            `yaml:"name"`
	DisableSubmit   bool              `yaml:"disable_submit"`
	Strict          bool              `yaml:"strict"`
	Fields          []Field           `yaml:"fields"`
	Messages        map[string]string `yaml:"messages"`
	ValidationRules map[string]string `yaml:"validation_rules"`
}

// Field is one form control.
type Field struct {
	Name     string `yaml:"name"`
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Rules    string `yaml:"rules"`
	Expr     string `yaml:"expr"`
	Value    string `yaml:"value"`
	Disabled bool   `yaml:"disabled"`
}

// Field types. Checkbox and radio controls only submit their value when
// checked.
const (
	TypeText     = "text"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
)

// ElementID returns the field id, defaulting to its name.
func (f Field) ElementID() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// CheckValue returns the value a checkable control submits when checked.
// Browsers default it to "on".
func (f Field) CheckValue() string {
	if f.Value != "" {
		return f.Value
	}
	return "on"
}

// Checkable reports whether the field is a checkbox or radio control.
func (f Field) Checkable() bool {
	return f.Type == TypeCheckbox || f.Type == TypeRadio
}

// Parse decodes and checks one YAML definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := def.Check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadDir reads every .yaml and .yml file in dir, keyed by form name.
func LoadDir(dir string) (map[string]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("formdef: read dir %s: %w", dir, err)
	}

	defs := make(map[string]*Definition)
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		def, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, exists := defs[def.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateForm, def.Name)
		}
		defs[def.Name] = def
	}
	return defs, nil
}

func isYAML(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// Check validates the definition structure.
func (d *Definition) Check() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing form name", ErrInvalidDefinition)
	}

	var errs []error
	names := make(map[string]bool, len(d.Fields))
	ids := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%w: field #%d has no name", ErrInvalidDefinition, i))
			continue
		}
		if f.Rules != "" && f.Expr != "" {
			errs = append(errs, fmt.Errorf("%w: field %q has both rules and expr", ErrInvalidDefinition, f.Name))
		}
		switch f.Type {
		case "", TypeText, TypeCheckbox, TypeRadio:
		default:
			errs = append(errs, fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidDefinition, f.Name, f.Type))
		}
		// radio groups share a name
		if names[f.Name] && f.Type != TypeRadio {
			errs = append(errs, fmt.Errorf("%w: duplicate field name %q", ErrInvalidDefinition, f.Name))
		}
		if ids[f.ElementID()] {
			errs = append(errs, fmt.Errorf("%w: duplicate field id %q", ErrInvalidDefinition, f.ElementID()))
		}
		names[f.Name] = true
		ids[f.ElementID()] = true
	}
	return errors.Join(errs...)
}
