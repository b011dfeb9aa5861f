package validation

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/pips-site-api/pkg/mailto"
)

//go:embed forms.yaml
var embeddedForms []byte

// Field is one input of a form with its ordered rule chain.
type Field struct {
	Name     string            `yaml:"name" json:"name"`
	Label    string            `yaml:"label" json:"label"`
	Rules    []string          `yaml:"rules" json:"rules"`
	Messages map[string]string `yaml:"messages" json:"messages,omitempty"`

	steps []step
}

// Required reports whether the field carries the required rule.
func (f *Field) Required() bool {
	for _, s := range f.steps {
		if s.name == RuleRequired {
			return true
		}
	}
	return false
}

// Form is a form definition. Storage and mail settings stay server side.
type Form struct {
	Type           string          `yaml:"type" json:"type"`
	Title          string          `yaml:"title" json:"title"`
	Prefix         string          `yaml:"prefix" json:"-"`
	InitialStatus  string          `yaml:"initialStatus" json:"-"`
	StorageKey     string          `yaml:"storageKey" json:"-"`
	Fields         []*Field        `yaml:"fields" json:"fields"`
	SuccessMessage string          `yaml:"successMessage" json:"successMessage"`
	ErrorMessage   string          `yaml:"errorMessage" json:"errorMessage"`
	Redirect       string          `yaml:"redirect" json:"redirect,omitempty"`
	Notification   string          `yaml:"notificationSubject" json:"-"`
	Mail           mailto.Template `yaml:"mail" json:"-"`
}

// Field returns the named field definition.
func (f *Form) Field(name string) (*Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return nil, false
}

type document struct {
	Forms []*Form `yaml:"forms"`
}

func parseForms(raw []byte) ([]*Form, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse form definitions: %w", err)
	}
	if len(doc.Forms) == 0 {
		return nil, fmt.Errorf("form definitions contain no forms")
	}
	seen := make(map[string]struct{}, len(doc.Forms))
	for _, form := range doc.Forms {
		if form.Type == "" {
			return nil, fmt.Errorf("form definition without type")
		}
		if _, dup := seen[form.Type]; dup {
			return nil, fmt.Errorf("form %q defined twice", form.Type)
		}
		seen[form.Type] = struct{}{}
		if form.Prefix == "" || form.StorageKey == "" || form.InitialStatus == "" {
			return nil, fmt.Errorf("form %q: prefix, storageKey and initialStatus are required", form.Type)
		}
		for _, field := range form.Fields {
			for _, token := range field.Rules {
				s, err := compileToken(token)
				if err != nil {
					return nil, fmt.Errorf("form %q field %q: %w", form.Type, field.Name, err)
				}
				field.steps = append(field.steps, s)
			}
		}
	}
	return doc.Forms, nil
}

func readDefinitions(path string) ([]byte, error) {
	if path == "" {
		return embeddedForms, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form definitions %s: %w", path, err)
	}
	return raw, nil
}
