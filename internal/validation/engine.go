// Package validation evaluates the public forms' field rules.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of validating every declared field of a form.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
	Fields map[string]bool   `json:"fields"`
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Engine holds the loaded form definitions.
type Engine struct {
	forms map[string]*Form
	order []*Form
	now   func() time.Time
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock overrides the clock used by the date rule.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Load reads definitions from path, or the embedded set when path is empty.
func Load(path string, opts ...Option) (*Engine, error) {
	raw, err := readDefinitions(path)
	if err != nil {
		return nil, err
	}
	return New(raw, opts...)
}

// New builds an engine from a YAML definitions document. Unknown rules and
// malformed parameters are rejected here rather than at evaluation time.
func New(raw []byte, opts ...Option) (*Engine, error) {
	forms, err := parseForms(raw)
	if err != nil {
		return nil, err
	}
	e := &Engine{forms: make(map[string]*Form, len(forms)), order: forms, now: time.Now}
	for _, f := range forms {
		e.forms[f.Type] = f
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Form returns the definition for formType.
func (e *Engine) Form(formType string) (*Form, bool) {
	f, ok := e.forms[formType]
	return f, ok
}

// Forms returns every definition in document order.
func (e *Engine) Forms() []*Form {
	out := make([]*Form, len(e.order))
	copy(out, e.order)
	return out
}

// ValidateForm checks every declared field of form against values.
func (e *Engine) ValidateForm(form *Form, values map[string]string) Result {
	res := Result{Valid: true, Errors: map[string]string{}, Fields: make(map[string]bool, len(form.Fields))}
	now := e.now()
	for _, field := range form.Fields {
		msg, ok := evaluate(field, values[field.Name], now)
		res.Fields[field.Name] = ok
		if !ok {
			res.Valid = false
			res.Errors[field.Name] = msg
		}
	}
	return res
}

// ValidateField checks a single field of form.
func (e *Engine) ValidateField(form *Form, name, value string) (FieldResult, error) {
	field, ok := form.Field(name)
	if !ok {
		return FieldResult{}, fmt.Errorf("form %q has no field %q", form.Type, name)
	}
	msg, valid := evaluate(field, value, e.now())
	return FieldResult{Field: name, Valid: valid, Error: msg}, nil
}

// evaluate runs the chain until the first failure. Blank values only face
// the required rule.
func evaluate(field *Field, value string, now time.Time) (string, bool) {
	blank := strings.TrimSpace(value) == ""
	for _, s := range field.steps {
		if blank && s.name != RuleRequired {
			continue
		}
		if s.rule.check(value, s.param, now) {
			continue
		}
		return message(field, s), false
	}
	return "", true
}

func message(field *Field, s step) string {
	if msg, ok := field.Messages[s.token]; ok {
		return msg
	}
	if msg, ok := field.Messages[s.name]; ok {
		return msg
	}
	return s.rule.message(s.param)
}
