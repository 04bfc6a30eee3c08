// Package schema validates world datasets against the declared JSON
// Schemas. Both the dev form (raw WKT areas) and the prod form (projected
// SVG paths) are covered; validation always reports every violation found,
// not just the first.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed world.dev.schema.json world.prod.schema.json
var schemaFiles embed.FS

// Form selects which schema a document is checked against.
type Form string

const (
	Dev  Form = "dev"
	Prod Form = "prod"
)

// ParseForm validates a form name.
func ParseForm(s string) (Form, error) {
	switch Form(s) {
	case Dev, Prod:
		return Form(s), nil
	}
	return "", fmt.Errorf("unknown document form %q", s)
}

// Violation is one schema failure: where in the document it occurred and
// what went wrong.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	loc := v.Location
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + v.Message
}

// Validate checks a JSON document against the schema for the given form.
// A non-empty violation list means the document does not conform; err is
// reserved for unusable input (not JSON) or schema loading problems.
func Validate(doc []byte, form Form) ([]Violation, error) {
	sch, err := compiled(form)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}

	err = sch.Validate(v)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, err
	}

	var out []Violation
	collect(ve, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out, nil
}

// ValidateDev checks a document against the dev-form schema.
func ValidateDev(doc []byte) ([]Violation, error) {
	return Validate(doc, Dev)
}

// ValidateProd checks a document against the prod-form schema.
func ValidateProd(doc []byte) ([]Violation, error) {
	return Validate(doc, Prod)
}

// collect flattens a validation error tree into its leaf causes. The
// intermediate nodes only restate which subschema failed.
func collect(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{Location: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collect(cause, out)
	}
}

// compiled loads and compiles the embedded schema for a form.
func compiled(form Form) (*jsonschema.Schema, error) {
	name := fmt.Sprintf("world.%s.schema.json", form)
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown document form %q", form)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("load schema %s: %w", name, err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return sch, nil
}
