package form

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Definition is a declarative form description, usually loaded from YAML:
//
//	name: signup
//	success_url: /welcome
//	fields:
//	  - name: login
//	    kind: username
//	    required: true
//	  - name: agree
//	    kind: terms
//	messages:
//	  required: "Please fill in this field"
type Definition struct {
	Name                string       `yaml:"name"`
	SuccessURL          string       `yaml:"success_url,omitempty"`
	StrictPasswordMatch bool         `yaml:"strict_password_match,omitempty"`
	Fields              []Descriptor `yaml:"fields"`
	Messages            Messages     `yaml:"messages,omitempty"`
}

// ParseDefinition decodes and validates a YAML definition.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, errors.Join(ErrInvalidDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// LoadDefinition reads a YAML definition from r.
func LoadDefinition(r io.Reader) (Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Definition{}, errors.Join(ErrInvalidDefinition, err)
	}
	return ParseDefinition(data)
}

// Validate checks the definition the same way attaching an engine would.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidDefinition)
	}
	if _, err := newFormState(d.Fields); err != nil {
		return errors.Join(ErrInvalidDefinition, err)
	}
	return nil
}

// Field returns the descriptor with the given name.
func (d Definition) Field(name string) (Descriptor, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Descriptor{}, false
}
