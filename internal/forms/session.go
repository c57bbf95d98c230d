package forms

import (
	"fmt"

	"github.com/quillhq/quill-console/internal/registry"
	"github.com/quillhq/quill-console/internal/schema"
)

// Session holds the mutable state of one configuration editing session: the
// selected type tag, the per-field values, and the latest validation errors.
// A session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	catalog *registry.Registry

	tag      string
	schema   *schema.Schema
	values   map[string]any
	failures schema.FieldErrors
}

// NewSession starts a session against the supplied type catalog with no type
// selected.
func NewSession(catalog *registry.Registry) *Session {
	return &Session{
		catalog: catalog,
		values:  map[string]any{},
	}
}

// SelectType switches the session to the supplied tag. The values and errors
// maps are replaced wholesale so nothing from the previous type can leak into
// the new type's config object. An empty tag returns to the no-type-selected
// state.
func (s *Session) SelectType(tag string) error {
	if tag == "" {
		s.tag = ""
		s.schema = nil
		s.values = map[string]any{}
		s.failures = nil
		return nil
	}

	desc, ok := s.catalog.Describe(tag)
	if !ok {
		return fmt.Errorf("forms: unknown type tag %q", tag)
	}

	built, err := schema.Build(desc)
	if err != nil {
		return err
	}

	s.tag = tag
	s.schema = built
	s.values = make(map[string]any, len(desc.Fields))
	s.failures = nil
	return nil
}

// Selected returns the current type tag, if one is chosen.
func (s *Session) Selected() (string, bool) {
	return s.tag, s.tag != ""
}

// SetValue records a field edit. Edits apply in call order; the last write to
// a field wins. Fields the selected type does not declare are rejected.
func (s *Session) SetValue(name string, value any) error {
	if s.schema == nil {
		return fmt.Errorf("forms: no type selected")
	}
	if _, ok := s.schema.Descriptor().Field(name); !ok {
		return fmt.Errorf("forms: type %q has no field %q", s.tag, name)
	}
	s.values[name] = value
	return nil
}

// Values returns a copy of the current field values.
func (s *Session) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Validate runs the type's schema over the current values, records the
// per-field errors on the session, and returns the filtered config object on
// success.
func (s *Session) Validate() (map[string]any, schema.FieldErrors) {
	if s.schema == nil {
		return nil, schema.FieldErrors{"": "no type selected"}
	}

	config, failures := s.schema.Validate(s.values)
	s.failures = failures
	return config, failures
}

// Errors returns the validation errors from the most recent Validate call.
func (s *Session) Errors() schema.FieldErrors {
	return s.failures
}

// Reset clears the session back to the no-type-selected state. Callers invoke
// it after a successful submission.
func (s *Session) Reset() {
	_ = s.SelectType("")
}
