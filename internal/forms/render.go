package forms

import "github.com/quillhq/quill-console/internal/registry"

// FieldView is one renderable input: the static field spec plus the session's
// current value and validation error for that field.
type FieldView struct {
	registry.FieldSpec
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Render produces one FieldView per declared field, in descriptor order, with
// the session's values and errors attached. With no type selected it renders
// nothing.
func (s *Session) Render() []FieldView {
	if s.schema == nil {
		return nil
	}

	fields := s.schema.Descriptor().Fields
	views := make([]FieldView, len(fields))
	for i, spec := range fields {
		views[i] = FieldView{
			FieldSpec: spec,
			Value:     s.values[spec.Name],
			Error:     s.failures[spec.Name],
		}
	}
	return views
}
