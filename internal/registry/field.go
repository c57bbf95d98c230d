package registry

// Kind enumerates the input widgets a field can render as.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindPassword Kind = "password"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
)

// Valid reports whether the kind is one of the allowed input kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindNumber, KindPassword, KindSelect, KindTextarea:
		return true
	default:
		return false
	}
}

// Option is one selectable value for a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes one configurable parameter of a type tag. Name is the
// key in the submitted config object and must be unique within a descriptor.
type FieldSpec struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Placeholder string   `json:"placeholder,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required"`
	Options     []Option `json:"options,omitempty"`
	Min         *int     `json:"min,omitempty"`
	Max         *int     `json:"max,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
}

func cloneField(f FieldSpec) FieldSpec {
	cp := f
	if len(f.Options) > 0 {
		cp.Options = append([]Option(nil), f.Options...)
	}
	if f.Min != nil {
		v := *f.Min
		cp.Min = &v
	}
	if f.Max != nil {
		v := *f.Max
		cp.Max = &v
	}
	return cp
}

func bound(v int) *int {
	return &v
}
