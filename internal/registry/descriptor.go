package registry

// Descriptor models catalog metadata describing one configurable type: a
// data source, a storage provider, or a dashboard widget. Fields are ordered
// and the order is part of the contract (clients render inputs in this order).
type Descriptor struct {
	Tag         string      `json:"tag"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Category    string      `json:"category,omitempty"`
	SortOrder   int         `json:"sort_order"`
	Fields      []FieldSpec `json:"fields"`
}

// Field returns the spec for the named field, if declared.
func (d *Descriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return cloneField(f), true
		}
	}
	return FieldSpec{}, false
}

func cloneDescriptor(desc *Descriptor) *Descriptor {
	if desc == nil {
		return nil
	}
	cp := *desc
	if len(desc.Fields) > 0 {
		cp.Fields = make([]FieldSpec, len(desc.Fields))
		for i, f := range desc.Fields {
			cp.Fields[i] = cloneField(f)
		}
	}
	return &cp
}
