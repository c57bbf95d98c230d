package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

var (
	errNilDescriptor = errors.New("registry: nil descriptor")
	errEmptyTag      = errors.New("registry: tag is required")
	errDuplicateTag  = errors.New("registry: already registered")
)

// Registry manages an ordered catalog of type descriptors. It is populated at
// init time and read-only afterwards; lookups return clones so callers cannot
// mutate the catalog.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds a descriptor into the registry.
func (r *Registry) Register(desc *Descriptor) error {
	if desc == nil {
		return errNilDescriptor
	}
	tag := strings.TrimSpace(desc.Tag)
	if tag == "" {
		return errEmptyTag
	}

	clone := cloneDescriptor(desc)
	clone.Tag = tag
	clone.Label = strings.TrimSpace(clone.Label)
	clone.Category = strings.TrimSpace(clone.Category)
	clone.Icon = strings.TrimSpace(clone.Icon)

	if err := validateDescriptor(clone); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.descriptors[tag]; exists {
		return fmt.Errorf("%w: %s", errDuplicateTag, tag)
	}
	r.descriptors[tag] = clone
	return nil
}

// MustRegister wraps Register and panics on error for init-time declarations.
func (r *Registry) MustRegister(desc *Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Describe fetches a descriptor copy for the supplied type tag.
func (r *Registry) Describe(tag string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[strings.TrimSpace(tag)]
	if !ok {
		return nil, false
	}
	return cloneDescriptor(desc), true
}

// All returns descriptors sorted by SortOrder then Tag.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*Descriptor, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		list = append(list, cloneDescriptor(desc))
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SortOrder == list[j].SortOrder {
			return list[i].Tag < list[j].Tag
		}
		return list[i].SortOrder < list[j].SortOrder
	})
	return list
}

// Tags returns the registered type tags in catalog order.
func (r *Registry) Tags() []string {
	all := r.All()
	tags := make([]string, len(all))
	for i, desc := range all {
		tags[i] = desc.Tag
	}
	return tags
}

// ByCategory groups descriptors by their category key, preserving catalog
// order within each group.
func (r *Registry) ByCategory() map[string][]*Descriptor {
	grouped := make(map[string][]*Descriptor)
	for _, desc := range r.All() {
		grouped[desc.Category] = append(grouped[desc.Category], desc)
	}
	return grouped
}

// validateDescriptor enforces the static data-completeness rules: field names
// unique, kinds in the allowed set, select fields carry options, numeric
// bounds coherent, patterns compile.
func validateDescriptor(desc *Descriptor) error {
	var result error
	seen := make(map[string]struct{}, len(desc.Fields))

	for _, field := range desc.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			result = multierr.Append(result, fmt.Errorf("registry: %s: field with empty name", desc.Tag))
			continue
		}
		if _, dup := seen[name]; dup {
			result = multierr.Append(result, fmt.Errorf("registry: %s: duplicate field %q", desc.Tag, name))
		}
		seen[name] = struct{}{}

		if !field.Kind.Valid() {
			result = multierr.Append(result, fmt.Errorf("registry: %s.%s: unknown kind %q", desc.Tag, name, field.Kind))
		}
		if field.Kind == KindSelect && len(field.Options) == 0 {
			result = multierr.Append(result, fmt.Errorf("registry: %s.%s: select field without options", desc.Tag, name))
		}
		if field.Kind != KindSelect && len(field.Options) > 0 {
			result = multierr.Append(result, fmt.Errorf("registry: %s.%s: options on non-select field", desc.Tag, name))
		}
		if field.Min != nil && field.Max != nil && *field.Min > *field.Max {
			result = multierr.Append(result, fmt.Errorf("registry: %s.%s: min %d exceeds max %d", desc.Tag, name, *field.Min, *field.Max))
		}
		if field.Pattern != "" {
			if _, err := regexp.Compile(field.Pattern); err != nil {
				result = multierr.Append(result, fmt.Errorf("registry: %s.%s: invalid pattern: %w", desc.Tag, name, err))
			}
		}
	}

	return result
}
