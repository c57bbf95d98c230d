package schema

import (
	"sort"
	"strings"
)

// FieldErrors maps field names to validation messages. It satisfies the error
// interface so services can return it directly and handlers can render the
// per-field map to clients.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e[name]
	}
	return strings.Join(parts, "; ")
}
