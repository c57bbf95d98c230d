package schema

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/quillhq/quill-console/internal/registry"
	appValidator "github.com/quillhq/quill-console/pkg/validator"
)

// Schema is the runtime-derived validation ruleset for one type tag. Build it
// once per descriptor; Validate may be called concurrently.
type Schema struct {
	descriptor *registry.Descriptor
	rules      []fieldRule
}

type fieldRule struct {
	spec     registry.FieldSpec
	boundTag string
	pattern  *regexp.Regexp
	options  map[string]struct{}
}

// Build derives a Schema from a type descriptor's field specs.
func Build(desc *registry.Descriptor) (*Schema, error) {
	if desc == nil {
		return nil, errors.New("schema: nil descriptor")
	}

	rules := make([]fieldRule, 0, len(desc.Fields))
	for _, field := range desc.Fields {
		rule := fieldRule{spec: field}

		if field.Kind == registry.KindNumber {
			var parts []string
			if field.Min != nil {
				parts = append(parts, fmt.Sprintf("gte=%d", *field.Min))
			}
			if field.Max != nil {
				parts = append(parts, fmt.Sprintf("lte=%d", *field.Max))
			}
			rule.boundTag = strings.Join(parts, ",")
		}

		if field.Pattern != "" {
			re, err := regexp.Compile(field.Pattern)
			if err != nil {
				return nil, fmt.Errorf("schema: %s.%s: invalid pattern: %w", desc.Tag, field.Name, err)
			}
			rule.pattern = re
		}

		if field.Kind == registry.KindSelect {
			rule.options = make(map[string]struct{}, len(field.Options))
			for _, opt := range field.Options {
				rule.options[opt.Value] = struct{}{}
			}
		}

		rules = append(rules, rule)
	}

	return &Schema{descriptor: desc, rules: rules}, nil
}

// Descriptor returns the descriptor this schema was built from.
func (s *Schema) Descriptor() *registry.Descriptor {
	return s.descriptor
}

// Validate checks the supplied values against the schema and returns the
// normalised config object: exactly the keys the user meaningfully populated,
// numbers coerced to numbers, strings trimmed. Keys that do not belong to the
// descriptor are dropped. Optional fields left empty are omitted, never
// defaulted; an empty optional value skips pattern and bounds checks.
func (s *Schema) Validate(values map[string]any) (map[string]any, FieldErrors) {
	config := make(map[string]any, len(s.rules))
	failures := FieldErrors{}

	for _, rule := range s.rules {
		spec := rule.spec
		raw, present := values[spec.Name]
		if !present || isEmpty(raw) {
			if spec.Required {
				failures[spec.Name] = fmt.Sprintf("%s is required", spec.Label)
			}
			continue
		}

		switch spec.Kind {
		case registry.KindNumber:
			value, ok := coerceNumber(raw)
			if !ok {
				failures[spec.Name] = fmt.Sprintf("%s must be a number", spec.Label)
				continue
			}
			if rule.boundTag != "" {
				if err := appValidator.Var(value, rule.boundTag); err != nil {
					failures[spec.Name] = boundMessage(spec, value)
					continue
				}
			}
			config[spec.Name] = value

		case registry.KindSelect:
			value, ok := raw.(string)
			if !ok {
				failures[spec.Name] = fmt.Sprintf("%s must be one of the allowed values", spec.Label)
				continue
			}
			value = strings.TrimSpace(value)
			if _, allowed := rule.options[value]; !allowed {
				failures[spec.Name] = fmt.Sprintf("%s must be one of the allowed values", spec.Label)
				continue
			}
			config[spec.Name] = value

		default: // text, password, textarea
			value, ok := raw.(string)
			if !ok {
				failures[spec.Name] = fmt.Sprintf("%s must be a string", spec.Label)
				continue
			}
			value = strings.TrimSpace(value)
			if rule.pattern != nil && !rule.pattern.MatchString(value) {
				failures[spec.Name] = fmt.Sprintf("%s has an invalid format", spec.Label)
				continue
			}
			config[spec.Name] = value
		}
	}

	if len(failures) == 0 {
		return config, nil
	}
	return nil, failures
}

// isEmpty reports whether a raw input value counts as "not populated":
// nil, blank strings, and NaN all mean the user left the field alone.
func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return math.IsNaN(v)
	default:
		return false
	}
}

func coerceNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func boundMessage(spec registry.FieldSpec, value float64) string {
	if spec.Min != nil && value < float64(*spec.Min) {
		return fmt.Sprintf("%s must be at least %d", spec.Label, *spec.Min)
	}
	if spec.Max != nil && value > float64(*spec.Max) {
		return fmt.Sprintf("%s must be at most %d", spec.Label, *spec.Max)
	}
	return fmt.Sprintf("%s is out of range", spec.Label)
}
