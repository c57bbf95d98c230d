package services

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/quillhq/quill-console/internal/probe"
	"github.com/quillhq/quill-console/internal/registry"
	"github.com/quillhq/quill-console/internal/schema"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

// Prober is the connectivity checker the connection and storage services
// depend on. Tests substitute a stub.
type Prober interface {
	Connection(ctx context.Context, sourceType string, config map[string]any) probe.Result
	Storage(ctx context.Context, storageType string, config map[string]any) probe.Result
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// validateConfig resolves the descriptor for tag in the given catalog and runs
// the submitted values through the derived schema. The returned JSON holds
// exactly the populated, validated keys.
func validateConfig(catalog *registry.Registry, tag string, values map[string]any) (datatypes.JSON, error) {
	desc, ok := catalog.Describe(tag)
	if !ok {
		return nil, apperrors.ErrUnknownType
	}

	compiled, err := schema.Build(desc)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build validation schema")
	}

	config, failures := compiled.Validate(values)
	if failures != nil {
		return nil, apperrors.NewValidation(failures)
	}

	data, err := json.Marshal(config)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode configuration")
	}
	return datatypes.JSON(data), nil
}

func decodeConfig(raw datatypes.JSON) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var config map[string]any
	if err := json.Unmarshal(raw, &config); err != nil {
		return map[string]any{}
	}
	return config
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewBadRequest("name is required")
	}
	return name, nil
}
