package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	appValidator "github.com/quillhq/quill-console/pkg/validator"
)

func TestFormatValidationError(t *testing.T) {
	require.Equal(t, "invalid request payload", formatValidationError(nil))

	failures := appValidator.ValidationErrors{
		{Field: "name", Tag: "required"},
		{Field: "email", Tag: "email"},
		{Field: "role", Tag: "oneof", Param: "admin operator viewer"},
	}
	message := formatValidationError(failures)
	require.Contains(t, message, "name is required")
	require.Contains(t, message, "email must be a valid email address")
	require.Contains(t, message, "role must be one of: admin operator viewer")
}

func TestComputeTotalPages(t *testing.T) {
	require.Equal(t, 0, computeTotalPages(10, 0))
	require.Equal(t, 1, computeTotalPages(10, 10))
	require.Equal(t, 2, computeTotalPages(11, 10))
	require.Equal(t, 0, computeTotalPages(0, 10))
}

func TestPrettifyFieldName(t *testing.T) {
	require.Equal(t, "field", prettifyFieldName(""))
	require.Equal(t, "source type", prettifyFieldName("source_type"))
}
