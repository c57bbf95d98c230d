package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-console/internal/registry"
)

func TestSelectTypeResetsValues(t *testing.T) {
	session := NewSession(registry.Sources)

	require.NoError(t, session.SelectType("mqtt"))
	require.NoError(t, session.SetValue("brokerAddress", "mqtt.example.com"))
	require.NoError(t, session.SetValue("port", float64(1883)))
	require.NoError(t, session.SetValue("topic", "sensors/temperature"))

	require.NoError(t, session.SelectType("tcp"))

	values := session.Values()
	require.Empty(t, values, "switching type must not leak values from the previous type")

	// Fields from the old type are no longer settable.
	require.Error(t, session.SetValue("brokerAddress", "leak"))

	require.NoError(t, session.SetValue("host", "localhost"))
	require.NoError(t, session.SetValue("port", float64(9999)))
	config, errs := session.Validate()
	require.Nil(t, errs)
	require.Equal(t, map[string]any{"host": "localhost", "port": float64(9999)}, config)
}

func TestSelectTypeUnknownTag(t *testing.T) {
	session := NewSession(registry.Sources)
	require.Error(t, session.SelectType("bacnet"))

	_, selected := session.Selected()
	require.False(t, selected)
}

func TestSetValueWithoutType(t *testing.T) {
	session := NewSession(registry.Sources)
	require.Error(t, session.SetValue("host", "localhost"))
}

func TestValidateMissingRequiredPassword(t *testing.T) {
	session := NewSession(registry.Storages)
	require.NoError(t, session.SelectType("postgresql"))

	require.NoError(t, session.SetValue("host", "db.local"))
	require.NoError(t, session.SetValue("port", float64(5432)))
	require.NoError(t, session.SetValue("database", "quill"))
	require.NoError(t, session.SetValue("user", "admin"))

	config, errs := session.Validate()
	require.Nil(t, config)
	require.Equal(t, "Password is required", errs["password"])
	require.Equal(t, errs, session.Errors())
}

func TestLastWriteWinsPerField(t *testing.T) {
	session := NewSession(registry.Sources)
	require.NoError(t, session.SelectType("tcp"))

	require.NoError(t, session.SetValue("host", "first"))
	require.NoError(t, session.SetValue("host", "second"))

	require.Equal(t, "second", session.Values()["host"])
}

func TestRenderFollowsFieldOrder(t *testing.T) {
	session := NewSession(registry.Storages)
	require.NoError(t, session.SelectType("postgresql"))
	require.NoError(t, session.SetValue("host", "db.local"))

	_, errs := session.Validate()
	require.NotNil(t, errs)

	views := session.Render()
	require.Len(t, views, 5)
	require.Equal(t, "host", views[0].Name)
	require.Equal(t, "db.local", views[0].Value)
	require.Empty(t, views[0].Error)
	require.Equal(t, "password", views[4].Name)
	require.Equal(t, "Password is required", views[4].Error)
}

func TestRenderWithoutTypeSelected(t *testing.T) {
	session := NewSession(registry.Sources)
	require.Nil(t, session.Render())
}

func TestResetReturnsToNoTypeSelected(t *testing.T) {
	session := NewSession(registry.Sources)
	require.NoError(t, session.SelectType("udp"))
	require.NoError(t, session.SetValue("host", "localhost"))

	session.Reset()

	_, selected := session.Selected()
	require.False(t, selected)
	require.Empty(t, session.Values())
	require.Nil(t, session.Errors())
}
