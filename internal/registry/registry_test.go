package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogsAreTotal(t *testing.T) {
	cases := []struct {
		name     string
		registry *Registry
		tags     []string
	}{
		{
			name:     "sources",
			registry: Sources,
			tags:     []string{"mqtt", "modbus_tcp", "modbus_rtu", "tcp", "udp", "serial", "rest", "soap", "iot"},
		},
		{
			name:     "storages",
			registry: Storages,
			tags:     []string{"postgresql", "mssql", "aws_s3", "google_cloud_storage", "azure_blob_storage", "oracle_cloud", "local"},
		},
		{
			name:     "widgets",
			registry: Widgets,
			tags:     []string{"line_chart", "bar_chart", "pie_chart", "stats", "table"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ElementsMatch(t, tc.tags, tc.registry.Tags())

			for _, tag := range tc.tags {
				desc, ok := tc.registry.Describe(tag)
				require.True(t, ok, "missing descriptor for %s", tag)
				require.NotEmpty(t, desc.Fields, "%s has no fields", tag)

				for _, field := range desc.Fields {
					require.True(t, field.Kind.Valid(), "%s.%s has invalid kind %q", tag, field.Name, field.Kind)
				}
			}
		})
	}
}

func TestDescribeUnknownTag(t *testing.T) {
	_, ok := Sources.Describe("bacnet")
	require.False(t, ok)
}

func TestFieldOrderIsStable(t *testing.T) {
	first, ok := Sources.Describe("mqtt")
	require.True(t, ok)
	second, ok := Sources.Describe("mqtt")
	require.True(t, ok)

	require.Equal(t, first.Fields, second.Fields)
	require.Equal(t, "brokerAddress", first.Fields[0].Name)
	require.Equal(t, "clientId", first.Fields[len(first.Fields)-1].Name)
}

func TestDescribeReturnsClones(t *testing.T) {
	desc, ok := Storages.Describe("postgresql")
	require.True(t, ok)

	desc.Fields[0].Name = "mutated"
	desc.Fields = desc.Fields[:1]

	fresh, ok := Storages.Describe("postgresql")
	require.True(t, ok)
	require.Equal(t, "host", fresh.Fields[0].Name)
	require.Len(t, fresh.Fields, 5)
}

func TestAllSortsByOrderThenTag(t *testing.T) {
	all := Sources.All()
	require.Len(t, all, 9)
	require.Equal(t, "mqtt", all[0].Tag)
	require.Equal(t, "iot", all[len(all)-1].Tag)
}

func TestByCategoryGroupsDescriptors(t *testing.T) {
	grouped := Storages.ByCategory()
	require.Len(t, grouped["Cloud"], 4)
	require.Len(t, grouped["Local Database"], 3)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	desc := &Descriptor{Tag: "demo", Label: "Demo", Fields: []FieldSpec{{Name: "host", Label: "Host", Kind: KindText}}}

	require.NoError(t, r.Register(desc))
	require.ErrorIs(t, r.Register(desc), errDuplicateTag)
}

func TestRegisterValidatesFields(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Descriptor{Tag: "broken", Fields: []FieldSpec{
		{Name: "a", Kind: Kind("toggle")},
		{Name: "a", Kind: KindText},
		{Name: "b", Kind: KindSelect},
		{Name: "c", Kind: KindNumber, Min: bound(10), Max: bound(1)},
		{Name: "d", Kind: KindText, Pattern: "("},
	}})

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown kind")
	require.Contains(t, err.Error(), "duplicate field")
	require.Contains(t, err.Error(), "select field without options")
	require.Contains(t, err.Error(), "min 10 exceeds max 1")
	require.Contains(t, err.Error(), "invalid pattern")
}

func TestDescriptorFieldLookup(t *testing.T) {
	desc, ok := Sources.Describe("tcp")
	require.True(t, ok)

	port, ok := desc.Field("port")
	require.True(t, ok)
	require.Equal(t, KindNumber, port.Kind)
	require.Equal(t, 1, *port.Min)
	require.Equal(t, 65535, *port.Max)

	_, ok = desc.Field("missing")
	require.False(t, ok)
}
