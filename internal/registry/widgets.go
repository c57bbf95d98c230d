package registry

// Widgets is the catalog of dashboard widget types. Widget configuration is
// the third occurrence of the schema-driven form pattern in the console, so
// it rides on the same registry mechanism as sources and storages.
var Widgets = NewRegistry()

func init() {
	for i, desc := range widgetCatalog {
		desc.SortOrder = i
		Widgets.MustRegister(desc)
	}
}

var widgetDataFields = []FieldSpec{
	{Name: "title", Label: "Title", Kind: KindText, Placeholder: "Widget title", Required: true},
	{Name: "source", Label: "Data Source", Kind: KindSelect, Required: true, Options: []Option{
		{Value: "connections", Label: "Connections"},
		{Value: "storage", Label: "Storage"},
		{Value: "readings", Label: "Readings"},
	}},
	{Name: "metric", Label: "Metric", Kind: KindSelect, Required: true, Options: []Option{
		{Value: "count", Label: "Count"},
		{Value: "value", Label: "Value"},
		{Value: "duration", Label: "Duration"},
	}},
	{Name: "aggregation", Label: "Aggregation", Kind: KindSelect, Options: []Option{
		{Value: "sum", Label: "Sum"},
		{Value: "average", Label: "Average"},
		{Value: "count", Label: "Count"},
		{Value: "min", Label: "Min"},
		{Value: "max", Label: "Max"},
	}},
	{Name: "timeRange", Label: "Time Range", Kind: KindSelect, Options: []Option{
		{Value: "hour", Label: "Last hour"},
		{Value: "day", Label: "Last day"},
		{Value: "week", Label: "Last week"},
		{Value: "month", Label: "Last month"},
	}},
	{Name: "refreshInterval", Label: "Refresh Interval (seconds)", Kind: KindNumber, Placeholder: "300", Min: bound(5), Max: bound(3600)},
}

var widgetCatalog = []*Descriptor{
	{
		Tag:         "line_chart",
		Label:       "Line Chart",
		Icon:        "line-chart",
		Category:    "Charts",
		Description: "Display time-series data as a line chart",
		Fields:      widgetDataFields,
	},
	{
		Tag:         "bar_chart",
		Label:       "Bar Chart",
		Icon:        "bar-chart",
		Category:    "Charts",
		Description: "Display data in a vertical or horizontal bar chart",
		Fields:      widgetDataFields,
	},
	{
		Tag:         "pie_chart",
		Label:       "Pie Chart",
		Icon:        "pie-chart",
		Category:    "Charts",
		Description: "Display data as a pie or donut chart",
		Fields:      widgetDataFields,
	},
	{
		Tag:         "stats",
		Label:       "Stats Card",
		Icon:        "activity",
		Category:    "Summary",
		Description: "Display a single aggregated metric",
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Kind: KindText, Placeholder: "Widget title", Required: true},
			{Name: "source", Label: "Data Source", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "connections", Label: "Connections"},
				{Value: "storage", Label: "Storage"},
				{Value: "readings", Label: "Readings"},
			}},
			{Name: "metric", Label: "Metric", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "count", Label: "Count"},
				{Value: "value", Label: "Value"},
			}},
		},
	},
	{
		Tag:         "table",
		Label:       "Table",
		Icon:        "table",
		Category:    "Summary",
		Description: "Display rows of recent records",
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Kind: KindText, Placeholder: "Widget title", Required: true},
			{Name: "source", Label: "Data Source", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "connections", Label: "Connections"},
				{Value: "storage", Label: "Storage"},
				{Value: "readings", Label: "Readings"},
			}},
			{Name: "limit", Label: "Row Limit", Kind: KindNumber, Placeholder: "10", Min: bound(1), Max: bound(100)},
		},
	},
}
