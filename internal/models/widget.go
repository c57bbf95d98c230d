package models

import "gorm.io/datatypes"

// DashboardWidget stores one configured dashboard widget. Config is the
// schema-validated config object for the widget type.
type DashboardWidget struct {
	BaseModel

	WidgetType string         `gorm:"not null;index" json:"widget_type"`
	Config     datatypes.JSON `json:"config"`
	Position   int            `gorm:"not null;default:0" json:"position"`
}
