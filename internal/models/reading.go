package models

import "time"

// Reading is one ingested data point attributed to a connection. The sampler
// records simulated readings; a production deployment would receive them from
// the protocol drivers.
type Reading struct {
	BaseModel

	ConnectionID string    `gorm:"not null;index" json:"connection_id"`
	SourceType   string    `gorm:"not null;index" json:"source_type"`
	Metric       string    `gorm:"not null" json:"metric"`
	Value        float64   `gorm:"not null" json:"value"`
	Unit         string    `json:"unit,omitempty"`
	RecordedAt   time.Time `gorm:"not null;index" json:"recorded_at"`
}
