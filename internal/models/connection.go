package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Connection lifecycle statuses. A freshly created connection is pending
// until its first successful probe or explicit start.
const (
	ConnectionStatusPending = "pending"
	ConnectionStatusActive  = "active"
	ConnectionStatusStopped = "stopped"
	ConnectionStatusError   = "error"
)

// Connection represents one configured data-source connection. Config holds
// the schema-validated config object for the source type as a JSON object.
type Connection struct {
	BaseModel

	Name           string         `gorm:"not null;index" json:"name"`
	SourceType     string         `gorm:"not null;index" json:"source_type"`
	Config         datatypes.JSON `json:"config"`
	Status         string         `gorm:"not null;default:pending;index" json:"status"`
	LastActivityAt *time.Time     `json:"last_activity_at,omitempty"`
	LastTestedAt   *time.Time     `json:"last_tested_at,omitempty"`
	LastTestResult string         `json:"last_test_result,omitempty"`
}

// BeforeDelete removes readings recorded for this connection so the data API
// never serves rows for a connection that no longer exists.
func (c *Connection) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("connection_id = ?", c.ID).Delete(&Reading{}).Error
}
