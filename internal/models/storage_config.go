package models

import (
	"time"

	"gorm.io/datatypes"
)

// Storage configuration statuses.
const (
	StorageStatusPending  = "pending"
	StorageStatusActive   = "active"
	StorageStatusInactive = "inactive"
	StorageStatusError    = "error"
)

// StorageConfig represents one configured storage back-end. Exactly one
// record may carry IsDefault at a time; the service layer enforces it.
type StorageConfig struct {
	BaseModel

	Name           string         `gorm:"not null;index" json:"name"`
	StorageType    string         `gorm:"not null;index" json:"storage_type"`
	Configuration  datatypes.JSON `json:"configuration"`
	Status         string         `gorm:"not null;default:pending;index" json:"status"`
	IsDefault      bool           `gorm:"not null;default:false;index" json:"is_default"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	LastTestedAt   *time.Time     `json:"last_tested_at,omitempty"`
	LastTestResult string         `json:"last_test_result,omitempty"`
}
