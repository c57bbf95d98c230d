package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/models"
)

// AutoMigrate applies the schema for every persistent model.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	return db.AutoMigrate(
		&models.Connection{},
		&models.StorageConfig{},
		&models.User{},
		&models.DashboardWidget{},
		&models.Reading{},
	)
}

// SeedData inserts the demo records the console ships with: a handful of
// example connections, a default local storage target, and an admin account.
// Seeding is skipped for any table that already has rows.
func SeedData(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	if err := seedConnections(db); err != nil {
		return fmt.Errorf("seed connections: %w", err)
	}
	if err := seedStorage(db); err != nil {
		return fmt.Errorf("seed storage: %w", err)
	}
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	return nil
}

func seedConnections(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Connection{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	demo := []struct {
		name       string
		sourceType string
		status     string
		config     map[string]any
		activity   time.Duration
	}{
		{
			name:       "Factory Floor Sensor 1",
			sourceType: "mqtt",
			status:     models.ConnectionStatusActive,
			config:     map[string]any{"brokerAddress": "mqtt.factory.local", "port": 1883, "topic": "sensors/temperature"},
			activity:   2 * time.Minute,
		},
		{
			name:       "PLC Unit 5",
			sourceType: "modbus_tcp",
			status:     models.ConnectionStatusActive,
			config:     map[string]any{"ipAddress": "192.168.1.10", "port": 502, "slaveId": 1, "startAddress": 40001, "quantity": 2},
			activity:   5 * time.Minute,
		},
		{
			name:       "Legacy Serial Device",
			sourceType: "serial",
			status:     models.ConnectionStatusStopped,
			config:     map[string]any{"comPort": "COM3", "baudRate": "9600"},
			activity:   24 * time.Hour,
		},
		{
			name:       "Weather API Feed",
			sourceType: "rest",
			status:     models.ConnectionStatusActive,
			config:     map[string]any{"endpointUrl": "https://api.weather.example.com/data", "method": "GET", "pollInterval": 60},
			activity:   15 * time.Minute,
		},
		{
			name:       "Backup TCP Stream",
			sourceType: "tcp",
			status:     models.ConnectionStatusError,
			config:     map[string]any{"host": "backup.factory.local", "port": 9999},
			activity:   time.Hour,
		},
	}

	for _, entry := range demo {
		data, err := json.Marshal(entry.config)
		if err != nil {
			return err
		}
		lastActivity := now.Add(-entry.activity)
		record := models.Connection{
			Name:           entry.name,
			SourceType:     entry.sourceType,
			Config:         datatypes.JSON(data),
			Status:         entry.status,
			LastActivityAt: &lastActivity,
		}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedStorage(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StorageConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	config, err := json.Marshal(map[string]any{"path": "/var/lib/quill/data", "maxFileSize": 100})
	if err != nil {
		return err
	}

	return db.Create(&models.StorageConfig{
		Name:          "Local Disk",
		StorageType:   "local",
		Configuration: datatypes.JSON(config),
		Status:        models.StorageStatusActive,
		IsDefault:     true,
		IsActive:      true,
	}).Error
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&models.User{
		Name:   "Administrator",
		Email:  "admin@quill.local",
		Role:   models.RoleAdmin,
		Status: "active",
	}).Error
}
