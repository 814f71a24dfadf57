// Package database persists the application snapshot as a single record in
// an embedded sqlite file, the local equivalent of the browser storage slot
// the tool originally wrote to.
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/models"
)

// storageKey is the fixed key of the single snapshot record. It matches the
// storage key of earlier versions of the tool, so the value is the same
// document a backup file contains.
const storageKey = "mci_kids_db_v1"

// Record is a key-value row. Only one key is ever written.
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// DB wraps the sqlite-backed snapshot store.
type DB struct {
	orm *gorm.DB
}

// Open opens (creating if needed) the sqlite file at path and migrates the
// records table.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	orm, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := orm.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{orm: orm}, nil
}

// LoadSnapshot reads the stored snapshot. Returns common.ErrNotFound when no
// record exists yet and common.ErrMalformed when the stored value does not
// parse; callers fall back to an empty snapshot rather than crashing.
func (d *DB) LoadSnapshot() (*models.Snapshot, error) {
	var rec Record
	err := d.orm.First(&rec, "key = ?", storageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snap := models.NewSnapshot()
	if err := json.Unmarshal([]byte(rec.Value), snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformed, err)
	}
	return snap, nil
}

// SaveSnapshot serializes the whole snapshot and replaces the stored record
// in one upsert.
func (d *DB) SaveSnapshot(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	rec := Record{Key: storageKey, Value: string(data), UpdatedAt: time.Now()}
	err = d.orm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Clear removes the stored record.
func (d *DB) Clear() error {
	return d.orm.Delete(&Record{}, "key = ?", storageKey).Error
}

// Close closes the underlying sqlite handle.
func (d *DB) Close() error {
	sqlDB, err := d.orm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
