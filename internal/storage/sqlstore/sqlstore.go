// Package sqlstore persists gateway records in the "records" table through
// GORM, so the same code serves the sqlite and postgres backends.
package sqlstore

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetly/internal/models"
	"budgetly/internal/storage"
)

// Store is a GORM-backed storage.Gateway.
type Store struct {
	db *gorm.DB
}

// New creates a Store on an already migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ storage.Gateway = (*Store)(nil)

// Save upserts the record for key.
func (s *Store) Save(key string, value any) error {
	data, err := storage.Encode(value)
	if err != nil {
		return err
	}

	record := models.Record{
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now().UTC(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Load reads the record for key into dest.
func (s *Store) Load(key string, dest any) (bool, error) {
	var record models.Record
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := storage.Decode([]byte(record.Value), dest); err != nil {
		return false, err
	}
	return true, nil
}
