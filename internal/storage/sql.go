package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelbook/internal/database"
)

type kvEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;size:191"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQL stores each key as one row of kv_entries. It works on any gorm
// dialect that supports upserts (sqlite, postgres).
type SQL struct {
	db *gorm.DB
}

// NewSQL migrates the kv_entries table and returns the adapter.
func NewSQL(db *gorm.DB) (*SQL, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("%w: migrate kv_entries: %w", ErrBackend, database.Describe(err))
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	var row kvEntry
	tx := s.db.WithContext(ctx).Where("storage_key = ?", key).Take(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: load %s: %w", ErrBackend, key, database.Describe(tx.Error))
	}
	return []byte(row.Value), true, nil
}

func (s *SQL) Save(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	row := kvEntry{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	tx := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row)
	if tx.Error != nil {
		return fmt.Errorf("%w: save %s: %w", ErrBackend, key, database.Describe(tx.Error))
	}
	return nil
}
