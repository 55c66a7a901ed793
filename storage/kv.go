// Package storage provides the device-local key-value store. It is the only
// durable state this client owns: the active-order session pointer and the
// backend access token for each device session live here, nothing else.
package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string { return "kv_entries" }

// KV is a string key-value store over a local SQLite database
type KV struct {
	db *gorm.DB
}

func NewKV(db *gorm.DB) (*KV, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

// Get returns the stored value and whether the key was present
func (s *KV) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

// Set stores value under key, overwriting any previous value
func (s *KV) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

// Remove deletes key; removing an absent key is not an error
func (s *KV) Remove(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
