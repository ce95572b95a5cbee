package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// snapshotRecord is the single-row table holding the serialized state blob.
type snapshotRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Data      string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// PostgresStore persists the snapshot as one JSONB row, so the database can
// serve as the swappable snapshot medium without any per-entity schema.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL and migrates the snapshots table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("snapshot: get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)

	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("snapshot: migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load() (*Snapshot, error) {
	var rec snapshotRecord
	err := s.db.First(&rec, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: load row: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(rec.Data), &snap); err != nil {
		return nil, fmt.Errorf("snapshot: decode row: %w", err)
	}
	return &snap, nil
}

func (s *PostgresStore) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	rec := snapshotRecord{ID: 1, Data: string(data), UpdatedAt: time.Now().UTC()}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("snapshot: save row: %w", err)
	}
	return nil
}
