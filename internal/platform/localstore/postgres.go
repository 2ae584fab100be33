package localstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ Store = (*Postgres)(nil)

// Postgres stores entries in the local_store table using GORM. Caller manages DB lifecycle
// and schema (see platform/migrations).
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

// entryRecord maps one key to its serialized value.
type entryRecord struct {
	Key       string    `gorm:"primaryKey;column:key;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (entryRecord) TableName() string { return "local_store" }

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	if err := p.ensureDB(); err != nil {
		return "", false, err
	}
	var record entryRecord
	if err := p.db.WithContext(ctx).Where("key = ?", key).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return record.Value, true, nil
}

// Set upserts the value under key.
func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if err := p.ensureDB(); err != nil {
		return err
	}
	record := entryRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&record).Error
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if err := p.ensureDB(); err != nil {
		return err
	}
	return p.db.WithContext(ctx).Where("key = ?", key).Delete(&entryRecord{}).Error
}

func (p *Postgres) ensureDB() error {
	if p == nil || p.db == nil {
		return ErrNotConfigured
	}
	return nil
}
