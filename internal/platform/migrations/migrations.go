package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the local store. Adapters do not automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&localStoreRecord{})
}

// localStoreRecord mirrors the localstore Postgres adapter: one row per collection key
// holding the whole serialized collection.
type localStoreRecord struct {
	Key       string    `gorm:"primaryKey;column:key;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (localStoreRecord) TableName() string { return "local_store" }
