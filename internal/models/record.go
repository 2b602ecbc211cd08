package models

import "time"

// Record is one key/value row of the SQL persistence gateway. Value holds
// the JSON document stored under Key.
type Record struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName pins the table name used by migrations.
func (Record) TableName() string {
	return "records"
}
