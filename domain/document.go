package domain

import "time"

// Document holds the raw uploaded bytes keyed by an opaque, timestamp-prefixed
// storage key.
type Document struct {
	Key         string `gorm:"primaryKey;size:512"`
	Name        string `gorm:"size:255"`
	ContentType string `gorm:"size:128"`
	Data        []byte `gorm:"type:longblob"`
	CreatedAt   time.Time
}
