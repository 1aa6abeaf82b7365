// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// CatalogEntry is a string-keyed record holding one JSON-serialized
// catalog document. The pricing and labs catalogs live under separate
// keys and are written wholesale, last-write-wins.
type CatalogEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:255;not null;uniqueIndex"`
	Document  []byte `gorm:"type:blob"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &CatalogEntry{})
}
