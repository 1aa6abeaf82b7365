// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminCredential holds the single operator credential as an argon2id
// hash. There is exactly one row; the admin surface has no user accounts.
type AdminCredential struct {
	ID           uint   `gorm:"primaryKey"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &AdminCredential{})
}
