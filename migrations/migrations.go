// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"encoding/json"
	"fmt"
	"vsprice-server/catalog"
	"vsprice-server/commons"
	"vsprice-server/crypto"
	"vsprice-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_seed_default_catalogs",
			Migrate: func(tx *gorm.DB) error {
				seeds := map[string]any{
					catalog.PricingKey: catalog.DefaultPricing(),
					catalog.LabsKey:    catalog.DefaultLabs(),
				}
				for key, doc := range seeds {
					raw, err := json.Marshal(doc)
					if err != nil {
						return fmt.Errorf("failed to marshal default catalog %s: %w", key, err)
					}
					var entry models.CatalogEntry
					if err := tx.Where("key = ?", key).
						Attrs(models.CatalogEntry{Key: key, Document: raw}).
						FirstOrCreate(&entry).Error; err != nil {
						return fmt.Errorf("failed to seed catalog %s: %w", key, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_seed_admin_credential",
			Migrate: func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.AdminCredential{}).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to count admin credentials: %w", err)
				}
				if count > 0 {
					return nil
				}

				password := commons.GetEnv("ADMIN_PASSWORD")
				if password == "" {
					generated, err := crypto.GenerateRandomString("", 16, "hex")
					if err != nil {
						return fmt.Errorf("failed to generate admin password: %w", err)
					}
					password = generated
					commons.Logger.Warnf("ADMIN_PASSWORD not set, generated initial admin password: %s", password)
				}

				newCrypto := crypto.NewCrypto()
				hash, err := newCrypto.HashPassword(password)
				if err != nil {
					return fmt.Errorf("failed to hash admin password: %w", err)
				}

				if err := tx.Create(&models.AdminCredential{PasswordHash: hash}).Error; err != nil {
					return fmt.Errorf("failed to create admin credential: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
