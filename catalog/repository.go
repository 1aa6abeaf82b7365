// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"encoding/json"
	"errors"
	"vsprice-server/commons"
	"vsprice-server/models"

	"gorm.io/gorm"
)

// Store keys. The names predate this server (they were browser
// localStorage keys) and are kept so exported catalogs stay portable.
const (
	PricingKey = "pricingData"
	LabsKey    = "hackathon-labs-data"
)

var ErrNotFound = errors.New("catalog entry not found")

// Store is the persistence boundary: a string-keyed JSON document store.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, doc []byte) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, error) {
	entry := models.CatalogEntry{}
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry.Document, nil
}

func (s *GormStore) Put(key string, doc []byte) error {
	entry := models.CatalogEntry{}
	return s.db.Where(models.CatalogEntry{Key: key}).
		Assign(models.CatalogEntry{Document: doc}).
		FirstOrCreate(&entry).Error
}

// Repository is the single access point for both catalogs. Reads fall
// back to the static defaults when the stored document is missing or
// corrupt; writes are wholesale, last-write-wins.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Repo is the process-wide repository, bound to the database connection
// at startup.
var Repo *Repository

func Init(db *gorm.DB) {
	Repo = NewRepository(NewGormStore(db))
}

func (r *Repository) LoadPricing() PricingCatalog {
	doc, err := r.store.Get(PricingKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			commons.Logger.Error("Failed to read pricing catalog, using defaults:", err)
		}
		return DefaultPricing()
	}
	var cat PricingCatalog
	if err := json.Unmarshal(doc, &cat); err != nil {
		commons.Logger.Error("Corrupt pricing catalog document, using defaults:", err)
		return DefaultPricing()
	}
	if len(cat.Plans) == 0 {
		commons.Logger.Warn("Stored pricing catalog has no plans, using defaults")
		return DefaultPricing()
	}
	return cat
}

func (r *Repository) SavePricing(cat PricingCatalog) error {
	doc, err := json.Marshal(cat)
	if err != nil {
		return err
	}
	return r.store.Put(PricingKey, doc)
}

func (r *Repository) ResetPricing() (PricingCatalog, error) {
	cat := DefaultPricing()
	if err := r.SavePricing(cat); err != nil {
		return PricingCatalog{}, err
	}
	return cat, nil
}

func (r *Repository) LoadLabs() LabsCatalog {
	doc, err := r.store.Get(LabsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			commons.Logger.Error("Failed to read labs catalog, using defaults:", err)
		}
		return DefaultLabs()
	}
	var cat LabsCatalog
	if err := json.Unmarshal(doc, &cat); err != nil {
		commons.Logger.Error("Corrupt labs catalog document, using defaults:", err)
		return DefaultLabs()
	}
	return cat
}

func (r *Repository) SaveLabs(cat LabsCatalog) error {
	doc, err := json.Marshal(cat)
	if err != nil {
		return err
	}
	return r.store.Put(LabsKey, doc)
}

func (r *Repository) ResetLabs() (LabsCatalog, error) {
	cat := DefaultLabs()
	if err := r.SaveLabs(cat); err != nil {
		return LabsCatalog{}, err
	}
	return cat, nil
}

// AddLab assigns the next id above the current maximum. Ids are never
// reused after deletion within a catalog's lifetime.
func (r *Repository) AddLab(lab Lab) (Lab, error) {
	cat := r.LoadLabs()
	maxID := 0
	for _, l := range cat.Labs {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	lab.ID = maxID + 1
	cat.Labs = append(cat.Labs, lab)
	if err := r.SaveLabs(cat); err != nil {
		return Lab{}, err
	}
	return lab, nil
}

// LabPatch carries the fields of a partial lab update; nil fields keep
// their stored value.
type LabPatch struct {
	Name        *string
	Description *string
	Cost        *string
	Status      *string
	Features    *[]string
}

func (r *Repository) UpdateLab(id int, patch LabPatch) (Lab, bool, error) {
	cat := r.LoadLabs()
	for i, l := range cat.Labs {
		if l.ID != id {
			continue
		}
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Description != nil {
			l.Description = *patch.Description
		}
		if patch.Cost != nil {
			l.Cost = *patch.Cost
		}
		if patch.Status != nil {
			l.Status = *patch.Status
		}
		if patch.Features != nil {
			l.Features = *patch.Features
		}
		cat.Labs[i] = l
		if err := r.SaveLabs(cat); err != nil {
			return Lab{}, false, err
		}
		return l, true, nil
	}
	return Lab{}, false, nil
}

func (r *Repository) DeleteLab(id int) (bool, error) {
	cat := r.LoadLabs()
	kept := cat.Labs[:0]
	found := false
	for _, l := range cat.Labs {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return false, nil
	}
	cat.Labs = kept
	if err := r.SaveLabs(cat); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceLabs swaps the entire lab list, reassigning ids sequentially
// from 1. The page configuration is preserved.
func (r *Repository) ReplaceLabs(labs []Lab) (LabsCatalog, error) {
	cat := r.LoadLabs()
	for i := range labs {
		labs[i].ID = i + 1
	}
	cat.Labs = labs
	if err := r.SaveLabs(cat); err != nil {
		return LabsCatalog{}, err
	}
	return cat, nil
}

func (r *Repository) UpdatePageConfig(cfg PageConfig) (LabsCatalog, error) {
	cat := r.LoadLabs()
	cat.PageConfig = cfg
	if err := r.SaveLabs(cat); err != nil {
		return LabsCatalog{}, err
	}
	return cat, nil
}

func (r *Repository) LabsByStatus(status string) []Lab {
	cat := r.LoadLabs()
	labs := []Lab{}
	for _, l := range cat.Labs {
		if l.Status == status {
			labs = append(labs, l)
		}
	}
	return labs
}

func (r *Repository) AvailableLabsCount() int {
	return len(r.LabsByStatus(StatusAvailable))
}
