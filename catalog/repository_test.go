package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

type memoryStore struct {
	docs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string][]byte{}}
}

func (s *memoryStore) Get(key string) ([]byte, error) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *memoryStore) Put(key string, doc []byte) error {
	s.docs[key] = doc
	return nil
}

func TestLoadPricingFallsBackToDefaults(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	cat := repo.LoadPricing()
	if len(cat.Plans) != 4 {
		t.Fatalf("Expected 4 default plans, got %d", len(cat.Plans))
	}
	basic, ok := cat.Plan("basic")
	if !ok {
		t.Fatal("Expected basic plan in defaults")
	}
	if basic.PlatformPerSeat != 125 || basic.LabPerSeat != 75 {
		t.Errorf("Unexpected basic plan prices: %v / %v", basic.PlatformPerSeat, basic.LabPerSeat)
	}
}

func TestLoadPricingCorruptDocumentFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.docs[PricingKey] = []byte("{not json")
	repo := NewRepository(store)

	cat := repo.LoadPricing()
	if len(cat.Plans) != 4 {
		t.Errorf("Expected default catalog on corrupt document, got %d plans", len(cat.Plans))
	}
}

func TestSavePricingRoundTrip(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	cat := DefaultPricing()
	plan := cat.Plans["basic"]
	plan.PlatformPerSeat = 199
	cat.Plans["basic"] = plan

	if err := repo.SavePricing(cat); err != nil {
		t.Fatalf("SavePricing failed: %v", err)
	}

	loaded := repo.LoadPricing()
	if loaded.Plans["basic"].PlatformPerSeat != 199 {
		t.Errorf("Expected saved platform price 199, got %v", loaded.Plans["basic"].PlatformPerSeat)
	}
}

func TestResetPricingIsIdempotent(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	cat := DefaultPricing()
	plan := cat.Plans["basic"]
	plan.PlatformPerSeat = 999
	cat.Plans["basic"] = plan
	if err := repo.SavePricing(cat); err != nil {
		t.Fatalf("SavePricing failed: %v", err)
	}

	first, err := repo.ResetPricing()
	if err != nil {
		t.Fatalf("ResetPricing failed: %v", err)
	}
	second, err := repo.ResetPricing()
	if err != nil {
		t.Fatalf("Second ResetPricing failed: %v", err)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Error("Expected identical catalog snapshots after repeated reset")
	}
	if first.Plans["basic"].PlatformPerSeat != 125 {
		t.Errorf("Expected default price restored, got %v", first.Plans["basic"].PlatformPerSeat)
	}
}

func TestAddLabAssignsNextID(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	lab, err := repo.AddLab(Lab{Name: "Quantum Lab", Status: StatusComingSoon})
	if err != nil {
		t.Fatalf("AddLab failed: %v", err)
	}
	if lab.ID != 9 {
		t.Errorf("Expected id 9 after 8 default labs, got %d", lab.ID)
	}

	cat := repo.LoadLabs()
	if len(cat.Labs) != 9 {
		t.Errorf("Expected 9 labs, got %d", len(cat.Labs))
	}
}

func TestDeleteLabDoesNotShiftIDs(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	deleted, err := repo.DeleteLab(3)
	if err != nil {
		t.Fatalf("DeleteLab failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected lab 3 to be deleted")
	}

	cat := repo.LoadLabs()
	ids := []int{}
	for _, l := range cat.Labs {
		ids = append(ids, l.ID)
	}
	want := []int{1, 2, 4, 5, 6, 7, 8}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Expected ids %v after delete, got %v", want, ids)
	}

	// The next added lab must still get max+1, not the freed id.
	lab, err := repo.AddLab(Lab{Name: "New Lab"})
	if err != nil {
		t.Fatalf("AddLab failed: %v", err)
	}
	if lab.ID != 9 {
		t.Errorf("Expected id 9 (not reuse of 3), got %d", lab.ID)
	}
}

func TestDeleteLabUnknownID(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	deleted, err := repo.DeleteLab(42)
	if err != nil {
		t.Fatalf("DeleteLab failed: %v", err)
	}
	if deleted {
		t.Error("Expected no deletion for unknown id")
	}
	if got := len(repo.LoadLabs().Labs); got != 8 {
		t.Errorf("Expected 8 labs untouched, got %d", got)
	}
}

func TestUpdateLabShallowMerge(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	status := StatusMaintenance
	lab, found, err := repo.UpdateLab(2, LabPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateLab failed: %v", err)
	}
	if !found {
		t.Fatal("Expected lab 2 to be found")
	}
	if lab.Status != StatusMaintenance {
		t.Errorf("Expected status updated, got %s", lab.Status)
	}
	if lab.Name != "Data Analytics Lab" {
		t.Errorf("Expected untouched fields preserved, got name %s", lab.Name)
	}

	_, found, err = repo.UpdateLab(99, LabPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateLab failed: %v", err)
	}
	if found {
		t.Error("Expected unknown id to report not found")
	}
}

func TestReplaceLabsReindexesFromOne(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	cat, err := repo.ReplaceLabs([]Lab{
		{ID: 40, Name: "A"},
		{ID: 7, Name: "B"},
	})
	if err != nil {
		t.Fatalf("ReplaceLabs failed: %v", err)
	}
	if len(cat.Labs) != 2 {
		t.Fatalf("Expected 2 labs, got %d", len(cat.Labs))
	}
	if cat.Labs[0].ID != 1 || cat.Labs[1].ID != 2 {
		t.Errorf("Expected sequential ids 1,2, got %d,%d", cat.Labs[0].ID, cat.Labs[1].ID)
	}
	if cat.PageConfig.Title != "Available Labs" {
		t.Error("Expected page config preserved across bulk replace")
	}
}

func TestLabsByStatus(t *testing.T) {
	repo := NewRepository(newMemoryStore())

	status := StatusMaintenance
	if _, _, err := repo.UpdateLab(1, LabPatch{Status: &status}); err != nil {
		t.Fatalf("UpdateLab failed: %v", err)
	}

	if got := len(repo.LabsByStatus(StatusAvailable)); got != 7 {
		t.Errorf("Expected 7 available labs, got %d", got)
	}
	if got := repo.AvailableLabsCount(); got != 7 {
		t.Errorf("Expected available count 7, got %d", got)
	}
	if got := len(repo.LabsByStatus(StatusMaintenance)); got != 1 {
		t.Errorf("Expected 1 maintenance lab, got %d", got)
	}
}

func TestSanitizeCoercesNegativesToZero(t *testing.T) {
	cat := DefaultPricing()
	plan := cat.Plans["basic"]
	plan.PlatformPerSeat = -10
	plan.LabPerSeat = -1
	cat.Plans["basic"] = plan
	cat.Addons[1].PerSeat = -150
	cat.OptionalFeatures.AIAgent.PerSeat = -70

	cat.Sanitize()

	if cat.Plans["basic"].PlatformPerSeat != 0 || cat.Plans["basic"].LabPerSeat != 0 {
		t.Error("Expected negative plan prices coerced to 0")
	}
	if cat.Addons[1].PerSeat != 0 {
		t.Error("Expected negative addon price coerced to 0")
	}
	if cat.OptionalFeatures.AIAgent.PerSeat != 0 {
		t.Error("Expected negative feature price coerced to 0")
	}
}
