package atlas

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreAddPersists(t *testing.T) {
	dir := t.TempDir()

	store := LoadFriends(dir)
	stored, err := store.Add(Friend{Name: "Alex", Location: "Berlin, Germany", LastContact: NewDate(2024, 6, 15)})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("Add did not assign an id")
	}

	reloaded := LoadFriends(dir)
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded store has %d records, want 1", reloaded.Len())
	}
	back, ok := reloaded.Find(stored.ID)
	if !ok {
		t.Fatalf("record %s not found after reload", stored.ID)
	}
	if back.Name != "Alex" || back.LastContact != NewDate(2024, 6, 15) {
		t.Errorf("reloaded record = %+v", back)
	}
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	store := NewStore[Friend]("friends")
	if _, err := store.Add(Friend{Name: "Alex", Location: "Berlin, Germany"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove("no-such-id"); err != nil {
		t.Fatalf("Remove of absent id: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("store has %d records, want 1", store.Len())
	}
}

func TestStoreUpdateAbsentIsNoop(t *testing.T) {
	store := NewStore[Friend]("friends")
	called := false
	if err := store.Update("no-such-id", func(*Friend) { called = true }); err != nil {
		t.Fatalf("Update of absent id: %v", err)
	}
	if called {
		t.Error("mutate was called for an absent id")
	}
}

func TestStoreUpdateAll(t *testing.T) {
	on := NewDate(2024, 7, 10)
	store := NewStore[Friend]("friends")
	store.Add(Friend{Name: "Old", Location: "a", LastContact: on.Add(-100)})
	store.Add(Friend{Name: "Fresh", Location: "b", LastContact: on})

	touched, err := store.UpdateAll(
		func(f Friend) bool { return Overdue(f, on) },
		func(f *Friend) { f.LastContact = on },
	)
	if err != nil {
		t.Fatalf("UpdateAll: %v", err)
	}
	if touched != 1 {
		t.Errorf("touched %d records, want 1", touched)
	}
	for f := range store.All() {
		if Overdue(f, on) {
			t.Errorf("%s still overdue after bulk update", f.Name)
		}
	}
}

func TestStoreBulkMergeSkipsDuplicates(t *testing.T) {
	store := NewStore[Friend]("friends")
	store.Add(Friend{Name: "Alex", Location: "Berlin, Germany"})

	added, skipped, err := store.BulkMerge([]Friend{
		{Name: "ALEX", Location: "berlin, germany"}, // same friend, different case
		{Name: "Sam", Location: "Stockholm, Sweden"},
	})
	if err != nil {
		t.Fatalf("BulkMerge: %v", err)
	}
	if added != 1 || skipped != 1 {
		t.Errorf("added %d skipped %d, want 1 and 1", added, skipped)
	}
	if store.Len() != 2 {
		t.Errorf("store has %d records, want 2", store.Len())
	}

	seen := map[string]bool{}
	for f := range store.All() {
		if f.RecordID() == "" {
			t.Errorf("record %s has no id", f.Name)
		}
		if seen[f.RecordID()] {
			t.Errorf("duplicate id %s", f.RecordID())
		}
		seen[f.RecordID()] = true
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	store := LoadFriends(filepath.Join(t.TempDir(), "nope"))
	if store.Len() != 0 {
		t.Errorf("missing file should load empty, got %d records", store.Len())
	}
}

func TestLoadStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "friends.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := LoadFriends(dir)
	if store.Len() != 0 {
		t.Errorf("corrupt file should load empty, got %d records", store.Len())
	}

	// the store stays usable: next mutation overwrites the bad blob
	if _, err := store.Add(Friend{Name: "Alex", Location: "Berlin, Germany"}); err != nil {
		t.Fatalf("Add after corrupt load: %v", err)
	}
	if LoadFriends(dir).Len() != 1 {
		t.Error("store did not recover after a corrupt load")
	}
}

func TestPropertyStoreRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store := LoadProperties(dir)
	stored, err := store.Add(Property{Name: "Villa Aurora", Location: "Faro, Portugal", Status: Target, Climate: 5, Strategic: 3})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	back, ok := LoadProperties(dir).Find(stored.ID)
	if !ok {
		t.Fatal("property not found after reload")
	}
	if back.Status != Target || back.Climate != 5 {
		t.Errorf("reloaded property = %+v", back)
	}
}
