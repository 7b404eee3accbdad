package refdata

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "refdata.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHeroLookup(t *testing.T) {
	db := openTestDB(t)

	hero, ok := db.Hero(8)
	if !ok {
		t.Fatal("hero 8 not found")
	}
	if hero.Name != "juggernaut" || hero.LocalizedName != "Juggernaut" {
		t.Errorf("hero 8 = %+v, want juggernaut", hero)
	}
	if hero.PrimaryAttr != "agi" {
		t.Errorf("hero 8 attr = %q, want agi", hero.PrimaryAttr)
	}
	if hero.Img == "" {
		t.Error("hero 8 has no image path")
	}
}

func TestHeroLookup_Miss(t *testing.T) {
	db := openTestDB(t)

	if _, ok := db.Hero(99999); ok {
		t.Error("unknown hero id should miss")
	}
}

func TestItemLookup(t *testing.T) {
	db := openTestDB(t)

	item, ok := db.Item(116)
	if !ok {
		t.Fatal("item 116 not found")
	}
	if item.Name != "black_king_bar" {
		t.Errorf("item 116 = %q, want black_king_bar", item.Name)
	}

	if _, ok := db.Item(424242); ok {
		t.Error("unknown item id should miss")
	}
}

func TestPlaceholders(t *testing.T) {
	hero := PlaceholderHero(1234)
	if hero.ID != 1234 || hero.Name == "" || hero.LocalizedName == "" {
		t.Errorf("PlaceholderHero(1234) = %+v, want usable descriptor", hero)
	}

	item := PlaceholderItem(567)
	if item.ID != 567 || item.Name == "" {
		t.Errorf("PlaceholderItem(567) = %+v, want usable descriptor", item)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refdata.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	if _, ok := db.Hero(14); !ok {
		t.Error("hero 14 missing after reopen")
	}
}
