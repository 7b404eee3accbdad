package refdata

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Hero is the display descriptor for a hero id
type Hero struct {
	ID            int
	Name          string // internal short name, e.g. "antimage"
	LocalizedName string
	PrimaryAttr   string // str, agi, int, all
	Img           string
}

// Item is the display descriptor for an item id
type Item struct {
	ID   int
	Name string
	Img  string
}

// Resolver resolves provider numeric ids to display descriptors.
// Implementations return ok=false for ids they don't know; callers are
// expected to degrade to a placeholder rather than fail.
type Resolver interface {
	Hero(id int) (Hero, bool)
	Item(id int) (Item, bool)
}

// PlaceholderHero returns a usable descriptor for an unresolvable hero id
func PlaceholderHero(id int) Hero {
	return Hero{
		ID:            id,
		Name:          fmt.Sprintf("hero_%d", id),
		LocalizedName: fmt.Sprintf("Hero %d", id),
		PrimaryAttr:   "unknown",
	}
}

// PlaceholderItem returns a usable descriptor for an unresolvable item id
func PlaceholderItem(id int) Item {
	return Item{
		ID:   id,
		Name: fmt.Sprintf("item_%d", id),
	}
}

// DB manages the hero/item reference database
type DB struct {
	db *sql.DB
}

var _ Resolver = (*DB)(nil)

// Open creates and initializes the reference database. An empty path
// places the database under the user's config directory.
func Open(path string) (*DB, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}

		dbDir := filepath.Join(configDir, "dotadash")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
		path = filepath.Join(dbDir, "refdata.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	rdb := &DB{db: db}
	if err := rdb.init(); err != nil {
		db.Close()
		return nil, err
	}

	return rdb, nil
}

// init creates the schema and populates data
func (d *DB) init() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS heroes (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			localized_name TEXT NOT NULL,
			primary_attr TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create heroes table: %w", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create items table: %w", err)
	}

	var count int
	d.db.QueryRow("SELECT COUNT(*) FROM heroes").Scan(&count)
	if count > 0 {
		return nil // Already populated
	}

	return d.populate()
}

// Hero returns the descriptor for a hero id
func (d *DB) Hero(id int) (Hero, bool) {
	var h Hero
	err := d.db.QueryRow(
		"SELECT id, name, localized_name, primary_attr FROM heroes WHERE id = ?",
		id,
	).Scan(&h.ID, &h.Name, &h.LocalizedName, &h.PrimaryAttr)

	if err != nil {
		return Hero{}, false
	}
	h.Img = heroImg(h.Name)
	return h, true
}

// Item returns the descriptor for an item id
func (d *DB) Item(id int) (Item, bool) {
	var it Item
	err := d.db.QueryRow("SELECT id, name FROM items WHERE id = ?", id).Scan(&it.ID, &it.Name)
	if err != nil {
		return Item{}, false
	}
	it.Img = itemImg(it.Name)
	return it, true
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func heroImg(name string) string {
	return "/apps/dota2/images/dota_react/heroes/" + name + ".png"
}

func itemImg(name string) string {
	return "/apps/dota2/images/dota_react/items/" + name + ".png"
}
