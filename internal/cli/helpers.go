package cli

import "github.com/SeamusWaldron/cubesim/internal/storage"

// openDB opens the database from the flag path or default location.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
