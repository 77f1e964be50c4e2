package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Stores bundles the two independent database handles the service runs on.
// The staging store holds submissions awaiting moderation; the publication
// store is the store of record for everything publicly readable. They are
// opened separately and can fail separately — no transaction ever spans both.
type Stores struct {
	Staging     *gorm.DB
	Publication *gorm.DB
}

// Open connects both stores and migrates each store's own models.
// Empty paths fall back to staging.db and publication.db.
func Open(stagingPath, publicationPath string) (*Stores, error) {
	staging, err := openOne(stagingPath, "staging.db", &Submission{})
	if err != nil {
		return nil, err
	}

	publication, err := openOne(publicationPath, "publication.db", &User{}, &Article{}, &Comment{})
	if err != nil {
		return nil, err
	}

	return &Stores{Staging: staging, Publication: publication}, nil
}

func openOne(path, fallback string, models ...interface{}) (*gorm.DB, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = fallback
	}

	if err := ensureParentDir(p); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(p), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		return nil, err
	}

	return gdb, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
