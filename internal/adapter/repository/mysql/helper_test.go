package mysql

import (
	"testing"

	catalogDomain "simulador-backend/internal/domain/catalog"
	leadDomain "simulador-backend/internal/domain/lead"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openSQLite creates an in-memory sqlite DB with the catalog and lead tables.
// One connection only: every new connection would see an empty database.
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&catalogDomain.Property{}, &catalogDomain.Variation{}, &leadDomain.Lead{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedProperty(t *testing.T, db *gorm.DB, p catalogDomain.Property) {
	t.Helper()
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed property %s: %v", p.ID, err)
	}
}
