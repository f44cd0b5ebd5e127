package db

import (
	"testing"

	"github.com/Abh004/electronics-retail-dbms/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedIsIdempotent(t *testing.T) {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	Seed(conn)
	Seed(conn)

	var count int64
	conn.Model(&models.Brand{}).Count(&count)
	if count != 6 {
		t.Fatalf("expected 6 brands after double seed, got %d", count)
	}

	var jbl models.Brand
	if err := conn.Where("name = ?", "JBL").First(&jbl).Error; err != nil {
		t.Fatalf("load JBL: %v", err)
	}
	if jbl.Discounts != 5.00 {
		t.Fatalf("expected JBL discount 5.00 got %v", jbl.Discounts)
	}
}
