package category

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/inkpress/core/internal/database"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAssignsOwner(t *testing.T) {
	svc := NewService(newTestDB(t))

	cat, err := svc.Create(&CategoryDTO{Name: "Tech"}, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cat.OwnerID == nil || *cat.OwnerID != 1 {
		t.Fatalf("owner not assigned: %+v", cat.OwnerID)
	}
	if cat.ID == 0 {
		t.Fatal("no id assigned")
	}
}

func TestNameUniqueness(t *testing.T) {
	svc := NewService(newTestDB(t))

	if _, err := svc.Create(&CategoryDTO{Name: "Tech"}, 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	// globally unique, even across owners
	if _, err := svc.Create(&CategoryDTO{Name: "Tech"}, 2); !errors.Is(err, errNameTaken) {
		t.Fatalf("expected errNameTaken, got %v", err)
	}

	other, err := svc.Create(&CategoryDTO{Name: "Life"}, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(other.ID, 1, &CategoryDTO{Name: "Tech"}); !errors.Is(err, errNameTaken) {
		t.Fatalf("expected errNameTaken on rename, got %v", err)
	}
}

func TestOwnershipScoping(t *testing.T) {
	svc := NewService(newTestDB(t))

	cat, err := svc.Create(&CategoryDTO{Name: "Tech"}, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// user 2 does not see user 1's category
	list, _, err := svc.List(2, pagination.Query{Page: 1, Size: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("user 2 sees %d categories, want 0", len(list))
	}

	// user 2 cannot reach it by guessed pk
	got, err := svc.GetOwned(cat.ID, 2)
	if err != nil || got != nil {
		t.Fatalf("cross-user get = (%v, %v), want (nil, nil)", got, err)
	}
	updated, err := svc.Update(cat.ID, 2, &CategoryDTO{Name: "Stolen"})
	if err != nil || updated != nil {
		t.Fatalf("cross-user update = (%v, %v), want (nil, nil)", updated, err)
	}
	_, deleted, err := svc.Delete(cat.ID, 2)
	if err != nil || deleted {
		t.Fatalf("cross-user delete = (%v, %v), want (false, nil)", deleted, err)
	}

	// the owner still can
	if got, err := svc.GetOwned(cat.ID, 1); err != nil || got == nil {
		t.Fatalf("owner get = (%v, %v)", got, err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	cat, err := svc.Create(&CategoryDTO{Name: "Tech"}, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	blog := models.BlogModel{
		Title: "Post", CategoryID: cat.ID, AuthorID: 1, Body: "x",
		FeaturedImage: "uploads/2026/09/01/aa11bb22-post.png",
	}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("seed blog: %v", err)
	}
	cm := models.CommentModel{UserID: 2, BlogID: blog.ID, Text: "nice"}
	if err := db.Create(&cm).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	images, deleted, err := svc.Delete(cat.ID, 1)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v)", deleted, err)
	}
	if len(images) != 1 || images[0] != blog.FeaturedImage {
		t.Fatalf("images = %v, want [%s]", images, blog.FeaturedImage)
	}

	var blogs, comments, cats int64
	db.Model(&models.BlogModel{}).Count(&blogs)
	db.Model(&models.CommentModel{}).Count(&comments)
	db.Model(&models.CategoryModel{}).Count(&cats)
	if blogs != 0 || comments != 0 || cats != 0 {
		t.Fatalf("leftovers after cascade: blogs=%d comments=%d categories=%d", blogs, comments, cats)
	}
}
