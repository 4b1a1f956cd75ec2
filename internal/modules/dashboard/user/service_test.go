package user

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/inkpress/core/internal/database"
	"github.com/inkpress/core/internal/models"
	"golang.org/x/crypto/bcrypt"
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

func TestCreateHashesPassword(t *testing.T) {
	svc := NewService(newTestDB(t))

	u, err := svc.Create(&CreateUserDTO{Username: "alice", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Password == "hunter2hunter2" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if !u.IsActive {
		t.Error("new user should be active")
	}
}

func TestUsernameUniqueness(t *testing.T) {
	svc := NewService(newTestDB(t))

	if _, err := svc.Create(&CreateUserDTO{Username: "alice", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(&CreateUserDTO{Username: "alice", Password: "different-pass"}); !errors.Is(err, errUsernameTaken) {
		t.Fatalf("expected errUsernameTaken, got %v", err)
	}
}

func TestUpdateWithoutPasswordKeepsHash(t *testing.T) {
	svc := NewService(newTestDB(t))

	u, err := svc.Create(&CreateUserDTO{Username: "alice", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldHash := u.Password

	updated, err := svc.Update(u.ID, &UpdateUserDTO{Username: "alice", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Password != oldHash {
		t.Error("password hash changed without a new password")
	}
	if updated.Email != "a@b.com" {
		t.Errorf("email = %q", updated.Email)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	victim, err := svc.Create(&CreateUserDTO{Username: "victim", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("create victim: %v", err)
	}
	bystander, err := svc.Create(&CreateUserDTO{Username: "bystander", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("create bystander: %v", err)
	}

	// victim owns a category holding a bystander-authored blog, and
	// authors a blog of their own in the bystander's category
	victimCat := models.CategoryModel{Name: "VictimCat", OwnerID: &victim.ID}
	bystanderCat := models.CategoryModel{Name: "OtherCat", OwnerID: &bystander.ID}
	if err := db.Create(&victimCat).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&bystanderCat).Error; err != nil {
		t.Fatal(err)
	}

	authored := models.BlogModel{
		Title: "Mine", CategoryID: bystanderCat.ID, AuthorID: victim.ID, Body: "x", Slug: "mine-1",
		FeaturedImage: "uploads/2026/09/01/ee55ff66-mine.png",
	}
	inOwnedCat := models.BlogModel{Title: "Hosted", CategoryID: victimCat.ID, AuthorID: bystander.ID, Body: "x", Slug: "hosted-2"}
	safe := models.BlogModel{Title: "Safe", CategoryID: bystanderCat.ID, AuthorID: bystander.ID, Body: "x", Slug: "safe-3"}
	for _, b := range []*models.BlogModel{&authored, &inOwnedCat, &safe} {
		if err := db.Create(b).Error; err != nil {
			t.Fatal(err)
		}
	}
	for _, cm := range []*models.CommentModel{
		{UserID: victim.ID, BlogID: safe.ID, Text: "by victim"},
		{UserID: bystander.ID, BlogID: authored.ID, Text: "on victim blog"},
		{UserID: bystander.ID, BlogID: safe.ID, Text: "untouched"},
	} {
		if err := db.Create(cm).Error; err != nil {
			t.Fatal(err)
		}
	}

	images, deleted, err := svc.Delete(victim.ID)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v)", deleted, err)
	}
	if len(images) != 1 || images[0] != authored.FeaturedImage {
		t.Errorf("images = %v, want [%s]", images, authored.FeaturedImage)
	}

	var users, cats, blogs, comments int64
	db.Model(&models.UserModel{}).Count(&users)
	db.Model(&models.CategoryModel{}).Count(&cats)
	db.Model(&models.BlogModel{}).Count(&blogs)
	db.Model(&models.CommentModel{}).Count(&comments)

	if users != 1 {
		t.Errorf("users = %d, want 1", users)
	}
	if cats != 1 {
		t.Errorf("categories = %d, want 1 (bystander's)", cats)
	}
	if blogs != 1 {
		t.Errorf("blogs = %d, want 1 (safe)", blogs)
	}
	if comments != 1 {
		t.Errorf("comments = %d, want 1 (untouched)", comments)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	svc := NewService(newTestDB(t))
	_, deleted, err := svc.Delete(12345)
	if err != nil || deleted {
		t.Fatalf("delete = (%v, %v), want (false, nil)", deleted, err)
	}
}
