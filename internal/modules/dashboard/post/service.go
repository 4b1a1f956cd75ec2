package post

import (
	"errors"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	slugpkg "github.com/inkpress/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var errCategoryMissing = errors.New("category does not exist")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the blogs authored by the given user.
func (s *Service) List(authorID uint, q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogModel{}).
		Where("author_id = ?", authorID).
		Preload("Category").
		Order("created_at DESC")
	var blogs []models.BlogModel
	pag, err := pagination.Paginate(tx, q, &blogs)
	return blogs, pag, err
}

// GetOwned loads a blog by pk scoped to its author. (nil, nil) when the
// row is missing or belongs to someone else.
func (s *Service) GetOwned(id, authorID uint) (*models.BlogModel, error) {
	var b models.BlogModel
	if err := s.db.Preload("Category").
		Where("id = ? AND author_id = ?", id, authorID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create persists a new blog in two writes inside one transaction: the
// first insert assigns the id, the second stores the slug derived from
// title and id. The id suffix keeps slugs unique for duplicate titles.
func (s *Service) Create(dto *BlogFormDTO, authorID uint, imagePath string) (*models.BlogModel, error) {
	if err := s.categoryExists(dto.CategoryID); err != nil {
		return nil, err
	}

	b := models.BlogModel{
		Title:            dto.Title,
		CategoryID:       dto.CategoryID,
		AuthorID:         authorID,
		FeaturedImage:    imagePath,
		ShortDescription: dto.ShortDescription,
		Body:             dto.Body,
		Status:           statusOrDraft(dto.Status),
		IsFeatured:       dto.IsFeatured,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		b.Slug = slugpkg.ForBlog(b.Title, b.ID)
		return tx.Model(&b).Update("slug", b.Slug).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update saves the edited fields and re-derives the slug from the
// possibly changed title and the unchanged id.
func (s *Service) Update(id, authorID uint, dto *BlogFormDTO, imagePath string) (*models.BlogModel, error) {
	b, err := s.GetOwned(id, authorID)
	if err != nil || b == nil {
		return b, err
	}
	if err := s.categoryExists(dto.CategoryID); err != nil {
		return nil, err
	}

	b.Title = dto.Title
	b.CategoryID = dto.CategoryID
	b.ShortDescription = dto.ShortDescription
	b.Body = dto.Body
	b.Status = statusOrDraft(dto.Status)
	b.IsFeatured = dto.IsFeatured
	if imagePath != "" {
		b.FeaturedImage = imagePath
	}
	b.Slug = slugpkg.ForBlog(b.Title, b.ID)
	b.Category = nil // avoid writing the preloaded association back

	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return s.GetOwned(id, authorID)
}

// Delete removes an author-scoped blog and its comments, children first.
// The blog's featured image path comes back so the caller can remove the
// file from disk.
func (s *Service) Delete(id, authorID uint) (string, bool, error) {
	b, err := s.GetOwned(id, authorID)
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogModel{}, "id = ?", id).Error
	})
	if err != nil {
		return "", false, err
	}
	return b.FeaturedImage, true, nil
}

func (s *Service) categoryExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errCategoryMissing
	}
	return nil
}

func statusOrDraft(raw string) models.BlogStatus {
	if raw == "" {
		return models.StatusDraft
	}
	return models.BlogStatus(raw)
}
