package category

import (
	"errors"

	"github.com/inkpress/core/internal/database"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"gorm.io/gorm"
)

var errNameTaken = errors.New("category name already exists")

// CategoryDTO is the create/edit form for a category.
type CategoryDTO struct {
	Name string `json:"name" form:"name" binding:"required,max=50"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the categories owned by the given user.
func (s *Service) List(ownerID uint, q pagination.Query) ([]models.CategoryModel, response.Pagination, error) {
	tx := s.db.Model(&models.CategoryModel{}).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC")
	var cats []models.CategoryModel
	pag, err := pagination.Paginate(tx, q, &cats)
	return cats, pag, err
}

// GetOwned loads a category by pk scoped to its owner. A category owned
// by someone else is indistinguishable from a missing one: (nil, nil).
func (s *Service) GetOwned(id, ownerID uint) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// Create persists a new category owned by the current user. The original
// dashboard left owner unset on creation while scoping every other
// operation to it; owner is assigned here so created categories remain
// visible to their creator.
func (s *Service) Create(dto *CategoryDTO, ownerID uint) (*models.CategoryModel, error) {
	var count int64
	s.db.Model(&models.CategoryModel{}).Where("name = ?", dto.Name).Count(&count)
	if count > 0 {
		return nil, errNameTaken
	}

	cat := models.CategoryModel{Name: dto.Name, OwnerID: &ownerID}
	if err := s.db.Create(&cat).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errNameTaken
		}
		return nil, err
	}
	return &cat, nil
}

// Update renames an owner-scoped category.
func (s *Service) Update(id, ownerID uint, dto *CategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetOwned(id, ownerID)
	if err != nil || cat == nil {
		return cat, err
	}

	var count int64
	s.db.Model(&models.CategoryModel{}).
		Where("name = ? AND id <> ?", dto.Name, id).Count(&count)
	if count > 0 {
		return nil, errNameTaken
	}

	if err := s.db.Model(cat).Update("name", dto.Name).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errNameTaken
		}
		return nil, err
	}
	cat.Name = dto.Name
	return cat, nil
}

// Delete removes an owner-scoped category and everything under it:
// comments on its blogs first, then the blogs, then the category itself.
// The featured image paths of the removed blogs come back so the caller
// can clean up the files.
func (s *Service) Delete(id, ownerID uint) ([]string, bool, error) {
	cat, err := s.GetOwned(id, ownerID)
	if err != nil {
		return nil, false, err
	}
	if cat == nil {
		return nil, false, nil
	}

	var images []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var blogIDs []uint
		if err := tx.Model(&models.BlogModel{}).
			Where("category_id = ?", id).Pluck("id", &blogIDs).Error; err != nil {
			return err
		}
		if len(blogIDs) > 0 {
			if err := tx.Model(&models.BlogModel{}).
				Where("id IN ? AND featured_image <> ''", blogIDs).
				Pluck("featured_image", &images).Error; err != nil {
				return err
			}
			if err := tx.Where("blog_id IN ?", blogIDs).Delete(&models.CommentModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", blogIDs).Delete(&models.BlogModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.CategoryModel{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, false, err
	}
	return images, true, nil
}
