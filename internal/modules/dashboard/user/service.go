package user

import (
	"errors"

	"github.com/inkpress/core/internal/database"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errUsernameTaken = errors.New("username already exists")

// CreateUserDTO is the add-user form.
type CreateUserDTO struct {
	Username  string `json:"username"   form:"username"   binding:"required,max=150"`
	Email     string `json:"email"      form:"email"      binding:"omitempty,email"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=150"`
	LastName  string `json:"last_name"  form:"last_name"  binding:"max=150"`
	Password  string `json:"password"   form:"password"   binding:"required,min=8"`
}

// UpdateUserDTO is the edit-user form. Password changes are optional.
type UpdateUserDTO struct {
	Username  string `json:"username"   form:"username"   binding:"required,max=150"`
	Email     string `json:"email"      form:"email"      binding:"omitempty,email"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=150"`
	LastName  string `json:"last_name"  form:"last_name"  binding:"max=150"`
	Password  string `json:"password"   form:"password"   binding:"omitempty,min=8"`
	IsActive  *bool  `json:"is_active"  form:"is_active"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query) ([]models.UserModel, response.Pagination, error) {
	tx := s.db.Model(&models.UserModel{}).Order("created_at ASC")
	var users []models.UserModel
	pag, err := pagination.Paginate(tx, q, &users)
	return users, pag, err
}

func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Create(dto *CreateUserDTO) (*models.UserModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Where("username = ?", dto.Username).Count(&count)
	if count > 0 {
		return nil, errUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{
		Username:  dto.Username,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Password:  string(hash),
		IsActive:  true,
	}
	if err := s.db.Create(&u).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errUsernameTaken
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Update(id uint, dto *UpdateUserDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}

	var count int64
	s.db.Model(&models.UserModel{}).
		Where("username = ? AND id <> ?", dto.Username, id).Count(&count)
	if count > 0 {
		return nil, errUsernameTaken
	}

	updates := map[string]interface{}{
		"username":   dto.Username,
		"email":      dto.Email,
		"first_name": dto.FirstName,
		"last_name":  dto.LastName,
	}
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}

	if err := s.db.Model(u).Updates(updates).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errUsernameTaken
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a user and everything hanging off them in one
// transaction, children before parents: comments (written by the user or
// attached to any affected blog), then blogs (authored or living in the
// user's categories), then the owned categories, then the user row.
// The featured image paths of the removed blogs come back so the caller
// can clean up the files.
func (s *Service) Delete(id uint) ([]string, bool, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if u == nil {
		return nil, false, nil
	}

	var images []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var catIDs []uint
		if err := tx.Model(&models.CategoryModel{}).
			Where("owner_id = ?", id).Pluck("id", &catIDs).Error; err != nil {
			return err
		}

		var blogIDs []uint
		blogQuery := tx.Model(&models.BlogModel{}).Where("author_id = ?", id)
		if len(catIDs) > 0 {
			blogQuery = tx.Model(&models.BlogModel{}).
				Where("author_id = ? OR category_id IN ?", id, catIDs)
		}
		if err := blogQuery.Pluck("id", &blogIDs).Error; err != nil {
			return err
		}

		if len(blogIDs) > 0 {
			if err := tx.Model(&models.BlogModel{}).
				Where("id IN ? AND featured_image <> ''", blogIDs).
				Pluck("featured_image", &images).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ? OR blog_id IN ?", id, blogIDs).
				Delete(&models.CommentModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", blogIDs).Delete(&models.BlogModel{}).Error; err != nil {
				return err
			}
		} else if err := tx.Where("user_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}

		if len(catIDs) > 0 {
			if err := tx.Where("id IN ?", catIDs).Delete(&models.CategoryModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.UserModel{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, false, err
	}
	return images, true, nil
}
