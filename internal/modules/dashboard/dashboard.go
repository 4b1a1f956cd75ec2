// Package dashboard exposes the authenticated summary view: global
// category and blog counts, unscoped by owner.
package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Summary struct {
	CategoryCount int64 `json:"category_count"`
	BlogsCount    int64 `json:"blogs_count"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Summary() (Summary, error) {
	var out Summary
	if err := s.db.Model(&models.CategoryModel{}).Count(&out.CategoryCount).Error; err != nil {
		return out, err
	}
	if err := s.db.Model(&models.BlogModel{}).Count(&out.BlogsCount).Error; err != nil {
		return out, err
	}
	return out, nil
}

// RegisterRoutes mounts the summary endpoint on the dashboard group.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	svc := NewService(db)
	rg.GET("", func(c *gin.Context) {
		summary, err := svc.Summary()
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, summary)
	})
}
