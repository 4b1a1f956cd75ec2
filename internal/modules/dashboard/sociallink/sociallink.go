// Package sociallink manages the site-wide social media links shown in
// the public footer. No ownership scoping: any dashboard user edits them.
package sociallink

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/validate"
	"gorm.io/gorm"
)

// SocialLinkDTO is the create/edit form for a social link.
type SocialLinkDTO struct {
	Platform string `json:"platform" form:"platform" binding:"required,max=25"`
	Link     string `json:"link"     form:"link"     binding:"required,url,max=100"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.SocialLinkModel, error) {
	var links []models.SocialLinkModel
	return links, s.db.Order("created_at ASC").Find(&links).Error
}

func (s *Service) GetByID(id uint) (*models.SocialLinkModel, error) {
	var l models.SocialLinkModel
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *Service) Create(dto *SocialLinkDTO) (*models.SocialLinkModel, error) {
	l := models.SocialLinkModel{Platform: dto.Platform, Link: dto.Link}
	return &l, s.db.Create(&l).Error
}

func (s *Service) Update(id uint, dto *SocialLinkDTO) (*models.SocialLinkModel, error) {
	l, err := s.GetByID(id)
	if err != nil || l == nil {
		return l, err
	}
	if err := s.db.Model(l).Updates(map[string]interface{}{
		"platform": dto.Platform,
		"link":     dto.Link,
	}).Error; err != nil {
		return nil, err
	}
	l.Platform = dto.Platform
	l.Link = dto.Link
	return l, nil
}

func (s *Service) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.SocialLinkModel{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/social-links")
	links.GET("", h.list)
	links.POST("", h.create)
	links.PUT("/:id", h.update)
	links.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	links, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, links)
}

func (h *Handler) create(c *gin.Context) {
	var dto SocialLinkDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	l, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, l)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto SocialLinkDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	l, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, l)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
