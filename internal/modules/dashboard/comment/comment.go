// Package comment manages reader comments from the dashboard: list per
// post, add as the current user, delete by pk. Comment rows also vanish
// when their post or author is deleted (handled in those services).
package comment

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/validate"
	"gorm.io/gorm"
)

var errBlogMissing = errors.New("blog does not exist")

// CommentDTO is the add-comment form.
type CommentDTO struct {
	Text string `json:"comment" form:"comment" binding:"required,max=250"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListForBlog(blogID uint, q pagination.Query) ([]models.CommentModel, response.Pagination, error) {
	tx := s.db.Model(&models.CommentModel{}).
		Where("blog_id = ?", blogID).
		Order("created_at ASC")
	var comments []models.CommentModel
	pag, err := pagination.Paginate(tx, q, &comments)
	return comments, pag, err
}

func (s *Service) Create(blogID, userID uint, dto *CommentDTO) (*models.CommentModel, error) {
	var count int64
	if err := s.db.Model(&models.BlogModel{}).Where("id = ?", blogID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errBlogMissing
	}

	cm := models.CommentModel{BlogID: blogID, UserID: userID, Text: dto.Text}
	return &cm, s.db.Create(&cm).Error
}

func (s *Service) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.CommentModel{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/posts/:id/comments", h.listForBlog)
	rg.POST("/posts/:id/comments", h.create)
	rg.DELETE("/comments/:id", h.delete)
}

func (h *Handler) listForBlog(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}
	q := pagination.FromContext(c)
	comments, pag, err := h.svc.ListForBlog(blogID, q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, comments, pag)
}

func (h *Handler) create(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}
	var dto CommentDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	cm, err := h.svc.Create(blogID, middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, errBlogMissing) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cm)
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
