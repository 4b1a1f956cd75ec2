package post

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/modules/storage"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/validate"
)

type Handler struct {
	svc   *Service
	store *storage.Service
}

func NewHandler(svc *Service, store *storage.Service) *Handler {
	return &Handler{svc: svc, store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.POST("", h.create)
	posts.GET("/:id", h.get)
	posts.PUT("/:id", h.update)
	posts.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	blogs, pag, err := h.svc.List(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]blogResponse, len(blogs))
	for i := range blogs {
		items[i] = toResponse(&blogs[i], false)
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.svc.GetOwned(id, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(b, true))
}

func (h *Handler) create(c *gin.Context) {
	var dto BlogFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	imagePath, ok := h.saveImage(c)
	if !ok {
		return
	}

	b, err := h.svc.Create(&dto, middleware.CurrentUserID(c), imagePath)
	if err != nil {
		if errors.Is(err, errCategoryMissing) {
			response.ValidationFailed(c, map[string]string{"category_id": err.Error()})
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(b, false))
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto BlogFormDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	imagePath, ok := h.saveImage(c)
	if !ok {
		return
	}

	// capture the current image so the replaced file can be removed
	oldImage := ""
	if imagePath != "" {
		if prev, err := h.svc.GetOwned(id, middleware.CurrentUserID(c)); err == nil && prev != nil {
			oldImage = prev.FeaturedImage
		}
	}

	b, err := h.svc.Update(id, middleware.CurrentUserID(c), &dto, imagePath)
	if err != nil {
		if errors.Is(err, errCategoryMissing) {
			response.ValidationFailed(c, map[string]string{"category_id": err.Error()})
			return
		}
		response.InternalError(c, err)
		return
	}
	if b == nil {
		response.NotFound(c)
		return
	}
	if oldImage != "" && oldImage != b.FeaturedImage {
		_ = h.store.Remove(oldImage)
	}
	response.OK(c, toResponse(b, false))
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	image, deleted, err := h.svc.Delete(id, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	if image != "" {
		_ = h.store.Remove(image)
	}
	response.NoContent(c)
}

// saveImage stores the optional featured_image part. Returns "" when the
// form carries no file.
func (h *Handler) saveImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("featured_image")
	if err != nil {
		return "", true
	}
	path, err := h.store.SaveFeaturedImage(fh)
	if err != nil {
		response.InternalError(c, err)
		return "", false
	}
	return path, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
