package category

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
	cats := rg.Group("/categories")
	cats.GET("", h.list)
	cats.POST("", h.create)
	cats.PUT("/:id", h.update)
	cats.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	cats, pag, err := h.svc.List(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, cats, pag)
}

func (h *Handler) create(c *gin.Context) {
	var dto CategoryDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	cat, err := h.svc.Create(&dto, middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.ValidationFailed(c, validate.Conflict("name", dto.Name))
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto CategoryDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	cat, err := h.svc.Update(id, middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.ValidationFailed(c, validate.Conflict("name", dto.Name))
			return
		}
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	images, deleted, err := h.svc.Delete(id, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	for _, img := range images {
		_ = h.store.Remove(img)
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
