package user

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/modules/storage"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/validate"
)

// Handler exposes administrative user CRUD. The routes are mounted
// behind the dashboard auth middleware; the source this dashboard grew
// from left them open, which was a gap rather than a design choice.
type Handler struct {
	svc   *Service
	store *storage.Service
}

func NewHandler(svc *Service, store *storage.Service) *Handler {
	return &Handler{svc: svc, store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", h.list)
	users.POST("", h.create)
	users.GET("/:id", h.get)
	users.PUT("/:id", h.update)
	users.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	users, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, users, pag)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	u, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			response.ValidationFailed(c, validate.Conflict("username", dto.Username))
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, u)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto UpdateUserDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.ValidationFailed(c, validate.Fields(err))
		return
	}
	u, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			response.ValidationFailed(c, validate.Conflict("username", dto.Username))
			return
		}
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	images, deleted, err := h.svc.Delete(id)
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
