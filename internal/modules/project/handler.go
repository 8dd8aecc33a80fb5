package project

import (
	"context"
	"errors"

	"github.com/atelier-works/projects-api/internal/models"
	"github.com/atelier-works/projects-api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// store is the persistence surface the handler needs. *Service satisfies it;
// tests substitute a fake.
type store interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, dto *CreateProjectDTO) (*models.Project, error)
	Update(ctx context.Context, id string, dto *UpdateProjectDTO) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	FilterByStatus(ctx context.Context, status string) ([]models.Project, error)
	FilterByCategory(ctx context.Context, category string) ([]models.Project, error)
	AppendImage(ctx context.Context, id string, dto *ImagePayloadDTO) (*models.Project, error)
	RemoveImage(ctx context.Context, id, imageID string) (*models.Project, models.ImageKind, error)
}

type Handler struct {
	svc store
}

func NewHandler(svc store) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/projects")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/status/:status", h.filterByStatus)
	g.GET("/category/:category", h.filterByCategory)

	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)

	g.POST("/:id/images", h.appendImage)
	g.DELETE("/:id/images/:imageId", h.removeImage)
}

// fail converts service errors into the uniform envelope: validation → 400,
// missing entities → 404, everything else → 500.
func fail(c *gin.Context, err error, message string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, message, err)
	case errors.Is(err, errProjectNotFound), errors.Is(err, errImageNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, message, err)
	}
}

// GET /projects
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to fetch projects")
		return
	}
	response.OKCount(c, toResponses(items), len(items))
}

// GET /projects/:id
func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "failed to fetch the project")
		return
	}
	response.OK(c, toResponse(p))
}

// POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto CreateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "failed to create the project", err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		fail(c, err, "failed to create the project")
		return
	}
	response.Created(c, "project created successfully", toResponse(p))
}

// PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "failed to update the project", err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		fail(c, err, "failed to update the project")
		return
	}
	response.OKMessage(c, "project updated successfully", toResponse(p))
}

// DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "failed to delete the project")
		return
	}
	response.OKMessage(c, "project deleted successfully", nil)
}

// GET /projects/status/:status
func (h *Handler) filterByStatus(c *gin.Context) {
	items, err := h.svc.FilterByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		fail(c, err, "failed to filter projects")
		return
	}
	response.OKCount(c, toResponses(items), len(items))
}

// GET /projects/category/:category
func (h *Handler) filterByCategory(c *gin.Context) {
	items, err := h.svc.FilterByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		fail(c, err, "failed to filter projects")
		return
	}
	response.OKCount(c, toResponses(items), len(items))
}

// POST /projects/:id/images
func (h *Handler) appendImage(c *gin.Context) {
	var dto ImagePayloadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "failed to add the image", err)
		return
	}
	p, err := h.svc.AppendImage(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		fail(c, err, "failed to add the image")
		return
	}
	response.Created(c, "image added successfully", toResponse(p))
}

// DELETE /projects/:id/images/:imageId
func (h *Handler) removeImage(c *gin.Context) {
	p, kind, err := h.svc.RemoveImage(c.Request.Context(), c.Param("id"), c.Param("imageId"))
	if err != nil {
		fail(c, err, "failed to remove the image")
		return
	}
	response.OKMessage(c, string(kind)+" image removed successfully", toResponse(p))
}
