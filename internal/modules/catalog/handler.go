package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swapi/internal/pkg/response"
	"swapi/internal/pkg/validator"
)

// Handler serves /<path> and /<path>/:id for one entity.
type Handler[M any, C draft[M], U patch[M]] struct {
	service   *Service[M, C, U]
	path      string
	entity    string
	emptyBody string
}

func NewHandler[M any, C draft[M], U patch[M]](service *Service[M, C, U], path, emptyBody string) *Handler[M, C, U] {
	return &Handler[M, C, U]{
		service:   service,
		path:      path,
		entity:    service.entity,
		emptyBody: emptyBody,
	}
}

// RegisterRoutes mounts the collection and single-row routes under rg.
func (h *Handler[M, C, U]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.path)
	{
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
	}
}

// Create handles POST /<path>
func (h *Handler[M, C, U]) Create(c *gin.Context) {
	var req C
	if err := validator.Bind(c, h.emptyBody, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, h.entity+" successfully added")
}

// List handles GET /<path>
func (h *Handler[M, C, U]) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Get handles GET /<path>/:id
func (h *Handler[M, C, U]) Get(c *gin.Context) {
	id, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, m)
}

// Update handles PUT /<path>/:id
func (h *Handler[M, C, U]) Update(c *gin.Context) {
	id, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	decode := func() (U, error) {
		var req U
		body, err := validator.ReadBody(c, "")
		if err != nil {
			return req, err
		}
		err = body.Decode(&req)
		return req, err
	}

	if err := h.service.Update(c.Request.Context(), id, decode); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Updated %s with ID %d", strings.ToLower(h.entity), id))
}
