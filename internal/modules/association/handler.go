package association

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swapi/internal/pkg/response"
	"swapi/internal/pkg/validator"
)

type Handler[A any] struct {
	service *Service[A]
}

func NewHandler[A any](service *Service[A]) *Handler[A] {
	return &Handler[A]{service: service}
}

func (h *Handler[A]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.service.kind.Path)
	{
		g.GET("", h.All)
		g.POST("", h.Add)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

// All handles GET /<a>_<b>
func (h *Handler[A]) All(c *gin.Context) {
	rows, err := h.service.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Add handles POST /<a>_<b>
func (h *Handler[A]) Add(c *gin.Context) {
	k := h.service.kind
	body, err := validator.ReadBody(c, "")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := body.Require(k.Left.Field, k.Right.Field); err != nil {
		response.Error(c, err)
		return
	}
	left, err := body.Int64(k.Left.Field)
	if err != nil {
		response.Error(c, err)
		return
	}
	right, err := body.Int64(k.Right.Field)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Add(c.Request.Context(), left, right); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Relationship successfully added")
}

// Get handles GET /<a>_<b>/:id
func (h *Handler[A]) Get(c *gin.Context) {
	id, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, a)
}

// Update handles PUT /<a>_<b>/:id
func (h *Handler[A]) Update(c *gin.Context) {
	id, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	k := h.service.kind

	decode := func() (Change, error) {
		var ch Change
		body, err := validator.ReadBody(c, "")
		if err != nil {
			return ch, err
		}
		if ch.Left, err = optionalID(body, k.Left.Field); err != nil {
			return ch, err
		}
		ch.Right, err = optionalID(body, k.Right.Field)
		return ch, err
	}

	if err := h.service.Update(c.Request.Context(), id, decode); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Updated relationship %s with ID %d", k.Label, id))
}

// Delete handles DELETE /<a>_<b>/:id
func (h *Handler[A]) Delete(c *gin.Context) {
	id, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Deleted relationship %s with ID %d", h.service.kind.Label, id))
}

func optionalID(body *validator.Body, field string) (*int64, error) {
	if !body.Has(field) {
		return nil, nil
	}
	id, err := body.Int64(field)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
