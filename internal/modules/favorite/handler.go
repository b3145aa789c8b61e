package favorite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swapi/internal/pkg/response"
	"swapi/internal/pkg/validator"
)

// Handler обрабатывает HTTP запросы для избранного одной категории
type Handler[F any] struct {
	service *Service[F]
}

func NewHandler[F any](service *Service[F]) *Handler[F] {
	return &Handler[F]{service: service}
}

// RegisterRoutes mounts the admin routes under /favorite_<path> and the
// per-user routes under /user/:id/favorite_<path>.
func (h *Handler[F]) RegisterRoutes(rg *gin.RouterGroup) {
	name := "/favorite_" + h.service.cat.Path

	admin := rg.Group(name)
	{
		admin.GET("", h.All)
		admin.GET("/:id", h.ByTarget)
		admin.DELETE("/:id", h.DeleteByTarget)
	}

	user := rg.Group("/user/:id" + name)
	{
		user.GET("", h.ForUser)
		user.POST("", h.Add)
		user.GET("/:target_id", h.Get)
		user.DELETE("/:target_id", h.Remove)
	}
}

// All handles GET /favorite_<path>
func (h *Handler[F]) All(c *gin.Context) {
	rows, err := h.service.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// ByTarget handles GET /favorite_<path>/:id
func (h *Handler[F]) ByTarget(c *gin.Context) {
	targetID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	rows, err := h.service.ByTarget(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// DeleteByTarget handles DELETE /favorite_<path>/:id
func (h *Handler[F]) DeleteByTarget(c *gin.Context) {
	targetID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err := h.service.DeleteByTarget(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK,
		fmt.Sprintf("Favorite %s with ID %d successfully deleted", titled(h.service.cat.Path), targetID))
}

// ForUser handles GET /user/:id/favorite_<path>
func (h *Handler[F]) ForUser(c *gin.Context) {
	userID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	rows, err := h.service.ForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Add handles POST /user/:id/favorite_<path>
func (h *Handler[F]) Add(c *gin.Context) {
	userID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	body, err := validator.ReadBody(c, "")
	if err != nil {
		response.Error(c, err)
		return
	}
	targetID, err := body.Int64(h.service.cat.Field)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Add(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK,
		fmt.Sprintf("Favorite %s successfully added", strings.ToLower(h.service.cat.Entity)))
}

// Get handles GET /user/:id/favorite_<path>/:target_id
func (h *Handler[F]) Get(c *gin.Context) {
	userID, targetID, ok := h.pair(c)
	if !ok {
		return
	}
	f, err := h.service.Get(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, f)
}

// Remove handles DELETE /user/:id/favorite_<path>/:target_id
func (h *Handler[F]) Remove(c *gin.Context) {
	userID, targetID, ok := h.pair(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf(
		"Favorite %s with ID %d deleted from favorites of user with ID %d",
		strings.ToLower(h.service.cat.Entity), targetID, userID))
}

func (h *Handler[F]) pair(c *gin.Context) (userID, targetID int64, ok bool) {
	userID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	targetID, err = validator.PathID(c, "target_id")
	if err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	return userID, targetID, true
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
