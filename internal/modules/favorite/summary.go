package favorite

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"swapi/internal/pkg/response"
	"swapi/internal/pkg/validator"
	"swapi/internal/repository"
)

// userLister is the category-independent view used by the summary.
type userLister interface {
	key() string
	listAny(db *gorm.DB, userID int64) (any, error)
}

func (s *Service[F]) key() string { return "favorite_" + s.cat.Path }

func (s *Service[F]) listAny(db *gorm.DB, userID int64) (any, error) {
	return s.listForUser(db, userID)
}

// Summary collects the favorites of a user across every category.
type Summary struct {
	store      *repository.Store
	categories []userLister
}

// ForUser returns every category's favorites of userID keyed by table name.
func (s *Summary) ForUser(ctx context.Context, userID int64) (SummaryResponse, error) {
	db := s.store.Conn(ctx)
	if err := requireUser(db, userID); err != nil {
		return nil, err
	}
	out := make(SummaryResponse, len(s.categories))
	for _, cat := range s.categories {
		rows, err := cat.listAny(db, userID)
		if err != nil {
			return nil, err
		}
		out[cat.key()] = rows
	}
	return out, nil
}

// Get handles GET /user/:id/favorites
func (s *Summary) Get(c *gin.Context) {
	userID, err := validator.PathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	out, err := s.ForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}
