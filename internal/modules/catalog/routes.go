package catalog

import (
	"github.com/gin-gonic/gin"

	"swapi/internal/domain"
	"swapi/internal/repository"
)

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Module wires the primary entity collections.
type Module struct {
	handlers []routeRegistrar
}

func NewModule(store *repository.Store) *Module {
	return &Module{
		handlers: []routeRegistrar{
			NewHandler(NewService[domain.User, CreateUserRequest, UpdateUserRequest](store, "User"),
				"user", "The request body is null"),
			NewHandler(NewService[domain.Starship, CreateStarshipRequest, UpdateStarshipRequest](store, "Starship"),
				"starships", ""),
			NewHandler(NewService[domain.Planet, CreatePlanetRequest, UpdatePlanetRequest](store, "Planet"),
				"planets", ""),
			NewHandler(NewService[domain.Film, CreateFilmRequest, UpdateFilmRequest](store, "Film"),
				"films", ""),
			NewHandler(NewService[domain.Character, CreateCharacterRequest, UpdateCharacterRequest](store, "Character"),
				"characters", ""),
			NewHandler(NewService[domain.Species, CreateSpeciesRequest, UpdateSpeciesRequest](store, "Species"),
				"species", ""),
		},
	}
}

func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	for _, h := range m.handlers {
		h.RegisterRoutes(rg)
	}
}
