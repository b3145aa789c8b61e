package favorite

import (
	"github.com/gin-gonic/gin"

	"swapi/internal/domain"
	"swapi/internal/repository"
)

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Module wires the five favorite categories and the per-user summary.
type Module struct {
	handlers []routeRegistrar
	summary  *Summary
}

func NewModule(store *repository.Store) *Module {
	starships := NewService(store, Category[domain.FavoriteStarship]{
		Path: "starships", Field: "starship_id", Entity: "Starship",
		Keys:         func(f *domain.FavoriteStarship) (*int64, *int64) { return &f.UserID, &f.StarshipID },
		TargetExists: repository.Exists[domain.Starship],
	})
	planets := NewService(store, Category[domain.FavoritePlanet]{
		Path: "planets", Field: "planet_id", Entity: "Planet",
		Keys:         func(f *domain.FavoritePlanet) (*int64, *int64) { return &f.UserID, &f.PlanetID },
		TargetExists: repository.Exists[domain.Planet],
	})
	films := NewService(store, Category[domain.FavoriteFilm]{
		Path: "films", Field: "film_id", Entity: "Film",
		Keys:         func(f *domain.FavoriteFilm) (*int64, *int64) { return &f.UserID, &f.FilmID },
		TargetExists: repository.Exists[domain.Film],
	})
	characters := NewService(store, Category[domain.FavoriteCharacter]{
		Path: "characters", Field: "character_id", Entity: "Character",
		Keys:         func(f *domain.FavoriteCharacter) (*int64, *int64) { return &f.UserID, &f.CharacterID },
		TargetExists: repository.Exists[domain.Character],
	})
	species := NewService(store, Category[domain.FavoriteSpecies]{
		Path: "species", Field: "species_id", Entity: "Species",
		Keys:         func(f *domain.FavoriteSpecies) (*int64, *int64) { return &f.UserID, &f.SpeciesID },
		TargetExists: repository.Exists[domain.Species],
	})

	return &Module{
		handlers: []routeRegistrar{
			NewHandler(starships),
			NewHandler(planets),
			NewHandler(films),
			NewHandler(characters),
			NewHandler(species),
		},
		summary: &Summary{
			store:      store,
			categories: []userLister{starships, planets, films, characters, species},
		},
	}
}

func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	for _, h := range m.handlers {
		h.RegisterRoutes(rg)
	}
	rg.GET("/user/:id/favorites", m.summary.Get)
}
