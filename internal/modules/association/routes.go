package association

import (
	"github.com/gin-gonic/gin"

	"swapi/internal/domain"
	"swapi/internal/repository"
)

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

var (
	starshipSide  = Side{Field: "starship_id", Exists: repository.Exists[domain.Starship]}
	planetSide    = Side{Field: "planet_id", Exists: repository.Exists[domain.Planet]}
	filmSide      = Side{Field: "film_id", Exists: repository.Exists[domain.Film]}
	characterSide = Side{Field: "character_id", Exists: repository.Exists[domain.Character]}
	speciesSide   = Side{Field: "species_id", Exists: repository.Exists[domain.Species]}
)

// Module wires the five association tables.
type Module struct {
	handlers []routeRegistrar
}

func NewModule(store *repository.Store) *Module {
	return &Module{handlers: []routeRegistrar{
		NewHandler(NewService(store, Kind[domain.StarshipFilm]{
			Path: "starships_films", Label: "starship/film",
			Left: starshipSide, Right: filmSide,
			Keys: func(a *domain.StarshipFilm) (*int64, *int64) { return &a.StarshipID, &a.FilmID },
		})),
		NewHandler(NewService(store, Kind[domain.StarshipCharacter]{
			Path: "starships_characters", Label: "starship/character",
			Left: starshipSide, Right: characterSide,
			Keys: func(a *domain.StarshipCharacter) (*int64, *int64) { return &a.StarshipID, &a.CharacterID },
		})),
		NewHandler(NewService(store, Kind[domain.PlanetFilm]{
			Path: "planets_films", Label: "planet/film",
			Left: planetSide, Right: filmSide,
			Keys: func(a *domain.PlanetFilm) (*int64, *int64) { return &a.PlanetID, &a.FilmID },
		})),
		NewHandler(NewService(store, Kind[domain.FilmCharacter]{
			Path: "films_characters", Label: "film/character",
			Left: filmSide, Right: characterSide,
			Keys: func(a *domain.FilmCharacter) (*int64, *int64) { return &a.FilmID, &a.CharacterID },
		})),
		NewHandler(NewService(store, Kind[domain.FilmSpecies]{
			Path: "films_species", Label: "film/species",
			Left: filmSide, Right: speciesSide,
			Keys: func(a *domain.FilmSpecies) (*int64, *int64) { return &a.FilmID, &a.SpeciesID },
		})),
	}}
}

func (m *Module) RegisterRoutes(rg *gin.RouterGroup) {
	for _, h := range m.handlers {
		h.RegisterRoutes(rg)
	}
}
