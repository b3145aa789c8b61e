package domain

// Favorite rows link one user to one entity of a category.
// The (user, target) pair is unique per table.

type FavoriteStarship struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	UserID     int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_starships_pair"`
	StarshipID int64 `json:"starship_id" gorm:"not null;index;uniqueIndex:idx_favorite_starships_pair"`
}

func (FavoriteStarship) TableName() string { return "favorite_starships" }

type FavoritePlanet struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	UserID   int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_planets_pair"`
	PlanetID int64 `json:"planet_id" gorm:"not null;index;uniqueIndex:idx_favorite_planets_pair"`
}

func (FavoritePlanet) TableName() string { return "favorite_planets" }

type FavoriteFilm struct {
	ID     int64 `json:"id" gorm:"primaryKey"`
	UserID int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_films_pair"`
	FilmID int64 `json:"film_id" gorm:"not null;index;uniqueIndex:idx_favorite_films_pair"`
}

func (FavoriteFilm) TableName() string { return "favorite_films" }

type FavoriteCharacter struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	UserID      int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_characters_pair"`
	CharacterID int64 `json:"character_id" gorm:"not null;index;uniqueIndex:idx_favorite_characters_pair"`
}

func (FavoriteCharacter) TableName() string { return "favorite_characters" }

type FavoriteSpecies struct {
	ID        int64 `json:"id" gorm:"primaryKey"`
	UserID    int64 `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_species_pair"`
	SpeciesID int64 `json:"species_id" gorm:"not null;index;uniqueIndex:idx_favorite_species_pair"`
}

func (FavoriteSpecies) TableName() string { return "favorite_species" }
