package domain

// Association rows link two primary entities of different types.
// Each pair is unique per table; the pointers are belongs-to targets used by preloads.

type StarshipFilm struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	StarshipID int64 `json:"starship_id" gorm:"not null;uniqueIndex:idx_starships_films_pair"`
	FilmID     int64 `json:"film_id" gorm:"not null;index;uniqueIndex:idx_starships_films_pair"`

	Starship *Starship `json:"-"`
	Film     *Film     `json:"-"`
}

func (StarshipFilm) TableName() string { return "starships_films" }

type StarshipCharacter struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	StarshipID  int64 `json:"starship_id" gorm:"not null;uniqueIndex:idx_starships_characters_pair"`
	CharacterID int64 `json:"character_id" gorm:"not null;index;uniqueIndex:idx_starships_characters_pair"`

	Starship  *Starship  `json:"-"`
	Character *Character `json:"-"`
}

func (StarshipCharacter) TableName() string { return "starships_characters" }

type PlanetFilm struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	PlanetID int64 `json:"planet_id" gorm:"not null;uniqueIndex:idx_planets_films_pair"`
	FilmID   int64 `json:"film_id" gorm:"not null;index;uniqueIndex:idx_planets_films_pair"`

	Planet *Planet `json:"-"`
	Film   *Film   `json:"-"`
}

func (PlanetFilm) TableName() string { return "planets_films" }

type FilmCharacter struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	FilmID      int64 `json:"film_id" gorm:"not null;uniqueIndex:idx_films_characters_pair"`
	CharacterID int64 `json:"character_id" gorm:"not null;index;uniqueIndex:idx_films_characters_pair"`

	Film      *Film      `json:"-"`
	Character *Character `json:"-"`
}

func (FilmCharacter) TableName() string { return "films_characters" }

type FilmSpecies struct {
	ID        int64 `json:"id" gorm:"primaryKey"`
	FilmID    int64 `json:"film_id" gorm:"not null;uniqueIndex:idx_films_species_pair"`
	SpeciesID int64 `json:"species_id" gorm:"not null;index;uniqueIndex:idx_films_species_pair"`

	Film    *Film    `json:"-"`
	Species *Species `json:"-"`
}

func (FilmSpecies) TableName() string { return "films_species" }

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&User{},
		&Planet{},
		&Species{},
		&Character{},
		&Starship{},
		&Film{},
		&FavoriteStarship{},
		&FavoritePlanet{},
		&FavoriteFilm{},
		&FavoriteCharacter{},
		&FavoriteSpecies{},
		&StarshipFilm{},
		&StarshipCharacter{},
		&PlanetFilm{},
		&FilmCharacter{},
		&FilmSpecies{},
	}
}
