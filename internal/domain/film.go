package domain

type Film struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"not null"`
	Episode  int    `json:"episode"`
	Director string `json:"director"`

	RelatedStarships  []StarshipFilm  `json:"-" gorm:"foreignKey:FilmID"`
	RelatedPlanets    []PlanetFilm    `json:"-" gorm:"foreignKey:FilmID"`
	RelatedCharacters []FilmCharacter `json:"-" gorm:"foreignKey:FilmID"`
	RelatedSpecies    []FilmSpecies   `json:"-" gorm:"foreignKey:FilmID"`
}

func (Film) TableName() string {
	return "films"
}

// FilmWithRelations is the collection listing shape of a film.
type FilmWithRelations struct {
	FilmData          Film        `json:"film_data"`
	RelatedStarships  []Starship  `json:"related_starships"`
	RelatedPlanets    []Planet    `json:"related_planets"`
	RelatedCharacters []Character `json:"related_characters"`
	RelatedSpecies    []Species   `json:"related_species"`
}

func (Film) Preloads() []string {
	return []string{
		"RelatedStarships.Starship",
		"RelatedPlanets.Planet",
		"RelatedCharacters.Character",
		"RelatedSpecies.Species",
	}
}

func (f Film) Expanded() any {
	out := FilmWithRelations{
		FilmData:          f,
		RelatedStarships:  make([]Starship, 0, len(f.RelatedStarships)),
		RelatedPlanets:    make([]Planet, 0, len(f.RelatedPlanets)),
		RelatedCharacters: make([]Character, 0, len(f.RelatedCharacters)),
		RelatedSpecies:    make([]Species, 0, len(f.RelatedSpecies)),
	}
	for _, rel := range f.RelatedStarships {
		if rel.Starship != nil {
			out.RelatedStarships = append(out.RelatedStarships, *rel.Starship)
		}
	}
	for _, rel := range f.RelatedPlanets {
		if rel.Planet != nil {
			out.RelatedPlanets = append(out.RelatedPlanets, *rel.Planet)
		}
	}
	for _, rel := range f.RelatedCharacters {
		if rel.Character != nil {
			out.RelatedCharacters = append(out.RelatedCharacters, *rel.Character)
		}
	}
	for _, rel := range f.RelatedSpecies {
		if rel.Species != nil {
			out.RelatedSpecies = append(out.RelatedSpecies, *rel.Species)
		}
	}
	return out
}
