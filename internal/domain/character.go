package domain

type Character struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	SpeciesID int64  `json:"species_id" gorm:"index"`
	PlanetID  int64  `json:"planet_id" gorm:"index"`

	Species *Species `json:"-"`
	Planet  *Planet  `json:"-"`

	RelatedStarships []StarshipCharacter `json:"-" gorm:"foreignKey:CharacterID"`
	RelatedFilms     []FilmCharacter     `json:"-" gorm:"foreignKey:CharacterID"`
}

func (Character) TableName() string {
	return "characters"
}

// CharacterWithRelations is the collection listing shape of a character.
type CharacterWithRelations struct {
	CharacterData    Character  `json:"character_data"`
	RelatedStarships []Starship `json:"related_starships"`
	RelatedFilms     []Film     `json:"related_films"`
}

func (Character) Preloads() []string {
	return []string{"RelatedStarships.Starship", "RelatedFilms.Film"}
}

func (c Character) Expanded() any {
	out := CharacterWithRelations{
		CharacterData:    c,
		RelatedStarships: make([]Starship, 0, len(c.RelatedStarships)),
		RelatedFilms:     make([]Film, 0, len(c.RelatedFilms)),
	}
	for _, rel := range c.RelatedStarships {
		if rel.Starship != nil {
			out.RelatedStarships = append(out.RelatedStarships, *rel.Starship)
		}
	}
	for _, rel := range c.RelatedFilms {
		if rel.Film != nil {
			out.RelatedFilms = append(out.RelatedFilms, *rel.Film)
		}
	}
	return out
}
