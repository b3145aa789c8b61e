package domain

type Starship struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Model string `json:"model"`

	RelatedFilms      []StarshipFilm      `json:"-" gorm:"foreignKey:StarshipID"`
	RelatedCharacters []StarshipCharacter `json:"-" gorm:"foreignKey:StarshipID"`
}

func (Starship) TableName() string {
	return "starships"
}

// StarshipWithRelations is the collection listing shape of a starship.
type StarshipWithRelations struct {
	StarshipData      Starship    `json:"starship_data"`
	RelatedFilms      []Film      `json:"related_films"`
	RelatedCharacters []Character `json:"related_characters"`
}

func (Starship) Preloads() []string {
	return []string{"RelatedFilms.Film", "RelatedCharacters.Character"}
}

func (s Starship) Expanded() any {
	out := StarshipWithRelations{
		StarshipData:      s,
		RelatedFilms:      make([]Film, 0, len(s.RelatedFilms)),
		RelatedCharacters: make([]Character, 0, len(s.RelatedCharacters)),
	}
	for _, rel := range s.RelatedFilms {
		if rel.Film != nil {
			out.RelatedFilms = append(out.RelatedFilms, *rel.Film)
		}
	}
	for _, rel := range s.RelatedCharacters {
		if rel.Character != nil {
			out.RelatedCharacters = append(out.RelatedCharacters, *rel.Character)
		}
	}
	return out
}
