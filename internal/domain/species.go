package domain

type Species struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	Classification string `json:"classification"`
	PlanetID       int64  `json:"planet_id" gorm:"index"`

	Planet *Planet `json:"-"`

	RelatedFilms []FilmSpecies `json:"-" gorm:"foreignKey:SpeciesID"`
}

func (Species) TableName() string {
	return "species"
}

// SpeciesWithRelations is the collection listing shape of a species.
type SpeciesWithRelations struct {
	SpeciesData  Species `json:"species_data"`
	RelatedFilms []Film  `json:"related_films"`
}

func (Species) Preloads() []string {
	return []string{"RelatedFilms.Film"}
}

func (s Species) Expanded() any {
	out := SpeciesWithRelations{
		SpeciesData:  s,
		RelatedFilms: make([]Film, 0, len(s.RelatedFilms)),
	}
	for _, rel := range s.RelatedFilms {
		if rel.Film != nil {
			out.RelatedFilms = append(out.RelatedFilms, *rel.Film)
		}
	}
	return out
}
