package domain

type Planet struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	RotationPeriod int    `json:"rotation_period"`
	Climate        string `json:"climate"`

	RelatedFilms []PlanetFilm `json:"-" gorm:"foreignKey:PlanetID"`
}

func (Planet) TableName() string {
	return "planets"
}

// PlanetWithRelations is the collection listing shape of a planet.
type PlanetWithRelations struct {
	PlanetData   Planet `json:"planet_data"`
	RelatedFilms []Film `json:"related_films"`
}

func (Planet) Preloads() []string {
	return []string{"RelatedFilms.Film"}
}

func (p Planet) Expanded() any {
	out := PlanetWithRelations{
		PlanetData:   p,
		RelatedFilms: make([]Film, 0, len(p.RelatedFilms)),
	}
	for _, rel := range p.RelatedFilms {
		if rel.Film != nil {
			out.RelatedFilms = append(out.RelatedFilms, *rel.Film)
		}
	}
	return out
}
