package catalog

import (
	"swapi/internal/domain"
	"swapi/internal/repository"
)

// Create requests use pointer fields so the validator can tell an absent
// field from a zero value; required fields are checked in declaration order.
// Update requests apply only the fields present in the body.

type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required"`
	Age   *int    `json:"age" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

func (r CreateUserRequest) build() domain.User {
	return domain.User{Name: *r.Name, Age: *r.Age, Email: *r.Email}
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Age   *int    `json:"age"`
	Email *string `json:"email"`
}

func (r UpdateUserRequest) apply(u *domain.User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
}

type CreateStarshipRequest struct {
	Name  *string `json:"name" validate:"required"`
	Model *string `json:"model" validate:"required"`
}

func (r CreateStarshipRequest) build() domain.Starship {
	return domain.Starship{Name: *r.Name, Model: *r.Model}
}

type UpdateStarshipRequest struct {
	Name  *string `json:"name"`
	Model *string `json:"model"`
}

func (r UpdateStarshipRequest) apply(s *domain.Starship) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Model != nil {
		s.Model = *r.Model
	}
}

type CreatePlanetRequest struct {
	Name           *string `json:"name" validate:"required"`
	RotationPeriod *int    `json:"rotation_period" validate:"required"`
	Climate        *string `json:"climate" validate:"required"`
}

func (r CreatePlanetRequest) build() domain.Planet {
	return domain.Planet{Name: *r.Name, RotationPeriod: *r.RotationPeriod, Climate: *r.Climate}
}

type UpdatePlanetRequest struct {
	Name           *string `json:"name"`
	RotationPeriod *int    `json:"rotation_period"`
	Climate        *string `json:"climate"`
}

func (r UpdatePlanetRequest) apply(p *domain.Planet) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.RotationPeriod != nil {
		p.RotationPeriod = *r.RotationPeriod
	}
	if r.Climate != nil {
		p.Climate = *r.Climate
	}
}

type CreateFilmRequest struct {
	Title    *string `json:"title" validate:"required"`
	Episode  *int    `json:"episode" validate:"required"`
	Director *string `json:"director" validate:"required"`
}

func (r CreateFilmRequest) build() domain.Film {
	return domain.Film{Title: *r.Title, Episode: *r.Episode, Director: *r.Director}
}

type UpdateFilmRequest struct {
	Title    *string `json:"title"`
	Episode  *int    `json:"episode"`
	Director *string `json:"director"`
}

func (r UpdateFilmRequest) apply(f *domain.Film) {
	if r.Title != nil {
		f.Title = *r.Title
	}
	if r.Episode != nil {
		f.Episode = *r.Episode
	}
	if r.Director != nil {
		f.Director = *r.Director
	}
}

type CreateCharacterRequest struct {
	Name      *string `json:"name" validate:"required"`
	SpeciesID *int64  `json:"species_id" validate:"required"`
	PlanetID  *int64  `json:"planet_id" validate:"required"`
}

func (r CreateCharacterRequest) build() domain.Character {
	return domain.Character{Name: *r.Name, SpeciesID: *r.SpeciesID, PlanetID: *r.PlanetID}
}

func (r CreateCharacterRequest) references() []reference {
	return []reference{
		{field: "species_id", id: *r.SpeciesID, exists: repository.Exists[domain.Species]},
		{field: "planet_id", id: *r.PlanetID, exists: repository.Exists[domain.Planet]},
	}
}

type UpdateCharacterRequest struct {
	Name      *string `json:"name"`
	SpeciesID *int64  `json:"species_id"`
	PlanetID  *int64  `json:"planet_id"`
}

func (r UpdateCharacterRequest) apply(c *domain.Character) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.SpeciesID != nil {
		c.SpeciesID = *r.SpeciesID
	}
	if r.PlanetID != nil {
		c.PlanetID = *r.PlanetID
	}
}

func (r UpdateCharacterRequest) references() []reference {
	var refs []reference
	if r.SpeciesID != nil {
		refs = append(refs, reference{field: "species_id", id: *r.SpeciesID, exists: repository.Exists[domain.Species]})
	}
	if r.PlanetID != nil {
		refs = append(refs, reference{field: "planet_id", id: *r.PlanetID, exists: repository.Exists[domain.Planet]})
	}
	return refs
}

type CreateSpeciesRequest struct {
	Name           *string `json:"name" validate:"required"`
	Classification *string `json:"classification" validate:"required"`
	PlanetID       *int64  `json:"planet_id" validate:"required"`
}

func (r CreateSpeciesRequest) build() domain.Species {
	return domain.Species{Name: *r.Name, Classification: *r.Classification, PlanetID: *r.PlanetID}
}

func (r CreateSpeciesRequest) references() []reference {
	return []reference{
		{field: "planet_id", id: *r.PlanetID, exists: repository.Exists[domain.Planet]},
	}
}

type UpdateSpeciesRequest struct {
	Name           *string `json:"name"`
	Classification *string `json:"classification"`
	PlanetID       *int64  `json:"planet_id"`
}

func (r UpdateSpeciesRequest) apply(s *domain.Species) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Classification != nil {
		s.Classification = *r.Classification
	}
	if r.PlanetID != nil {
		s.PlanetID = *r.PlanetID
	}
}

func (r UpdateSpeciesRequest) references() []reference {
	if r.PlanetID == nil {
		return nil
	}
	return []reference{
		{field: "planet_id", id: *r.PlanetID, exists: repository.Exists[domain.Planet]},
	}
}
