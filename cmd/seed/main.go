package main

import (
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"swapi/internal/config"
	"swapi/internal/database"
	"swapi/internal/domain"
	"swapi/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logging.New(logging.Config{})
		l.Fatal().Err(err).Msg("config")
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	log.Info().Msg("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	if err := db.Transaction(func(tx *gorm.DB) error { return seed(tx, log) }); err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
	log.Info().Msg("Seed complete")
}

func seed(tx *gorm.DB, log zerolog.Logger) error {
	// Cleanup old data, join tables first
	log.Info().Msg("Cleaning old data...")
	for _, table := range []string{
		"starships_films", "starships_characters", "planets_films", "films_characters", "films_species",
		"favorite_starships", "favorite_planets", "favorite_films", "favorite_characters", "favorite_species",
		"characters", "species", "films", "starships", "planets", "users",
	} {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	// ================== PLANETS ==================
	log.Info().Msg("Creating planets...")
	tatooine := domain.Planet{Name: "Tatooine", RotationPeriod: 23, Climate: "arid"}
	alderaan := domain.Planet{Name: "Alderaan", RotationPeriod: 24, Climate: "temperate"}
	kashyyyk := domain.Planet{Name: "Kashyyyk", RotationPeriod: 26, Climate: "tropical"}
	if err := tx.Create(&[]*domain.Planet{&tatooine, &alderaan, &kashyyyk}).Error; err != nil {
		return err
	}

	// ================== SPECIES ==================
	log.Info().Msg("Creating species...")
	human := domain.Species{Name: "Human", Classification: "mammal", PlanetID: alderaan.ID}
	wookiee := domain.Species{Name: "Wookiee", Classification: "mammal", PlanetID: kashyyyk.ID}
	if err := tx.Create(&[]*domain.Species{&human, &wookiee}).Error; err != nil {
		return err
	}

	// ================== CHARACTERS ==================
	log.Info().Msg("Creating characters...")
	luke := domain.Character{Name: "Luke Skywalker", SpeciesID: human.ID, PlanetID: tatooine.ID}
	leia := domain.Character{Name: "Leia Organa", SpeciesID: human.ID, PlanetID: alderaan.ID}
	chewie := domain.Character{Name: "Chewbacca", SpeciesID: wookiee.ID, PlanetID: kashyyyk.ID}
	if err := tx.Create(&[]*domain.Character{&luke, &leia, &chewie}).Error; err != nil {
		return err
	}

	// ================== STARSHIPS ==================
	log.Info().Msg("Creating starships...")
	falcon := domain.Starship{Name: "Millennium Falcon", Model: "YT-1300 light freighter"}
	xwing := domain.Starship{Name: "X-wing", Model: "T-65 X-wing"}
	if err := tx.Create(&[]*domain.Starship{&falcon, &xwing}).Error; err != nil {
		return err
	}

	// ================== FILMS ==================
	log.Info().Msg("Creating films...")
	hope := domain.Film{Title: "A New Hope", Episode: 4, Director: "George Lucas"}
	empire := domain.Film{Title: "The Empire Strikes Back", Episode: 5, Director: "Irvin Kershner"}
	if err := tx.Create(&[]*domain.Film{&hope, &empire}).Error; err != nil {
		return err
	}

	// ================== RELATIONSHIPS ==================
	log.Info().Msg("Creating relationships...")
	links := []any{
		&[]domain.StarshipFilm{
			{StarshipID: falcon.ID, FilmID: hope.ID},
			{StarshipID: falcon.ID, FilmID: empire.ID},
			{StarshipID: xwing.ID, FilmID: hope.ID},
		},
		&[]domain.StarshipCharacter{
			{StarshipID: falcon.ID, CharacterID: chewie.ID},
			{StarshipID: xwing.ID, CharacterID: luke.ID},
		},
		&[]domain.PlanetFilm{
			{PlanetID: tatooine.ID, FilmID: hope.ID},
			{PlanetID: alderaan.ID, FilmID: hope.ID},
		},
		&[]domain.FilmCharacter{
			{FilmID: hope.ID, CharacterID: luke.ID},
			{FilmID: hope.ID, CharacterID: leia.ID},
			{FilmID: hope.ID, CharacterID: chewie.ID},
			{FilmID: empire.ID, CharacterID: luke.ID},
		},
		&[]domain.FilmSpecies{
			{FilmID: hope.ID, SpeciesID: human.ID},
			{FilmID: hope.ID, SpeciesID: wookiee.ID},
		},
	}
	for _, rows := range links {
		if err := tx.Create(rows).Error; err != nil {
			return err
		}
	}

	// ================== USERS ==================
	log.Info().Msg("Creating demo user with favorites...")
	demo := domain.User{Name: "Demo User", Age: 30, Email: "demo@swapi.local"}
	if err := tx.Create(&demo).Error; err != nil {
		return err
	}
	favorites := []any{
		&domain.FavoriteStarship{UserID: demo.ID, StarshipID: falcon.ID},
		&domain.FavoritePlanet{UserID: demo.ID, PlanetID: tatooine.ID},
		&domain.FavoriteFilm{UserID: demo.ID, FilmID: hope.ID},
		&domain.FavoriteCharacter{UserID: demo.ID, CharacterID: leia.ID},
		&domain.FavoriteSpecies{UserID: demo.ID, SpeciesID: wookiee.ID},
	}
	for _, f := range favorites {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
	}
	log.Info().Int64("user_id", demo.ID).Msg("Demo user created")
	return nil
}
