package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"swapi/internal/database/dbtest"
	"swapi/internal/domain"
)

func TestTable_CreateGetAll(t *testing.T) {
	db := dbtest.Open(t)
	ships := NewTable[domain.Starship](db)

	require.NoError(t, ships.Create(&domain.Starship{Name: "X-wing", Model: "T-65"}))
	require.NoError(t, ships.Create(&domain.Starship{Name: "Millennium Falcon", Model: "YT-1300"}))

	all, err := ships.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "X-wing", all[0].Name)

	got, err := ships.Get(all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "YT-1300", got.Model)

	_, err = ships.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTable_AllEmptyIsNotNil(t *testing.T) {
	rows, err := NewTable[domain.Film](dbtest.Open(t)).All()
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestTable_AllPreloads(t *testing.T) {
	db := dbtest.Open(t)
	ship := domain.Starship{Name: "X-wing", Model: "T-65"}
	film := domain.Film{Title: "A New Hope", Episode: 4}
	require.NoError(t, db.Create(&ship).Error)
	require.NoError(t, db.Create(&film).Error)
	require.NoError(t, db.Create(&domain.StarshipFilm{StarshipID: ship.ID, FilmID: film.ID}).Error)

	all, err := NewTable[domain.Starship](db).All(domain.Starship{}.Preloads()...)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].RelatedFilms, 1)
	require.NotNil(t, all[0].RelatedFilms[0].Film)
	assert.Equal(t, "A New Hope", all[0].RelatedFilms[0].Film.Title)
}

func TestTable_CreateDuplicatePair(t *testing.T) {
	db := dbtest.Open(t)
	favs := NewTable[domain.FavoritePlanet](db)

	require.NoError(t, favs.Create(&domain.FavoritePlanet{UserID: 1, PlanetID: 2}))
	err := favs.Create(&domain.FavoritePlanet{UserID: 1, PlanetID: 2})
	assert.ErrorIs(t, err, ErrDuplicate)

	rows, err := favs.Find(map[string]any{"user_id": 1})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTable_FindOneAndDeleteWhere(t *testing.T) {
	db := dbtest.Open(t)
	favs := NewTable[domain.FavoriteFilm](db)
	for _, f := range []domain.FavoriteFilm{{UserID: 1, FilmID: 3}, {UserID: 2, FilmID: 3}, {UserID: 2, FilmID: 4}} {
		require.NoError(t, favs.Create(&f))
	}

	one, err := favs.FindOne(map[string]any{"user_id": 2, "film_id": 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), one.FilmID)

	_, err = favs.FindOne(map[string]any{"user_id": 1, "film_id": 4})
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := favs.DeleteWhere(map[string]any{"film_id": 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, err := favs.All()
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestTable_Save(t *testing.T) {
	db := dbtest.Open(t)
	planets := NewTable[domain.Planet](db)
	p := domain.Planet{Name: "Hoth", RotationPeriod: 23, Climate: "frozen"}
	require.NoError(t, planets.Create(&p))

	p.Climate = "arid"
	require.NoError(t, planets.Save(&p))

	got, err := planets.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "arid", got.Climate)
	assert.Equal(t, "Hoth", got.Name)
}

func TestExists(t *testing.T) {
	db := dbtest.Open(t)
	u := domain.User{Name: "Leia", Age: 30}
	require.NoError(t, db.Create(&u).Error)

	found, err := Exists[domain.User](db, u.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = Exists[domain.User](db, u.ID+1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := NewStore(dbtest.Open(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *gorm.DB) error {
		require.NoError(t, NewTable[domain.User](tx).Create(&domain.User{Name: "Han"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	users, err := NewTable[domain.User](store.Conn(ctx)).All()
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.NoError(t, store.Ping(ctx))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.ErrorIs(t, classify(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, classify(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, classify(errors.New("UNIQUE constraint failed: users.email")), ErrDuplicate)
	assert.ErrorIs(t, classify(errors.New(`ERROR: duplicate key value violates unique constraint "x"`)), ErrDuplicate)

	other := errors.New("disk I/O error")
	assert.Equal(t, other, classify(other))
}
