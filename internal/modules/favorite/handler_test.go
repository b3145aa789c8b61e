package favorite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"swapi/internal/database/dbtest"
	"swapi/internal/domain"
	"swapi/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	router := gin.New()
	NewModule(repository.NewStore(db)).RegisterRoutes(&router.RouterGroup)
	return router, db
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func requireMsg(t *testing.T, resp *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()
	require.Equal(t, code, resp.Code, resp.Body.String())
	var out struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, msg, out.Msg)
}

// seed creates users 1 and 2 and planets 1..3.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]domain.User{{Name: "Leia", Age: 30}, {Name: "Han", Age: 32}}).Error)
	require.NoError(t, db.Create(&[]domain.Planet{{Name: "Tatooine"}, {Name: "Alderaan"}, {Name: "Hoth"}}).Error)
}

func TestAdd_Duplicate(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)

	resp := performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":2}`)
	requireMsg(t, resp, http.StatusOK, "Favorite planet successfully added")

	resp = performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":2}`)
	requireMsg(t, resp, http.StatusBadRequest, "Planet already in favorites of the user with ID 1")

	var count int64
	require.NoError(t, db.Model(&domain.FavoritePlanet{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdd_Rejections(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)

	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", ""),
		http.StatusBadRequest, "Body cannot be empty")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"film_id":1}`),
		http.StatusBadRequest, "Specify planet_id")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":"one"}`),
		http.StatusBadRequest, "Invalid planet_id")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/9/favorite_planets", `{"planet_id":1}`),
		http.StatusBadRequest, "Invalid user_id")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":9}`),
		http.StatusBadRequest, "Invalid planet_id")
	// species favorites check existence like every other category
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_species", `{"species_id":1}`),
		http.StatusBadRequest, "Invalid species_id")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/x/favorite_planets", `{"planet_id":1}`),
		http.StatusBadRequest, "Invalid id")
}

func TestForUserAndSingle(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":1}`),
		http.StatusOK, "Favorite planet successfully added")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/2/favorite_planets", `{"planet_id":3}`),
		http.StatusOK, "Favorite planet successfully added")

	resp := performRequest(router, http.MethodGet, "/user/1/favorite_planets", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"id":1,"user_id":1,"planet_id":1}]`, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/user/2/favorite_planets/3", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":2,"user_id":2,"planet_id":3}`, resp.Body.String())

	requireMsg(t, performRequest(router, http.MethodGet, "/user/1/favorite_planets/3", ""),
		http.StatusBadRequest, "Invalid user_id or planet_id")
	requireMsg(t, performRequest(router, http.MethodGet, "/user/9/favorite_planets", ""),
		http.StatusBadRequest, "User do not exist")

	resp = performRequest(router, http.MethodDelete, "/user/2/favorite_planets/3", "")
	requireMsg(t, resp, http.StatusOK, "Favorite planet with ID 3 deleted from favorites of user with ID 2")
	requireMsg(t, performRequest(router, http.MethodDelete, "/user/2/favorite_planets/3", ""),
		http.StatusBadRequest, "Invalid user_id or planet_id")
}

func TestDeleteByTarget(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)
	for _, body := range []struct{ user, planet string }{{"1", "3"}, {"2", "3"}, {"2", "1"}} {
		resp := performRequest(router, http.MethodPost, "/user/"+body.user+"/favorite_planets", `{"planet_id":`+body.planet+`}`)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	}

	resp := performRequest(router, http.MethodGet, "/favorite_planets/3", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var rows []domain.FavoritePlanet
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	requireMsg(t, performRequest(router, http.MethodDelete, "/favorite_planets/3", ""),
		http.StatusOK, "Favorite Planets with ID 3 successfully deleted")

	resp = performRequest(router, http.MethodGet, "/favorite_planets/3", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/favorite_planets", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"id":3,"user_id":2,"planet_id":1}]`, resp.Body.String())
}

func TestSummary(t *testing.T) {
	router, db := setupRouter(t)
	seed(t, db)
	require.NoError(t, db.Create(&domain.Starship{Name: "X-wing", Model: "T-65"}).Error)
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_starships", `{"starship_id":1}`),
		http.StatusOK, "Favorite starship successfully added")
	requireMsg(t, performRequest(router, http.MethodPost, "/user/1/favorite_planets", `{"planet_id":2}`),
		http.StatusOK, "Favorite planet successfully added")

	resp := performRequest(router, http.MethodGet, "/user/1/favorites", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"favorite_starships": [{"id":1,"user_id":1,"starship_id":1}],
		"favorite_planets": [{"id":1,"user_id":1,"planet_id":2}],
		"favorite_films": [],
		"favorite_characters": [],
		"favorite_species": []
	}`, resp.Body.String())

	requireMsg(t, performRequest(router, http.MethodGet, "/user/5/favorites", ""),
		http.StatusBadRequest, "User do not exist")
}
