package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapi/internal/pkg/apierr"
)

func contextWithBody(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c
}

type planetRequest struct {
	Name           *string `json:"name" validate:"required"`
	RotationPeriod *int    `json:"rotation_period" validate:"required"`
	Climate        *string `json:"climate" validate:"required"`
}

func TestReadBody_Missing(t *testing.T) {
	for _, body := range []string{"", "   ", "null", "[1,2]", "\"text\"", "{broken"} {
		_, err := ReadBody(contextWithBody(body), "The request body is null")
		var missing *apierr.MissingBodyError
		require.ErrorAs(t, err, &missing, "body %q", body)
		assert.Equal(t, "The request body is null", err.Error())
	}

	_, err := ReadBody(contextWithBody(""), "")
	assert.EqualError(t, err, "Body cannot be empty")
}

func TestBody_HasTreatsNullAsAbsent(t *testing.T) {
	b, err := ReadBody(contextWithBody(`{"name":"Hoth","climate":null}`), "")
	require.NoError(t, err)
	assert.True(t, b.Has("name"))
	assert.False(t, b.Has("climate"))
	assert.False(t, b.Has("rotation_period"))
}

func TestBody_Require(t *testing.T) {
	b, err := ReadBody(contextWithBody(`{"film_id":1}`), "")
	require.NoError(t, err)
	assert.EqualError(t, b.Require("starship_id", "film_id"), "Specify starship_id")
	assert.NoError(t, b.Require("film_id"))
}

func TestBody_Int64(t *testing.T) {
	b, err := ReadBody(contextWithBody(`{"planet_id":7,"film_id":"x"}`), "")
	require.NoError(t, err)

	id, err := b.Int64("planet_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = b.Int64("film_id")
	assert.EqualError(t, err, "Invalid film_id")

	_, err = b.Int64("species_id")
	assert.EqualError(t, err, "Specify species_id")
}

func TestBind_FirstMissingFieldInOrder(t *testing.T) {
	var req planetRequest
	err := Bind(contextWithBody(`{"climate":"arid"}`), "", &req)
	assert.EqualError(t, err, "Specify name")

	req = planetRequest{}
	err = Bind(contextWithBody(`{"name":"Tatooine","climate":"arid"}`), "", &req)
	assert.EqualError(t, err, "Specify rotation_period")

	req = planetRequest{}
	err = Bind(contextWithBody(`{"name":"Tatooine","rotation_period":23,"climate":"arid"}`), "", &req)
	require.NoError(t, err)
	assert.Equal(t, 23, *req.RotationPeriod)
}

func TestBind_TypeMismatch(t *testing.T) {
	var req planetRequest
	err := Bind(contextWithBody(`{"name":"Tatooine","rotation_period":"fast","climate":"arid"}`), "", &req)
	assert.EqualError(t, err, "Invalid rotation_period")
}

func TestPathID(t *testing.T) {
	c := contextWithBody("")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := PathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, v := range []string{"0", "-3", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: v}}
		_, err := PathID(c, "id")
		assert.EqualError(t, err, "Invalid id", v)
	}
}

func TestBind_KeysMatchExactly(t *testing.T) {
	var req planetRequest
	err := Bind(contextWithBody(`{"NAME":"Tatooine","Rotation_Period":23,"climate":"arid"}`), "", &req)
	assert.EqualError(t, err, "Specify name")
	assert.Nil(t, req.Name)
}

func TestBody_DecodeIgnoresOtherCase(t *testing.T) {
	b, err := ReadBody(contextWithBody(`{"Climate":"frozen","name":"Hoth","NAME":"Other"}`), "")
	require.NoError(t, err)

	var req planetRequest
	require.NoError(t, b.Decode(&req))
	require.NotNil(t, req.Name)
	assert.Equal(t, "Hoth", *req.Name)
	assert.Nil(t, req.Climate)
}
