package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{MissingBody(""), "Body cannot be empty"},
		{MissingBody("The request body is null"), "The request body is null"},
		{MissingField("name"), "Specify name"},
		{InvalidValue("id"), "Invalid id"},
		{NotFound("User", 999), "User do not exist"},
		{NotFoundf("Relationship", 4, "Invalid relationship id"), "Invalid relationship id"},
		{InvalidForeignKey("planet_id"), "Invalid planet_id"},
		{Duplicate("%s already in favorites of the user with ID %d", "Starship", 2), "Starship already in favorites of the user with ID 2"},
	}
	for _, tc := range cases {
		assert.EqualError(t, tc.err, tc.want)
	}
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(MissingField("name")))
	assert.True(t, IsRejection(fmt.Errorf("wrapped: %w", NotFound("Film", 1))))
	assert.True(t, IsRejection(Duplicate("Relationship already exists")))
	assert.False(t, IsRejection(errors.New("sql: database is closed")))
	assert.False(t, IsRejection(nil))
}
