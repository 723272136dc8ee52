package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"boxful/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserJSONShape(t *testing.T) {
	user := models.User{
		ID:        "1e8cdd9a-0f64-4f3c-9a1e-8a1a1df0a001",
		FirstName: "John",
		LastName:  "Doe",
		Sex:       models.SexMale,
		Phone:     "+50312345678",
		Email:     "john.doe@example.com",
		Password:  "$2a$10$notarealdigest",
		BornDate:  time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)

	var keys map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &keys))

	// The id field is the uuid string and the only identity key
	assert.Equal(t, user.ID, keys["id"])
	assert.NotContains(t, keys, "ID")

	// No digest and no ORM bookkeeping in the wire form
	assert.NotContains(t, keys, "password")
	assert.NotContains(t, keys, "Password")
	assert.NotContains(t, keys, "DeletedAt")
	assert.NotContains(t, keys, "CreatedAt")
	assert.NotContains(t, keys, "UpdatedAt")

	// A caller decoding just the identity pair must not trip over
	// conflicting duplicate fields
	var identity struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	assert.NoError(t, json.Unmarshal(raw, &identity))
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
}
