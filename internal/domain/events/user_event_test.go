package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEvent_Marshal(t *testing.T) {
	e := NewUserEvent(UserCreated, 1, "John Doe", "john@example.com")
	assert.Equal(t, "user.created", e.Subject())

	data, err := e.Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "user.created", decoded["type"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "John Doe", "email": "john@example.com"}, decoded["user"])
	assert.Contains(t, decoded, "occurred_at")
}

func TestUserEvent_DeletedOmitsProfile(t *testing.T) {
	data, err := NewUserEvent(UserDeleted, 4, "", "").Marshal()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"user":{"id":4}`)
}
