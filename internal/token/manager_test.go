package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Generate(42, "owner")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	claims, err := m.Parse(tok)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestManager_ParseRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	tok, err := m.Generate(1, "user")
	assert.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestManager_ParseRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tok, err := m.Generate(1, "user")
	assert.NoError(t, err)

	_, err = m.Parse(tok)
	assert.Error(t, err)
}

func TestManager_ParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
