package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDs(t *testing.T) {
	assert.NotEmpty(t, GenerateGameID())
	assert.NotEqual(t, GenerateSessionID(), GenerateSessionID())
	assert.Len(t, GenerateSessionID(), 22)
}
