package services

import (
	"regexp"
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateBlockHash(t *testing.T) {
	service := NewBlockHashService()

	t.Run("should produce a 0x prefixed hash of 64 hex characters", func(t *testing.T) {
		supply := models.Supply{Model: models.Model{ID: uuid.New()}}

		hash, err := service.GenerateBlockHash(supply, dtos.TransactionTypeManufactured)

		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^0x[0-9a-f]{64}$`), hash)
	})

	t.Run("should never produce the same hash twice", func(t *testing.T) {
		supply := models.Supply{Model: models.Model{ID: uuid.New()}}

		seen := make(map[string]bool)
		for range 100 {
			hash, err := service.GenerateBlockHash(supply, dtos.TransactionTypeGPSUpdate)
			assert.NoError(t, err)
			assert.False(t, seen[hash])
			seen[hash] = true
		}
	})

	t.Run("should fail for a supply without an id", func(t *testing.T) {
		_, err := service.GenerateBlockHash(models.Supply{}, dtos.TransactionTypeManufactured)

		assert.ErrorIs(t, err, shared.ErrHashComputation)
	})
}
