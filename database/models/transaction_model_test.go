// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models_test

import (
	"testing"
	"time"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	t.Run("should move the supply status and the chain head", func(t *testing.T) {
		supply := models.Supply{CurrentStatus: dtos.SupplyStatusManufactured}

		tx := models.Transaction{
			TransactionType: dtos.TransactionTypeQualityChecked,
			Status:          dtos.SupplyStatusQualityChecked,
			BlockHash:       "0xabc",
		}
		tx.Apply(&supply)

		assert.Equal(t, dtos.SupplyStatusQualityChecked, supply.CurrentStatus)
		assert.Equal(t, "0xabc", *supply.BlockchainHash)
	})

	t.Run("should be idempotent when the same entry is applied twice", func(t *testing.T) {
		supply := models.Supply{CurrentStatus: dtos.SupplyStatusManufactured}

		tx := models.Transaction{
			TransactionType: dtos.TransactionTypeInWarehouse,
			Status:          dtos.SupplyStatusInWarehouse,
			BlockHash:       "0xdef",
		}
		tx.Apply(&supply)
		tx.Apply(&supply)

		assert.Equal(t, dtos.SupplyStatusInWarehouse, supply.CurrentStatus)
		assert.Equal(t, "0xdef", *supply.BlockchainHash)
	})

	t.Run("should not change the status for gps updates", func(t *testing.T) {
		supply := models.Supply{CurrentStatus: dtos.SupplyStatusInTransit}

		lat, lng := 28.7041, 77.1025
		tx := models.Transaction{
			TransactionType: dtos.TransactionTypeGPSUpdate,
			Status:          dtos.SupplyStatusInTransit,
			Latitude:        &lat,
			Longitude:       &lng,
			BlockHash:       "0x123",
		}
		tx.Apply(&supply)

		assert.Equal(t, dtos.SupplyStatusInTransit, supply.CurrentStatus)
		assert.Equal(t, "0x123", *supply.BlockchainHash)
	})

	t.Run("should set the actual delivery date exactly once", func(t *testing.T) {
		supply := models.Supply{CurrentStatus: dtos.SupplyStatusInTransit}

		tx := models.Transaction{
			TransactionType: dtos.TransactionTypeDelivered,
			Status:          dtos.SupplyStatusDelivered,
			BlockHash:       "0x456",
		}
		tx.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		tx.Apply(&supply)

		first := *supply.ActualDelivery

		later := tx
		later.CreatedAt = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
		later.Apply(&supply)

		assert.Equal(t, first, *supply.ActualDelivery)
	})
}

func TestNewGenesisTransaction(t *testing.T) {
	t.Run("should carry no previous hash", func(t *testing.T) {
		supply := models.Supply{Model: models.Model{ID: uuid.New()}}

		tx := models.NewGenesisTransaction(supply, "0xgenesis", "Delhi Factory")

		assert.Nil(t, tx.PreviousHash)
		assert.Equal(t, dtos.SupplyStatusManufactured, tx.Status)
		assert.Equal(t, supply.ID, tx.SupplyID)
	})
}
