// Copyright (C) 2025 EduChain Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package statemachine_test

import (
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/statemachine"
	"github.com/educhain-dev/educhain/utils"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("should allow a direct forward step", func(t *testing.T) {
		err := statemachine.CanTransition(dtos.SupplyStatusManufactured, dtos.SupplyStatusQualityChecked)
		assert.NoError(t, err)
	})

	t.Run("should allow skipping intermediate stages", func(t *testing.T) {
		err := statemachine.CanTransition(dtos.SupplyStatusQualityChecked, dtos.SupplyStatusInTransit)
		assert.NoError(t, err)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		err := statemachine.CanTransition(dtos.SupplyStatusInTransit, dtos.SupplyStatusManufactured)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})

	t.Run("should reject staying on the same stage", func(t *testing.T) {
		err := statemachine.CanTransition(dtos.SupplyStatusDelivered, dtos.SupplyStatusDelivered)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		err := statemachine.CanTransition("shipped", dtos.SupplyStatusDelivered)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})
}

func TestReplay(t *testing.T) {
	t.Run("should rebuild the projection from the chain", func(t *testing.T) {
		supply := models.Supply{CurrentStatus: dtos.SupplyStatusManufactured}

		chain := []models.Transaction{
			{TransactionType: dtos.TransactionTypeManufactured, Status: dtos.SupplyStatusManufactured, BlockHash: "0x1"},
			{TransactionType: dtos.TransactionTypeQualityChecked, Status: dtos.SupplyStatusQualityChecked, BlockHash: "0x2", PreviousHash: utils.Ptr("0x1")},
			{TransactionType: dtos.TransactionTypeInTransit, Status: dtos.SupplyStatusInTransit, BlockHash: "0x3", PreviousHash: utils.Ptr("0x2")},
			{TransactionType: dtos.TransactionTypeGPSUpdate, Status: dtos.SupplyStatusInTransit, BlockHash: "0x4", PreviousHash: utils.Ptr("0x3")},
		}

		statemachine.Replay(&supply, chain)

		assert.Equal(t, dtos.SupplyStatusInTransit, supply.CurrentStatus)
		assert.Equal(t, "0x4", *supply.BlockchainHash)
	})
}

func TestVerifyChain(t *testing.T) {
	t.Run("should accept an intact chain", func(t *testing.T) {
		chain := []models.Transaction{
			{BlockHash: "0x1"},
			{BlockHash: "0x2", PreviousHash: utils.Ptr("0x1")},
			{BlockHash: "0x3", PreviousHash: utils.Ptr("0x2")},
		}

		assert.NoError(t, statemachine.VerifyChain(chain))
	})

	t.Run("should reject a broken link", func(t *testing.T) {
		chain := []models.Transaction{
			{BlockHash: "0x1"},
			{BlockHash: "0x2", PreviousHash: utils.Ptr("0xdeadbeef")},
		}

		assert.ErrorIs(t, statemachine.VerifyChain(chain), shared.ErrChainIntegrity)
	})

	t.Run("should reject a genesis entry with a previous hash", func(t *testing.T) {
		chain := []models.Transaction{
			{BlockHash: "0x1", PreviousHash: utils.Ptr("0x0")},
		}

		assert.ErrorIs(t, statemachine.VerifyChain(chain), shared.ErrChainIntegrity)
	})

	t.Run("should reject an empty chain", func(t *testing.T) {
		assert.ErrorIs(t, statemachine.VerifyChain(nil), shared.ErrChainIntegrity)
	})
}
