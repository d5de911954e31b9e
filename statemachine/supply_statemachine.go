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

package statemachine

import (
	"fmt"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/utils"
	"github.com/pkg/errors"
)

// CanTransition checks whether a supply may move from current to next.
// The pipeline is strictly forward. Skipping intermediate stages is allowed,
// e.g. a supply without a warehouse stop goes quality_checked -> in_transit
// directly. Moving backwards or staying on the same stage is not.
func CanTransition(current, next dtos.SupplyStatus) error {
	currentRank, ok := current.Rank()
	if !ok {
		return errors.Wrapf(shared.ErrInvalidTransition, "unknown status %q", current)
	}

	nextRank, ok := next.Rank()
	if !ok {
		return errors.Wrapf(shared.ErrInvalidTransition, "unknown status %q", next)
	}

	if nextRank <= currentRank {
		return errors.Wrapf(shared.ErrInvalidTransition, "cannot move from %q to %q", current, next)
	}

	return nil
}

// Replay folds a supply's chain into the projection. The chain has to be
// ordered by creation time ascending. Replaying an already applied chain is
// a no-op, which makes projection repair idempotent.
func Replay(supply *models.Supply, chain []models.Transaction) {
	for _, tx := range chain {
		tx.Apply(supply)
	}
}

// VerifyChain walks a supply's ledger and checks the hash links. The first
// entry must be a genesis entry, every following entry must reference the
// block hash of its predecessor.
func VerifyChain(chain []models.Transaction) error {
	if len(chain) == 0 {
		return errors.Wrap(shared.ErrChainIntegrity, "empty chain")
	}

	if chain[0].PreviousHash != nil {
		return errors.Wrap(shared.ErrChainIntegrity, "genesis entry carries a previous hash")
	}

	for i := 1; i < len(chain); i++ {
		prev := utils.SafeDereference(chain[i].PreviousHash)
		if prev != chain[i-1].BlockHash {
			return errors.Wrap(shared.ErrChainIntegrity, fmt.Sprintf("entry %d does not reference its predecessor", i))
		}
	}

	return nil
}
