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

package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type BlockHashService struct{}

func NewBlockHashService() *BlockHashService {
	return &BlockHashService{}
}

// GenerateBlockHash derives the hash of the next ledger entry for a supply.
// The digest covers the supply id, the entry type, the current chain head, a
// random nonce and a nanosecond timestamp, so two entries never collide even
// when prepared in the same instant. The result is a 0x prefixed hex string
// of 64 characters.
func (s *BlockHashService) GenerateBlockHash(supply models.Supply, txType dtos.TransactionType) (string, error) {
	if supply.ID == uuid.Nil {
		return "", errors.Wrap(shared.ErrHashComputation, "supply has no id")
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(shared.ErrHashComputation, err.Error())
	}

	payload := fmt.Sprintf("%s|%s|%s|%s|%d",
		supply.ID.String(),
		txType,
		utils.SafeDereference(supply.BlockchainHash),
		hex.EncodeToString(nonce),
		time.Now().UnixNano(),
	)

	digest := sha256.Sum256([]byte(payload))
	return "0x" + hex.EncodeToString(digest[:]), nil
}
