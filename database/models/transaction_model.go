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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package models

import (
	"github.com/educhain-dev/educhain/dtos"
	"github.com/google/uuid"
)

// Transaction is a single immutable entry of a supply's hash chain. Entries
// are append only, ordered by CreatedAt and linked through PreviousHash.
// The genesis entry of a chain has a nil PreviousHash.
type Transaction struct {
	Model
	SupplyID        uuid.UUID            `json:"supplyId" gorm:"type:uuid;not null;index;"`
	TransactionType dtos.TransactionType `json:"transactionType" gorm:"type:text;not null;index;"`
	Status          dtos.SupplyStatus    `json:"status" gorm:"type:supply_status;not null;"`
	FromLocation    *string              `json:"fromLocation" gorm:"type:text;"`
	ToLocation      *string              `json:"toLocation" gorm:"type:text;"`
	FromParty       *string              `json:"fromParty" gorm:"type:text;"`
	ToParty         *string              `json:"toParty" gorm:"type:text;"`
	Latitude        *float64             `json:"latitude"`
	Longitude       *float64             `json:"longitude"`
	LocationName    *string              `json:"locationName" gorm:"type:text;"`
	Notes           *string              `json:"notes" gorm:"type:text;"`
	BlockHash       string               `json:"blockHash" gorm:"uniqueIndex;not null;type:text;"`
	PreviousHash    *string              `json:"previousHash" gorm:"type:text;"`
	VerifiedBy      *uuid.UUID           `json:"verifiedBy" gorm:"type:uuid;"`
}

func (t Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) IsGPSUpdate() bool {
	return t.TransactionType == dtos.TransactionTypeGPSUpdate
}

// Apply folds the entry into the supply projection. Applying the same entry
// twice leaves the supply unchanged, so replaying a chain is idempotent.
func (t Transaction) Apply(supply *Supply) {
	supply.BlockchainHash = &t.BlockHash

	if t.IsGPSUpdate() {
		// location samples never move the pipeline
		return
	}

	supply.CurrentStatus = t.Status
	if t.Status == dtos.SupplyStatusDelivered && supply.ActualDelivery == nil {
		createdAt := t.CreatedAt
		supply.ActualDelivery = &createdAt
	}
}

// NewGenesisTransaction creates the first entry of a supply chain. It carries
// no previous hash.
func NewGenesisTransaction(supply Supply, blockHash string, fromLocation string) Transaction {
	return Transaction{
		SupplyID:        supply.ID,
		TransactionType: dtos.TransactionTypeManufactured,
		Status:          dtos.SupplyStatusManufactured,
		FromLocation:    &fromLocation,
		BlockHash:       blockHash,
		PreviousHash:    nil,
	}
}

func NewStatusTransaction(supplyID uuid.UUID, status dtos.SupplyStatus, txType dtos.TransactionType, blockHash string, previousHash *string, req dtos.SupplyTransitionRequest) Transaction {
	return Transaction{
		SupplyID:        supplyID,
		TransactionType: txType,
		Status:          status,
		FromLocation:    &req.FromLocation,
		ToLocation:      &req.ToLocation,
		FromParty:       req.FromParty,
		ToParty:         req.ToParty,
		Notes:           req.Notes,
		VerifiedBy:      req.VerifiedBy,
		BlockHash:       blockHash,
		PreviousHash:    previousHash,
	}
}

func NewGPSUpdateTransaction(supplyID uuid.UUID, latitude, longitude float64, locationName string, blockHash string, previousHash *string) Transaction {
	return Transaction{
		SupplyID:        supplyID,
		TransactionType: dtos.TransactionTypeGPSUpdate,
		Status:          dtos.SupplyStatusInTransit,
		Latitude:        &latitude,
		Longitude:       &longitude,
		LocationName:    &locationName,
		BlockHash:       blockHash,
		PreviousHash:    previousHash,
	}
}
