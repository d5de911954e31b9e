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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	// TransactionTypeGPSUpdate marks a pure location sample. It never changes
	// the supply status.
	TransactionTypeGPSUpdate TransactionType = "GPS_UPDATE"

	TransactionTypeManufactured   TransactionType = "MANUFACTURED"
	TransactionTypeQualityChecked TransactionType = "QUALITY_CHECKED"
	TransactionTypeInWarehouse    TransactionType = "IN_WAREHOUSE"
	TransactionTypeInTransit      TransactionType = "IN_TRANSIT"
	TransactionTypeDelivered      TransactionType = "DELIVERED"
	TransactionTypeVerified       TransactionType = "VERIFIED"
)

// transactionTypeByStatus maps a pipeline status to the ledger entry type
// recorded for the transition into that status.
var transactionTypeByStatus = map[SupplyStatus]TransactionType{
	SupplyStatusManufactured:   TransactionTypeManufactured,
	SupplyStatusQualityChecked: TransactionTypeQualityChecked,
	SupplyStatusInWarehouse:    TransactionTypeInWarehouse,
	SupplyStatusInTransit:      TransactionTypeInTransit,
	SupplyStatusDelivered:      TransactionTypeDelivered,
	SupplyStatusVerified:       TransactionTypeVerified,
}

func TransactionTypeForStatus(status SupplyStatus) (TransactionType, bool) {
	t, ok := transactionTypeByStatus[status]
	return t, ok
}

type TransactionDTO struct {
	ID              uuid.UUID       `json:"id"`
	SupplyID        uuid.UUID       `json:"supplyId"`
	TransactionType TransactionType `json:"transactionType"`
	Status          SupplyStatus    `json:"status"`
	FromLocation    *string         `json:"fromLocation,omitempty"`
	ToLocation      *string         `json:"toLocation,omitempty"`
	FromParty       *string         `json:"fromParty,omitempty"`
	ToParty         *string         `json:"toParty,omitempty"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	LocationName    *string         `json:"locationName,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	BlockHash       string          `json:"blockHash"`
	PreviousHash    *string         `json:"previousHash,omitempty"`
	VerifiedBy      *uuid.UUID      `json:"verifiedBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type LocationUpdateRequest struct {
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
	LocationName string  `json:"locationName" validate:"required"`
}
