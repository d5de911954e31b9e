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

type SupplyStatus string

const (
	SupplyStatusManufactured   SupplyStatus = "manufactured"
	SupplyStatusQualityChecked SupplyStatus = "quality_checked"
	SupplyStatusInWarehouse    SupplyStatus = "in_warehouse"
	SupplyStatusInTransit      SupplyStatus = "in_transit"
	SupplyStatusDelivered      SupplyStatus = "delivered"
	SupplyStatusVerified       SupplyStatus = "verified" // natural terminal state
)

// statusRank fixes the pipeline ordering. A transition is only valid towards
// a strictly higher rank, GPS updates keep the rank unchanged.
var statusRank = map[SupplyStatus]int{
	SupplyStatusManufactured:   0,
	SupplyStatusQualityChecked: 1,
	SupplyStatusInWarehouse:    2,
	SupplyStatusInTransit:      3,
	SupplyStatusDelivered:      4,
	SupplyStatusVerified:       5,
}

// Rank returns the position of the status inside the pipeline and false if
// the value is not a known status.
func (s SupplyStatus) Rank() (int, bool) {
	rank, ok := statusRank[s]
	return rank, ok
}

func (s SupplyStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

type EducationBoard string

const (
	EducationBoardCBSE       EducationBoard = "CBSE"
	EducationBoardICSE       EducationBoard = "ICSE"
	EducationBoardStateBoard EducationBoard = "State Board"
	EducationBoardOther      EducationBoard = "Other"
)

type UserRole string

const (
	UserRoleAdmin              UserRole = "admin"
	UserRoleSupplier           UserRole = "supplier"
	UserRoleDistributor        UserRole = "distributor"
	UserRoleSchool             UserRole = "school"
	UserRoleGovernmentOfficial UserRole = "government_official"
)

type SupplyCreateRequest struct {
	BatchID             string     `json:"batchId" validate:"required"`
	ItemType            string     `json:"itemType" validate:"required"`
	Category            string     `json:"category" validate:"required"`
	Description         *string    `json:"description"`
	Quantity            int        `json:"quantity" validate:"required,gt=0"`
	UnitPrice           float64    `json:"unitPrice" validate:"gte=0"`
	DestinationState    string     `json:"destinationState" validate:"required"`
	DestinationDistrict string     `json:"destinationDistrict" validate:"required"`
	DestinationSchoolID *uuid.UUID `json:"destinationSchoolId"`
	EducationBoard      *string    `json:"educationBoard" validate:"omitempty,oneof=CBSE ICSE 'State Board' Other"`
	GovernmentScheme    *string    `json:"governmentScheme"`
	SupplierID          *uuid.UUID `json:"supplierId"`
	ManufactureDate     *time.Time `json:"manufactureDate"`
	ExpectedDelivery    *time.Time `json:"expectedDeliveryDate"`
	FromLocation        string     `json:"fromLocation" validate:"required"`
}

type SupplyTransitionRequest struct {
	Status       string  `json:"status" validate:"required,oneof=manufactured quality_checked in_warehouse in_transit delivered verified"`
	FromLocation string  `json:"fromLocation" validate:"required"`
	ToLocation   string  `json:"toLocation" validate:"required"`
	FromParty    *string `json:"fromParty"`
	ToParty      *string `json:"toParty"`
	Notes        *string `json:"notes"`
	VerifiedBy   *uuid.UUID `json:"verifiedBy"`
}

type SupplyDTO struct {
	ID                  uuid.UUID    `json:"id"`
	BatchID             string       `json:"batchId"`
	ItemType            string       `json:"itemType"`
	Category            string       `json:"category"`
	Description         *string      `json:"description,omitempty"`
	Quantity            int          `json:"quantity"`
	UnitPrice           float64      `json:"unitPrice"`
	TotalValue          float64      `json:"totalValue"`
	CurrentStatus       SupplyStatus `json:"currentStatus"`
	DestinationState    string       `json:"destinationState"`
	DestinationDistrict string       `json:"destinationDistrict"`
	DestinationSchoolID *uuid.UUID   `json:"destinationSchoolId,omitempty"`
	EducationBoard      *string      `json:"educationBoard,omitempty"`
	GovernmentScheme    *string      `json:"governmentScheme,omitempty"`
	SupplierID          *uuid.UUID   `json:"supplierId,omitempty"`
	ManufactureDate     time.Time    `json:"manufactureDate"`
	ExpectedDelivery    *time.Time   `json:"expectedDeliveryDate,omitempty"`
	ActualDelivery      *time.Time   `json:"actualDeliveryDate,omitempty"`
	QRCode              *string      `json:"qrCode,omitempty"`
	BlockchainHash      *string      `json:"blockchainHash,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
}

// VerifyResponseDTO is returned by the public verify endpoint. It
// distinguishes a neutral "not found" from an authentic supply with its full
// chain attached. Reason carries the cause whenever Authentic is false.
type VerifyResponseDTO struct {
	Authentic bool             `json:"authentic"`
	Reason    string           `json:"reason,omitempty"`
	Supply    *SupplyDTO       `json:"supply,omitempty"`
	Chain     []TransactionDTO `json:"chain,omitempty"`
}
