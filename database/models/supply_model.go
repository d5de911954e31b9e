// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/educhain-dev/educhain/dtos"
	"github.com/google/uuid"
)

// Supply is the projection of a supply's ledger. CurrentStatus and
// BlockchainHash always mirror the latest entry of the transaction chain.
type Supply struct {
	Model
	BatchID             string            `json:"batchId" gorm:"uniqueIndex;not null;type:text;"`
	ItemType            string            `json:"itemType" gorm:"not null;type:text;"`
	Category            string            `json:"category" gorm:"not null;type:text;"`
	Description         *string           `json:"description" gorm:"type:text;"`
	Quantity            int               `json:"quantity" gorm:"not null;"`
	UnitPrice           float64           `json:"unitPrice" gorm:"not null;default:0;"`
	TotalValue          float64           `json:"totalValue" gorm:"not null;default:0;"`
	CurrentStatus       dtos.SupplyStatus `json:"currentStatus" gorm:"type:supply_status;not null;default:'manufactured';"`
	DestinationState    string            `json:"destinationState" gorm:"not null;type:text;"`
	DestinationDistrict string            `json:"destinationDistrict" gorm:"not null;type:text;"`
	DestinationSchoolID *uuid.UUID        `json:"destinationSchoolId" gorm:"type:uuid;"`
	DestinationSchool   *School           `json:"destinationSchool,omitempty" gorm:"foreignKey:DestinationSchoolID;"`
	EducationBoard      *string           `json:"educationBoard" gorm:"type:education_board;"`
	GovernmentScheme    *string           `json:"governmentScheme" gorm:"type:text;"`
	SupplierID          *uuid.UUID        `json:"supplierId" gorm:"type:uuid;"`
	Supplier            *Profile          `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;"`
	ManufactureDate     time.Time         `json:"manufactureDate" gorm:"not null;"`
	ExpectedDelivery    *time.Time        `json:"expectedDeliveryDate"`
	ActualDelivery      *time.Time        `json:"actualDeliveryDate"`
	QRCode              *string           `json:"qrCode" gorm:"type:text;"`
	BlockchainHash      *string           `json:"blockchainHash" gorm:"type:text;index;"`

	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:SupplyID;constraint:OnDelete:CASCADE;"`
}

func (s Supply) TableName() string {
	return "supplies"
}
