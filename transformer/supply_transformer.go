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

package transformer

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
)

func SupplyModelsToDTOs(supplies []models.Supply) []dtos.SupplyDTO {
	supplyDTOs := make([]dtos.SupplyDTO, len(supplies))
	for i, supply := range supplies {
		supplyDTOs[i] = SupplyModelToDTO(supply)
	}
	return supplyDTOs
}

func SupplyModelToDTO(supply models.Supply) dtos.SupplyDTO {
	return dtos.SupplyDTO{
		ID:                  supply.ID,
		BatchID:             supply.BatchID,
		ItemType:            supply.ItemType,
		Category:            supply.Category,
		Description:         supply.Description,
		Quantity:            supply.Quantity,
		UnitPrice:           supply.UnitPrice,
		TotalValue:          supply.TotalValue,
		CurrentStatus:       supply.CurrentStatus,
		DestinationState:    supply.DestinationState,
		DestinationDistrict: supply.DestinationDistrict,
		DestinationSchoolID: supply.DestinationSchoolID,
		EducationBoard:      supply.EducationBoard,
		GovernmentScheme:    supply.GovernmentScheme,
		SupplierID:          supply.SupplierID,
		ManufactureDate:     supply.ManufactureDate,
		ExpectedDelivery:    supply.ExpectedDelivery,
		ActualDelivery:      supply.ActualDelivery,
		QRCode:              supply.QRCode,
		BlockchainHash:      supply.BlockchainHash,
		CreatedAt:           supply.CreatedAt,
	}
}
