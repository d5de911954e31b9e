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

func TransactionModelsToDTOs(entries []models.Transaction) []dtos.TransactionDTO {
	entryDTOs := make([]dtos.TransactionDTO, len(entries))
	for i, entry := range entries {
		entryDTOs[i] = TransactionModelToDTO(entry)
	}
	return entryDTOs
}

func TransactionModelToDTO(entry models.Transaction) dtos.TransactionDTO {
	return dtos.TransactionDTO{
		ID:              entry.ID,
		SupplyID:        entry.SupplyID,
		TransactionType: entry.TransactionType,
		Status:          entry.Status,
		FromLocation:    entry.FromLocation,
		ToLocation:      entry.ToLocation,
		FromParty:       entry.FromParty,
		ToParty:         entry.ToParty,
		Latitude:        entry.Latitude,
		Longitude:       entry.Longitude,
		LocationName:    entry.LocationName,
		Notes:           entry.Notes,
		BlockHash:       entry.BlockHash,
		PreviousHash:    entry.PreviousHash,
		VerifiedBy:      entry.VerifiedBy,
		CreatedAt:       entry.CreatedAt,
	}
}

// TransactionModelToPayload flattens a ledger entry into the generic payload
// carried over the notification broker.
func TransactionModelToPayload(entry models.Transaction) map[string]any {
	payload := map[string]any{
		"id":              entry.ID.String(),
		"supplyId":        entry.SupplyID.String(),
		"transactionType": string(entry.TransactionType),
		"status":          string(entry.Status),
		"blockHash":       entry.BlockHash,
		"createdAt":       entry.CreatedAt,
	}

	if entry.PreviousHash != nil {
		payload["previousHash"] = *entry.PreviousHash
	}
	if entry.Latitude != nil && entry.Longitude != nil {
		payload["latitude"] = *entry.Latitude
		payload["longitude"] = *entry.Longitude
	}
	if entry.LocationName != nil {
		payload["locationName"] = *entry.LocationName
	}

	return payload
}
