// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/utils"
)

func DocumentModelsToDTOs(documents []models.Document) []dtos.DocumentDTO {
	return utils.Map(documents, DocumentModelToDTO)
}

func DocumentModelToDTO(document models.Document) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:           document.ID,
		SupplyID:     document.SupplyID,
		Name:         document.Name,
		DocumentType: document.DocumentType,
		StoragePath:  document.StoragePath,
		ContentType:  document.ContentType,
		SizeBytes:    document.SizeBytes,
		UploadedBy:   document.UploadedBy,
		CreatedAt:    document.CreatedAt,
	}
}
