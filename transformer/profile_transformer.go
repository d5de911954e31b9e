// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
)

func ProfileModelToDTO(profile models.Profile) dtos.ProfileDTO {
	return dtos.ProfileDTO{
		ID:           profile.ID,
		FullName:     profile.FullName,
		Email:        profile.Email,
		Role:         profile.Role,
		Organization: profile.Organization,
		Phone:        profile.Phone,
		SchoolID:     profile.SchoolID,
		CreatedAt:    profile.CreatedAt,
	}
}

// ApplyPatchToModel copies the set fields of a patch request onto the model.
func ApplyPatchToModel(profile *models.Profile, patch dtos.ProfilePatchRequest) {
	if patch.FullName != nil {
		profile.FullName = *patch.FullName
	}
	if patch.Organization != nil {
		profile.Organization = patch.Organization
	}
	if patch.Phone != nil {
		profile.Phone = patch.Phone
	}
	if patch.SchoolID != nil {
		profile.SchoolID = patch.SchoolID
	}
}
