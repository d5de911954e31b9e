// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
)

func SchoolModelsToDTOs(schools []models.School) []dtos.SchoolDTO {
	schoolDTOs := make([]dtos.SchoolDTO, len(schools))
	for i, school := range schools {
		schoolDTOs[i] = SchoolModelToDTO(school)
	}
	return schoolDTOs
}

func SchoolModelToDTO(school models.School) dtos.SchoolDTO {
	return dtos.SchoolDTO{
		ID:             school.ID,
		Name:           school.Name,
		Slug:           school.Slug,
		State:          school.State,
		District:       school.District,
		Address:        school.Address,
		EducationBoard: school.EducationBoard,
		Latitude:       school.Latitude,
		Longitude:      school.Longitude,
		ContactEmail:   school.ContactEmail,
		CreatedAt:      school.CreatedAt,
	}
}
