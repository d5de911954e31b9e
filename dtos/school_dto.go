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

type SchoolCreateRequest struct {
	Name           string   `json:"name" validate:"required"`
	State          string   `json:"state" validate:"required"`
	District       string   `json:"district" validate:"required"`
	Address        *string  `json:"address"`
	EducationBoard *string  `json:"educationBoard" validate:"omitempty,oneof=CBSE ICSE 'State Board' Other"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ContactEmail   *string  `json:"contactEmail" validate:"omitempty,email"`
}

type SchoolDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	State          string    `json:"state"`
	District       string    `json:"district"`
	Address        *string   `json:"address,omitempty"`
	EducationBoard *string   `json:"educationBoard,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	ContactEmail   *string   `json:"contactEmail,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
