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

type ProfileCreateRequest struct {
	FullName     string     `json:"fullName" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Role         string     `json:"role" validate:"required,oneof=admin supplier distributor school government_official"`
	Organization *string    `json:"organization"`
	Phone        *string    `json:"phone"`
	SchoolID     *uuid.UUID `json:"schoolId"`
}

type ProfilePatchRequest struct {
	FullName     *string    `json:"fullName"`
	Organization *string    `json:"organization"`
	Phone        *string    `json:"phone"`
	SchoolID     *uuid.UUID `json:"schoolId"`
}

func (p ProfilePatchRequest) IsEmpty() bool {
	return p.FullName == nil && p.Organization == nil && p.Phone == nil && p.SchoolID == nil
}

type ProfileDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	Organization *string   `json:"organization,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	SchoolID     *uuid.UUID `json:"schoolId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
