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

type DocumentCreateRequest struct {
	Name         string     `json:"name" validate:"required"`
	DocumentType string     `json:"documentType" validate:"required"`
	StoragePath  string     `json:"storagePath" validate:"required"`
	ContentType  *string    `json:"contentType"`
	SizeBytes    *int64     `json:"sizeBytes" validate:"omitempty,gte=0"`
	UploadedBy   *uuid.UUID `json:"uploadedBy"`
}

type DocumentDTO struct {
	ID           uuid.UUID  `json:"id"`
	SupplyID     uuid.UUID  `json:"supplyId"`
	Name         string     `json:"name"`
	DocumentType string     `json:"documentType"`
	StoragePath  string     `json:"storagePath"`
	ContentType  *string    `json:"contentType,omitempty"`
	SizeBytes    *int64     `json:"sizeBytes,omitempty"`
	UploadedBy   *uuid.UUID `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
