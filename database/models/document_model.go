// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// Document is an uploaded attachment of a supply, e.g. a quality certificate
// or a delivery receipt. Only the metadata lives here, the blob itself is
// stored outside the database.
type Document struct {
	Model
	SupplyID     uuid.UUID  `json:"supplyId" gorm:"type:uuid;not null;index;"`
	Name         string     `json:"name" gorm:"not null;type:text;"`
	DocumentType string     `json:"documentType" gorm:"not null;type:text;"`
	StoragePath  string     `json:"storagePath" gorm:"not null;type:text;"`
	ContentType  *string    `json:"contentType" gorm:"type:text;"`
	SizeBytes    *int64     `json:"sizeBytes"`
	UploadedBy   *uuid.UUID `json:"uploadedBy" gorm:"type:uuid;"`
}

func (d Document) TableName() string {
	return "documents"
}
