// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (r *documentRepository) ListBySupplyID(supplyID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.
		Where("supply_id = ?", supplyID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}
