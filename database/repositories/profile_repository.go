// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Profile, *gorm.DB]
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Profile](db),
	}
}

func (r *profileRepository) ReadByEmail(email string) (models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("School").First(&profile, "email = ?", email).Error
	return profile, err
}
