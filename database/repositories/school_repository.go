// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"fmt"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type schoolRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.School, *gorm.DB]
}

func NewSchoolRepository(db *gorm.DB) *schoolRepository {
	return &schoolRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.School](db),
	}
}

// Create slugifies the school name before insertion. On a slug collision a
// numeric suffix is appended until the slug is unique.
func (r *schoolRepository) Create(tx *gorm.DB, school *models.School) error {
	base := slug.Make(school.Name)

	candidate := base
	for i := 1; ; i++ {
		var count int64
		if err := r.GetDB(tx).Model(&models.School{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	school.Slug = candidate

	return r.Repository.Create(tx, school)
}

func (r *schoolRepository) ReadBySlug(s string) (models.School, error) {
	var school models.School
	err := r.db.First(&school, "slug = ?", s).Error
	return school, err
}

func (r *schoolRepository) ListPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.School], error) {
	var schools []models.School

	q := r.db.Model(&models.School{})
	if search != "" {
		q = q.Where("name ILIKE ? OR district ILIKE ? OR state ILIKE ?", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.School]{}, err
	}

	err := pageInfo.ApplyOnDB(q).Order("name ASC").Find(&schools).Error
	if err != nil {
		return shared.Paged[models.School]{}, err
	}

	return shared.NewPaged(pageInfo, count, schools), nil
}
