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

package repositories

import (
	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplyRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Supply, *gorm.DB]
}

func NewSupplyRepository(db *gorm.DB) *supplyRepository {
	return &supplyRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Supply](db),
	}
}

func (r *supplyRepository) ReadByBatchID(batchID string) (models.Supply, error) {
	var supply models.Supply
	err := r.db.Preload("DestinationSchool").Preload("Supplier").First(&supply, "batch_id = ?", batchID).Error
	return supply, err
}

func (r *supplyRepository) ReadByBlockHash(blockHash string) (models.Supply, error) {
	var supply models.Supply
	// the chain head moves with every entry, so also match any historic entry
	err := r.db.
		Where("blockchain_hash = ?", blockHash).
		Or("id IN (?)", r.db.Table("transactions").Select("supply_id").Where("block_hash = ?", blockHash)).
		First(&supply).Error
	return supply, err
}

func (r *supplyRepository) ListPaged(pageInfo shared.PageInfo, search string, status *dtos.SupplyStatus) (shared.Paged[models.Supply], error) {
	var supplies []models.Supply

	q := r.db.Model(&models.Supply{})
	if search != "" {
		q = q.Where("batch_id ILIKE ? OR item_type ILIKE ? OR destination_district ILIKE ?", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status != nil {
		q = q.Where("current_status = ?", *status)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Supply]{}, err
	}

	err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Find(&supplies).Error
	if err != nil {
		return shared.Paged[models.Supply]{}, err
	}

	return shared.NewPaged(pageInfo, count, supplies), nil
}

func (r *supplyRepository) ListInTransit() ([]models.Supply, error) {
	var supplies []models.Supply
	err := r.db.Where("current_status = ?", dtos.SupplyStatusInTransit).Find(&supplies).Error
	return supplies, err
}
