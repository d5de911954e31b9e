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
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Transaction, *gorm.DB]
}

func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Transaction](db),
	}
}

// Append writes a ledger entry and updates the supply projection in one
// database transaction. The supply row is locked first. If the chain head
// moved since the entry's hash was computed, a concurrent writer won the
// race and the append fails with ErrChainIntegrity.
func (r *transactionRepository) Append(tx *gorm.DB, entry *models.Transaction) (models.Supply, error) {
	var supply models.Supply
	err := r.GetDB(tx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&supply, "id = ?", entry.SupplyID).Error; err != nil {
			return err
		}

		if utils.SafeDereference(supply.BlockchainHash) != utils.SafeDereference(entry.PreviousHash) {
			return errors.Wrap(shared.ErrChainIntegrity, "chain head moved since the entry was prepared")
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		entry.Apply(&supply)
		return tx.Save(&supply).Error
	})

	return supply, err
}

func (r *transactionRepository) ListBySupplyID(supplyID uuid.UUID) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.
		Where("supply_id = ?", supplyID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *transactionRepository) LatestGPSUpdate(supplyID uuid.UUID) (models.Transaction, error) {
	var entry models.Transaction
	err := r.db.
		Where("supply_id = ? AND transaction_type = ?", supplyID, dtos.TransactionTypeGPSUpdate).
		Order("created_at DESC").
		First(&entry).Error
	return entry, err
}

func (r *transactionRepository) ListGPSUpdates(supplyID uuid.UUID) ([]models.Transaction, error) {
	var entries []models.Transaction
	err := r.db.
		Where("supply_id = ? AND transaction_type = ?", supplyID, dtos.TransactionTypeGPSUpdate).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
