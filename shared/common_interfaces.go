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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
)

type SupplyRepository interface {
	utils.Repository[uuid.UUID, models.Supply, DB]
	ReadByBatchID(batchID string) (models.Supply, error)
	ReadByBlockHash(blockHash string) (models.Supply, error)
	ListPaged(pageInfo PageInfo, search string, status *dtos.SupplyStatus) (Paged[models.Supply], error)
	ListInTransit() ([]models.Supply, error)
}

type TransactionRepository interface {
	utils.Repository[uuid.UUID, models.Transaction, DB]
	// Append writes the entry and folds it into the supply projection in a
	// single database transaction. The supply row is locked while the chain
	// head is compared against the entry's previous hash. Passing a tx joins
	// an already running transaction.
	Append(tx DB, entry *models.Transaction) (models.Supply, error)
	ListBySupplyID(supplyID uuid.UUID) ([]models.Transaction, error)
	LatestGPSUpdate(supplyID uuid.UUID) (models.Transaction, error)
	ListGPSUpdates(supplyID uuid.UUID) ([]models.Transaction, error)
}

type SchoolRepository interface {
	utils.Repository[uuid.UUID, models.School, DB]
	ReadBySlug(slug string) (models.School, error)
	ListPaged(pageInfo PageInfo, search string) (Paged[models.School], error)
}

type ProfileRepository interface {
	utils.Repository[uuid.UUID, models.Profile, DB]
	ReadByEmail(email string) (models.Profile, error)
}

type DocumentRepository interface {
	utils.Repository[uuid.UUID, models.Document, DB]
	ListBySupplyID(supplyID uuid.UUID) ([]models.Document, error)
}

// BlockHashGenerator derives the 0x prefixed hash of a new ledger entry from
// the supply's current chain head.
type BlockHashGenerator interface {
	GenerateBlockHash(supply models.Supply, txType dtos.TransactionType) (string, error)
}

type SupplyService interface {
	Create(ctx context.Context, req dtos.SupplyCreateRequest) (models.Supply, error)
	Transition(ctx context.Context, batchID string, req dtos.SupplyTransitionRequest) (models.Supply, error)
	ReadByBatchID(batchID string) (models.Supply, []models.Transaction, error)
	Verify(blockHash string) (dtos.VerifyResponseDTO, error)
}

type LocationService interface {
	UpdateLocation(ctx context.Context, batchID string, req dtos.LocationUpdateRequest) (models.Transaction, error)
}

type SimulatorService interface {
	Start(supplyID uuid.UUID) error
	Stop(supplyID uuid.UUID) bool
	Running() []uuid.UUID
}

type RouteService interface {
	Geocode(ctx context.Context, location string) (dtos.GeocodeResponse, error)
	Route(ctx context.Context, fromLocation, toLocation string) (dtos.RouteResponse, error)
}
