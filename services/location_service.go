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

package services

import (
	"context"
	"log/slog"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/monitoring"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/pkg/errors"
)

type LocationUpdateService struct {
	supplyRepository      shared.SupplyRepository
	transactionRepository shared.TransactionRepository
	blockHashGenerator    shared.BlockHashGenerator
	broker                shared.PubSubBroker
}

func NewLocationUpdateService(supplyRepository shared.SupplyRepository, transactionRepository shared.TransactionRepository, blockHashGenerator shared.BlockHashGenerator, broker shared.PubSubBroker) *LocationUpdateService {
	return &LocationUpdateService{
		supplyRepository:      supplyRepository,
		transactionRepository: transactionRepository,
		blockHashGenerator:    blockHashGenerator,
		broker:                broker,
	}
}

// UpdateLocation appends a GPS sample to a supply's ledger. Only supplies
// that are currently in transit emit location updates, everything else is a
// client error. The supply status is untouched.
func (s *LocationUpdateService) UpdateLocation(ctx context.Context, batchID string, req dtos.LocationUpdateRequest) (models.Transaction, error) {
	if req.Latitude < -90 || req.Latitude > 90 {
		return models.Transaction{}, errors.Wrapf(shared.ErrInvalidCoordinate, "latitude %f out of range", req.Latitude)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return models.Transaction{}, errors.Wrapf(shared.ErrInvalidCoordinate, "longitude %f out of range", req.Longitude)
	}

	supply, err := s.supplyRepository.ReadByBatchID(batchID)
	if err != nil {
		return models.Transaction{}, err
	}

	if supply.CurrentStatus != dtos.SupplyStatusInTransit {
		return models.Transaction{}, errors.Wrapf(shared.ErrSupplyNotInTransit, "supply %s is %s", supply.BatchID, supply.CurrentStatus)
	}

	blockHash, err := s.blockHashGenerator.GenerateBlockHash(supply, dtos.TransactionTypeGPSUpdate)
	if err != nil {
		return models.Transaction{}, err
	}

	entry := models.NewGPSUpdateTransaction(supply.ID, req.Latitude, req.Longitude, req.LocationName, blockHash, supply.BlockchainHash)

	if _, err := s.transactionRepository.Append(nil, &entry); err != nil {
		if errors.Is(err, shared.ErrChainIntegrity) {
			monitoring.LedgerAppendConflictsTotal.Inc()
		}
		return models.Transaction{}, err
	}

	monitoring.GPSUpdatesTotal.Inc()
	monitoring.LedgerAppendsTotal.WithLabelValues(string(dtos.TransactionTypeGPSUpdate)).Inc()

	payload := transformer.TransactionModelToPayload(entry)
	for _, channel := range []shared.PubSubChannel{shared.ChannelTransactions, shared.ChannelGPSUpdates} {
		if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(channel, payload)); err != nil {
			slog.Error("could not publish gps update", "supplyID", entry.SupplyID, "channel", channel, "err", err)
		}
	}

	return entry, nil
}
