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
	"fmt"
	"log/slog"
	"time"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/monitoring"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/statemachine"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SupplyService struct {
	supplyRepository      shared.SupplyRepository
	transactionRepository shared.TransactionRepository
	blockHashGenerator    shared.BlockHashGenerator
	broker                shared.PubSubBroker
}

func NewSupplyService(supplyRepository shared.SupplyRepository, transactionRepository shared.TransactionRepository, blockHashGenerator shared.BlockHashGenerator, broker shared.PubSubBroker) *SupplyService {
	return &SupplyService{
		supplyRepository:      supplyRepository,
		transactionRepository: transactionRepository,
		blockHashGenerator:    blockHashGenerator,
		broker:                broker,
	}
}

// Create registers a new supply and appends the genesis entry of its ledger.
// The total value is always derived from quantity and unit price, a client
// supplied value would not survive this.
func (s *SupplyService) Create(ctx context.Context, req dtos.SupplyCreateRequest) (models.Supply, error) {
	manufactureDate := time.Now()
	if req.ManufactureDate != nil {
		manufactureDate = *req.ManufactureDate
	}

	supply := models.Supply{
		BatchID:             req.BatchID,
		ItemType:            req.ItemType,
		Category:            req.Category,
		Description:         req.Description,
		Quantity:            req.Quantity,
		UnitPrice:           req.UnitPrice,
		TotalValue:          float64(req.Quantity) * req.UnitPrice,
		CurrentStatus:       dtos.SupplyStatusManufactured,
		DestinationState:    req.DestinationState,
		DestinationDistrict: req.DestinationDistrict,
		DestinationSchoolID: req.DestinationSchoolID,
		EducationBoard:      req.EducationBoard,
		GovernmentScheme:    req.GovernmentScheme,
		SupplierID:          req.SupplierID,
		ManufactureDate:     manufactureDate,
		ExpectedDelivery:    req.ExpectedDelivery,
	}

	qrCode := fmt.Sprintf("educhain://verify/%s", req.BatchID)
	supply.QRCode = &qrCode

	// the row and its genesis entry live or die together
	var genesis models.Transaction
	err := s.supplyRepository.Transaction(func(tx *gorm.DB) error {
		if err := s.supplyRepository.Create(tx, &supply); err != nil {
			return err
		}

		blockHash, err := s.blockHashGenerator.GenerateBlockHash(supply, dtos.TransactionTypeManufactured)
		if err != nil {
			return err
		}

		genesis = models.NewGenesisTransaction(supply, blockHash, req.FromLocation)
		supply, err = s.transactionRepository.Append(tx, &genesis)
		return err
	})
	if err != nil {
		return models.Supply{}, err
	}

	monitoring.LedgerAppendsTotal.WithLabelValues(string(genesis.TransactionType)).Inc()
	s.publish(ctx, genesis)

	return supply, nil
}

// Transition moves a supply forward in the pipeline by appending a new
// ledger entry. Backwards moves are rejected before anything is written.
func (s *SupplyService) Transition(ctx context.Context, batchID string, req dtos.SupplyTransitionRequest) (models.Supply, error) {
	supply, err := s.supplyRepository.ReadByBatchID(batchID)
	if err != nil {
		return models.Supply{}, err
	}

	nextStatus := dtos.SupplyStatus(req.Status)
	if err := statemachine.CanTransition(supply.CurrentStatus, nextStatus); err != nil {
		return models.Supply{}, err
	}

	txType, ok := dtos.TransactionTypeForStatus(nextStatus)
	if !ok {
		return models.Supply{}, errors.Wrapf(shared.ErrInvalidTransition, "no ledger entry type for status %q", nextStatus)
	}

	blockHash, err := s.blockHashGenerator.GenerateBlockHash(supply, txType)
	if err != nil {
		return models.Supply{}, err
	}

	entry := models.NewStatusTransaction(supply.ID, nextStatus, txType, blockHash, supply.BlockchainHash, req)

	begin := time.Now()
	supply, err = s.transactionRepository.Append(nil, &entry)
	if err != nil {
		if errors.Is(err, shared.ErrChainIntegrity) {
			monitoring.LedgerAppendConflictsTotal.Inc()
		}
		return models.Supply{}, err
	}
	monitoring.LedgerAppendDuration.Observe(time.Since(begin).Seconds())
	monitoring.LedgerAppendsTotal.WithLabelValues(string(txType)).Inc()

	s.publish(ctx, entry)

	return supply, nil
}

func (s *SupplyService) ReadByBatchID(batchID string) (models.Supply, []models.Transaction, error) {
	supply, err := s.supplyRepository.ReadByBatchID(batchID)
	if err != nil {
		return models.Supply{}, nil, err
	}

	chain, err := s.transactionRepository.ListBySupplyID(supply.ID)
	if err != nil {
		return models.Supply{}, nil, err
	}

	return supply, chain, nil
}

// Verify looks up a supply by any of its block hashes and checks the whole
// chain. An unknown hash and a broken chain both yield a response with
// Authentic set to false instead of an error, the public verify page renders
// both outcomes. Lookup failures other than not-found are propagated.
func (s *SupplyService) Verify(blockHash string) (dtos.VerifyResponseDTO, error) {
	supply, err := s.supplyRepository.ReadByBlockHash(blockHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.VerifyResponseDTO{Authentic: false, Reason: "unknown block hash"}, nil
		}
		return dtos.VerifyResponseDTO{}, err
	}

	chain, err := s.transactionRepository.ListBySupplyID(supply.ID)
	if err != nil {
		return dtos.VerifyResponseDTO{}, err
	}

	if err := statemachine.VerifyChain(chain); err != nil {
		slog.Warn("chain verification failed", "batchID", supply.BatchID, "err", err)
		return dtos.VerifyResponseDTO{Authentic: false, Reason: "chain integrity check failed"}, nil
	}

	supplyDTO := transformer.SupplyModelToDTO(supply)
	return dtos.VerifyResponseDTO{
		Authentic: true,
		Supply:    &supplyDTO,
		Chain:     transformer.TransactionModelsToDTOs(chain),
	}, nil
}

func (s *SupplyService) publish(ctx context.Context, entry models.Transaction) {
	payload := transformer.TransactionModelToPayload(entry)
	if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.ChannelTransactions, payload)); err != nil {
		slog.Error("could not publish ledger entry", "supplyID", entry.SupplyID, "err", err)
	}
}
