package services

import (
	"context"
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mocks"
	"github.com/educhain-dev/educhain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateLocation(t *testing.T) {
	t.Run("should reject coordinates outside the valid range", func(t *testing.T) {
		service := NewLocationUpdateService(nil, nil, nil, nil)

		_, err := service.UpdateLocation(context.Background(), "EDU-2025-001", dtos.LocationUpdateRequest{
			Latitude:     91,
			Longitude:    77.1025,
			LocationName: "Nowhere",
		})
		assert.ErrorIs(t, err, shared.ErrInvalidCoordinate)

		_, err = service.UpdateLocation(context.Background(), "EDU-2025-001", dtos.LocationUpdateRequest{
			Latitude:     28.7041,
			Longitude:    -181,
			LocationName: "Nowhere",
		})
		assert.ErrorIs(t, err, shared.ErrInvalidCoordinate)
	})

	t.Run("should reject supplies that are not in transit", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		supplyRepository.On("ReadByBatchID", "EDU-2025-001").Return(models.Supply{
			Model:         models.Model{ID: uuid.New()},
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusInWarehouse,
		}, nil)

		service := NewLocationUpdateService(supplyRepository, nil, nil, nil)

		_, err := service.UpdateLocation(context.Background(), "EDU-2025-001", dtos.LocationUpdateRequest{
			Latitude:     28.7041,
			Longitude:    77.1025,
			LocationName: "Delhi",
		})

		assert.ErrorIs(t, err, shared.ErrSupplyNotInTransit)
	})

	t.Run("should append a gps entry that keeps the status untouched", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)
		blockHashGenerator := mocks.NewBlockHashGenerator(t)
		broker := mocks.NewPubSubBroker(t)

		supplyID := uuid.New()
		head := "0xhead"
		supplyRepository.On("ReadByBatchID", "EDU-2025-001").Return(models.Supply{
			Model:          models.Model{ID: supplyID},
			BatchID:        "EDU-2025-001",
			CurrentStatus:  dtos.SupplyStatusInTransit,
			BlockchainHash: &head,
		}, nil)

		blockHashGenerator.On("GenerateBlockHash", mock.Anything, dtos.TransactionTypeGPSUpdate).Return("0xgps", nil)

		transactionRepository.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*models.Transaction)

			assert.Equal(t, dtos.TransactionTypeGPSUpdate, entry.TransactionType)
			assert.Equal(t, dtos.SupplyStatusInTransit, entry.Status)
			assert.Equal(t, 28.7041, *entry.Latitude)
			assert.Equal(t, 77.1025, *entry.Longitude)
			assert.Equal(t, "Delhi", *entry.LocationName)
		}).Return(models.Supply{
			Model:         models.Model{ID: supplyID},
			CurrentStatus: dtos.SupplyStatusInTransit,
		}, nil)

		// once on the transactions feed, once on the gps feed
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

		service := NewLocationUpdateService(supplyRepository, transactionRepository, blockHashGenerator, broker)

		entry, err := service.UpdateLocation(context.Background(), "EDU-2025-001", dtos.LocationUpdateRequest{
			Latitude:     28.7041,
			Longitude:    77.1025,
			LocationName: "Delhi",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0xgps", entry.BlockHash)
	})
}
