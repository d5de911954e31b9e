package services

import (
	"context"
	"errors"
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mocks"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestSupplyCreate(t *testing.T) {
	t.Run("should derive the total value and append a genesis entry", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)
		blockHashGenerator := mocks.NewBlockHashGenerator(t)
		broker := mocks.NewPubSubBroker(t)

		supplyID := uuid.New()
		supplyRepository.On("Transaction", mock.Anything).Return(func(f func(tx *gorm.DB) error) error { return f(nil) })
		supplyRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			supply := args.Get(1).(*models.Supply)
			supply.ID = supplyID

			assert.Equal(t, float64(5000), supply.TotalValue)
			assert.Equal(t, dtos.SupplyStatusManufactured, supply.CurrentStatus)
			assert.Equal(t, "educhain://verify/EDU-2025-001", utils.SafeDereference(supply.QRCode))
		}).Return(nil)

		blockHashGenerator.On("GenerateBlockHash", mock.Anything, dtos.TransactionTypeManufactured).Return("0xgenesis", nil)

		transactionRepository.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*models.Transaction)

			assert.Nil(t, entry.PreviousHash)
			assert.Equal(t, supplyID, entry.SupplyID)
			assert.Equal(t, "0xgenesis", entry.BlockHash)
		}).Return(models.Supply{
			Model:         models.Model{ID: supplyID},
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusManufactured,
		}, nil)

		broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		service := NewSupplyService(supplyRepository, transactionRepository, blockHashGenerator, broker)

		supply, err := service.Create(context.Background(), dtos.SupplyCreateRequest{
			BatchID:             "EDU-2025-001",
			ItemType:            "Textbooks",
			Category:            "Books",
			Quantity:            100,
			UnitPrice:           50,
			DestinationState:    "Maharashtra",
			DestinationDistrict: "Pune",
			FromLocation:        "Delhi Factory",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EDU-2025-001", supply.BatchID)
	})

	t.Run("should roll the supply row back when the genesis append fails", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)
		blockHashGenerator := mocks.NewBlockHashGenerator(t)
		broker := mocks.NewPubSubBroker(t)

		supplyRepository.On("Transaction", mock.Anything).Return(func(f func(tx *gorm.DB) error) error { return f(nil) })
		supplyRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		blockHashGenerator.On("GenerateBlockHash", mock.Anything, dtos.TransactionTypeManufactured).Return("0xgenesis", nil)

		transactionRepository.On("Append", mock.Anything, mock.Anything).Return(models.Supply{}, assert.AnError)

		service := NewSupplyService(supplyRepository, transactionRepository, blockHashGenerator, broker)

		_, err := service.Create(context.Background(), dtos.SupplyCreateRequest{
			BatchID:             "EDU-2025-002",
			ItemType:            "Textbooks",
			Category:            "Books",
			Quantity:            10,
			UnitPrice:           50,
			DestinationState:    "Maharashtra",
			DestinationDistrict: "Pune",
		})

		assert.ErrorIs(t, err, assert.AnError)
		supplyRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		broker.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestSupplyTransition(t *testing.T) {
	t.Run("should append an entry linked to the current chain head", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)
		blockHashGenerator := mocks.NewBlockHashGenerator(t)
		broker := mocks.NewPubSubBroker(t)

		supplyID := uuid.New()
		head := "0xhead"
		supplyRepository.On("ReadByBatchID", "EDU-2025-001").Return(models.Supply{
			Model:          models.Model{ID: supplyID},
			BatchID:        "EDU-2025-001",
			CurrentStatus:  dtos.SupplyStatusManufactured,
			BlockchainHash: &head,
		}, nil)

		blockHashGenerator.On("GenerateBlockHash", mock.Anything, dtos.TransactionTypeQualityChecked).Return("0xnext", nil)

		transactionRepository.On("Append", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*models.Transaction)

			assert.Equal(t, "0xhead", utils.SafeDereference(entry.PreviousHash))
			assert.Equal(t, dtos.SupplyStatusQualityChecked, entry.Status)
		}).Return(models.Supply{
			Model:         models.Model{ID: supplyID},
			CurrentStatus: dtos.SupplyStatusQualityChecked,
		}, nil)

		broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		service := NewSupplyService(supplyRepository, transactionRepository, blockHashGenerator, broker)

		supply, err := service.Transition(context.Background(), "EDU-2025-001", dtos.SupplyTransitionRequest{
			Status:       "quality_checked",
			FromLocation: "Delhi Factory",
			ToLocation:   "QC Lab",
		})

		assert.NoError(t, err)
		assert.Equal(t, dtos.SupplyStatusQualityChecked, supply.CurrentStatus)
	})

	t.Run("should reject a backwards transition without touching the ledger", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)
		blockHashGenerator := mocks.NewBlockHashGenerator(t)
		broker := mocks.NewPubSubBroker(t)

		supplyRepository.On("ReadByBatchID", "EDU-2025-001").Return(models.Supply{
			Model:         models.Model{ID: uuid.New()},
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusInTransit,
		}, nil)

		service := NewSupplyService(supplyRepository, transactionRepository, blockHashGenerator, broker)

		_, err := service.Transition(context.Background(), "EDU-2025-001", dtos.SupplyTransitionRequest{
			Status:       "manufactured",
			FromLocation: "Truck",
			ToLocation:   "Factory",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		transactionRepository.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestSupplyVerify(t *testing.T) {
	t.Run("should report an unknown hash as not authentic", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)

		supplyRepository.On("ReadByBlockHash", "0xunknown").Return(models.Supply{}, gorm.ErrRecordNotFound)

		service := NewSupplyService(supplyRepository, transactionRepository, nil, nil)

		resp, err := service.Verify("0xunknown")

		assert.NoError(t, err)
		assert.False(t, resp.Authentic)
		assert.Equal(t, "unknown block hash", resp.Reason)
		assert.Nil(t, resp.Supply)
	})

	t.Run("should propagate a lookup failure instead of reporting a counterfeit", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)

		supplyRepository.On("ReadByBlockHash", "0xhead").Return(models.Supply{}, errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"))

		service := NewSupplyService(supplyRepository, transactionRepository, nil, nil)

		_, err := service.Verify("0xhead")

		assert.Error(t, err)
	})

	t.Run("should flag a broken chain as not authentic", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)

		supplyID := uuid.New()
		supplyRepository.On("ReadByBlockHash", "0x2").Return(models.Supply{
			Model:   models.Model{ID: supplyID},
			BatchID: "EDU-2025-001",
		}, nil)

		transactionRepository.On("ListBySupplyID", supplyID).Return([]models.Transaction{
			{SupplyID: supplyID, BlockHash: "0x1"},
			{SupplyID: supplyID, BlockHash: "0x2", PreviousHash: utils.Ptr("0xtampered")},
		}, nil)

		service := NewSupplyService(supplyRepository, transactionRepository, nil, nil)

		resp, err := service.Verify("0x2")

		assert.NoError(t, err)
		assert.False(t, resp.Authentic)
		assert.Equal(t, "chain integrity check failed", resp.Reason)
		assert.Nil(t, resp.Supply)
	})

	t.Run("should return the supply with its full chain for a known hash", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)
		transactionRepository := mocks.NewTransactionRepository(t)

		supplyID := uuid.New()
		supplyRepository.On("ReadByBlockHash", "0x2").Return(models.Supply{
			Model:   models.Model{ID: supplyID},
			BatchID: "EDU-2025-001",
		}, nil)

		transactionRepository.On("ListBySupplyID", supplyID).Return([]models.Transaction{
			{SupplyID: supplyID, BlockHash: "0x1"},
			{SupplyID: supplyID, BlockHash: "0x2", PreviousHash: utils.Ptr("0x1")},
		}, nil)

		service := NewSupplyService(supplyRepository, transactionRepository, nil, nil)

		resp, err := service.Verify("0x2")

		assert.NoError(t, err)
		assert.True(t, resp.Authentic)
		assert.Equal(t, "EDU-2025-001", resp.Supply.BatchID)
		assert.Len(t, resp.Chain, 2)
	})
}
