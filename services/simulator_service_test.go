package services

import (
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mocks"
	"github.com/educhain-dev/educhain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSimulatorStartStop(t *testing.T) {
	t.Run("should refuse supplies that are not in transit", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)

		supplyID := uuid.New()
		supplyRepository.On("Read", supplyID).Return(models.Supply{
			Model:         models.Model{ID: supplyID},
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusDelivered,
		}, nil)

		service := NewGPSSimulatorService(supplyRepository, mocks.NewLocationService(t))

		err := service.Start(supplyID)

		assert.ErrorIs(t, err, shared.ErrSupplyNotInTransit)
		assert.Empty(t, service.Running())
	})

	t.Run("should track and cancel running simulations", func(t *testing.T) {
		supplyRepository := mocks.NewSupplyRepository(t)

		supplyID := uuid.New()
		supplyRepository.On("Read", supplyID).Return(models.Supply{
			Model:         models.Model{ID: supplyID},
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusInTransit,
		}, nil)

		service := NewGPSSimulatorService(supplyRepository, mocks.NewLocationService(t))

		assert.NoError(t, service.Start(supplyID))
		assert.Equal(t, []uuid.UUID{supplyID}, service.Running())

		// starting twice is a no-op
		assert.NoError(t, service.Start(supplyID))
		assert.Len(t, service.Running(), 1)

		assert.True(t, service.Stop(supplyID))
		assert.Empty(t, service.Running())

		// stopping a stopped simulation reports false
		assert.False(t, service.Stop(supplyID))
	})
}

func TestRouteWaypoints(t *testing.T) {
	t.Run("should cycle through the route with a wrapping index", func(t *testing.T) {
		assert.Len(t, routeWaypoints, 10)
		assert.Equal(t, "Delhi", routeWaypoints[0].Name)

		// index 10 wraps back to the first waypoint
		assert.Equal(t, routeWaypoints[0], routeWaypoints[10%len(routeWaypoints)])
	})
}
