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
	"sync"
	"time"

	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/monitoring"
	"github.com/educhain-dev/educhain/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type waypoint struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// routeWaypoints is the fixed delivery route the simulator walks. The index
// wraps around, so a long running simulation keeps circling the route.
var routeWaypoints = []waypoint{
	{28.7041, 77.1025, "Delhi"},
	{27.1767, 78.0081, "Agra"},
	{26.9124, 75.7873, "Jaipur"},
	{23.0225, 72.5714, "Ahmedabad"},
	{19.0760, 72.8777, "Mumbai"},
	{18.5204, 73.8567, "Pune"},
	{17.3850, 78.4867, "Hyderabad"},
	{13.0827, 80.2707, "Chennai"},
	{12.9716, 77.5946, "Bangalore"},
	{22.5726, 88.3639, "Kolkata"},
}

const simulatorTickInterval = 5 * time.Second

type GPSSimulatorService struct {
	supplyRepository shared.SupplyRepository
	locationService  shared.LocationService

	mux     sync.Mutex
	running map[uuid.UUID]context.CancelFunc
}

func NewGPSSimulatorService(supplyRepository shared.SupplyRepository, locationService shared.LocationService) *GPSSimulatorService {
	return &GPSSimulatorService{
		supplyRepository: supplyRepository,
		locationService:  locationService,
		running:          make(map[uuid.UUID]context.CancelFunc),
	}
}

// Start begins emitting location updates for a supply every five seconds.
// Starting an already running simulation is a no-op. The supply has to be in
// transit, otherwise the appended updates would be rejected anyway.
func (s *GPSSimulatorService) Start(supplyID uuid.UUID) error {
	supply, err := s.supplyRepository.Read(supplyID)
	if err != nil {
		return err
	}

	if supply.CurrentStatus != dtos.SupplyStatusInTransit {
		return errors.Wrapf(shared.ErrSupplyNotInTransit, "supply %s is %s", supply.BatchID, supply.CurrentStatus)
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, exists := s.running[supplyID]; exists {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.running[supplyID] = cancel
	monitoring.SimulatorRunningGauge.Inc()

	go s.run(ctx, supplyID, supply.BatchID)

	slog.Info("gps simulation started", "batchID", supply.BatchID)
	return nil
}

// Stop cancels a running simulation. It reports whether one was running.
func (s *GPSSimulatorService) Stop(supplyID uuid.UUID) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	cancel, exists := s.running[supplyID]
	if !exists {
		return false
	}

	cancel()
	delete(s.running, supplyID)
	monitoring.SimulatorRunningGauge.Dec()

	slog.Info("gps simulation stopped", "supplyID", supplyID)
	return true
}

// Running lists the supplies with an active simulation.
func (s *GPSSimulatorService) Running() []uuid.UUID {
	s.mux.Lock()
	defer s.mux.Unlock()

	ids := make([]uuid.UUID, 0, len(s.running))
	for id := range s.running {
		ids = append(ids, id)
	}
	return ids
}

func (s *GPSSimulatorService) run(ctx context.Context, supplyID uuid.UUID, batchID string) {
	ticker := time.NewTicker(simulatorTickInterval)
	defer ticker.Stop()

	index := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wp := routeWaypoints[index%len(routeWaypoints)]
			index++

			_, err := s.locationService.UpdateLocation(ctx, batchID, dtos.LocationUpdateRequest{
				Latitude:     wp.Latitude,
				Longitude:    wp.Longitude,
				LocationName: wp.Name,
			})
			if err != nil {
				// delivered or verified in the meantime, stop emitting
				if errors.Is(err, shared.ErrSupplyNotInTransit) {
					slog.Info("supply left transit, stopping gps simulation", "batchID", batchID)
					s.Stop(supplyID)
					return
				}
				slog.Error("could not emit simulated gps update", "batchID", batchID, "err", err)
			}
		}
	}
}
