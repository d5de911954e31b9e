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

	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mapbox"
	"github.com/educhain-dev/educhain/utils"
)

type MapRouteService struct {
	mapboxClient *mapbox.Client
}

func NewMapRouteService(mapboxClient *mapbox.Client) *MapRouteService {
	return &MapRouteService{
		mapboxClient: mapboxClient,
	}
}

func (s *MapRouteService) Geocode(ctx context.Context, location string) (dtos.GeocodeResponse, error) {
	result, err := s.mapboxClient.Geocode(ctx, location)
	if err != nil {
		return dtos.GeocodeResponse{}, err
	}

	return dtos.GeocodeResponse{
		Coordinates: result.Center,
		PlaceName:   result.PlaceName,
	}, nil
}

// Route geocodes both endpoints and fetches the driving route between them.
// The shipping time estimate is bucketed by road distance.
func (s *MapRouteService) Route(ctx context.Context, fromLocation, toLocation string) (dtos.RouteResponse, error) {
	from, err := s.Geocode(ctx, fromLocation)
	if err != nil {
		return dtos.RouteResponse{}, err
	}

	to, err := s.Geocode(ctx, toLocation)
	if err != nil {
		return dtos.RouteResponse{}, err
	}

	route, err := s.mapboxClient.DrivingRoute(ctx, from.Coordinates, to.Coordinates)
	if err != nil {
		return dtos.RouteResponse{}, err
	}

	distanceKM := utils.Round2(route.DistanceMeters / 1000)

	return dtos.RouteResponse{
		Geometry:     route.Geometry,
		DistanceKM:   distanceKM,
		DurationHrs:  utils.Round2(route.DurationSeconds / 3600),
		ShippingTime: shippingTimeEstimate(distanceKM),
		From:         from,
		To:           to,
	}, nil
}

func shippingTimeEstimate(distanceKM float64) string {
	switch {
	case distanceKM < 500:
		return "1-3 days"
	case distanceKM < 1500:
		return "3-5 days"
	default:
		return "5-10 days"
	}
}
