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

package dtos

type GeocodeRequest struct {
	Location string `json:"location" validate:"required"`
}

type GeocodeResponse struct {
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
	PlaceName   string     `json:"placeName"`
}

type RouteRequest struct {
	FromLocation string `json:"fromLocation" validate:"required"`
	ToLocation   string `json:"toLocation" validate:"required"`
}

type RouteResponse struct {
	Geometry     map[string]any `json:"geometry"`
	DistanceKM   float64        `json:"distanceKm"`
	DurationHrs  float64        `json:"durationHours"`
	ShippingTime string         `json:"shippingTime"`
	From         GeocodeResponse `json:"from"`
	To           GeocodeResponse `json:"to"`
}
