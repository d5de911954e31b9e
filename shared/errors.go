// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package shared

import "errors"

// Domain errors of the supply ledger. The echo error handler in the
// middlewares package maps these to HTTP status codes, everything else
// becomes a 500.
var (
	// ErrInvalidTransition is returned when a status change would move a
	// supply backwards in the pipeline.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrChainIntegrity is returned when the previous hash of a ledger entry
	// does not match the supply's current chain head. This detects two
	// writers racing on the same supply.
	ErrChainIntegrity = errors.New("ledger chain integrity violation")

	// ErrInvalidCoordinate is returned for latitudes outside [-90, 90] or
	// longitudes outside [-180, 180].
	ErrInvalidCoordinate = errors.New("invalid gps coordinate")

	// ErrSupplyNotInTransit is returned when a location update targets a
	// supply that is not currently in transit.
	ErrSupplyNotInTransit = errors.New("supply is not in transit")

	// ErrHashComputation is returned when a block hash could not be derived,
	// e.g. because the supply is unknown. A ledger entry must never be
	// appended without a successfully computed hash.
	ErrHashComputation = errors.New("could not compute block hash")
)
