// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LedgerAppendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "educhain_ledger_appends_total",
	Help: "Number of ledger entries appended, partitioned by transaction type",
}, []string{"transaction_type"})

var LedgerAppendConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "educhain_ledger_append_conflicts_total",
	Help: "Number of appends rejected because the chain head moved",
})

var LedgerAppendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "educhain_ledger_append_duration_seconds",
	Help:    "Duration of ledger appends including the projection update",
	Buckets: prometheus.DefBuckets,
})

var SimulatorRunningGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "educhain_gps_simulators_running",
	Help: "Number of GPS simulators currently emitting location updates",
})

var GPSUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "educhain_gps_updates_total",
	Help: "Number of GPS location updates appended to the ledger",
})
