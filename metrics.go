/*
 * metrics.go, part of molstore.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package molstore

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//Metrics holds the Prometheus collectors updated by structures. A nil *Metrics
//is valid and records nothing.
type Metrics struct {
	Refreshes       prometheus.Counter
	RefreshDuration prometheus.Histogram
	Extracted       *prometheus.CounterVec
	Atoms           prometheus.Gauge
	Bonds           prometheus.Gauge
}

//NewMetrics creates the collectors and registers them with reg.
//A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Refreshes: f.NewCounter(prometheus.CounterOpts{
			Name: "molstore_refresh_total",
			Help: "Total structure refreshes",
		}),
		RefreshDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "molstore_refresh_duration_seconds",
			Help:    "Structure refresh duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		Extracted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "molstore_extracted_rows_total",
			Help: "Rows written by bulk extraction, by kind",
		}, []string{"kind"}),
		Atoms: f.NewGauge(prometheus.GaugeOpts{
			Name: "molstore_atoms",
			Help: "Atoms in the last refreshed structure",
		}),
		Bonds: f.NewGauge(prometheus.GaugeOpts{
			Name: "molstore_bonds",
			Help: "Bonds in the last refreshed structure",
		}),
	}
}

func (m *Metrics) observeRefresh(start time.Time, atoms, bonds int) {
	if m == nil {
		return
	}
	m.Refreshes.Inc()
	m.RefreshDuration.Observe(time.Since(start).Seconds())
	m.Atoms.Set(float64(atoms))
	m.Bonds.Set(float64(bonds))
}

func (m *Metrics) observeExtracted(kind string, rows int) {
	if m == nil {
		return
	}
	m.Extracted.WithLabelValues(kind).Add(float64(rows))
}
