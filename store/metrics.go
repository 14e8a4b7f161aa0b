// SPDX-License-Identifier: MIT

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flatcfg_loads_total",
		Help: "Successful store file loads",
	})

	loadErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flatcfg_load_errors_total",
		Help: "Store file loads aborted by an error",
	})

	savesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flatcfg_saves_total",
		Help: "Successful store file saves",
	})

	saveErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flatcfg_save_errors_total",
		Help: "Store file saves aborted by an error",
	})

	linesSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flatcfg_lines_skipped_total",
		Help: "Malformed or unknown lines skipped during load",
	})
)
