// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Xarthisius/pooch/model"
)

var (
	NameSpace = "pooch"
	Subsystem = "processors"

	// ProcessTime is a summary of the time taken by a processor invocation that did work
	ProcessTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "process_duration_seconds"),
		Help: "Time taken by a processor invocation that extracted or decompressed",
	}, []string{"type", "provider"})

	// CacheHitCount counts invocations that skipped work because the output already existed
	CacheHitCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "cache_hit_count"),
		Help: "How many processor invocations were satisfied from existing output",
	}, []string{"type", "provider"})

	// ProcessedFileCount counts files produced or enumerated by processor invocations
	ProcessedFileCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "processed_file_count"),
		Help: "How many files processor invocations returned",
	}, []string{"type", "provider"})

	// ProcessErrorCount counts failed processor invocations
	ProcessErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "process_error_count"),
		Help: "How many processor invocations failed",
	}, []string{"type", "provider"})
)

func RegisterMetrics() {
	prometheus.MustRegister(ProcessTime)
	prometheus.MustRegister(CacheHitCount)
	prometheus.MustRegister(ProcessedFileCount)
	prometheus.MustRegister(ProcessErrorCount)
}

func ListenAndServe(port int, log model.Logger) {
	if port <= 0 {
		return
	}

	go func() {
		log.Info("Starting monitoring server", "port", port)
		http.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
		if err != nil {
			log.Error("HTTP Listener failed", "error", err)
		}
	}()
}
