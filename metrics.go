// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langdetect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level vars registered once at import time via promauto, read by
// whatever process exposes /metrics.
var (
	metricModelsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "langdetect_models_loaded",
		Help: "The number of (language, length-class) models currently cached in memory",
	})
	metricModelLoadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "langdetect_model_loads_total",
		Help: "The total number of model loads that completed successfully",
	})
	metricModelLoadFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "langdetect_model_load_failed_total",
		Help: "The total number of model loads that failed, e.g. due to a malformed blob",
	})
	metricModelLoadWaitersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "langdetect_model_load_waiters_total",
		Help: "The total number of callers that joined an in-flight load instead of starting one",
	})
	metricDetectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "langdetect_detections_total",
		Help: "The total number of DetectLanguageOf and ComputeLanguageConfidenceValues calls",
	})
	metricDetectionsUnknownTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "langdetect_detections_unknown_total",
		Help: "The total number of detections that resolved to Unknown",
	})
	metricDetectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "langdetect_detection_duration_seconds",
		Help:    "Wall-clock duration of a single detection call",
		Buckets: prometheus.DefBuckets,
	})
	metricCandidateLanguages = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "langdetect_candidate_languages",
		Help:    "Number of candidate languages remaining after script pruning",
		Buckets: []float64{1, 2, 5, 10, 20, 40, 75},
	})
)
