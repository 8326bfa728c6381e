// Package metrics declares the Prometheus collectors for the catalog service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travelmaker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Catalog
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travelmaker_catalog_loads_total",
			Help: "Catalog load attempts by outcome (success, fallback)",
		},
		[]string{"outcome"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "travelmaker_catalog_courses",
			Help: "Number of courses in the memoized catalog",
		},
	)

	// Listing and recommendation
	SearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travelmaker_search_results",
			Help:    "Number of courses returned by a listing pipeline",
			Buckets: []float64{0, 1, 3, 6, 12, 25, 50, 100, 250},
		},
		[]string{"pipeline"},
	)

	Recommendations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "travelmaker_recommendations_returned",
			Help:    "Number of similar courses returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	// Chat
	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travelmaker_chat_replies_total",
			Help: "Chatbot replies by kind (scripted, fallback)",
		},
		[]string{"kind"},
	)
)
