// Package metrics defines the prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RPC metrics
var (
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playtime_rpc_requests_total",
			Help: "Total number of RPC requests",
		},
		[]string{"procedure", "code"},
	)

	RPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playtime_rpc_request_duration_seconds",
			Help:    "RPC request duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"procedure"},
	)
)

// Import metrics
var (
	ImportLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playtime_import_lines_total",
			Help: "Total number of non-blank lines submitted for text import",
		},
		[]string{"outcome"}, // "parsed", "dropped"
	)

	LibraryImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playtime_library_imports_total",
			Help: "Total number of playlist imports from the music library",
		},
		[]string{"code"},
	)
)

// Calculation metrics
var (
	PlaylistSongs = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playtime_playlist_songs",
			Help:    "Number of songs per calculated playlist",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	PlaylistTooLongTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playtime_playlist_too_long_total",
			Help: "Number of calculations where the playlist ran past the target end time",
		},
	)
)
