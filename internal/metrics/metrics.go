package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scanner Metrics
var (
	ScannedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_scanned_blocks_total",
		Help: "The total number of blocks fetched by window scans",
	})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scanner_scan_duration_seconds",
		Help:    "Time taken to scan a block window",
		Buckets: prometheus.DefBuckets,
	})

	FailedScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_failed_scans_total",
		Help: "The number of window scans aborted by an RPC error",
	})

	LatestScannedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scanner_latest_scanned_block",
		Help: "The highest block number used as a scan start",
	})
)

// Decoder Metrics
var (
	MethodResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decoder_method_resolutions_total",
		Help: "Method name resolutions by source",
	}, []string{"source"})

	DecodedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decoder_decoded_events_total",
		Help: "Event log decode attempts by outcome",
	}, []string{"outcome"})
)

// Metadata store Metrics
var (
	MetadataStoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metadata_store_operations_total",
		Help: "Metadata store operations by backend, operation and outcome",
	}, []string{"backend", "operation", "outcome"})

	MetadataStoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "metadata_store_operation_duration_seconds",
		Help:    "Time taken by metadata store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation"})
)

// API Metrics
var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "HTTP requests served by route and status",
	}, []string{"route", "status"})
)
