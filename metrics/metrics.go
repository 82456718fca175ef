package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalysisTotal counts model analyses by category, provider and outcome.
	AnalysisTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "analysis_total",
		Help:      "Total number of model analyses, labeled by category, source and result.",
	}, []string{"category", "source", "result"})

	// AnalysisDurationSeconds is end-to-end time per analysis, including the
	// remote model call.
	AnalysisDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end time to run one model analysis.",
		// Keep buckets fairly coarse to avoid high-cardinality time series.
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 90, 120},
	}, []string{"category", "source"})

	// RegionFallbackTotal counts anatomy analyses where an unknown region fell
	// back to the lung template.
	RegionFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "region_template_fallback_total",
		Help:      "Total number of anatomy analyses that resolved an unknown region to the default lung template.",
	})

	// UploadRejectedTotal counts uploads rejected before any model call, by
	// reason.
	UploadRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "upload_rejected_total",
		Help:      "Total number of uploads rejected by validation, labeled by reason.",
	}, []string{"reason"})

	// ImagePreparedTotal counts image preparation runs by outcome.
	ImagePreparedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "image_prepared_total",
		Help:      "Total number of image preparation pipeline runs, labeled by result.",
	}, []string{"result"})

	// ReportExportTotal counts exported and composed reports by kind.
	ReportExportTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xray",
		Subsystem: "education",
		Name:      "report_export_total",
		Help:      "Total number of report documents produced, labeled by kind.",
	}, []string{"kind"})
)

// Register registers service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalysisTotal,
			AnalysisDurationSeconds,
			RegionFallbackTotal,
			UploadRejectedTotal,
			ImagePreparedTotal,
			ReportExportTotal,
		)
	})
}
