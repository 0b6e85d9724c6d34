package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	JobsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopops_jobs_created_total",
			Help: "Total number of jobs created.",
		},
	)

	InvoicesIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopops_invoices_issued_total",
			Help: "Total number of invoices issued.",
		},
	)

	InvoiceStatusChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopops_invoice_status_changes_total",
			Help: "Total number of invoice status transitions by target status.",
		},
		[]string{"status"},
	)

	QuoteRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopops_quote_requests_total",
			Help: "Total number of quote requests received through the public form.",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopops_logins_total",
			Help: "Total number of login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	FileUploadBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopops_file_upload_bytes",
			Help:    "Size distribution of uploaded files.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

// Register registers all custom shopops metrics with the default
// Prometheus registry.
func Register() {
	prometheus.MustRegister(
		JobsCreatedTotal,
		InvoicesIssuedTotal,
		InvoiceStatusChangesTotal,
		QuoteRequestsTotal,
		LoginsTotal,
		FileUploadBytes,
	)
}
