package models

const (
	// JobNumberKey is the metadata key for the job number counter.
	JobNumberKey = "current_job_num"
	// InvoiceNumberKey is the metadata key for the invoice number counter.
	InvoiceNumberKey = "current_invoice_num"
)

// Metadata is a single-row key/value store. Its two critical
// singletons are the job and invoice number counters.
type Metadata struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value int64  `gorm:"not null;default:0" json:"value"`
}
