package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus enumerates the states of a job's invoice.
type InvoiceStatus string

const (
	// InvoiceStatusNone means the job has not been invoiced yet.
	InvoiceStatusNone InvoiceStatus = ""
	// InvoiceStatusWaiting means the invoice is issued and unpaid.
	InvoiceStatusWaiting InvoiceStatus = "waiting"
	// InvoiceStatusPaid means the invoice has been settled.
	InvoiceStatusPaid InvoiceStatus = "paid"
)

type Job struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	JobNumber     int64         `gorm:"uniqueIndex;not null" json:"job_number"`
	CompanyID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"company_id"`
	Attention     string        `json:"attention,omitempty"`
	PONumber      string        `gorm:"column:po_number" json:"po_number,omitempty"`
	PODate        *time.Time    `gorm:"column:po_date" json:"po_date,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	ShipDate      *time.Time    `json:"ship_date,omitempty"`
	TaxCode       string        `json:"tax_code,omitempty"`
	Tax           float64       `json:"tax"`
	TaxPercent    float64       `json:"tax_percent"`
	InvoiceNumber int64         `gorm:"index" json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time    `json:"invoice_date,omitempty"`
	InvoiceStatus InvoiceStatus `gorm:"type:text;index" json:"invoice_status,omitempty"`
	Subtotal      float64       `json:"subtotal"`
	TotalCost     float64       `json:"total_cost"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`

	Parts   JobParts `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"parts,omitempty"`
	Starred bool     `gorm:"-" json:"starred"`
}

type Jobs []*Job

// Star marks a job as in progress. There is deliberately no
// uniqueness constraint: starring twice inserts two rows, and
// unstarring removes them all.
type Star struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;index;not null" json:"job_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
