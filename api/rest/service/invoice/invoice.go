package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrNoInvoice is returned when toggling a job that has never
	// been invoiced.
	ErrNoInvoice = errors.New("job has no invoice")
	// ErrSameStatus is returned when toggling an invoice into the
	// status it already has.
	ErrSameStatus = errors.New("invoice already has that status")
	// ErrBadStatus is returned for statuses other than waiting/paid.
	ErrBadStatus = errors.New("invalid invoice status")
)

type Invoice interface {
	WithDatabase(*gorm.DB) Invoice
	List(*ListRequest) (models.Jobs, int64, error)
	SetStatus(uuid.UUID, models.InvoiceStatus) (*models.Job, error)
}

type invoiceService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Invoice {
	return &invoiceService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (i *invoiceService) WithDatabase(conn *gorm.DB) Invoice {
	i.db = conn
	return i
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
	Status  models.InvoiceStatus
}

// List returns invoiced jobs, optionally filtered by status.
func (i *invoiceService) List(req *ListRequest) (models.Jobs, int64, error) {
	var (
		jobs  = make(models.Jobs, 0)
		total int64
		q     = i.db.WithContext(i.ctx).Model(&models.Job{}).Where("invoice_number <> 0")
	)

	if req.Status != models.InvoiceStatusNone {
		if req.Status != models.InvoiceStatusWaiting && req.Status != models.InvoiceStatusPaid {
			return nil, 0, ErrBadStatus
		}

		q = q.Where("invoice_status = ?", req.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, orderBy := range req.OrderBy {
		q = q.Order(orderBy)
	}

	if req.Limit > 0 {
		q = q.Limit(int(req.Limit))
	}

	if req.Offset > 0 {
		q = q.Offset(int(req.Offset))
	}

	return jobs, total, q.Find(&jobs).Error
}

// SetStatus flips an invoice between waiting and paid. Toggling into
// the current status is rejected, as is toggling a job that has no
// invoice number.
func (i *invoiceService) SetStatus(jobID uuid.UUID, status models.InvoiceStatus) (*models.Job, error) {
	if status != models.InvoiceStatusWaiting && status != models.InvoiceStatusPaid {
		return nil, ErrBadStatus
	}

	job := &models.Job{}
	q := i.db.WithContext(i.ctx)

	if err := q.First(job, "id = ?", jobID).Error; err != nil {
		return nil, err
	}

	if job.InvoiceNumber == 0 {
		return nil, ErrNoInvoice
	}

	if job.InvoiceStatus == status {
		return nil, ErrSameStatus
	}

	if err := q.Model(job).Update("invoice_status", status).Error; err != nil {
		return nil, err
	}

	job.InvoiceStatus = status
	metrics.InvoiceStatusChangesTotal.WithLabelValues(string(status)).Inc()

	return job, nil
}
