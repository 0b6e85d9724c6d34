package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/counter"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrCompanyRequired is returned when a create request carries
	// no company.
	ErrCompanyRequired = errors.New("company_id is required")
	// ErrAlreadyInvoiced is returned when invoicing a job that
	// already carries an invoice number.
	ErrAlreadyInvoiced = errors.New("job already has an invoice")
)

type Job interface {
	WithDatabase(*gorm.DB) Job
	List(*ListRequest) (models.Jobs, int64, error)
	Get(uuid.UUID) (*models.Job, error)
	Create(*CreateRequest) (*models.Job, error)
	UpdatePO(uuid.UUID, *UpdatePORequest) (*models.Job, error)
	Invoice(uuid.UUID) (*models.Job, error)
	Recalculate(uuid.UUID) (*models.Job, error)
	Star(uuid.UUID) error
	Unstar(uuid.UUID) error
}

type jobService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Job {
	return &jobService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (j *jobService) WithDatabase(conn *gorm.DB) Job {
	j.db = conn
	return j
}

type ListRequest struct {
	Limit         uint64
	Offset        uint64
	OrderBy       []string
	CompanyID     string
	InvoiceStatus string
	Starred       bool
}

func (j *jobService) List(req *ListRequest) (models.Jobs, int64, error) {
	var (
		jobs  = make(models.Jobs, 0)
		total int64
		q     = j.db.WithContext(j.ctx).Model(&models.Job{})
	)

	if req.CompanyID != "" {
		if _, err := uuid.Parse(req.CompanyID); err != nil {
			return nil, 0, err
		}

		q = q.Where("company_id = ?", req.CompanyID)
	}

	if req.InvoiceStatus != "" {
		q = q.Where("invoice_status = ?", req.InvoiceStatus)
	}

	if req.Starred {
		q = q.Where("id IN (?)", j.db.Model(&models.Star{}).Select("job_id"))
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

	if err := q.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	if err := j.markStarred(jobs); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (j *jobService) markStarred(jobs models.Jobs) error {
	if len(jobs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}

	var starred []uuid.UUID
	if err := j.db.WithContext(j.ctx).
		Model(&models.Star{}).
		Distinct("job_id").
		Where("job_id IN ?", ids).
		Pluck("job_id", &starred).Error; err != nil {
		return err
	}

	set := make(map[uuid.UUID]bool, len(starred))
	for _, id := range starred {
		set[id] = true
	}

	for _, job := range jobs {
		job.Starred = set[job.ID]
	}

	return nil
}

func (j *jobService) Get(id uuid.UUID) (*models.Job, error) {
	var (
		job = &models.Job{}
		q   = j.db.WithContext(j.ctx)
	)

	if err := q.Preload("Parts").Preload("Parts.Part").First(job, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := q.Model(&models.Star{}).Where("job_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	job.Starred = count > 0

	return job, nil
}

type CreateRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
	Attention string    `json:"attention,omitempty"`
}

// Create allocates the next job number and persists the job in a
// single transaction, so concurrent creates cannot collide on a
// number.
func (j *jobService) Create(req *CreateRequest) (*models.Job, error) {
	if req.CompanyID == uuid.Nil {
		return nil, ErrCompanyRequired
	}

	job := &models.Job{
		ID:        uuid.New(),
		CompanyID: req.CompanyID,
		Attention: req.Attention,
	}

	err := j.db.WithContext(j.ctx).Transaction(func(tx *gorm.DB) error {
		number, err := counter.Next(tx, models.JobNumberKey)
		if err != nil {
			return err
		}

		job.JobNumber = number
		return tx.Create(job).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()

	return job, nil
}

type UpdatePORequest struct {
	PONumber   string     `json:"po_number"`
	PODate     *time.Time `json:"po_date,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	TaxCode    string     `json:"tax_code"`
	Tax        float64    `json:"tax"`
	TaxPercent float64    `json:"tax_percent"`
}

// UpdatePO writes the purchase order fields. Tax and tax percent are
// written only when positive: a zero or blank value never clears a
// previously stored one.
func (j *jobService) UpdatePO(id uuid.UUID, req *UpdatePORequest) (*models.Job, error) {
	job := &models.Job{}
	q := j.db.WithContext(j.ctx)

	if err := q.First(job, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"po_number": req.PONumber,
		"tax_code":  req.TaxCode,
	}

	if req.PODate != nil {
		updates["po_date"] = req.PODate
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate
	}
	if req.Tax > 0 {
		updates["tax"] = req.Tax
	}
	if req.TaxPercent > 0 {
		updates["tax_percent"] = req.TaxPercent
	}

	if err := q.Model(job).Updates(updates).Error; err != nil {
		return nil, err
	}

	return job, q.First(job, "id = ?", id).Error
}

// Invoice stamps the job with the next invoice number, invoice and
// ship dates of now, and a waiting status. Number allocation shares
// the transaction with the job update.
func (j *jobService) Invoice(id uuid.UUID) (*models.Job, error) {
	job := &models.Job{}

	err := j.db.WithContext(j.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(job, "id = ?", id).Error; err != nil {
			return err
		}

		if job.InvoiceNumber != 0 {
			return ErrAlreadyInvoiced
		}

		number, err := counter.Next(tx, models.InvoiceNumberKey)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.Model(job).Updates(map[string]interface{}{
			"invoice_number": number,
			"invoice_date":   now,
			"ship_date":      now,
			"invoice_status": models.InvoiceStatusWaiting,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.InvoicesIssuedTotal.Inc()

	return job, j.db.WithContext(j.ctx).First(job, "id = ?", id).Error
}

// Recalculate recomputes the job's subtotal and total cost from its
// parts. A flat tax amount takes precedence over a tax percentage
// when both are set.
func (j *jobService) Recalculate(id uuid.UUID) (*models.Job, error) {
	job := &models.Job{}
	q := j.db.WithContext(j.ctx)

	if err := q.Preload("Parts").Preload("Parts.Part").First(job, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var subtotal float64
	for _, jp := range job.Parts {
		subtotal += jp.UnitPrice() * float64(jp.Quantity)
	}

	total := subtotal
	switch {
	case job.Tax > 0:
		total = subtotal + job.Tax
	case job.TaxPercent > 0:
		total = subtotal * (1 + job.TaxPercent/100)
	}

	if err := q.Model(job).Updates(map[string]interface{}{
		"subtotal":   subtotal,
		"total_cost": total,
	}).Error; err != nil {
		return nil, err
	}

	job.Subtotal = subtotal
	job.TotalCost = total

	return job, nil
}

// Star inserts an in-progress marker. Duplicate stars are allowed.
func (j *jobService) Star(id uuid.UUID) error {
	q := j.db.WithContext(j.ctx)

	if err := q.First(&models.Job{}, "id = ?", id).Error; err != nil {
		return err
	}

	return q.Create(&models.Star{ID: uuid.New(), JobID: id}).Error
}

// Unstar removes every star row for the job.
func (j *jobService) Unstar(id uuid.UUID) error {
	return j.db.WithContext(j.ctx).
		Where("job_id = ?", id).
		Delete(&models.Star{}).Error
}
