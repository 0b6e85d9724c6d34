package export

import (
	"context"

	"github.com/robfig/cron"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/gorm"
)

// Syncer periodically rewrites the invoice tab of the export
// spreadsheet with the current set of waiting invoices.
type Syncer struct {
	db     *gorm.DB
	writer SheetWriter
	cron   *cron.Cron
}

// NewSyncer schedules a sync on the given cron expression.
func NewSyncer(db *gorm.DB, writer SheetWriter, schedule string) (*Syncer, error) {
	s := &Syncer{db: db, writer: writer, cron: cron.New()}

	if err := s.cron.AddFunc(schedule, func() {
		if err := s.Run(context.Background()); err != nil {
			log.Error("invoice sheet sync failed", "error", err)
		}
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the schedule.
func (s *Syncer) Start() {
	s.cron.Start()
}

// Stop halts the schedule. Running syncs are not interrupted.
func (s *Syncer) Stop() {
	s.cron.Stop()
}

// Run performs one sync pass.
func (s *Syncer) Run(ctx context.Context) error {
	jobs := make(models.Jobs, 0)

	if err := s.db.WithContext(ctx).
		Where("invoice_status = ?", models.InvoiceStatusWaiting).
		Order("invoice_number").
		Find(&jobs).Error; err != nil {
		return err
	}

	return s.writer.SyncWaitingInvoices(ctx, jobs)
}
