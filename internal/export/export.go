// Package export pushes job data out to Google Sheets and Google
// Calendar. Both services are consumed as black boxes behind small
// interfaces so the rest of the application never touches the
// Google clients directly.
package export

import (
	"context"
	"sync"
	"time"

	"github.com/shopops-cloud/shopops/internal/models"
)

// SheetWriter populates spreadsheet cells from job data.
type SheetWriter interface {
	PopulateJob(ctx context.Context, job *models.Job) error
	SyncWaitingInvoices(ctx context.Context, jobs models.Jobs) error
}

// Event is a calendar entry tied to a job date.
type Event struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary"`
	Date    time.Time `json:"date"`
}

// Calendar manages events tied to job due/ship dates.
type Calendar interface {
	CreateEvent(ctx context.Context, job *models.Job) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

var (
	mu       sync.RWMutex
	sheets   SheetWriter
	calendar Calendar
)

// Configure installs the exporters built at startup. Either may be
// nil when the corresponding integration is not configured.
func Configure(s SheetWriter, c Calendar) {
	mu.Lock()
	defer mu.Unlock()
	sheets = s
	calendar = c
}

// Sheets returns the configured sheet writer, or nil.
func Sheets() SheetWriter {
	mu.RLock()
	defer mu.RUnlock()
	return sheets
}

// CalendarClient returns the configured calendar, or nil.
func CalendarClient() Calendar {
	mu.RLock()
	defer mu.RUnlock()
	return calendar
}
