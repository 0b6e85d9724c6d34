package export

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/models"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// GoogleSheets writes jobs into a fixed cell layout of a single
// spreadsheet.
type GoogleSheets struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewGoogleSheets builds a sheets client from service account
// credentials JSON.
func NewGoogleSheets(ctx context.Context, credentials []byte, spreadsheetID string) (*GoogleSheets, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets client")
	}

	return &GoogleSheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// PopulateJob writes one job into the fixed layout: header fields in
// A1:B6, one part per row from row 8 down.
func (g *GoogleSheets) PopulateJob(ctx context.Context, job *models.Job) error {
	values := [][]interface{}{
		{"Job Number", job.JobNumber},
		{"Attention", job.Attention},
		{"PO Number", job.PONumber},
		{"Due Date", formatDate(job.DueDate)},
		{"Subtotal", job.Subtotal},
		{"Total", job.TotalCost},
		{},
		{"Part", "Rev", "Qty", "Unit Price"},
	}

	for _, jp := range job.Parts {
		number := ""
		if jp.Part != nil {
			number = jp.Part.Number
		}
		values = append(values, []interface{}{number, jp.Rev, jp.Quantity, jp.UnitPrice()})
	}

	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, "Jobs!A1", &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return errors.Wrap(err, "failed to populate job sheet")
}

// SyncWaitingInvoices rewrites the invoice tab with one row per
// waiting invoice.
func (g *GoogleSheets) SyncWaitingInvoices(ctx context.Context, jobs models.Jobs) error {
	values := [][]interface{}{
		{"Invoice", "Job", "Invoiced", "Total"},
	}

	for _, job := range jobs {
		values = append(values, []interface{}{
			job.InvoiceNumber,
			job.JobNumber,
			formatDate(job.InvoiceDate),
			job.TotalCost,
		})
	}

	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, "Invoices!A1", &gsheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return errors.Wrap(err, "failed to sync invoice sheet")
}

// GoogleCalendar creates all-day events on a single calendar.
type GoogleCalendar struct {
	svc        *gcalendar.Service
	calendarID string
}

// NewGoogleCalendar builds a calendar client from service account
// credentials JSON.
func NewGoogleCalendar(ctx context.Context, credentials []byte, calendarID string) (*GoogleCalendar, error) {
	svc, err := gcalendar.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(gcalendar.CalendarScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar client")
	}

	return &GoogleCalendar{svc: svc, calendarID: calendarID}, nil
}

// CreateEvent inserts an all-day event on the job's due date.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, job *models.Job) (*Event, error) {
	if job.DueDate == nil {
		return nil, errors.New("job has no due date")
	}

	date := job.DueDate.Format("2006-01-02")
	event := &gcalendar.Event{
		Summary: fmt.Sprintf("Job %d due", job.JobNumber),
		Start:   &gcalendar.EventDateTime{Date: date},
		End:     &gcalendar.EventDateTime{Date: date},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar event")
	}

	return &Event{ID: created.Id, Summary: created.Summary, Date: *job.DueDate}, nil
}

// ListEvents returns upcoming events on the calendar.
func (g *GoogleCalendar) ListEvents(ctx context.Context) ([]*Event, error) {
	list, err := g.svc.Events.
		List(g.calendarID).
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calendar events")
	}

	events := make([]*Event, 0, len(list.Items))
	for _, item := range list.Items {
		event := &Event{ID: item.Id, Summary: item.Summary}
		if item.Start != nil && item.Start.Date != "" {
			if date, err := time.Parse("2006-01-02", item.Start.Date); err == nil {
				event.Date = date
			}
		}
		events = append(events, event)
	}

	return events, nil
}

// DeleteEvent removes an event by id.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	return errors.Wrap(
		g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(),
		"failed to delete calendar event",
	)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
