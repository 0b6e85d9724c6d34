package export

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingWriter struct {
	populated []*models.Job
	synced    models.Jobs
}

func (w *recordingWriter) PopulateJob(_ context.Context, job *models.Job) error {
	w.populated = append(w.populated, job)
	return nil
}

func (w *recordingWriter) SyncWaitingInvoices(_ context.Context, jobs models.Jobs) error {
	w.synced = jobs
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return db
}

func TestSyncSelectsWaitingInvoices(t *testing.T) {
	db := openTestDB(t)
	companyID := uuid.New()

	seed := []struct {
		number int64
		status models.InvoiceStatus
	}{
		{1, models.InvoiceStatusWaiting},
		{2, models.InvoiceStatusPaid},
		{3, models.InvoiceStatusWaiting},
	}
	for _, s := range seed {
		require.NoError(t, db.Create(&models.Job{
			ID:            uuid.New(),
			JobNumber:     s.number,
			CompanyID:     companyID,
			InvoiceNumber: s.number,
			InvoiceStatus: s.status,
		}).Error)
	}

	writer := &recordingWriter{}
	syncer := &Syncer{db: db, writer: writer}

	require.NoError(t, syncer.Run(context.Background()))
	require.Len(t, writer.synced, 2)
	require.Equal(t, int64(1), writer.synced[0].InvoiceNumber)
	require.Equal(t, int64(3), writer.synced[1].InvoiceNumber)
}

func TestSyncerRejectsBadSchedule(t *testing.T) {
	db := openTestDB(t)

	_, err := NewSyncer(db, &recordingWriter{}, "not a schedule")
	require.Error(t, err)
}

func TestConfigureInstallsExporters(t *testing.T) {
	writer := &recordingWriter{}
	Configure(writer, nil)
	t.Cleanup(func() { Configure(nil, nil) })

	require.Equal(t, SheetWriter(writer), Sheets())
	require.Nil(t, CalendarClient())
}
