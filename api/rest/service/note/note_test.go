package note

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

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}, &models.Note{}, &models.UploadedFile{}))
	return db
}

var jobNumber int64

func newJob(t *testing.T, db *gorm.DB) *models.Job {
	t.Helper()
	jobNumber++
	job := &models.Job{ID: uuid.New(), JobNumber: jobNumber, CompanyID: uuid.New()}
	require.NoError(t, db.Create(job).Error)
	return job
}

func TestCreateStartsNew(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)

	n, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New(), Content: "chamfer spec changed"})
	require.NoError(t, err)
	require.Equal(t, models.NoteStatusNew, n.Status)
}

func TestCreateRequiresContent(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)

	_, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New()})
	require.ErrorIs(t, err, ErrContentRequired)
}

func TestCreateUnknownJob(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}

	_, err := svc.Create(&CreateRequest{JobID: uuid.New(), AdminID: uuid.New(), Content: "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)

	n, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New(), Content: "x"})
	require.NoError(t, err)

	done := models.NoteStatusDone
	updated, err := svc.Update(n.ID, &UpdateRequest{Status: &done})
	require.NoError(t, err)
	require.Equal(t, models.NoteStatusDone, updated.Status)

	// any transition is allowed, including back to new
	renew := models.NoteStatusNew
	updated, err = svc.Update(n.ID, &UpdateRequest{Status: &renew})
	require.NoError(t, err)
	require.Equal(t, models.NoteStatusNew, updated.Status)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)

	n, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New(), Content: "x"})
	require.NoError(t, err)

	bogus := models.NoteStatus("archived")
	_, err = svc.Update(n.ID, &UpdateRequest{Status: &bogus})
	require.ErrorIs(t, err, ErrBadStatus)
}

func TestDeleteRemovesFiles(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)

	n, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New(), Content: "x"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.UploadedFile{
		ID:       uuid.New(),
		NoteID:   &n.ID,
		Filename: "photo.jpg",
		Content:  []byte{0xff, 0xd8},
		Size:     2,
	}).Error)

	require.NoError(t, svc.Delete(n.ID))

	var count int64
	require.NoError(t, db.Model(&models.UploadedFile{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestListFilters(t *testing.T) {
	db := openTestDB(t)
	svc := &noteService{ctx: context.Background(), db: db}
	job := newJob(t, db)
	other := newJob(t, db)

	first, err := svc.Create(&CreateRequest{JobID: job.ID, AdminID: uuid.New(), Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(&CreateRequest{JobID: other.ID, AdminID: uuid.New(), Content: "b"})
	require.NoError(t, err)

	ack := models.NoteStatusAcknowledged
	_, err = svc.Update(first.ID, &UpdateRequest{Status: &ack})
	require.NoError(t, err)

	notes, total, err := svc.List(&ListRequest{JobID: job.ID.String(), Status: models.NoteStatusAcknowledged})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, notes, 1)
	require.Equal(t, first.ID, notes[0].ID)
}
