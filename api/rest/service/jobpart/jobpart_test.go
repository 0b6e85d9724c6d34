package jobpart

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
	require.NoError(t, db.AutoMigrate(&models.Job{}, &models.Part{}, &models.JobPart{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (*models.Job, *models.Part) {
	t.Helper()

	job := &models.Job{ID: uuid.New(), JobNumber: 1, CompanyID: uuid.New()}
	require.NoError(t, db.Create(job).Error)

	part := &models.Part{ID: uuid.New(), Number: "BRKT-100", Price: 10}
	require.NoError(t, db.Create(part).Error)

	return job, part
}

func TestAddDefaultsQuantity(t *testing.T) {
	db := openTestDB(t)
	svc := &jobPartService{ctx: context.Background(), db: db}
	job, part := seed(t, db)

	jp, err := svc.Add(job.ID, &AddRequest{PartID: part.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), jp.Quantity)
	require.Nil(t, jp.Price)
}

func TestAddUnknownPart(t *testing.T) {
	db := openTestDB(t)
	svc := &jobPartService{ctx: context.Background(), db: db}
	job, _ := seed(t, db)

	_, err := svc.Add(job.ID, &AddRequest{PartID: uuid.New()})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnitPricePrefersOverride(t *testing.T) {
	db := openTestDB(t)
	svc := &jobPartService{ctx: context.Background(), db: db}
	job, part := seed(t, db)

	override := 7.5
	_, err := svc.Add(job.ID, &AddRequest{PartID: part.ID, Quantity: 2, Price: &override})
	require.NoError(t, err)

	listed, err := svc.ListByJob(job.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.InDelta(t, 7.5, listed[0].UnitPrice(), 1e-9)

	// clearing the override is not possible through Update; the
	// catalog price applies only when no override was ever set
	plain := &models.JobPart{ID: uuid.New(), JobID: job.ID, PartID: part.ID, Quantity: 1, Part: part}
	require.InDelta(t, 10.0, plain.UnitPrice(), 1e-9)
}

func TestUpdateByCompositeKey(t *testing.T) {
	db := openTestDB(t)
	svc := &jobPartService{ctx: context.Background(), db: db}
	job, part := seed(t, db)

	_, err := svc.Add(job.ID, &AddRequest{PartID: part.ID, Quantity: 2})
	require.NoError(t, err)

	quantity := int64(5)
	updated, err := svc.Update(job.ID, part.ID, &UpdateRequest{Quantity: &quantity})
	require.NoError(t, err)
	require.Equal(t, int64(5), updated.Quantity)
}

func TestRemove(t *testing.T) {
	db := openTestDB(t)
	svc := &jobPartService{ctx: context.Background(), db: db}
	job, part := seed(t, db)

	_, err := svc.Add(job.ID, &AddRequest{PartID: part.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(job.ID, part.ID))
	require.ErrorIs(t, svc.Remove(job.ID, part.ID), gorm.ErrRecordNotFound)
}
