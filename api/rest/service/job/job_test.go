package job

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/metrics/testutil"
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
	require.NoError(t, db.AutoMigrate(
		&models.Metadata{},
		&models.Company{},
		&models.Job{},
		&models.Star{},
		&models.Part{},
		&models.JobPart{},
	))
	require.NoError(t, db.Create(&models.Metadata{Key: models.JobNumberKey, Value: 1000}).Error)
	require.NoError(t, db.Create(&models.Metadata{Key: models.InvoiceNumberKey, Value: 500}).Error)
	return db
}

func newCompany(t *testing.T, db *gorm.DB) *models.Company {
	t.Helper()
	company := &models.Company{ID: uuid.New(), Code: "ACME", Name: "Acme Machining"}
	require.NoError(t, db.Create(company).Error)
	return company
}

func TestCreateAllocatesSequentialNumbers(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)
	created := testutil.CounterValue(t, metrics.JobsCreatedTotal)

	first, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1001), first.JobNumber)

	second, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1002), second.JobNumber)

	require.Equal(t, created+2, testutil.CounterValue(t, metrics.JobsCreatedTotal))
}

func TestCreateRequiresCompany(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}

	_, err := svc.Create(&CreateRequest{})
	require.ErrorIs(t, err, ErrCompanyRequired)
}

func TestInvoiceStampsJob(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)
	issued := testutil.CounterValue(t, metrics.InvoicesIssuedTotal)

	invoiced, err := svc.Invoice(j.ID)
	require.NoError(t, err)
	require.Equal(t, int64(501), invoiced.InvoiceNumber)
	require.Equal(t, issued+1, testutil.CounterValue(t, metrics.InvoicesIssuedTotal))
	require.Equal(t, models.InvoiceStatusWaiting, invoiced.InvoiceStatus)
	require.NotNil(t, invoiced.InvoiceDate)
	require.NotNil(t, invoiced.ShipDate)
}

func TestInvoiceTwiceRejected(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	_, err = svc.Invoice(j.ID)
	require.NoError(t, err)

	_, err = svc.Invoice(j.ID)
	require.ErrorIs(t, err, ErrAlreadyInvoiced)

	// a failed invoice attempt must not consume a number
	var meta models.Metadata
	require.NoError(t, db.First(&meta, "key = ?", models.InvoiceNumberKey).Error)
	require.Equal(t, int64(501), meta.Value)
}

func addPart(t *testing.T, db *gorm.DB, jobID uuid.UUID, price float64, quantity int64, override *float64) {
	t.Helper()

	part := &models.Part{ID: uuid.New(), Number: uuid.NewString(), Price: price}
	require.NoError(t, db.Create(part).Error)
	require.NoError(t, db.Create(&models.JobPart{
		ID:       uuid.New(),
		JobID:    jobID,
		PartID:   part.ID,
		Quantity: quantity,
		Price:    override,
	}).Error)
}

func TestRecalculateWithTaxPercent(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	override := 7.5
	addPart(t, db, j.ID, 10, 2, nil)       // 20
	addPart(t, db, j.ID, 5, 2, &override)  // override wins: 15
	require.NoError(t, db.Model(j).Update("tax_percent", 10.0).Error)

	recalced, err := svc.Recalculate(j.ID)
	require.NoError(t, err)
	require.InDelta(t, 35.0, recalced.Subtotal, 1e-9)
	require.InDelta(t, 38.5, recalced.TotalCost, 1e-9)
}

func TestRecalculateFlatTaxWins(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	addPart(t, db, j.ID, 35, 1, nil)
	require.NoError(t, db.Model(j).Updates(map[string]interface{}{
		"tax":         7.0,
		"tax_percent": 10.0,
	}).Error)

	recalced, err := svc.Recalculate(j.ID)
	require.NoError(t, err)
	require.InDelta(t, 35.0, recalced.Subtotal, 1e-9)
	require.InDelta(t, 42.0, recalced.TotalCost, 1e-9)
}

func TestUpdatePONeverClearsTax(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	_, err = svc.UpdatePO(j.ID, &UpdatePORequest{PONumber: "PO-77", Tax: 12.5})
	require.NoError(t, err)

	// a follow-up write with zero tax leaves the stored value alone
	updated, err := svc.UpdatePO(j.ID, &UpdatePORequest{PONumber: "PO-78"})
	require.NoError(t, err)
	require.Equal(t, "PO-78", updated.PONumber)
	require.InDelta(t, 12.5, updated.Tax, 1e-9)
}

func TestStarAllowsDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Star(j.ID))
	require.NoError(t, svc.Star(j.ID))

	var count int64
	require.NoError(t, db.Model(&models.Star{}).Where("job_id = ?", j.ID).Count(&count).Error)
	require.Equal(t, int64(2), count)

	// unstar removes every row at once
	require.NoError(t, svc.Unstar(j.ID))
	require.NoError(t, db.Model(&models.Star{}).Where("job_id = ?", j.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestStarUnknownJob(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}

	require.ErrorIs(t, svc.Star(uuid.New()), gorm.ErrRecordNotFound)
}

func TestListStarredFilter(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	starred, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)
	_, err = svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Star(starred.ID))

	jobs, total, err := svc.List(&ListRequest{Starred: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	require.Equal(t, starred.ID, jobs[0].ID)
	require.True(t, jobs[0].Starred)
}

func TestGetMarksStarred(t *testing.T) {
	db := openTestDB(t)
	svc := &jobService{ctx: context.Background(), db: db}
	company := newCompany(t, db)

	j, err := svc.Create(&CreateRequest{CompanyID: company.ID})
	require.NoError(t, err)

	got, err := svc.Get(j.ID)
	require.NoError(t, err)
	require.False(t, got.Starred)

	require.NoError(t, svc.Star(j.ID))

	got, err = svc.Get(j.ID)
	require.NoError(t, err)
	require.True(t, got.Starred)
}
