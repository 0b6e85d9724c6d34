package counter

import (
	"fmt"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.Metadata{}))
	return db
}

func TestNextIncrementsSequentially(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Metadata{Key: models.JobNumberKey, Value: 1200}).Error)

	for want := int64(1201); want <= 1205; want++ {
		got, err := Next(db, models.JobNumberKey)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	current, err := Current(db, models.JobNumberKey)
	require.NoError(t, err)
	require.Equal(t, int64(1205), current)
}

func TestNextUnknownKey(t *testing.T) {
	db := openTestDB(t)

	_, err := Next(db, "no_such_counter")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountersAreIndependent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Metadata{Key: models.JobNumberKey, Value: 10}).Error)
	require.NoError(t, db.Create(&models.Metadata{Key: models.InvoiceNumberKey, Value: 500}).Error)

	jobNum, err := Next(db, models.JobNumberKey)
	require.NoError(t, err)
	require.Equal(t, int64(11), jobNum)

	invNum, err := Next(db, models.InvoiceNumberKey)
	require.NoError(t, err)
	require.Equal(t, int64(501), invNum)
}

func TestNextInsideTransaction(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Metadata{Key: models.InvoiceNumberKey, Value: 42}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		got, err := Next(tx, models.InvoiceNumberKey)
		if err != nil {
			return err
		}
		require.Equal(t, int64(43), got)
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	// rollback leaves the counter untouched
	current, err := Current(db, models.InvoiceNumberKey)
	require.NoError(t, err)
	require.Equal(t, int64(42), current)
}
