package db

import (
	"sync"

	_ "github.com/jackc/pgx/v4"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/env"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	conn *gorm.DB
	once sync.Once
)

func Connection() *gorm.DB {
	once.Do(func() {
		var err error

		switch env.Variables().DatabaseType {
		case "sqlite":
			conn, err = gorm.Open(
				sqlite.Open(env.Variables().DatabaseDSN),
				&gorm.Config{},
			)
		case "postgres":
			fallthrough
		default:
			conn, err = gorm.Open(
				postgres.Open(env.Variables().DatabaseDSN),
				&gorm.Config{},
			)
		}

		if err != nil {
			log.Fatal("failed to connect to database", "error", err)
		}
	})

	return conn
}

// Migrate creates or updates the schema for all models and seeds
// the metadata counters used for job and invoice numbering.
func Migrate() error {
	gdb := Connection()

	if err := gdb.AutoMigrate(
		&models.Metadata{},
		&models.Company{},
		&models.Admin{},
		&models.Job{},
		&models.Star{},
		&models.Part{},
		&models.JobPart{},
		&models.Note{},
		&models.Task{},
		&models.UploadedFile{},
		&models.Quote{},
	); err != nil {
		return err
	}

	return Seed(gdb)
}

// Seed ensures the counter singletons exist. Existing values are
// never overwritten.
func Seed(gdb *gorm.DB) error {
	for _, key := range []string{
		models.JobNumberKey,
		models.InvoiceNumberKey,
	} {
		meta := &models.Metadata{Key: key}
		if err := gdb.FirstOrCreate(meta, "key = ?", key).Error; err != nil {
			return err
		}
	}

	return nil
}
