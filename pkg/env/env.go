package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/pkg/log"
)

var variables = new(Environment)

// Process the environment variables set for shopops.
func Process() error {
	if err := envconfig.Process("shopops", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by shopops.
type Environment struct {
	LogLevel     string `default:"info"`
	Port         int    `default:"8080"`
	DatabaseType string `default:"postgres"`
	DatabaseDSN  string `default:"host=postgres user=postgres password=postgres dbname=shopops port=5432 sslmode=disable"`

	// JWTSecret may be a literal value or a secret:// reference
	// resolved through internal/secret.
	JWTSecret string        `default:""`
	TokenTTL  time.Duration `default:"12h"`

	PolicyPath     string `default:""`
	UploadMaxBytes int64  `default:"10485760"`

	VaultAddr      string `default:""`
	VaultToken     string `default:""`
	VaultNamespace string `default:""`

	// GoogleCredentials may be a literal service account JSON blob
	// or a secret:// reference.
	GoogleCredentials  string `default:""`
	SheetsSpreadsheet  string `default:""`
	SheetsSyncSchedule string `default:""`
	CalendarID         string `default:"primary"`
}
