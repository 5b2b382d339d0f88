// Package postgres wires the service to its PostgreSQL backend.
package postgres

import (
	"fmt"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderstore"

	"github.com/cenkalti/backoff/v4"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionConfig holds the parameters for the database connection.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SslMode  string
}

// DSN renders the config as a keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SslMode)
}

// Connect opens a GORM connection with exponential backoff and migrates the
// orders schema. Databases routinely come up after the service in container
// environments, so the first connection attempts are retried for up to a
// minute before giving up.
//
// TranslateError is enabled so the store can classify duplicate-key
// violations as gorm.ErrDuplicatedKey regardless of the underlying driver.
func Connect(cfg ConnectionConfig) (*gorm.DB, error) {
	backoffCfg := backoff.NewExponentialBackOff()
	backoffCfg.InitialInterval = 500 * time.Millisecond
	backoffCfg.MaxInterval = 10 * time.Second
	backoffCfg.MaxElapsedTime = time.Minute

	db, err := backoff.RetryWithData(func() (*gorm.DB, error) {
		return gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	}, backoffCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&orderstore.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate orders schema: %w", err)
	}

	return db, nil
}
