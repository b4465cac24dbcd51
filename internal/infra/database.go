package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/krikodium/hermanascaradonti/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all aggregates. Embedded documents (ledger entries,
// payment orders, discrepancies) live in jsonb columns, so the relational
// surface stays small.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. gen_random_uuid() needs the
// pgcrypto extension on Postgres < 13.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Project{},
		&model.GeneralCashEntry{},
		&model.EventsCash{},
		&model.ShopCashEntry{},
		&model.StudioMovement{},
		&model.DisbursementOrder{},
		&model.CashCount{},
	)
}
