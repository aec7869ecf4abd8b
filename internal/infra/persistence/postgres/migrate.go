package postgres

import (
	"database/sql"

	"bvs/internal/errors"
	"bvs/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

type migrator struct {
	m *migrate.Migrate
}

// newMigrator binds the embedded migration files to an open database.
func newMigrator(db *sql.DB) (*migrator, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}

	return &migrator{m: m}, nil
}

// Up applies all pending migrations and returns the resulting schema version.
func (mg *migrator) Up() (uint, error) {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, errors.Wrap(err, "apply migrations")
	}

	version, dirty, err := mg.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, errors.Wrap(err, "read schema version")
	}
	if dirty {
		return version, errors.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}

// Close releases the migration source and driver.
func (mg *migrator) Close() {
	_, _ = mg.m.Close()
}

// RunMigrations applies the embedded migrations to db. It is used by tooling and tests
// that manage their own connection; the service runs migrations from the fx start hook.
func RunMigrations(db *sql.DB) (uint, error) {
	mg, err := newMigrator(db)
	if err != nil {
		return 0, err
	}

	return mg.Up()
}
