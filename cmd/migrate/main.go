package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bookkeeper/internal/db"
	"bookkeeper/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// advisoryLockID guards against two migrators running at once.
const advisoryLockID = 8241157

func main() {
	_ = godotenv.Load()
	if err := logger.Setup(logger.FromEnv()); err != nil {
		os.Exit(1)
	}
	log := logger.WithComponent("migrate")

	ctx := context.Background()
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(connCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to acquire connection")
	}
	defer conn.Release()

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", advisoryLockID).Scan(&locked); err != nil {
		log.Fatal().Err(err).Msg("advisory lock query failed")
	}
	if !locked {
		log.Fatal().Msg("another migrator holds the lock")
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema_migrations")
	}

	files, err := discoverMigrations("migrations")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to discover migrations")
	}

	for _, filename := range files {
		if err := apply(ctx, pool, filename); err != nil {
			log.Fatal().Err(err).Str("migration", filename).Msg("migration failed")
		}
	}
	log.Info().Int("count", len(files)).Msg("migrations processed")
}

func discoverMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version := versionOf(entry.Name())
		if seen[version] {
			return nil, &duplicateVersionError{version}
		}
		seen[version] = true
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

type duplicateVersionError struct{ version string }

func (e *duplicateVersionError) Error() string {
	return "duplicate migration version " + e.version
}

// versionOf is the NNN prefix of NNN_description.sql.
func versionOf(filename string) string {
	if i := strings.Index(filename, "_"); i > 0 {
		return filename[:i]
	}
	return filename
}

func apply(ctx context.Context, pool *pgxpool.Pool, filename string) error {
	log := logger.WithComponent("migrate")
	version := versionOf(filename)

	contents, err := os.ReadFile(filepath.Join("migrations", filename))
	if err != nil {
		return err
	}
	sum := sha256.Sum256(contents)
	checksum := hex.EncodeToString(sum[:])

	var existing string
	err = pool.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existing)
	switch {
	case err == nil:
		if existing != checksum {
			return &checksumMismatchError{filename: filename, recorded: existing, actual: checksum}
		}
		log.Debug().Str("migration", filename).Msg("already applied")
		return nil
	case err == pgx.ErrNoRows:
		// not yet applied
	default:
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(contents)); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version, filename, checksum) VALUES ($1, $2, $3)",
		version, filename, checksum); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("migration", filename).Msg("applied")
	return nil
}

type checksumMismatchError struct {
	filename, recorded, actual string
}

func (e *checksumMismatchError) Error() string {
	return "checksum mismatch for " + e.filename + ": recorded " + e.recorded + ", file has " + e.actual
}
