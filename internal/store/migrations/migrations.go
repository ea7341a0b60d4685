// Package migrations holds the history database schema as numbered SQL
// steps embedded from sql/.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var files embed.FS

// Step is one schema change, loaded from sql/NN_name.sql.
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Schema is the list of steps ordered by version.
type Schema []Step

const versionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load reads the embedded steps.
func Load() (Schema, error) {
	return load(files)
}

func load(fsys fs.FS) (Schema, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	schema := make(Schema, 0, len(names))
	owner := make(map[int]string, len(names))

	for _, name := range names {
		step, err := parseStep(path.Base(name))
		if err != nil {
			return nil, err
		}
		if prev, taken := owner[step.Version]; taken {
			return nil, fmt.Errorf("migrations %s and %s share version %d", prev, step.Name, step.Version)
		}
		owner[step.Version] = step.Name

		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		step.SQL = string(body)
		schema = append(schema, step)
	}

	slices.SortFunc(schema, func(a, b Step) int {
		return cmp.Compare(a.Version, b.Version)
	})
	return schema, nil
}

func parseStep(file string) (Step, error) {
	base, isSQL := strings.CutSuffix(file, ".sql")
	num, name, found := strings.Cut(base, "_")
	if !isSQL || !found || name == "" {
		return Step{}, fmt.Errorf("migration %q: want NN_name.sql", file)
	}

	version, err := strconv.Atoi(num)
	if err != nil || version <= 0 {
		return Step{}, fmt.Errorf("migration %q: bad version %q", file, num)
	}
	return Step{Version: version, Name: name}, nil
}

// Run applies the embedded schema to db and returns the steps it ran.
func Run(db *sql.DB) ([]Step, error) {
	schema, err := Load()
	if err != nil {
		return nil, err
	}
	return schema.Apply(db)
}

// Apply runs every step newer than the database's version, each in its own
// transaction. On failure the steps already run stay applied.
func (s Schema) Apply(db *sql.DB) ([]Step, error) {
	current, err := Version(db)
	if err != nil {
		return nil, err
	}

	var applied []Step
	for _, step := range s {
		if step.Version <= current {
			continue
		}
		if err := applyStep(db, step); err != nil {
			return applied, fmt.Errorf("migration %02d_%s: %w", step.Version, step.Name, err)
		}
		applied = append(applied, step)
	}
	return applied, nil
}

func applyStep(db *sql.DB, step Step) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if _, err := tx.Exec(step.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
		step.Version, step.Name,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record version: %w", err)
	}

	return tx.Commit()
}

// Version reports the highest applied version, 0 for a fresh database.
func Version(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(version.Int64), nil
}
