package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Actions taken at the confirm prompt.
const (
	ActionAccept = "accept"
	ActionEdit   = "edit"
	ActionCancel = "cancel"
)

// Results of a commit attempt.
const (
	ResultCommitted = "committed"
	ResultFailed    = "failed"
	ResultCanceled  = "canceled"
)

// Attempt is one journaled run of the commit pipeline.
type Attempt struct {
	ID         int64
	CreatedAt  time.Time
	CommitType string
	Title      string
	FileCount  int
	Action     string
	Result     string
}

// Journal records commit attempts in .smartcommit/journal.db under the
// repository root.
type Journal struct {
	db *sql.DB
}

func Open(repoDir string) (*Journal, error) {
	dir := filepath.Join(repoDir, ".smartcommit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create .smartcommit dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "journal.db"))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return j, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS attempts (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at  DATETIME NOT NULL,
		commit_type TEXT NOT NULL,
		title       TEXT NOT NULL,
		file_count  INTEGER NOT NULL DEFAULT 0,
		action      TEXT NOT NULL,
		result      TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at);
	`
	_, err := j.db.Exec(schema)
	return err
}

func (j *Journal) Record(a Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.Exec(
		"INSERT INTO attempts (created_at, commit_type, title, file_count, action, result) VALUES (?, ?, ?, ?, ?, ?)",
		a.CreatedAt, a.CommitType, a.Title, a.FileCount, a.Action, a.Result,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (j *Journal) List(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.Query(
		"SELECT id, created_at, commit_type, title, file_count, action, result FROM attempts ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.CommitType, &a.Title, &a.FileCount, &a.Action, &a.Result); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
