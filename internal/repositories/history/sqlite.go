package history

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/history/migrations"
)

const migrationTable = "schema_migrations"

// Store persists finished battles in SQLite
type Store struct {
	db *sql.DB
}

var _ Repository = (*Store)(nil)

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// Open opens the SQLite database at path and applies the embedded
// migrations
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "run migrations")
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyMigrations runs each embedded file at most once, in name order
func applyMigrations(db *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`, migrationTable)); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var applied int
		err := db.QueryRow(fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE name = ?", migrationTable), file).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?)", migrationTable),
			file, toMillis(time.Now()),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// upSection returns the SQL between the Up and Down markers
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	if i := strings.Index(content, up); i >= 0 {
		content = content[i+len(up):]
	}
	if i := strings.Index(content, down); i >= 0 {
		content = content[:i]
	}
	return content
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// Record implements Repository
func (s *Store) Record(ctx context.Context, input *RecordInput) (*RecordOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.InvalidArgument("entry is required")
	}
	e := input.Entry
	vb := errors.NewValidationBuilder()
	if e.BattleID == "" {
		vb.RequiredField("BattleID")
	}
	if e.FinishedAt.IsZero() {
		vb.RequiredField("FinishedAt")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	logJSON, err := json.Marshal(e.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle log")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO battles (
		   battle_id,
		   player_name,
		   player_species,
		   opponent_name,
		   opponent_species,
		   winner,
		   result,
		   turns,
		   log_json,
		   finished_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.BattleID,
		e.PlayerName,
		e.PlayerSpecies,
		e.OpponentName,
		e.OpponentSpecies,
		e.Winner,
		e.Result,
		e.Turns,
		string(logJSON),
		toMillis(e.FinishedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExists("battle already recorded").WithMeta("battle_id", e.BattleID)
		}
		return nil, errors.Wrap(err, "failed to record battle")
	}

	slog.DebugContext(ctx, "battle recorded", "battle_id", e.BattleID, "turns", e.Turns, "result", e.Result)
	return &RecordOutput{}, nil
}

// Get implements Repository
func (s *Store) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT battle_id, player_name, player_species, opponent_name, opponent_species,
		        winner, result, turns, log_json, finished_at
		   FROM battles
		  WHERE battle_id = ?`,
		input.BattleID,
	)

	var (
		e          Entry
		logJSON    string
		finishedAt int64
	)
	err := row.Scan(&e.BattleID, &e.PlayerName, &e.PlayerSpecies, &e.OpponentName, &e.OpponentSpecies,
		&e.Winner, &e.Result, &e.Turns, &logJSON, &finishedAt)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("battle not found").WithMeta("battle_id", input.BattleID)
		}
		return nil, errors.Wrap(err, "failed to get battle")
	}
	if err := json.Unmarshal([]byte(logJSON), &e.Log); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal battle log")
	}
	e.FinishedAt = fromMillis(finishedAt)
	return &GetOutput{Entry: &e}, nil
}

// List implements Repository
func (s *Store) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	query := `SELECT battle_id, player_name, player_species, opponent_name, opponent_species,
	                 winner, result, turns, finished_at
	            FROM battles`
	args := []any{}
	if species := strings.ToLower(strings.TrimSpace(input.Species)); species != "" {
		query += ` WHERE player_species = ? OR opponent_species = ?`
		args = append(args, species, species)
	}
	query += ` ORDER BY finished_at DESC, battle_id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{}
	for rows.Next() {
		var (
			e          Entry
			finishedAt int64
		)
		if err := rows.Scan(&e.BattleID, &e.PlayerName, &e.PlayerSpecies, &e.OpponentName, &e.OpponentSpecies,
			&e.Winner, &e.Result, &e.Turns, &finishedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan battle")
		}
		e.FinishedAt = fromMillis(finishedAt)
		out.Entries = append(out.Entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}
	return out, nil
}
