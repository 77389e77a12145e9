// Package sqlstore provides a SQL-backed implementation of the storage.Store
// interface. Every update replaces all three collections inside one database
// transaction, so an update is applied completely or not at all.
package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/teamtally/internal/storage"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using a SQL database.
type Store struct {
	mu sync.Mutex
	db *sqlx.DB
}

// NewSQLite creates a Store with the SQLite database at dbPath.
// It creates the parent directories and runs migrations automatically.
func NewSQLite(dbPath string) (*Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open(DriverSQLite, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	return newStore(db)
}

// NewPostgres creates a Store with the PostgreSQL database at dsn.
func NewPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newStore(db)
}

func newStore(db *sqlx.DB) (*Store, error) {
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads all collections in stored order.
func (s *Store) Load(ctx context.Context) (*storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.db)
}

// Update reads all collections, applies fn and replaces them in a single
// transaction.
func (s *Store) Update(ctx context.Context, fn func(*storage.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snap, err := load(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	if err := replace(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const (
	selectGroups = `SELECT id, position, name, description, created_at, member_count, task_count
		FROM task_groups ORDER BY position`
	selectMembers = `SELECT id, position, name, email, group_id, total_points, tasks_completed, tasks_pending, joined_at
		FROM group_members ORDER BY position`
	selectTasks = `SELECT id, position, title, description, deadline, priority, points, status,
		assigned_member_id, group_id, created_at, completed_at
		FROM group_tasks ORDER BY position`

	insertGroup = `INSERT INTO task_groups (id, position, name, description, created_at, member_count, task_count)
		VALUES (:id, :position, :name, :description, :created_at, :member_count, :task_count)`
	insertMember = `INSERT INTO group_members (id, position, name, email, group_id, total_points, tasks_completed, tasks_pending, joined_at)
		VALUES (:id, :position, :name, :email, :group_id, :total_points, :tasks_completed, :tasks_pending, :joined_at)`
	insertTask = `INSERT INTO group_tasks (id, position, title, description, deadline, priority, points, status,
		assigned_member_id, group_id, created_at, completed_at)
		VALUES (:id, :position, :title, :description, :deadline, :priority, :points, :status,
		:assigned_member_id, :group_id, :created_at, :completed_at)`
)

func load(ctx context.Context, q sqlx.QueryerContext) (*storage.Snapshot, error) {
	var groups []groupRow
	if err := sqlx.SelectContext(ctx, q, &groups, selectGroups); err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	var members []memberRow
	if err := sqlx.SelectContext(ctx, q, &members, selectMembers); err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	var tasks []taskRow
	if err := sqlx.SelectContext(ctx, q, &tasks, selectTasks); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	snap := &storage.Snapshot{}
	for _, r := range groups {
		snap.Groups = append(snap.Groups, r.model())
	}
	for _, r := range members {
		snap.Members = append(snap.Members, r.model())
	}
	for _, r := range tasks {
		snap.Tasks = append(snap.Tasks, r.model())
	}
	return snap, nil
}

func replace(ctx context.Context, tx *sqlx.Tx, snap *storage.Snapshot) error {
	for _, table := range []string{"group_tasks", "group_members", "task_groups"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, g := range snap.Groups {
		if _, err := tx.NamedExecContext(ctx, insertGroup, newGroupRow(i, g)); err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
	}
	for i, m := range snap.Members {
		if _, err := tx.NamedExecContext(ctx, insertMember, newMemberRow(i, m)); err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}
	for i, t := range snap.Tasks {
		if _, err := tx.NamedExecContext(ctx, insertTask, newTaskRow(i, t)); err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}
	}
	return nil
}
