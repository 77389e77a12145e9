package sqlstore

import "github.com/jmoiron/sqlx"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. The statements are valid for
// both SQLite and PostgreSQL.
//
// position keeps each collection in the order it was saved; the tables are
// replaced wholesale on every update, so there are no foreign keys.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS task_groups (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    member_count INTEGER NOT NULL,
    task_count INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS group_members (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    group_id TEXT NOT NULL,
    total_points INTEGER NOT NULL,
    tasks_completed INTEGER NOT NULL,
    tasks_pending INTEGER NOT NULL,
    joined_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS group_tasks (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    deadline BIGINT NOT NULL,
    priority TEXT NOT NULL,
    points INTEGER NOT NULL,
    status TEXT NOT NULL,
    assigned_member_id TEXT NOT NULL,
    group_id TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    completed_at BIGINT
)`,
	`CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members(group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_group_tasks_group_id ON group_tasks(group_id)`,
}

// runMigrations executes the schema setup.
func runMigrations(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
