package store

import "context"

// sqliteSchema mirrors the goose migrations for the file-backed development
// database. Timestamp columns must be declared TIMESTAMP here: the sqlite3
// driver converts values back to time.Time only for columns whose declared
// type is TIMESTAMP, DATETIME or DATE.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id                            INTEGER PRIMARY KEY AUTOINCREMENT,
    email                         TEXT        NOT NULL,
    password_hash                 TEXT        NOT NULL,
    pin_hash                      TEXT        NOT NULL DEFAULT '',
    first_name                    TEXT        NOT NULL DEFAULT '',
    last_name                     TEXT        NOT NULL DEFAULT '',
    role                          TEXT        NOT NULL DEFAULT 'User',
    is_deleted                    BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at                    TIMESTAMP   NOT NULL,
    updated_at                    TIMESTAMP   NOT NULL,
    first_login_at                TIMESTAMP,
    last_login_at                 TIMESTAMP,
    login_count                   INTEGER     NOT NULL DEFAULT 0,
    auto_transfer_overdue_tasks   BOOLEAN     NOT NULL DEFAULT FALSE,
    default_task_date             TEXT,
    first_day_of_week             TEXT,
    enable_notification_reminders BOOLEAN     NOT NULL DEFAULT TRUE,
    theme                         TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_live ON users (email) WHERE NOT is_deleted;

CREATE TABLE IF NOT EXISTS categories (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    BIGINT      NOT NULL REFERENCES users (id),
    name       TEXT        NOT NULL,
    color      TEXT        NOT NULL DEFAULT '#6366f1',
    icon       TEXT        NOT NULL DEFAULT 'home',
    is_deleted BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP   NOT NULL,
    updated_at TIMESTAMP   NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_categories_user ON categories (user_id) WHERE NOT is_deleted;

CREATE TABLE IF NOT EXISTS todos (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id            BIGINT      NOT NULL REFERENCES users (id),
    title              TEXT        NOT NULL,
    description        TEXT,
    category_id        BIGINT      REFERENCES categories (id),
    is_completed       BOOLEAN     NOT NULL DEFAULT FALSE,
    is_important       BOOLEAN     NOT NULL DEFAULT FALSE,
    start_date         TIMESTAMP,
    due_date           TIMESTAMP,
    execution_time     TIMESTAMP,
    recurrence_pattern TEXT,
    next_occurrence    TIMESTAMP,
    audio_url          TEXT,
    image_url          TEXT,
    is_deleted         BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at         TIMESTAMP   NOT NULL,
    updated_at         TIMESTAMP   NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todos_user ON todos (user_id) WHERE NOT is_deleted;

CREATE TABLE IF NOT EXISTS subtasks (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    todo_id      BIGINT      NOT NULL REFERENCES todos (id),
    title        TEXT        NOT NULL,
    is_completed BOOLEAN     NOT NULL DEFAULT FALSE,
    sort_order   INTEGER     NOT NULL DEFAULT 0,
    is_deleted   BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMP   NOT NULL,
    updated_at   TIMESTAMP   NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_subtasks_todo ON subtasks (todo_id) WHERE NOT is_deleted;

CREATE TABLE IF NOT EXISTS reminders (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id            BIGINT      NOT NULL REFERENCES users (id),
    todo_id            BIGINT      REFERENCES todos (id),
    title              TEXT        NOT NULL,
    description        TEXT,
    reminder_time      TIMESTAMP   NOT NULL,
    is_completed       BOOLEAN     NOT NULL DEFAULT FALSE,
    is_snoozed         BOOLEAN     NOT NULL DEFAULT FALSE,
    snooze_until       TIMESTAMP,
    recurrence_pattern TEXT,
    next_reminder_time TIMESTAMP,
    is_deleted         BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at         TIMESTAMP   NOT NULL,
    updated_at         TIMESTAMP   NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reminders_user ON reminders (user_id) WHERE NOT is_deleted;
CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders (reminder_time) WHERE NOT is_deleted AND NOT is_completed;
`

func (db *DB) bootstrapSQLiteSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return err
	}
	return nil
}
