package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, pin_hash, first_name, last_name, role, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id;`

	findUserByEmail = `SELECT id, email, password_hash, pin_hash, first_name, last_name, role, created_at, updated_at,
        first_login_at, last_login_at, login_count,
        auto_transfer_overdue_tasks, default_task_date, first_day_of_week, enable_notification_reminders, theme
    FROM users
    WHERE email = $1 AND NOT is_deleted;`

	getUserByID = `SELECT id, email, password_hash, pin_hash, first_name, last_name, role, created_at, updated_at,
        first_login_at, last_login_at, login_count,
        auto_transfer_overdue_tasks, default_task_date, first_day_of_week, enable_notification_reminders, theme
    FROM users
    WHERE id = $1 AND NOT is_deleted;`

	recordFirstLogin = `UPDATE users
    SET first_login_at = $1, last_login_at = $1, login_count = 1, updated_at = $1
    WHERE id = $2 AND NOT is_deleted;`

	recordRepeatLogin = `UPDATE users
    SET last_login_at = $1, login_count = login_count + 1, updated_at = $1
    WHERE id = $2 AND NOT is_deleted;`

	setUserPin = `UPDATE users
    SET pin_hash = $1, updated_at = $2
    WHERE id = $3 AND NOT is_deleted;`

	updateUserPreferences = `UPDATE users
    SET auto_transfer_overdue_tasks = $1,
        default_task_date = $2,
        first_day_of_week = $3,
        enable_notification_reminders = $4,
        theme = $5,
        updated_at = $6
    WHERE id = $7 AND NOT is_deleted;`
)

const (
	countLiveCategories = `SELECT COUNT(*) FROM categories WHERE user_id = $1 AND NOT is_deleted;`

	createCategory = `INSERT INTO categories (user_id, name, color, icon, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	listCategoriesByUser = `SELECT id, user_id, name, color, icon, created_at, updated_at
    FROM categories
    WHERE user_id = $1 AND NOT is_deleted
    ORDER BY id;`

	getCategoryByID = `SELECT id, user_id, name, color, icon, created_at, updated_at
    FROM categories
    WHERE id = $1 AND user_id = $2 AND NOT is_deleted;`

	saveCategory = `UPDATE categories
    SET name = $1, color = $2, icon = $3, updated_at = $4
    WHERE id = $5 AND user_id = $6 AND NOT is_deleted;`

	softDeleteCategory = `UPDATE categories
    SET is_deleted = TRUE, updated_at = $1
    WHERE id = $2 AND user_id = $3 AND NOT is_deleted;`
)

const (
	createTodo = `INSERT INTO todos (user_id, title, description, category_id, is_completed, is_important,
        start_date, due_date, execution_time, recurrence_pattern, next_occurrence, audio_url, image_url,
        created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    RETURNING id;`

	saveTodo = `UPDATE todos
    SET title = $1, description = $2, category_id = $3, is_completed = $4, is_important = $5,
        start_date = $6, due_date = $7, execution_time = $8, recurrence_pattern = $9, next_occurrence = $10,
        audio_url = $11, image_url = $12, updated_at = $13
    WHERE id = $14 AND user_id = $15 AND NOT is_deleted;`

	softDeleteTodo = `UPDATE todos
    SET is_deleted = TRUE, updated_at = $1
    WHERE id = $2 AND user_id = $3 AND NOT is_deleted;`

	createSubTask = `INSERT INTO subtasks (todo_id, title, is_completed, sort_order, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	softDeleteSubTasksOfTodo = `UPDATE subtasks
    SET is_deleted = TRUE, updated_at = $1
    WHERE todo_id = $2 AND NOT is_deleted;`
)

const (
	createReminder = `INSERT INTO reminders (user_id, todo_id, title, description, reminder_time,
        is_completed, is_snoozed, snooze_until, recurrence_pattern, next_reminder_time, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING id;`

	saveReminder = `UPDATE reminders
    SET todo_id = $1, title = $2, description = $3, reminder_time = $4, is_completed = $5,
        is_snoozed = $6, snooze_until = $7, recurrence_pattern = $8, next_reminder_time = $9, updated_at = $10
    WHERE id = $11 AND user_id = $12 AND NOT is_deleted;`

	softDeleteReminder = `UPDATE reminders
    SET is_deleted = TRUE, updated_at = $1
    WHERE id = $2 AND user_id = $3 AND NOT is_deleted;`

	advanceReminder = `UPDATE reminders
    SET reminder_time = $1, next_reminder_time = $2, is_snoozed = FALSE, snooze_until = NULL, updated_at = $3
    WHERE id = $4 AND NOT is_deleted;`

	completeReminder = `UPDATE reminders
    SET is_completed = TRUE, updated_at = $1
    WHERE id = $2 AND NOT is_deleted;`
)

// Column sets for the squirrel-built SELECTs. Joined reads (category names on
// todos, todo titles on reminders, owner attributes on due reminders) are
// built with squirrel so that join and IN-clause construction stays in one
// place instead of being string-assembled per call site.
var (
	todoColumns = []string{
		"t.id", "t.user_id", "t.title", "t.description",
		"t.category_id", "c.name AS category_name",
		"t.is_completed", "t.is_important",
		"t.start_date", "t.due_date", "t.execution_time",
		"t.recurrence_pattern", "t.next_occurrence",
		"t.audio_url", "t.image_url",
		"t.created_at", "t.updated_at",
	}

	reminderColumns = []string{
		"r.id", "r.user_id", "r.todo_id", "t.title AS todo_title",
		"r.title", "r.description", "r.reminder_time",
		"r.is_completed", "r.is_snoozed", "r.snooze_until",
		"r.recurrence_pattern", "r.next_reminder_time",
		"r.created_at", "r.updated_at",
	}
)

// psql is the shared squirrel statement builder using $N placeholders, which
// both supported drivers understand.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectTodos() sq.SelectBuilder {
	return psql.Select(todoColumns...).
		From("todos t").
		LeftJoin("categories c ON c.id = t.category_id AND NOT c.is_deleted").
		Where(sq.Eq{"t.is_deleted": false})
}

// buildSelectTodosByUserQuery lists every live todo of the user, newest last.
func buildSelectTodosByUserQuery(userID int64) (string, []any, error) {
	return selectTodos().
		Where(sq.Eq{"t.user_id": userID}).
		OrderBy("t.id").
		ToSql()
}

// buildSelectTodoByIDQuery fetches a single live todo scoped to its owner.
func buildSelectTodoByIDQuery(todoID, userID int64) (string, []any, error) {
	return selectTodos().
		Where(sq.Eq{"t.id": todoID, "t.user_id": userID}).
		ToSql()
}

// buildSelectSubTasksQuery loads the live subtasks of the given todos in one
// round trip. squirrel renders the slice as an IN clause.
func buildSelectSubTasksQuery(todoIDs []int64) (string, []any, error) {
	return psql.Select("id", "todo_id", "title", "is_completed", "sort_order", "created_at", "updated_at").
		From("subtasks").
		Where(sq.Eq{"todo_id": todoIDs, "is_deleted": false}).
		OrderBy("todo_id", "sort_order", "id").
		ToSql()
}

func selectReminders() sq.SelectBuilder {
	return psql.Select(reminderColumns...).
		From("reminders r").
		LeftJoin("todos t ON t.id = r.todo_id AND NOT t.is_deleted").
		Where(sq.Eq{"r.is_deleted": false})
}

// buildSelectRemindersByUserQuery lists every live reminder of the user
// ordered by trigger time.
func buildSelectRemindersByUserQuery(userID int64) (string, []any, error) {
	return selectReminders().
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.reminder_time", "r.id").
		ToSql()
}

// buildSelectReminderByIDQuery fetches a single live reminder scoped to its
// owner.
func buildSelectReminderByIDQuery(reminderID, userID int64) (string, []any, error) {
	return selectReminders().
		Where(sq.Eq{"r.id": reminderID, "r.user_id": userID}).
		ToSql()
}

// buildSelectDueRemindersQuery selects every uncompleted reminder whose
// trigger time has passed, joined with the owner attributes the dispatch
// worker needs. Reminders snoozed into the future are excluded.
func buildSelectDueRemindersQuery(now time.Time) (string, []any, error) {
	columns := append(append([]string{}, reminderColumns...),
		"u.email AS user_email",
		"u.enable_notification_reminders",
	)

	return psql.Select(columns...).
		From("reminders r").
		Join("users u ON u.id = r.user_id AND NOT u.is_deleted").
		LeftJoin("todos t ON t.id = r.todo_id AND NOT t.is_deleted").
		Where(sq.Eq{"r.is_deleted": false, "r.is_completed": false}).
		Where(sq.LtOrEq{"r.reminder_time": now}).
		Where(sq.Or{
			sq.Eq{"r.is_snoozed": false},
			sq.Eq{"r.snooze_until": nil},
			sq.LtOrEq{"r.snooze_until": now},
		}).
		OrderBy("r.reminder_time", "r.id").
		ToSql()
}
