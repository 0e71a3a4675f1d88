package main

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

type Task struct {
	ID     int64
	UserID int64
	Desc   string
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
		  id INTEGER PRIMARY KEY AUTOINCREMENT,
		  user_id INTEGER NOT NULL,
		  desc TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);
	`)

	if err != nil {
		return nil, err
	}

	return db, nil
}

// addTask inserts one task for userID and returns its id. A description that
// is empty after trimming is a no-op and returns 0 with no error.
func addTask(db *sql.DB, userID int64, desc string) (int64, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return 0, nil
	}

	result, err := db.Exec(`
		INSERT INTO tasks (user_id, desc) VALUES (?, ?)
	`, userID, desc)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// listTasks returns userID's tasks in insertion order.
func listTasks(db *sql.DB, userID int64) ([]Task, error) {
	rows, err := db.Query(`
		SELECT id, user_id, desc FROM tasks WHERE user_id = ? ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Desc); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// removeTask deletes the task only when both id and owner match. It reports
// whether a row was actually deleted; a miss is not an error.
func removeTask(db *sql.DB, userID int64, taskID int64) (bool, error) {
	result, err := db.Exec(`
		DELETE FROM tasks WHERE id = ? AND user_id = ?
	`, taskID, userID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
