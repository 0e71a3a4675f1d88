package main

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openDB(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddAndListTask(t *testing.T) {
	db := newTestDB(t)

	id, err := addTask(db, 1, "buy milk")
	if err != nil {
		t.Fatalf("addTask: %v", err)
	}
	if id == 0 {
		t.Fatal("addTask returned id 0 for a valid task")
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("listTasks returned %d tasks, want 1", len(tasks))
	}
	if tasks[0].ID != id || tasks[0].Desc != "buy milk" {
		t.Errorf("listTasks[0] = %+v, want id=%d desc=%q", tasks[0], id, "buy milk")
	}
}

func TestAddTaskBlankDescriptionIsNoop(t *testing.T) {
	db := newTestDB(t)

	for _, desc := range []string{"", "   ", "\t \n"} {
		id, err := addTask(db, 1, desc)
		if err != nil {
			t.Fatalf("addTask(%q): %v", desc, err)
		}
		if id != 0 {
			t.Errorf("addTask(%q) = %d, want 0", desc, id)
		}
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("listTasks returned %d tasks after blank adds, want 0", len(tasks))
	}
}

func TestListTasksInsertionOrder(t *testing.T) {
	db := newTestDB(t)

	want := []string{"first", "second", "third"}
	for _, desc := range want {
		if _, err := addTask(db, 1, desc); err != nil {
			t.Fatalf("addTask(%q): %v", desc, err)
		}
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != len(want) {
		t.Fatalf("listTasks returned %d tasks, want %d", len(tasks), len(want))
	}
	for i, desc := range want {
		if tasks[i].Desc != desc {
			t.Errorf("tasks[%d].Desc = %q, want %q", i, tasks[i].Desc, desc)
		}
	}
}

func TestListTasksScopedToOwner(t *testing.T) {
	db := newTestDB(t)

	if _, err := addTask(db, 1, "mine"); err != nil {
		t.Fatalf("addTask: %v", err)
	}
	if _, err := addTask(db, 2, "theirs"); err != nil {
		t.Fatalf("addTask: %v", err)
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Desc != "mine" {
		t.Errorf("listTasks(1) = %+v, want only %q", tasks, "mine")
	}
}

func TestRemoveTask(t *testing.T) {
	db := newTestDB(t)

	id, err := addTask(db, 1, "doomed")
	if err != nil {
		t.Fatalf("addTask: %v", err)
	}

	removed, err := removeTask(db, 1, id)
	if err != nil {
		t.Fatalf("removeTask: %v", err)
	}
	if !removed {
		t.Error("removeTask = false, want true")
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("listTasks returned %d tasks after remove, want 0", len(tasks))
	}
}

func TestRemoveTaskWrongOwner(t *testing.T) {
	db := newTestDB(t)

	id, err := addTask(db, 1, "keep away")
	if err != nil {
		t.Fatalf("addTask: %v", err)
	}

	removed, err := removeTask(db, 2, id)
	if err != nil {
		t.Fatalf("removeTask: %v", err)
	}
	if removed {
		t.Error("removeTask deleted another owner's task")
	}

	tasks, err := listTasks(db, 1)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("owner 1 has %d tasks, want 1", len(tasks))
	}
}

func TestRemoveMissingTask(t *testing.T) {
	db := newTestDB(t)

	removed, err := removeTask(db, 1, 7)
	if err != nil {
		t.Fatalf("removeTask: %v", err)
	}
	if removed {
		t.Error("removeTask = true for a missing id, want false")
	}
}
