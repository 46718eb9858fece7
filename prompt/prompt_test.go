package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/randalmurphal/tasklist/task"
	"github.com/randalmurphal/tasklist/testutil"
)

type item struct {
	Key   int
	Label string
}

func TestLoader_Menu(t *testing.T) {
	loader := NewLoader("")

	got, err := loader.LoadWithVars(Menu, map[string]any{
		"Title": "Todo List Menu",
		"Items": []item{{1, "add task"}, {2, "view all tasks"}, {6, "exit"}},
	})
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}

	want := "\n--- Todo List Menu ---\n1. Add Task\n2. View All Tasks\n6. Exit\n----------------------\n"
	if got != want {
		t.Errorf("menu =\n%q\nwant\n%q", got, want)
	}
}

func sampleTasks() []task.Task {
	created := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	milk := task.New(1, "Buy milk", task.None(), created)
	milk.Status = task.Complete
	bills := task.New(2, "Pay bills", task.Some("2025-12-31"), created.Add(time.Minute))
	return []task.Task{milk, bills}
}

func TestLoader_Tasks(t *testing.T) {
	loader := NewLoader("")

	got, err := loader.LoadWithVars(Tasks, map[string]any{"Tasks": sampleTasks()})
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}

	want := testutil.LoadFixtureString(t, "tasks.golden")
	if got != want {
		t.Errorf("tasks =\n%q\nwant\n%q", got, want)
	}
}

func TestLoader_TasksEmpty(t *testing.T) {
	loader := NewLoader("")

	for _, tasks := range [][]task.Task{nil, {}} {
		got, err := loader.LoadWithVars(Tasks, map[string]any{"Tasks": tasks})
		if err != nil {
			t.Fatalf("LoadWithVars() error = %v", err)
		}
		if got != "No tasks found.\n" {
			t.Errorf("empty tasks = %q", got)
		}
	}
}

func TestLoader_AddFuncReplacesCached(t *testing.T) {
	loader := NewLoader("")
	vars := map[string]any{"Tasks": sampleTasks()}

	if _, err := loader.LoadWithVars(Tasks, vars); err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}

	loader.AddFunc("symbol", task.Status.ASCIISymbol)
	loader.AddFunc("timefmt", func(t time.Time) string { return t.Format("15:04") })

	got, err := loader.LoadWithVars(Tasks, vars)
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}
	if !strings.Contains(got, "[x] ID: 1") || !strings.Contains(got, "[ ] ID: 2") {
		t.Errorf("expected ascii symbols, got %q", got)
	}
	if !strings.Contains(got, "(Created: 09:30 |") {
		t.Errorf("expected custom time format, got %q", got)
	}
}

func TestLoader_Clone(t *testing.T) {
	shared := NewLoader("")
	vars := map[string]any{"Tasks": sampleTasks()}

	ascii := shared.Clone()
	ascii.AddFunc("symbol", task.Status.ASCIISymbol)

	got, err := ascii.LoadWithVars(Tasks, vars)
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}
	if !strings.Contains(got, "[x] ID: 1") {
		t.Errorf("clone should use its own symbol func, got %q", got)
	}

	got, err = shared.LoadWithVars(Tasks, vars)
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}
	if got != testutil.LoadFixtureString(t, "tasks.golden") {
		t.Errorf("original loader changed by clone:\n%q", got)
	}
}

func TestLoader_DirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "tasks.txt"), []byte("{{len .Tasks}} tasks\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "extra.txt"), []byte("{{upper .Name}}"), 0o644)

	loader := NewLoader(dir)

	got, err := loader.LoadWithVars(Tasks, map[string]any{"Tasks": sampleTasks()})
	if err != nil {
		t.Fatalf("LoadWithVars() error = %v", err)
	}
	if got != "2 tasks\n" {
		t.Errorf("override = %q, want %q", got, "2 tasks\n")
	}

	got, err = loader.LoadWithVars("extra", map[string]any{"Name": "hi"})
	if err != nil || got != "HI" {
		t.Errorf("extra = %q, %v", got, err)
	}

	names, err := loader.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if strings.Join(names, ",") != "extra,menu,tasks" {
		t.Errorf("List() = %v", names)
	}
}

func TestLoader_AddSearchDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "menu.txt"), []byte("custom menu"), 0o644)

	loader := NewLoader("")
	if got, _ := loader.Load(Menu); strings.Contains(got, "custom") {
		t.Fatal("embedded menu expected before AddSearchDir")
	}

	loader.AddSearchDir(dir)
	if got, _ := loader.Load(Menu); got != "custom menu" {
		t.Errorf("menu = %q, want override", got)
	}
}

func TestLoader_Missing(t *testing.T) {
	loader := NewLoader("")

	if loader.Exists("nope") {
		t.Error("Exists(nope) = true")
	}
	if !loader.Exists(Menu) || !loader.Exists(Tasks) {
		t.Error("embedded templates should exist")
	}
	if _, err := loader.Load("nope"); err == nil || !strings.Contains(err.Error(), "prompt not found") {
		t.Errorf("Load(nope) error = %v", err)
	}
}

func TestLoader_ParseError(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("{{if}}"), 0o644)

	_, err := NewLoader(dir).Load("broken")
	if err == nil || !strings.Contains(err.Error(), "parse prompt template broken") {
		t.Errorf("Load(broken) error = %v", err)
	}
}

func TestDefaultValue(t *testing.T) {
	if defaultValue("x", nil) != "x" || defaultValue("x", "") != "x" || defaultValue("x", "y") != "y" {
		t.Error("defaultValue returned unexpected result")
	}
}
