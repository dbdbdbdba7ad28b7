package tests

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDayInTheLifeFlow(t *testing.T) {
	binPath := buildCaltrackBinary(t)
	dbPath := filepath.Join(t.TempDir(), "caltrack.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runCaltrack(t, binPath, dbPath,
		"goal", "set",
		"--calories", "2200",
		"--protein", "160",
		"--carbs", "240",
		"--fat", "70",
	)
	if exit != 0 {
		t.Fatalf("goal set failed: exit=%d stderr=%s", exit, stderr)
	}

	_, stderr, exit = runCaltrack(t, binPath, dbPath,
		"food", "add",
		"--name", "Chicken bowl",
		"--calories", "550",
		"--protein", "45",
		"--carbs", "40",
		"--fat", "18",
		"--meal", "dinner",
		"--date", "2026-02-20",
	)
	if exit != 0 {
		t.Fatalf("food add failed: exit=%d stderr=%s", exit, stderr)
	}

	_, stderr, exit = runCaltrack(t, binPath, dbPath,
		"custom-food", "add",
		"--name", "Overnight oats",
		"--calories", "230",
		"--protein", "10",
		"--carbs", "37",
		"--fat", "5",
	)
	if exit != 0 {
		t.Fatalf("custom-food add failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runCaltrack(t, binPath, dbPath,
		"custom-food", "log",
		"--name", "Overnight oats",
		"--meal", "breakfast",
		"--date", "2026-02-20",
	)
	if exit != 0 {
		t.Fatalf("custom-food log failed: exit=%d stderr=%s", exit, stderr)
	}

	_, stderr, exit = runCaltrack(t, binPath, dbPath,
		"exercise", "add",
		"--name", "Running",
		"--duration", "35",
		"--calories", "300",
		"--date", "2026-02-20",
	)
	if exit != 0 {
		t.Fatalf("exercise add failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit := runCaltrack(t, binPath, dbPath, "today", "--date", "2026-02-20")
	if exit != 0 {
		t.Fatalf("today failed: exit=%d stderr=%s", exit, stderr)
	}
	checks := []string{
		"Date: 2026-02-20",
		"Intake: 780 kcal",
		"Exercise: 300 kcal",
		"Net: 480 kcal",
		"Macros: P 55g | C 77g | F 23g",
		"Remaining: 1720 kcal",
	}
	for _, want := range checks {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected today output to contain %q, got:\n%s", want, stdout)
		}
	}

	// Round trip: export, import into a fresh database, and check the
	// imported state reproduces the same day.
	backup := filepath.Join(t.TempDir(), "backup.json")
	_, stderr, exit = runCaltrack(t, binPath, dbPath, "export", "--out", backup)
	if exit != 0 {
		t.Fatalf("export failed: exit=%d stderr=%s", exit, stderr)
	}

	freshDB := filepath.Join(t.TempDir(), "fresh.db")
	initDB(t, binPath, freshDB)
	_, stderr, exit = runCaltrack(t, binPath, freshDB, "import", "--in", backup)
	if exit != 0 {
		t.Fatalf("import failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runCaltrack(t, binPath, freshDB, "today", "--date", "2026-02-20")
	if exit != 0 {
		t.Fatalf("today on imported db failed: exit=%d stderr=%s", exit, stderr)
	}
	for _, want := range checks {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected imported state to reproduce %q, got:\n%s", want, stdout)
		}
	}

	stdout, stderr, exit = runCaltrack(t, binPath, freshDB, "goal", "show")
	if exit != 0 {
		t.Fatalf("goal show failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "2200 kcal | P 160g | C 240g | F 70g") {
		t.Fatalf("expected imported goals, got:\n%s", stdout)
	}
}
