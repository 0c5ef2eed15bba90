package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun("dasher", OutcomeWin, 920, 4.6); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("dasher")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 920 {
		t.Errorf("BestScore() = %d, expected 920", best)
	}
}

func TestSaveRunReturnsUUID(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun("dasher", OutcomeLose, 120, 0.6)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	second, err := store.SaveRun("dasher", OutcomeLose, 120, 0.6)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("SaveRun() id %q is not a uuid: %v", first, err)
	}
	if first == second {
		t.Errorf("SaveRun() returned duplicate id %q", first)
	}
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("dasher", Outcome("draw"), 10, 1); err == nil {
		t.Error("SaveRun() with outcome draw should fail")
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		outcome Outcome
		score   int
		elapsed float64
	}{
		{OutcomeLose, 800, 4.0},
		{OutcomeWin, 900, 4.5},
		{OutcomeWin, 900, 4.4},
		{OutcomeLose, 300, 1.5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("dasher", r.outcome, r.score, r.elapsed); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveRun("other", OutcomeWin, 5000, 1); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("dasher", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("TopRuns() returned %d runs, expected 4", len(top))
	}

	expected := []struct {
		outcome Outcome
		elapsed float64
		score   int
	}{
		{OutcomeWin, 4.4, 900},
		{OutcomeWin, 4.5, 900},
		{OutcomeLose, 4.0, 800},
		{OutcomeLose, 1.5, 300},
	}
	for i, e := range expected {
		got := top[i]
		if got.Outcome != e.outcome || got.Score != e.score || got.Elapsed != e.elapsed {
			t.Errorf("TopRuns()[%d] = {%s %d %v}, expected {%s %d %v}",
				i, got.Outcome, got.Score, got.Elapsed, e.outcome, e.score, e.elapsed)
		}
		if got.GameID != "dasher" {
			t.Errorf("TopRuns()[%d].GameID = %q, expected dasher", i, got.GameID)
		}
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun("dasher", OutcomeLose, i*10, float64(i)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dasher", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("TopRuns(5) returned %d runs, expected 5", len(top))
	}

	// Non-positive limit falls back to 10
	top, err = store.TopRuns("dasher", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("TopRuns(0) returned %d runs, expected 10", len(top))
	}
}

func TestBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("dasher")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, expected 0", best)
	}
}

func TestSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary("dasher")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Wins != 0 || empty.Losses != 0 || empty.FastestWin != 0 {
		t.Errorf("Summary() on empty store = %+v, expected zero counts", empty)
	}
	if !empty.LastPlayed.IsZero() {
		t.Errorf("Summary().LastPlayed = %v, expected zero time", empty.LastPlayed)
	}

	store.SaveRun("dasher", OutcomeLose, 250, 1.25)
	store.SaveRun("dasher", OutcomeWin, 920, 4.6)
	store.SaveRun("dasher", OutcomeWin, 910, 4.55)
	store.SaveRun("other", OutcomeLose, 10, 0.1)

	sum, err := store.Summary("dasher")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 3 {
		t.Errorf("Summary().Runs = %d, expected 3", sum.Runs)
	}
	if sum.Wins != 2 {
		t.Errorf("Summary().Wins = %d, expected 2", sum.Wins)
	}
	if sum.Losses != 1 {
		t.Errorf("Summary().Losses = %d, expected 1", sum.Losses)
	}
	if sum.BestScore != 920 {
		t.Errorf("Summary().BestScore = %d, expected 920", sum.BestScore)
	}
	if sum.FastestWin != 4.55 {
		t.Errorf("Summary().FastestWin = %v, expected 4.55", sum.FastestWin)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("Summary().LastPlayed should be set after runs were saved")
	}
}
