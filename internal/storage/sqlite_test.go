package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Name:       "alice",
		Role:       "taxi",
		Score:      60,
		Outcome:    "time_up",
		Duration:   180 * time.Second,
		Deliveries: 3,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() found nothing")
	}
	if got.Name != "alice" || got.Role != "taxi" || got.Score != 60 ||
		got.Outcome != "time_up" || got.Duration != 180*time.Second || got.Deliveries != 3 || got.Remote {
		t.Errorf("RunByID() = %+v", got)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreTopAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{40, 100, -4, 20, 80} {
		_, err := store.SaveRun(Run{
			Name:    "p",
			Role:    "delivery",
			Score:   score,
			Outcome: "time_up",
			Remote:  i%2 == 0,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 || top[0].Score != 100 || top[1].Score != 80 || top[2].Score != 40 {
		t.Errorf("TopRuns(3) = %+v", top)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 80 || recent[1].Score != 20 {
		t.Errorf("RecentRuns(2) = %+v", recent)
	}
	if !recent[0].Remote || recent[1].Remote {
		t.Errorf("remote flags not preserved: %+v", recent)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Name: "a", Role: "taxi", Score: 1, Outcome: "bankrupt"})
	store.SaveRun(Run{Name: "b", Role: "taxi", Score: 2, Outcome: "bankrupt"})
	store.SaveRun(Run{Name: "a", Role: "taxi", Score: 3, Outcome: "win"})

	runs, err := store.PlayerRuns("a", 0)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 {
		t.Errorf("PlayerRuns(a) = %+v", runs)
	}
}

func TestStoreRoleStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRoleStats("taxi")
	if err != nil {
		t.Fatalf("GetRoleStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Name: "a", Role: "taxi", Score: 100, Outcome: "win", Deliveries: 5})
	store.SaveRun(Run{Name: "a", Role: "taxi", Score: 20, Outcome: "time_up", Deliveries: 1})
	store.SaveRun(Run{Name: "a", Role: "delivery", Score: 40, Outcome: "out_of_fuel", Deliveries: 2})

	st, err := store.GetRoleStats("taxi")
	if err != nil {
		t.Fatalf("GetRoleStats() failed: %v", err)
	}
	if st.Runs != 2 || st.Wins != 1 || st.HighScore != 100 || st.AvgScore != 60 || st.TotalDeliveries != 6 {
		t.Errorf("taxi stats = %+v", st)
	}

	all, err := store.GetAllRoleStats()
	if err != nil {
		t.Fatalf("GetAllRoleStats() failed: %v", err)
	}
	if len(all) != 2 || all["delivery"] == nil || all["delivery"].Runs != 1 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Name: "a", Role: "taxi", Score: 1, Outcome: "win"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}
