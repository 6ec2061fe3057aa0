package demo

import "testing"

func TestAdvanceBusesMovesInProgressBuses(t *testing.T) {
	store, _ := newTestStore(t)

	before, err := store.BusLocation("BK001")
	if err != nil {
		t.Fatalf("location error: %v", err)
	}

	store.advanceBuses()

	after, err := store.BusLocation("BK001")
	if err != nil {
		t.Fatalf("location error: %v", err)
	}
	if after.Progress != before.Progress+1 {
		t.Fatalf("progress should advance by one, got %d -> %d", before.Progress, after.Progress)
	}
	if after.Lat == before.Lat && after.Lng == before.Lng {
		t.Fatalf("position should drift with each tick")
	}
	if !after.LastUpdated.After(before.LastUpdated) && !after.LastUpdated.Equal(before.LastUpdated) {
		t.Fatalf("timestamp should be refreshed")
	}
}

func TestAdvanceBusesStopsAtFullProgress(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 120; i++ {
		store.advanceBuses()
	}

	loc, err := store.BusLocation("BK001")
	if err != nil {
		t.Fatalf("location error: %v", err)
	}
	if loc.Progress > 100 {
		t.Fatalf("progress must cap at 100, got %d", loc.Progress)
	}
	if loc.Speed != 0 {
		t.Fatalf("arrived bus should report zero speed, got %v", loc.Speed)
	}
}

func TestIdleBusStartsMovingOnTick(t *testing.T) {
	store, _ := newTestStore(t)

	// BK002 seeds with speed 0 and progress 0.
	store.advanceBuses()

	loc, err := store.BusLocation("BK002")
	if err != nil {
		t.Fatalf("location error: %v", err)
	}
	if loc.Speed == 0 {
		t.Fatalf("a bus below full progress should pick up speed")
	}
	if loc.Progress != 1 {
		t.Fatalf("expected progress 1, got %d", loc.Progress)
	}
}
