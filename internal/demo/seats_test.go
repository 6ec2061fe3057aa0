package demo

import "testing"

func TestSeatNumberBijection(t *testing.T) {
	// Rows of four: 1..4 -> A1..A4, 5..8 -> B1..B4.
	want := map[int]string{
		1: "A1", 2: "A2", 3: "A3", 4: "A4",
		5: "B1", 6: "B2", 7: "B3", 8: "B4",
		9: "C1", 45: "L1", 55: "N3",
	}
	for id, label := range want {
		if got := SeatNumber(id); got != label {
			t.Fatalf("SeatNumber(%d) = %s, want %s", id, got, label)
		}
	}
}

func TestRouteSeatsFullMap(t *testing.T) {
	store, _ := newTestStore(t)

	// Route 2: 50 total, 8 available, price "750".
	seats := store.RouteSeats(2)
	if len(seats) != 50 {
		t.Fatalf("expected total_seats entries, got %d", len(seats))
	}

	seen := map[string]bool{}
	for i, s := range seats {
		if s.ID != i+1 {
			t.Fatalf("seat ids must be 1..total in order, got %d at index %d", s.ID, i)
		}
		if seen[s.SeatNumber] {
			t.Fatalf("duplicate seat number %s", s.SeatNumber)
		}
		seen[s.SeatNumber] = true
		if s.Price != 750 {
			t.Fatalf("seat price should come from the route, got %v", s.Price)
		}
		if wantAvail := s.ID <= 8; s.IsAvailable != wantAvail {
			t.Fatalf("seat %d availability = %v, want %v", s.ID, s.IsAvailable, wantAvail)
		}
	}
}

func TestAvailableAndBookedSplit(t *testing.T) {
	store, _ := newTestStore(t)

	available := store.AvailableSeats(2)
	booked := store.BookedSeats(2)
	if len(available) != 8 {
		t.Fatalf("expected 8 available seats, got %d", len(available))
	}
	if len(booked) != 42 {
		t.Fatalf("expected 42 booked seats, got %d", len(booked))
	}
	if booked[0].ID != 9 {
		t.Fatalf("booked seats start after the availability threshold, got id %d", booked[0].ID)
	}
}

func TestSeatsUnknownRouteReturnsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	if got := store.RouteSeats(999); len(got) != 0 {
		t.Fatalf("unknown route should yield empty seat map, got %d", len(got))
	}
	if got := store.AvailableSeats(999); len(got) != 0 {
		t.Fatalf("unknown route should yield no available seats, got %d", len(got))
	}
	if got := store.BookedSeats(999); len(got) != 0 {
		t.Fatalf("unknown route should yield no booked seats, got %d", len(got))
	}
}
