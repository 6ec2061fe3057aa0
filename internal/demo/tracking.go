package demo

import (
	"context"
	"math"
	"time"
)

// StartTracking runs the simulated GPS refresh: a fixed-interval background
// task nudging each demo bus along its route. It mutates only the store's
// own display state, never the session, and stops when ctx is cancelled.
func (s *Store) StartTracking(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.advanceBuses()
			}
		}
	}()
}

func (s *Store) advanceBuses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, loc := range s.locations {
		if loc.Progress >= 100 {
			loc.Speed = 0
			loc.LastUpdated = time.Now()
			s.locations[id] = loc
			continue
		}
		loc.Progress++
		// Small drift so the position visibly moves on a map.
		loc.Lat += 0.003 * math.Cos(float64(loc.Progress))
		loc.Lng += 0.003 * math.Sin(float64(loc.Progress))
		if loc.Speed == 0 {
			loc.Speed = 45
		}
		loc.LastUpdated = time.Now()
		s.locations[id] = loc
	}
}
