package yambo_stats_repo

import (
	"sync"
	"testing"
)

func TestRecordGameOver(t *testing.T) {
	r := NewYamboStatsRepository()
	r.RecordGameOver(200)
	r.RecordGameOver(100)

	stats := r.Stats()
	if stats.GamesFinished != 2 {
		t.Fatalf("GamesFinished = %d, want 2", stats.GamesFinished)
	}
	if stats.TotalPoints != 300 {
		t.Fatalf("TotalPoints = %d, want 300", stats.TotalPoints)
	}
	if stats.BestScore != 200 {
		t.Fatalf("BestScore = %d, want 200", stats.BestScore)
	}
	if stats.AverageScore != 150 {
		t.Fatalf("AverageScore = %v, want 150", stats.AverageScore)
	}
}

func TestCountersUnderConcurrency(t *testing.T) {
	r := NewYamboStatsRepository()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordRoll()
			r.RecordRoll()
			r.RecordSave()
		}()
	}
	wg.Wait()

	stats := r.Stats()
	if stats.TotalRolls != 100 {
		t.Fatalf("TotalRolls = %d, want 100", stats.TotalRolls)
	}
	if stats.TotalSaves != 50 {
		t.Fatalf("TotalSaves = %d, want 50", stats.TotalSaves)
	}
}
