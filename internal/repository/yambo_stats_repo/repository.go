package yambo_stats_repo

import (
	"sync"

	repoModel "yambo_backend/internal/repository/yambo_stats_repo/model"
)

// StatsRepo keeps play statistics in memory. All methods are safe for
// concurrent use by the HTTP handlers.
type StatsRepo struct {
	mtx   sync.RWMutex
	stats repoModel.TableStats
}

func NewYamboStatsRepository() *StatsRepo {
	return &StatsRepo{}
}

// Stats returns a copy of the current counters.
func (r *StatsRepo) Stats() repoModel.TableStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.stats
}

func (r *StatsRepo) RecordRoll() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.stats.TotalRolls++
}

func (r *StatsRepo) RecordSave() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.stats.TotalSaves++
}

// RecordGameOver folds a finished game's grand total into the aggregates.
func (r *StatsRepo) RecordGameOver(grandTotal int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.stats.GamesFinished++
	r.stats.TotalPoints += grandTotal
	if grandTotal > r.stats.BestScore {
		r.stats.BestScore = grandTotal
	}
	r.stats.AverageScore = float64(r.stats.TotalPoints) / float64(r.stats.GamesFinished)
}
