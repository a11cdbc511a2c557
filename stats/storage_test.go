package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { storage.Shutdown() })
	return storage
}

func TestRecordCounters(t *testing.T) {
	storage := newTestStorage(t)

	storage.RecordAnalysis(120, false)
	storage.RecordAnalysis(80, true)
	storage.RecordCacheHit()
	storage.RecordCacheMiss()
	storage.RecordCacheMiss()

	m := storage.CurrentStats()
	assert.Equal(t, 2, m.Analyses)
	assert.Equal(t, 1, m.Errors)
	assert.Equal(t, 1, m.CacheHits)
	assert.Equal(t, 2, m.CacheMisses)
	assert.InDelta(t, 100.0, m.AverageDuration(), 1e-9)
	assert.InDelta(t, 50.0, storage.ErrorRate(), 1e-9)
}

func TestVisitorCount(t *testing.T) {
	storage := newTestStorage(t)

	storage.RecordVisitor("1.2.3.4")
	storage.RecordVisitor("1.2.3.4")
	storage.RecordVisitor("5.6.7.8")

	assert.Equal(t, 2, storage.VisitorCount(24*time.Hour))
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewStorage(dir)
	require.NoError(t, err)
	storage.RecordAnalysis(50, false)
	require.NoError(t, storage.Shutdown())

	info, err := filepath.Glob(filepath.Join(dir, "stats.json"))
	require.NoError(t, err)
	require.Len(t, info, 1)

	reloaded, err := NewStorage(dir)
	require.NoError(t, err)
	defer reloaded.Shutdown()

	m := reloaded.CurrentStats()
	assert.Equal(t, 1, m.Analyses)
	assert.InDelta(t, 50.0, m.TotalDuration, 1e-9)
}

func TestCleanupDropsOldMonths(t *testing.T) {
	storage := newTestStorage(t)

	oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
	storage.mutex.Lock()
	storage.stats[oldMonth] = &MonthlyStats{Analyses: 100}
	storage.mutex.Unlock()

	storage.RecordAnalysis(10, false)
	storage.Cleanup()

	_, exists := storage.GetMonthlyStats(oldMonth)
	assert.False(t, exists)

	m := storage.CurrentStats()
	assert.Equal(t, 1, m.Analyses)
}

func TestMonthsOrder(t *testing.T) {
	storage := newTestStorage(t)

	storage.mutex.Lock()
	storage.stats["2024-01"] = &MonthlyStats{}
	storage.stats["2024-03"] = &MonthlyStats{}
	storage.stats["2024-02"] = &MonthlyStats{}
	storage.mutex.Unlock()

	assert.Equal(t, []string{"2024-03", "2024-02", "2024-01"}, storage.Months())
}

func TestConcurrentAccess(t *testing.T) {
	storage := newTestStorage(t)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				storage.RecordCacheHit()
				storage.CurrentStats()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 1000, storage.CurrentStats().CacheHits)
}
