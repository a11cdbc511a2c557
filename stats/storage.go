package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// MonthlyStats aggregates usage counters for one calendar month.
type MonthlyStats struct {
	Analyses      int                  `json:"analyses"`
	CacheHits     int                  `json:"cache_hits"`
	CacheMisses   int                  `json:"cache_misses"`
	Errors        int                  `json:"errors"`
	TotalDuration float64              `json:"total_duration_ms"`
	Visitors      map[string]time.Time `json:"visitors"` // IP -> last visit
	LastUpdated   time.Time            `json:"last_updated"`
}

// AverageDuration returns the mean analysis duration in milliseconds.
func (m MonthlyStats) AverageDuration() float64 {
	if m.Analyses == 0 {
		return 0
	}
	return m.TotalDuration / float64(m.Analyses)
}

// Storage persists usage statistics to a JSON file, bucketed by month.
// Counter updates are batched through a background writer and land via
// an atomic rename.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
}

// NewStorage creates a statistics store rooted at dataDir, loading any
// previously persisted state.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()
	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return json.Unmarshal(data, &s.stats)
}

// save writes statistics to a temporary file and renames it into
// place.
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			if err := s.save(); err != nil {
				logrus.WithError(err).Warn("failed to persist statistics")
			}
		case <-ticker.C:
			if err := s.save(); err != nil {
				logrus.WithError(err).Warn("failed to persist statistics")
			}
		case <-s.done:
			return
		}
	}
}

// requestWrite signals that a write to disk is needed.
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// Write already pending.
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// bucket returns this month's counters, creating them if needed.
// Caller holds the mutex.
func (s *Storage) bucket(month string) *MonthlyStats {
	m, exists := s.stats[month]
	if !exists {
		m = &MonthlyStats{Visitors: make(map[string]time.Time)}
		s.stats[month] = m
	}
	if m.Visitors == nil {
		m.Visitors = make(map[string]time.Time)
	}
	return m
}

// maybeWrite requests a disk write if enough time has passed since the
// last one. Caller holds the mutex.
func (s *Storage) maybeWrite() {
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// RecordAnalysis counts one completed analysis with its duration and
// error outcome.
func (s *Storage) RecordAnalysis(durationMs float64, failed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.Analyses++
	m.TotalDuration += durationMs
	if failed {
		m.Errors++
	}
	m.LastUpdated = time.Now()
	s.maybeWrite()
}

// RecordCacheHit counts one analysis served from cache.
func (s *Storage) RecordCacheHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.CacheHits++
	m.LastUpdated = time.Now()
	s.maybeWrite()
}

// RecordCacheMiss counts one analysis that had to be computed.
func (s *Storage) RecordCacheMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.CacheMisses++
	m.LastUpdated = time.Now()
	s.maybeWrite()
}

// RecordVisitor tracks the last visit time per client IP.
func (s *Storage) RecordVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.bucket(currentMonth()).Visitors[ip] = time.Now()
}

// CurrentStats returns a copy of this month's counters.
func (s *Storage) CurrentStats() MonthlyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[currentMonth()]; exists {
		return *m
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns statistics for a specific month.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[yearMonth]; exists {
		return *m, true
	}
	return MonthlyStats{}, false
}

// VisitorCount returns the number of unique visitors seen within the
// window, across all retained months.
func (s *Storage) VisitorCount(window time.Duration) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	cutoff := time.Now().Add(-window)
	seen := make(map[string]bool)
	for _, m := range s.stats {
		for ip, last := range m.Visitors {
			if last.After(cutoff) {
				seen[ip] = true
			}
		}
	}
	return len(seen)
}

// ErrorRate returns this month's error percentage.
func (s *Storage) ErrorRate() float64 {
	m := s.CurrentStats()
	if m.Analyses == 0 {
		return 0
	}
	return float64(m.Errors) / float64(m.Analyses) * 100
}

// Snapshot returns the figures served by the statistics endpoint.
func (s *Storage) Snapshot() map[string]interface{} {
	m := s.CurrentStats()
	return map[string]interface{}{
		"analyses":          m.Analyses,
		"cacheHits":         m.CacheHits,
		"cacheMisses":       m.CacheMisses,
		"errorRate":         s.ErrorRate(),
		"averageDuration":   m.AverageDuration(),
		"uniqueVisitors24h": s.VisitorCount(24 * time.Hour),
	}
}

// Cleanup drops statistics older than the current and previous month.
func (s *Storage) Cleanup() {
	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	for key := range s.stats {
		if key != current && key != previous {
			delete(s.stats, key)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	logrus.WithFields(logrus.Fields{
		"current":  current,
		"previous": previous,
	}).Debug("retained statistics months")
}

// Months returns the months with recorded statistics, newest first.
func (s *Storage) Months() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Shutdown stops the background writer and flushes to disk.
func (s *Storage) Shutdown() error {
	close(s.done)
	return s.save()
}
