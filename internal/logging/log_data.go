package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates per-request fields and timings that are emitted as a
// single structured entry when the request completes.
type LogData struct {
	mu        sync.Mutex
	timeItems map[string]int64
	dataItems map[string]any
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(map[string]any),
		logger:    logger,
	}
}

// AddTiming starts a timer and returns the func that records its elapsed
// milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

// AddToExistingTiming accumulates into an entry instead of overwriting it,
// for work that happens in several bursts within one request.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timeItems[entryName] += timeSince
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
