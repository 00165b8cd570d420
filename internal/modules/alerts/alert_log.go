// Package alerts maintains the bounded, insertion-ordered alert history.
package alerts

import (
	"sync"
	"time"

	"trackify/internal/models"

	"github.com/google/uuid"
)

// maxEntries caps the log; the oldest entries are truncated past this.
const maxEntries = 10

// timestampLayout is the display format stored on alert records.
const timestampLayout = "15:04:05"

// Log is an in-memory, newest-first alert log capped at maxEntries.
// Records are never mutated after creation and only removed by truncation.
type Log struct {
	mu      sync.RWMutex
	entries []models.Alert
	nowF    func() time.Time
}

// NewLog returns an empty alert log.
func NewLog() *Log {
	return &Log{nowF: time.Now}
}

// Raise constructs an alert with a fresh id and the current display
// timestamp, prepends it, and truncates the log to the newest maxEntries.
// The device id and name are stored as value copies.
func (l *Log) Raise(deviceID, deviceName string, alertType models.AlertType, message string, severity models.AlertSeverity) models.Alert {
	alert := models.Alert{
		ID:         uuid.NewString(),
		DeviceID:   deviceID,
		DeviceName: deviceName,
		Type:       alertType,
		Message:    message,
		Timestamp:  l.nowF().Format(timestampLayout),
		Severity:   severity,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]models.Alert{alert}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
	return alert
}

// Query returns a copy of the log, newest first.
func (l *Log) Query() []models.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Alert, len(l.entries))
	copy(out, l.entries)
	return out
}

// Recent returns a copy of the newest n entries.
func (l *Log) Recent(n int) []models.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]models.Alert, n)
	copy(out, l.entries[:n])
	return out
}

// CriticalCount returns the number of high-severity entries. It drives the
// dashboard's critical-alert indicator.
func (l *Log) CriticalCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, a := range l.entries {
		if a.Severity == models.SeverityHigh {
			count++
		}
	}
	return count
}
