// Package history keeps the rolling fleet velocity samples behind the
// dashboard chart.
package history

import (
	"sync"
	"time"

	"trackify/internal/models"
)

// maxSamples caps the history; the oldest samples are dropped past this.
const maxSamples = 10

// timeLayout is the display label format, hours and minutes only.
const timeLayout = "15:04"

// Log holds the most recent speed samples of the first tracked device,
// oldest first.
type Log struct {
	mu      sync.RWMutex
	samples []models.SpeedSample
}

// NewLog returns an empty speed history.
func NewLog() *Log {
	return &Log{}
}

// Observe appends a sample for the first device in the list. It is called
// after every telemetry change; an empty device list records nothing.
func (l *Log) Observe(devices []models.Device, at time.Time) {
	if len(devices) == 0 {
		return
	}

	sample := models.SpeedSample{
		Time:  at.Format(timeLayout),
		Speed: devices[0].Speed,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.samples = append(l.samples, sample)
	if len(l.samples) > maxSamples {
		l.samples = l.samples[len(l.samples)-maxSamples:]
	}
}

// Samples returns a copy of the history, oldest first.
func (l *Log) Samples() []models.SpeedSample {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.SpeedSample, len(l.samples))
	copy(out, l.samples)
	return out
}
