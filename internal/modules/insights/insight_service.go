// Package insights produces the short AI advisory text shown on the
// dashboard from a point-in-time snapshot of devices and recent alerts.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"trackify/internal/metrics"
	"trackify/internal/models"
	"trackify/pkg/genai"
)

const (
	systemInstruction = "You are a professional IoT analyst. Provide concise, high-value insights."
	userInstruction   = "Based on the device data and alerts, provide 3 short, actionable bullet points for the fleet manager. Focus on safety (speed/SOS) and efficiency (sleep/battery). Keep it under 100 words."

	// fallbackMessage is the only user-visible failure in the system;
	// errors never propagate past this adapter.
	fallbackMessage = "Could not connect to AI advisor. Please check connectivity."
	emptyMessage    = "No insights available at the moment."
	initialMessage  = "Analyzing fleet data..."

	temperature      = 0.7
	recentAlertCount = 5
)

// Generator issues one text-generation call.
type Generator interface {
	GenerateContent(ctx context.Context, systemInstruction, prompt string, temperature float64) (string, error)
}

// DeviceLister supplies the device snapshot embedded in the prompt.
type DeviceLister interface {
	List() []models.Device
}

// AlertSource supplies the most recent alerts embedded in the prompt.
type AlertSource interface {
	Recent(n int) []models.Alert
}

// deviceDigest is the abbreviated device view sent to the model.
type deviceDigest struct {
	Name       string              `json:"name"`
	Status     models.DeviceStatus `json:"status"`
	Battery    int                 `json:"battery"`
	Speed      int                 `json:"speed"`
	SpeedLimit int                 `json:"speedLimit"`
}

// Service holds the current advisory text and refreshes it on demand.
// Concurrent refreshes are not deduplicated; a completion is applied only
// if it belongs to the most recently issued request, which makes the
// last-write-wins behavior explicit.
type Service struct {
	devices DeviceLister
	alerts  AlertSource
	gen     Generator

	mu     sync.Mutex
	text   string
	latest uint64
}

// NewService creates a service reading snapshots from the given sources.
func NewService(devices DeviceLister, alertLog AlertSource, gen Generator) *Service {
	return &Service{
		devices: devices,
		alerts:  alertLog,
		gen:     gen,
		text:    initialMessage,
	}
}

// Current returns the advisory text as of the last applied refresh.
func (s *Service) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Refresh issues one generation request and returns the resulting text.
// Any failure yields the fixed fallback string; no retry, no cache. The
// result is stored only if no newer request was issued in the meantime.
func (s *Service) Refresh(ctx context.Context) string {
	s.mu.Lock()
	s.latest++
	seq := s.latest
	s.mu.Unlock()

	metrics.InsightRequests.Add(1)

	text, err := s.gen.GenerateContent(ctx, systemInstruction, s.buildPrompt(), temperature)
	switch {
	case errors.Is(err, genai.ErrNoText):
		text = emptyMessage
	case err != nil:
		log.Printf("insights: generation failed: %v", err)
		metrics.InsightFailures.Add(1)
		text = fallbackMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.latest {
		s.text = text
	}
	return text
}

// buildPrompt embeds the abbreviated device list and the most recent
// alerts as JSON inside the fixed instruction.
func (s *Service) buildPrompt() string {
	devices := s.devices.List()
	digests := make([]deviceDigest, 0, len(devices))
	for _, d := range devices {
		digests = append(digests, deviceDigest{
			Name:       d.Name,
			Status:     d.Status,
			Battery:    d.Battery,
			Speed:      d.Speed,
			SpeedLimit: d.SpeedLimit,
		})
	}

	devJSON, _ := json.Marshal(digests)
	alertJSON, _ := json.Marshal(s.alerts.Recent(recentAlertCount))

	return fmt.Sprintf(
		"You are an IoT Asset Management Assistant for \"Trackify\".\nCurrent devices: %s\nRecent alerts: %s\n\n%s",
		devJSON, alertJSON, userInstruction,
	)
}
