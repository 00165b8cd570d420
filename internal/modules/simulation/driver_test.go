package simulation

import (
	"math/rand"
	"testing"
	"time"

	"trackify/internal/models"
	"trackify/internal/modules/alerts"
	"trackify/internal/modules/fleet"
	"trackify/internal/modules/history"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// scriptedRand returns the given draws in order and fails the test if the
// driver consumes more than provided.
func scriptedRand(t *testing.T, draws ...float64) func() float64 {
	t.Helper()
	i := 0
	return func() float64 {
		if i >= len(draws) {
			t.Fatalf("random draw %d requested, only %d scripted", i+1, len(draws))
		}
		v := draws[i]
		i++
		return v
	}
}

func newTestDriver(t *testing.T, draws ...float64) (*Driver, *fleet.Store, *alerts.Log) {
	t.Helper()
	store := fleet.NewStore(fleet.Seed(testNow))
	log := alerts.NewLog()
	d := NewDriver(store, log, nil, nil, 5*time.Second)
	d.nowF = func() time.Time { return testNow.Add(5 * time.Second) }
	if len(draws) > 0 {
		d.randF = scriptedRand(t, draws...)
	}
	return d, store, log
}

func TestTick_SkipsSleepingAndOfflineDevices(t *testing.T) {
	// Seed order is TRK-9901, TRK-4421 (both eligible, three draws each),
	// then ASSET-220 which is sleeping and Offline and must consume none.
	d, store, _ := newTestDriver(t,
		0.5, 0.5, 0.1,
		0.5, 0.5, 0.1,
	)

	before, _ := store.Get("ASSET-220")
	d.Tick()
	after, _ := store.Get("ASSET-220")

	if *before != *after {
		t.Errorf("sleeping/offline device mutated by tick:\nbefore %+v\nafter  %+v", before, after)
	}
	if !after.LastUpdated.Equal(testNow) {
		t.Errorf("LastUpdated = %v, want untouched seed time %v", after.LastUpdated, testNow)
	}
}

func TestTick_SpeedAlwaysIntegerInRange(t *testing.T) {
	store := fleet.NewStore(fleet.Seed(testNow))
	d := NewDriver(store, alerts.NewLog(), nil, nil, 5*time.Second)
	d.randF = rand.New(rand.NewSource(1)).Float64

	for i := 0; i < 100; i++ {
		d.Tick()
		for _, dev := range store.List() {
			if dev.IsSleepMode || dev.Status == models.StatusOffline {
				continue
			}
			if dev.Speed < 0 || dev.Speed > 89 {
				t.Fatalf("device %s speed %d outside [0,89]", dev.ID, dev.Speed)
			}
		}
	}
}

func TestTick_SpeedViolationRaisesAlertAtHead(t *testing.T) {
	// TRK-9901 has limit 80; a speed draw of 85/90 yields speed 85.
	// TRK-4421 draws a compliant speed of 10.
	d, _, log := newTestDriver(t,
		0.5, 0.5, 85.0/90.0,
		0.5, 0.5, 10.0/90.0,
	)

	d.Tick()

	entries := log.Query()
	if len(entries) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(entries))
	}
	head := entries[0]
	if head.DeviceID != "TRK-9901" {
		t.Errorf("DeviceID = %q, want TRK-9901", head.DeviceID)
	}
	if head.Type != models.AlertSpeed || head.Severity != models.SeverityMedium {
		t.Errorf("alert = %s/%s, want Speed/medium", head.Type, head.Severity)
	}
	if head.Message != "Speed Violation: 85km/h (Limit: 80)" {
		t.Errorf("Message = %q", head.Message)
	}
}

func TestTick_CompliantSpeedsRaiseNoAlert(t *testing.T) {
	d, _, log := newTestDriver(t,
		0.5, 0.5, 40.0/90.0,
		0.5, 0.5, 10.0/90.0,
	)

	d.Tick()

	if got := len(log.Query()); got != 0 {
		t.Errorf("len(alerts) = %d, want 0", got)
	}
}

func TestTick_EachViolatingDeviceAlertsIndependently(t *testing.T) {
	// Both eligible devices exceed their limits (80 and 45) in one tick.
	d, _, log := newTestDriver(t,
		0.5, 0.5, 89.0/90.0,
		0.5, 0.5, 50.0/90.0,
	)

	d.Tick()

	entries := log.Query()
	if len(entries) != 2 {
		t.Fatalf("len(alerts) = %d, want 2", len(entries))
	}
	// Newest first: TRK-4421 was processed second, so it is at the head.
	if entries[0].DeviceID != "TRK-4421" || entries[1].DeviceID != "TRK-9901" {
		t.Errorf("alert order = %s, %s; want TRK-4421, TRK-9901", entries[0].DeviceID, entries[1].DeviceID)
	}
}

func TestTick_MovesEligibleDevices(t *testing.T) {
	// Deltas of (0.9-0.5)*0.002 = +0.0008 on both axes for TRK-9901.
	d, store, _ := newTestDriver(t,
		0.9, 0.9, 30.0/90.0,
		0.5, 0.5, 10.0/90.0,
	)

	d.Tick()

	dev, _ := store.Get("TRK-9901")
	wantLat := 40.7128 + 0.0008
	wantLng := -74.0060 + 0.0008
	if diff := dev.Latitude - wantLat; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Latitude = %v, want %v", dev.Latitude, wantLat)
	}
	if diff := dev.Longitude - wantLng; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Longitude = %v, want %v", dev.Longitude, wantLng)
	}
	if dev.Speed != 30 {
		t.Errorf("Speed = %d, want 30", dev.Speed)
	}
	if !dev.LastUpdated.Equal(testNow.Add(5 * time.Second)) {
		t.Errorf("LastUpdated = %v, want tick time", dev.LastUpdated)
	}
}

type countingPublisher struct{ calls int }

func (p *countingPublisher) Publish() { p.calls++ }

func TestTick_RecordsHistoryAndPublishes(t *testing.T) {
	store := fleet.NewStore(fleet.Seed(testNow))
	speedHistory := history.NewLog()
	pub := &countingPublisher{}
	d := NewDriver(store, alerts.NewLog(), speedHistory, pub, 5*time.Second)
	d.randF = scriptedRand(t,
		0.5, 0.5, 30.0/90.0,
		0.5, 0.5, 10.0/90.0,
	)
	d.nowF = func() time.Time { return testNow }

	d.Tick()

	if pub.calls != 1 {
		t.Errorf("Publish called %d times, want 1", pub.calls)
	}
	samples := speedHistory.Samples()
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d, want 1", len(samples))
	}
	if samples[0].Speed != 30 {
		t.Errorf("sample speed = %d, want first device's new speed 30", samples[0].Speed)
	}
}
