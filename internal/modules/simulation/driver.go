// Package simulation advances the fleet without operator input: it nudges
// device positions, redraws speeds and raises speed-violation alerts on a
// fixed cadence.
package simulation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"trackify/internal/metrics"
	"trackify/internal/models"
	"trackify/internal/modules/alerts"
	"trackify/internal/modules/fleet"
	"trackify/internal/modules/history"
)

// maxSimulatedSpeed bounds the uniform speed draw; speeds land in
// [0, maxSimulatedSpeed-1].
const maxSimulatedSpeed = 90

// positionJitter is the half-width of the uniform per-tick coordinate
// delta in degrees.
const positionJitter = 0.002

// Publisher pushes a fresh fleet snapshot to connected dashboards.
type Publisher interface {
	Publish()
}

// Driver mutates the telemetry store on a fixed period. There is exactly
// one driver per process; it is the only writer besides user actions.
type Driver struct {
	store    *fleet.Store
	alerts   *alerts.Log
	history  *history.Log
	stream   Publisher
	interval time.Duration

	// randF and nowF are injectable for deterministic tests. randF must
	// return values in [0,1).
	randF func() float64
	nowF  func() time.Time
}

// NewDriver creates a driver over the given stores. history and stream may
// be nil.
func NewDriver(store *fleet.Store, alertLog *alerts.Log, speedHistory *history.Log, stream Publisher, interval time.Duration) *Driver {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Driver{
		store:    store,
		alerts:   alertLog,
		history:  speedHistory,
		stream:   stream,
		interval: interval,
		randF:    rng.Float64,
		nowF:     time.Now,
	}
}

// Run ticks until ctx is cancelled. Missed ticks are not caught up.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// Tick advances every eligible device once. Devices in sleep mode or with
// status Offline are left completely unchanged. For each eligible device
// the position is jittered, the speed redrawn, and a Speed alert raised
// when the new speed exceeds the device's limit. Devices are processed in
// store order.
func (d *Driver) Tick() {
	now := d.nowF()

	for _, dev := range d.store.List() {
		if dev.IsSleepMode || dev.Status == models.StatusOffline {
			continue
		}

		lat := dev.Latitude + (d.randF()-0.5)*positionJitter
		lng := dev.Longitude + (d.randF()-0.5)*positionJitter
		speed := int(math.Floor(d.randF() * maxSimulatedSpeed))

		d.store.SetTelemetry(dev.ID, lat, lng, speed, now)

		if speed > dev.SpeedLimit && d.alerts != nil {
			msg := fmt.Sprintf("Speed Violation: %dkm/h (Limit: %d)", speed, dev.SpeedLimit)
			d.alerts.Raise(dev.ID, dev.Name, models.AlertSpeed, msg, models.SeverityMedium)
			metrics.AlertsRaised.Add(1)
		}
	}

	metrics.SimulationTicks.Add(1)
	if d.history != nil {
		d.history.Observe(d.store.List(), now)
	}
	if d.stream != nil {
		d.stream.Publish()
	}
}
