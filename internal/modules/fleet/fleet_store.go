// Package fleet provides the telemetry store and the device management
// operations behind the dashboard.
package fleet

import (
	"sync"
	"time"

	"trackify/internal/models"
)

// StoreInterface declares the telemetry store operations.
type StoreInterface interface {
	// List returns copies of all devices in stable seed order.
	List() []models.Device
	// Get returns a copy of one device. Returns models.ErrNotFound if none exists.
	Get(id string) (*models.Device, error)
	// ApplyUpdate merges the present fields of req into the matching device.
	// An unknown id is a no-op and reports applied=false.
	ApplyUpdate(id string, req models.DeviceUpdateRequest) (dev *models.Device, applied bool)
	// SetTelemetry replaces position, speed and the last-updated timestamp.
	SetTelemetry(id string, lat, lng float64, speed int, at time.Time) bool
	// SetStatus replaces the status of one device.
	SetStatus(id string, status models.DeviceStatus) (*models.Device, error)
}

// Store is the in-memory telemetry store, the single source of truth for
// device position, speed and status. Devices are seeded at startup and
// never deleted during a session.
type Store struct {
	mu      sync.RWMutex
	devices []models.Device
}

// NewStore creates a store holding the given devices in order.
func NewStore(devices []models.Device) *Store {
	s := &Store{devices: make([]models.Device, len(devices))}
	copy(s.devices, devices)
	return s
}

// Seed returns the fixed startup fleet with last-updated set to now.
func Seed(now time.Time) []models.Device {
	return []models.Device{
		{
			ID: "TRK-9901", Name: "Logistics Truck A",
			Latitude: 40.7128, Longitude: -74.0060,
			Speed: 65, SpeedLimit: 80,
			Battery: 88, Signal: models.SignalStrong,
			LastUpdated: now, Status: models.StatusOnline,
		},
		{
			ID: "TRK-4421", Name: "Service Van 4",
			Latitude: 40.7589, Longitude: -73.9851,
			Speed: 12, SpeedLimit: 45,
			Battery: 42, Signal: models.SignalWeak,
			LastUpdated: now, Status: models.StatusOnline,
		},
		{
			ID: "ASSET-220", Name: "E-Bike Delivery",
			Latitude: 40.7484, Longitude: -73.9857,
			Speed: 0, SpeedLimit: 25, IsSleepMode: true,
			Battery: 95, Signal: models.SignalStrong,
			LastUpdated: now, Status: models.StatusOffline,
		},
	}
}

// List returns copies of all devices in stable seed order.
func (s *Store) List() []models.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Get returns a copy of one device. Returns models.ErrNotFound if none exists.
func (s *Store) Get(id string) (*models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.devices {
		if s.devices[i].ID == id {
			d := s.devices[i]
			return &d, nil
		}
	}
	return nil, models.ErrNotFound
}

// ApplyUpdate merges the present fields of req into the matching device.
// Absent fields are left untouched. An unknown id is a no-op, not an error.
func (s *Store) ApplyUpdate(id string, req models.DeviceUpdateRequest) (*models.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.devices {
		if s.devices[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.devices[i].Name = *req.Name
		}
		if req.IsSleepMode != nil {
			s.devices[i].IsSleepMode = *req.IsSleepMode
		}
		if req.SpeedLimit != nil {
			s.devices[i].SpeedLimit = *req.SpeedLimit
		}
		d := s.devices[i]
		return &d, true
	}
	return nil, false
}

// SetTelemetry replaces position, speed and the last-updated timestamp for
// one device. Reports false for an unknown id.
func (s *Store) SetTelemetry(id string, lat, lng float64, speed int, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.devices {
		if s.devices[i].ID != id {
			continue
		}
		s.devices[i].Latitude = lat
		s.devices[i].Longitude = lng
		s.devices[i].Speed = speed
		s.devices[i].LastUpdated = at
		return true
	}
	return false
}

// SetStatus replaces the status of one device and returns the updated copy.
func (s *Store) SetStatus(id string, status models.DeviceStatus) (*models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.devices {
		if s.devices[i].ID == id {
			s.devices[i].Status = status
			d := s.devices[i]
			return &d, nil
		}
	}
	return nil, models.ErrNotFound
}
