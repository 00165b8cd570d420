package fleet

import (
	"math"
	"time"

	"trackify/internal/models"
	"trackify/internal/modules/alerts"
	"trackify/internal/modules/history"
)

// sosMessage is the alert text raised when a device enters SOS.
const sosMessage = "EMERGENCY SOS SIGNAL RECEIVED!"

// Publisher pushes a fresh fleet snapshot to connected dashboards.
type Publisher interface {
	Publish()
}

// ServiceInterface describes the device management operations exposed to
// the dashboard.
type ServiceInterface interface {
	// ListDevices returns all devices in stable order.
	ListDevices() []models.Device
	// GetDevice returns one device by id.
	GetDevice(id string) (*models.Device, error)
	// UpdateDevice merges the user-editable fields into a device.
	UpdateDevice(id string, req models.DeviceUpdateRequest) (*models.Device, error)
	// ToggleSOS flips a device between SOS and Online, raising a
	// high-severity alert on the way in.
	ToggleSOS(id string) (*models.Device, error)
	// Summary aggregates the dashboard KPI figures.
	Summary() models.FleetSummary
}

// Service implements ServiceInterface on top of the telemetry store.
type Service struct {
	store   StoreInterface
	alerts  *alerts.Log
	history *history.Log
	stream  Publisher
	nowF    func() time.Time
}

// NewService creates a service with the given collaborators. history and
// stream may be nil when no chart or live feed is attached.
func NewService(store StoreInterface, alertLog *alerts.Log, speedHistory *history.Log, stream Publisher) *Service {
	return &Service{
		store:   store,
		alerts:  alertLog,
		history: speedHistory,
		stream:  stream,
		nowF:    time.Now,
	}
}

// ListDevices returns all devices in stable order.
func (s *Service) ListDevices() []models.Device {
	return s.store.List()
}

// GetDevice returns one device by id.
func (s *Service) GetDevice(id string) (*models.Device, error) {
	return s.store.Get(id)
}

// UpdateDevice merges the user-editable fields into a device. The store
// treats an unknown id as a no-op; the service surfaces it as
// models.ErrNotFound so the HTTP layer can answer 404.
func (s *Service) UpdateDevice(id string, req models.DeviceUpdateRequest) (*models.Device, error) {
	dev, applied := s.store.ApplyUpdate(id, req)
	if !applied {
		return nil, models.ErrNotFound
	}
	s.telemetryChanged()
	return dev, nil
}

// ToggleSOS flips status between SOS and Online. Entering SOS raises a
// high-severity alert; leaving raises none. A device that was Offline is
// not restored to Offline on the way out: it lands on Online. This is
// inherited behavior, kept until there is a product decision on it.
func (s *Service) ToggleSOS(id string) (*models.Device, error) {
	dev, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	newStatus := models.StatusSOS
	if dev.Status == models.StatusSOS {
		newStatus = models.StatusOnline
	}

	updated, err := s.store.SetStatus(id, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus == models.StatusSOS && s.alerts != nil {
		s.alerts.Raise(dev.ID, dev.Name, models.AlertSOS, sosMessage, models.SeverityHigh)
	}
	s.telemetryChanged()
	return updated, nil
}

// Summary aggregates device counts, mean fleet speed and the
// critical-alert count.
func (s *Service) Summary() models.FleetSummary {
	devices := s.store.List()

	summary := models.FleetSummary{TotalDevices: len(devices)}
	total := 0
	for _, d := range devices {
		total += d.Speed
		if d.Status == models.StatusOnline {
			summary.OnlineDevices++
		}
	}
	if len(devices) > 0 {
		summary.AverageSpeed = int(math.Round(float64(total) / float64(len(devices))))
	}
	if s.alerts != nil {
		summary.CriticalAlerts = s.alerts.CriticalCount()
	}
	return summary
}

// telemetryChanged records a chart sample and pushes a snapshot to the
// live feed after any store mutation.
func (s *Service) telemetryChanged() {
	if s.history != nil {
		s.history.Observe(s.store.List(), s.nowF())
	}
	if s.stream != nil {
		s.stream.Publish()
	}
}
