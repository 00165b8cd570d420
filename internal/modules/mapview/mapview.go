// Package mapview maintains the map marker registry behind the dashboard
// map: one marker per device, updated in place, plus the viewport that
// follows the selected device.
package mapview

import (
	"fmt"
	"sync"

	"trackify/internal/models"
)

// Default viewport over lower Manhattan, where the seed fleet starts.
const (
	defaultCenterLat = 40.7128
	defaultCenterLng = -74.0060
	defaultZoom      = 13
	selectedZoom     = 15
)

// Marker is one map point with its popup text.
type Marker struct {
	DeviceID  string  `json:"deviceId"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Popup     string  `json:"popup"`
}

// Viewport is the map center and zoom level.
type Viewport struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Zoom      int     `json:"zoom"`
}

// State is the full map view sent to the dashboard.
type State struct {
	Markers          []Marker `json:"markers"`
	Viewport         Viewport `json:"viewport"`
	SelectedDeviceID string   `json:"selectedDeviceId,omitempty"`
}

// DeviceLister supplies current devices for marker refresh.
type DeviceLister interface {
	List() []models.Device
}

// View tracks markers keyed by device id. Markers for an already-known id
// are moved and their popup text replaced; markers are never removed since
// devices are never deleted.
type View struct {
	devices DeviceLister

	mu       sync.Mutex
	markers  map[string]*Marker
	order    []string
	viewport Viewport
	selected string
}

// NewView creates a view over the given device source with the default
// viewport.
func NewView(devices DeviceLister) *View {
	return &View{
		devices:  devices,
		markers:  make(map[string]*Marker),
		viewport: Viewport{Latitude: defaultCenterLat, Longitude: defaultCenterLng, Zoom: defaultZoom},
	}
}

// Select centers the viewport on the given device at close zoom. An empty
// id clears the selection and leaves the viewport where it is. Returns
// models.ErrNotFound for an unknown id.
func (v *View) Select(deviceID string) error {
	if deviceID == "" {
		v.mu.Lock()
		v.selected = ""
		v.mu.Unlock()
		return nil
	}

	for _, d := range v.devices.List() {
		if d.ID != deviceID {
			continue
		}
		v.mu.Lock()
		v.selected = deviceID
		v.viewport = Viewport{Latitude: d.Latitude, Longitude: d.Longitude, Zoom: selectedZoom}
		v.mu.Unlock()
		return nil
	}
	return models.ErrNotFound
}

// Snapshot refreshes the markers from the current device list and returns
// the resulting map state.
func (v *View) Snapshot() State {
	devices := v.devices.List()

	v.mu.Lock()
	defer v.mu.Unlock()

	for _, d := range devices {
		popup := fmt.Sprintf("%s: %d km/h (%s)", d.Name, d.Speed, d.Status)
		if m, ok := v.markers[d.ID]; ok {
			m.Latitude = d.Latitude
			m.Longitude = d.Longitude
			m.Popup = popup
			continue
		}
		v.markers[d.ID] = &Marker{
			DeviceID:  d.ID,
			Latitude:  d.Latitude,
			Longitude: d.Longitude,
			Popup:     popup,
		}
		v.order = append(v.order, d.ID)
	}

	// Keep the viewport glued to a selected device as it moves.
	if v.selected != "" {
		if m, ok := v.markers[v.selected]; ok {
			v.viewport.Latitude = m.Latitude
			v.viewport.Longitude = m.Longitude
		}
	}

	out := State{
		Markers:          make([]Marker, 0, len(v.order)),
		Viewport:         v.viewport,
		SelectedDeviceID: v.selected,
	}
	for _, id := range v.order {
		out.Markers = append(out.Markers, *v.markers[id])
	}
	return out
}
