package models

// AlertType categorizes what triggered an alert.
type AlertType string

const (
	AlertSpeed    AlertType = "Speed"
	AlertSOS      AlertType = "SOS"
	AlertGeofence AlertType = "Geofence"
	AlertBattery  AlertType = "Battery"
)

// AlertSeverity is the priority tier of an alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert is a derived notification record describing a threshold violation
// or emergency signal. DeviceID and DeviceName are value copies taken when
// the alert was raised; renaming a device later does not rewrite them.
type Alert struct {
	ID         string        `json:"id"`
	DeviceID   string        `json:"deviceId"`
	DeviceName string        `json:"deviceName"`
	Type       AlertType     `json:"type"`
	Message    string        `json:"message"`
	Timestamp  string        `json:"timestamp"`
	Severity   AlertSeverity `json:"severity"`
}

// SpeedSample is one point of the fleet velocity chart: the instantaneous
// speed of the tracked device with a display-formatted time label.
type SpeedSample struct {
	Time  string `json:"time"`
	Speed int    `json:"speed"`
}
