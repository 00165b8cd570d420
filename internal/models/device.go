// Package models defines the data structures used across the Trackify service.
// It includes the tracked Device model and the request structures for
// mutating device state from the dashboard.
package models

import "time"

// DeviceStatus is the single operational status of a device.
type DeviceStatus string

const (
	StatusOnline  DeviceStatus = "Online"
	StatusOffline DeviceStatus = "Offline"
	StatusSOS     DeviceStatus = "SOS"
)

// SignalQuality categorizes the reported radio link of a device.
type SignalQuality string

const (
	SignalStrong SignalQuality = "Strong"
	SignalWeak   SignalQuality = "Weak"
	SignalNone   SignalQuality = "None"
)

// Device represents one tracked IoT asset such as a truck or e-bike.
// JSON field names mirror the dashboard's wire format.
type Device struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Latitude    float64       `json:"lat"`
	Longitude   float64       `json:"lng"`
	Speed       int           `json:"speed"`
	SpeedLimit  int           `json:"speedLimit"`
	IsSleepMode bool          `json:"isSleepMode"`
	Battery     int           `json:"battery"`
	Signal      SignalQuality `json:"signal"`
	LastUpdated time.Time     `json:"lastUpdated"`
	Status      DeviceStatus  `json:"status"`
}

// DeviceUpdateRequest contains the user-editable device fields. Absent
// fields are left untouched.
type DeviceUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=64"`
	IsSleepMode *bool   `json:"isSleepMode,omitempty"`
	SpeedLimit  *int    `json:"speedLimit,omitempty" validate:"omitempty,gte=0,lte=300"`
}

// FleetSummary aggregates the dashboard KPI figures.
type FleetSummary struct {
	TotalDevices   int `json:"totalDevices"`
	OnlineDevices  int `json:"onlineDevices"`
	AverageSpeed   int `json:"averageSpeed"`
	CriticalAlerts int `json:"criticalAlerts"`
}
