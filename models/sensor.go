// File: neuroglove/models/sensor.go
package models

import "time"

// SensorData is one reading reported by a paired device. The payload itself
// is opaque to the backend.
type SensorData struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	DeviceID  string         `bson:"deviceId" json:"deviceId"`
	Data      map[string]any `bson:"data" json:"data"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}

// SensorDataRequest is the reading submission body.
type SensorDataRequest struct {
	DeviceID string         `json:"device_id" binding:"required"`
	Data     map[string]any `json:"data" binding:"required"`
}
