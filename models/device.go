// File: neuroglove/models/device.go
package models

import "time"

// BluetoothDevice is a glove paired by a user. One record per
// (user, deviceId) pair; reconnecting refreshes name and timestamp.
type BluetoothDevice struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	DeviceID    string    `bson:"deviceId" json:"deviceId"`
	DeviceName  string    `bson:"deviceName" json:"deviceName"`
	ConnectedAt time.Time `bson:"connectedAt" json:"connectedAt"`
}

// DeviceRequest is the pairing request body.
type DeviceRequest struct {
	DeviceID   string `json:"device_id" binding:"required"`
	DeviceName string `json:"device_name" binding:"required"`
}
