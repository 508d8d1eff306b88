package deviceRepo

import "neuroglove/models"

// DeviceRepository defines methods for paired-device data access.
type DeviceRepository interface {
	// Upsert saves a device pairing keyed by (userId, deviceId). A
	// reconnect refreshes the stored name and timestamp.
	Upsert(device *models.BluetoothDevice) error
	// ListByUser retrieves all devices paired by a user.
	ListByUser(userID string) ([]models.BluetoothDevice, error)
}
