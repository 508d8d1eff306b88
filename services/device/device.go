package device

import (
	"time"

	deviceRepo "neuroglove/database/repository/device"
	sensorRepo "neuroglove/database/repository/sensordata"
	"neuroglove/models"

	"github.com/google/uuid"
)

// sensorReadLimit caps how many readings a query returns.
const sensorReadLimit = 100

// DeviceService manages paired devices and their sensor readings.
type DeviceService interface {
	// SaveDevice records a pairing, refreshing it on reconnect.
	SaveDevice(userID string, req models.DeviceRequest) (*models.BluetoothDevice, error)
	// ListDevices returns all devices paired by the user.
	ListDevices(userID string) ([]models.BluetoothDevice, error)
	// SaveSensorData appends one reading.
	SaveSensorData(userID string, req models.SensorDataRequest) error
	// GetSensorData returns the latest readings for a device, newest first.
	GetSensorData(userID, deviceID string) ([]models.SensorData, error)
}

// DefaultDeviceService is the production implementation.
type DefaultDeviceService struct {
	Devices deviceRepo.DeviceRepository
	Sensors sensorRepo.SensorDataRepository
}

func (s *DefaultDeviceService) SaveDevice(userID string, req models.DeviceRequest) (*models.BluetoothDevice, error) {
	dev := &models.BluetoothDevice{
		ID:          uuid.New().String(),
		UserID:      userID,
		DeviceID:    req.DeviceID,
		DeviceName:  req.DeviceName,
		ConnectedAt: time.Now(),
	}
	if err := s.Devices.Upsert(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

func (s *DefaultDeviceService) ListDevices(userID string) ([]models.BluetoothDevice, error) {
	return s.Devices.ListByUser(userID)
}

func (s *DefaultDeviceService) SaveSensorData(userID string, req models.SensorDataRequest) error {
	reading := &models.SensorData{
		ID:        uuid.New().String(),
		UserID:    userID,
		DeviceID:  req.DeviceID,
		Data:      req.Data,
		Timestamp: time.Now(),
	}
	return s.Sensors.Insert(reading)
}

func (s *DefaultDeviceService) GetSensorData(userID, deviceID string) ([]models.SensorData, error) {
	return s.Sensors.Latest(userID, deviceID, sensorReadLimit)
}
