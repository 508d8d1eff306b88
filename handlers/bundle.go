package handlers

import "neuroglove/services/auth"

// HandlerBundle wires the assembled handlers into route registration.
type HandlerBundle struct {
	AuthService auth.AuthService

	Auth   *AuthHandler
	Device *DeviceHandler
	Chat   *ChatHandler
	Report *ReportHandler
}
