package middleware

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// DeviceIDKey is the context key for the calling device's identity
	DeviceIDKey ContextKey = "device_id"

	// deviceIDHeader carries the caller-chosen device identity. There is
	// no account system: a device identifies itself explicitly instead
	// of relying on ambient auth state.
	deviceIDHeader = "X-Device-ID"

	anonymousDevice = "anonymous"
)

// DeviceID attaches the caller's device identity to the request context.
// Requests without the header are grouped under a shared anonymous
// identity rather than rejected: scanning must work before any setup.
func DeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.Header.Get(deviceIDHeader)
		if deviceID == "" {
			deviceID = anonymousDevice
		}
		ctx := context.WithValue(r.Context(), DeviceIDKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDeviceID extracts the device identity from the request context.
func GetDeviceID(ctx context.Context) string {
	if deviceID, ok := ctx.Value(DeviceIDKey).(string); ok {
		return deviceID
	}
	return anonymousDevice
}
