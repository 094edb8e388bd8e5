package ui

import "hubpick/internal/valuefile"

// Host receives committed selection values. Pushing the value is the
// change signal; there is no separate notification.
type Host interface {
	Push(encoded string) error
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(encoded string) error

// Push implements Host.
func (f HostFunc) Push(encoded string) error { return f(encoded) }

// StoreHost commits values through the shared value file.
type StoreHost struct {
	Store *valuefile.Store
}

// Push implements Host.
func (h StoreHost) Push(encoded string) error {
	return h.Store.Write(encoded)
}
