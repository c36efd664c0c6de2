// Package notify carries the cross-screen "persisted state changed" signal.
package notify

import "sync/atomic"

// Bus is a monotonic change counter shared by every part of the application
// that reads or writes persisted state. Writers call NotifyChanged after a
// successful mutation; observers compare CurrentVersion against the last
// version they rendered and re-fetch from the repository on any difference.
// No payload describes what changed; observers reload their own entity kind
// regardless.
//
// A Bus is constructed once at startup and handed to every component that
// needs it. There is no package-level instance.
type Bus struct {
	version atomic.Int64
}

func NewBus() *Bus {
	return &Bus{}
}

// NotifyChanged records that persisted state changed. Callable at any time,
// never fails.
func (b *Bus) NotifyChanged() {
	b.version.Add(1)
}

// CurrentVersion returns the number of changes announced so far.
func (b *Bus) CurrentVersion() int64 {
	return b.version.Load()
}
