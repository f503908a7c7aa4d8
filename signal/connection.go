package signal

import "sync/atomic"

// Connection identifies one connected slot. It is returned by the Connect
// functions and can disconnect exactly that slot, even when other slots
// with the same identity exist.
type Connection struct {
	id      string
	signal  string
	removed atomic.Bool
	detach  func(*Connection) bool
}

// ID returns the unique id assigned when the slot was connected.
func (c *Connection) ID() string {
	return c.id
}

// Signal returns the name of the signal the slot was connected to.
func (c *Connection) Signal() string {
	return c.signal
}

// Connected reports whether the slot is still connected. A slot whose weak
// receiver has been collected reports false once it has been dropped.
func (c *Connection) Connected() bool {
	return c != nil && !c.removed.Load()
}

// Disconnect removes the slot. It reports whether the slot was still
// connected; calling it again is a no-op.
func (c *Connection) Disconnect() bool {
	if !c.Connected() {
		return false
	}
	return c.detach(c)
}
