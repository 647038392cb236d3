package iface

// Conn is one connection to a Redis server. A Conn is used by a single
// goroutine at a time; the pool hands it out exclusively.
type Conn interface {
	// Close tears down the network connection.
	Close() error

	// Do writes a command (and flushes anything buffered by Send),
	// then blocks until the reply is read or the read timeout elapses.
	// An error reply from the server is returned as a redis.Error.
	Do(command string, args ...interface{}) (interface{}, error)

	// Send buffers a command without waiting for its reply. Buffered
	// commands are flushed by the next call to Do.
	Send(command string, args ...interface{}) error
}
