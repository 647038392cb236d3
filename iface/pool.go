package iface

import "time"

type (
	// Pool abstracts a fixed-size Redis connection pool. All methods
	// are safe to call from multiple goroutines.
	Pool interface {
		// Close will drain all available connections from the pool.
		// Every live connection is closed. This method blocks until
		// every borrowed connection has been released. Borrows issued
		// after Close is invoked fail immediately.
		Close() error

		// Borrow will block until a connection value is available in
		// the pool. If the connection is nil, then a new connection
		// is dialed in its place.
		Borrow() (Conn, error)

		// BorrowTimeout is like borrow, but will return an error if
		// no value is returned to the pool before the given timeout
		// elapses.
		BorrowTimeout(timeout time.Duration) (Conn, error)

		// Release returns a connection to the pool. This method must
		// be called exactly once for each successful call to a Borrow
		// method. A connection which encountered an error should be
		// returned to the pool as a nil value.
		Release(conn Conn)

		// Stats returns a snapshot of the pool's bookkeeping.
		Stats() PoolStats
	}

	// PoolStats describes the pool at a single instant.
	PoolStats struct {
		// Capacity is the maximum number of connections that can be
		// checked out at once.
		Capacity int

		// Idle is the number of live connections waiting in the pool.
		Idle int

		// InUse is the number of connections currently checked out.
		InUse int
	}
)
