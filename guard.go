package redpool

import (
	"github.com/bradhe/stopwatch"
	"github.com/prometheus/client_golang/prometheus"
)

// connGuard owns a connection borrowed from a pool for the duration of a
// single scope. Guards are created by acquire and must be released
// exactly once; withConn does both.
type connGuard struct {
	noCopy   noCopy
	pool     Pool
	conn     Conn
	broken   bool
	released bool
}

// Run f with a connection borrowed from the client's pool. The connection
// is returned to the pool on every exit path: normal return, error, and
// panic. A connection which f marks as broken (or which was in use when f
// panicked) is closed and replaced by a nil token.
func (c *client) withConn(f func(g *connGuard) error) error {
	g, err := c.acquire()
	if err != nil {
		return err
	}

	defer g.release()

	defer func() {
		if r := recover(); r != nil {
			// The protocol state of the connection is unknown
			g.discard()
			panic(r)
		}
	}()

	return f(g)
}

// Borrows and logs the time it took to return from blocking on the
// pool's borrow method.
func (c *client) acquire() (*connGuard, error) {
	watch := stopwatch.Start()
	timer := prometheus.NewTimer(c.metrics.borrowDuration)
	conn, err := c.borrow()
	timer.ObserveDuration()
	elapsed := watch.Stop()

	if err != nil {
		c.logger.Printf("Could not borrow connection after %s (%s)", elapsed, err.Error())
		return nil, err
	}

	c.logger.Printf("Received connection after %s", elapsed)
	return &connGuard{pool: c.pool, conn: conn}, nil
}

// Borrows from the pool using the correct method (depending on if
// a borrow timeout was configured on this client).
func (c *client) borrow() (Conn, error) {
	if c.borrowTimeout == nil {
		return c.pool.Borrow()
	}

	return c.pool.BorrowTimeout(*c.borrowTimeout)
}

func (g *connGuard) Conn() Conn {
	return g.conn
}

// Mark the connection as unusable. It will be closed on release.
func (g *connGuard) discard() {
	g.broken = true
}

// Close the connection if it is broken and release it back to the pool.
// Bad connections never go back to the pool, so in that case we return
// nil (if we do not do this on some code path then the capacity of the
// pool permanently decreases).
func (g *connGuard) release() {
	if g.released {
		return
	}

	g.released = true
	conn := g.conn
	g.conn = nil

	if g.broken {
		conn.Close()
		conn = nil
	}

	g.pool.Release(conn)
}
