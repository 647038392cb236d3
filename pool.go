package redpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/efritz/backoff"
	"github.com/efritz/glock"
	"github.com/efritz/overcurrent"
	"github.com/hashicorp/go-multierror"

	"github.com/efritz/redpool/iface"
)

type (
	// Pool abstracts a fixed-size Redis connection pool.
	Pool = iface.Pool

	// PoolStats describes the pool at a single instant.
	PoolStats = iface.PoolStats

	pool struct {
		dialer         DialFunc
		capacity       int
		logger         Logger
		breakerFunc    BreakerFunc
		clock          glock.Clock
		connections    chan Conn
		nilConnections chan Conn
		done           chan struct{}
		closeOnce      sync.Once
		closeErr       error
		inUse          int64
		mutex          sync.Mutex
	}

	// BreakerFunc bridges the interface between the Call function of
	// an overcurrent breaker and an overcurrent registry.
	BreakerFunc func(overcurrent.BreakerFunc) error
)

func noopBreakerFunc(f overcurrent.BreakerFunc) error {
	return f(context.Background())
}

// NewPool creates a pool with initially nil-connections. At most
// capacity connections are checked out at once; additional borrowers
// block until a connection is released.
func NewPool(
	dialer DialFunc,
	capacity int,
	logger Logger,
	breakerFunc BreakerFunc,
	clock glock.Clock,
) Pool {
	return newPool(dialer, capacity, logger, breakerFunc, clock)
}

func newPool(
	dialer DialFunc,
	capacity int,
	logger Logger,
	breakerFunc BreakerFunc,
	clock glock.Clock,
) *pool {
	p := &pool{
		dialer:         dialer,
		capacity:       capacity,
		logger:         logger,
		breakerFunc:    breakerFunc,
		clock:          clock,
		connections:    make(chan Conn, capacity),
		nilConnections: make(chan Conn, capacity),
		done:           make(chan struct{}),
	}

	// Set the capacity of the pool. Each time a nil value is borrowed, a new
	// connection is established and used in its place.

	for i := 0; i < p.capacity; i++ {
		p.nilConnections <- nil
	}

	return p
}

func (p *pool) Close() error {
	p.closeOnce.Do(func() {
		// Reject new borrowers, then wait for every slot of the pool to
		// come back. Borrowed connections are closed as they are released.
		close(p.done)

		var errs error
		for i := 0; i < p.capacity; i++ {
			if conn := p.take(); conn != nil {
				if err := conn.Close(); err != nil {
					p.logger.Printf("Could not close connection (%s)", err.Error())
					errs = multierror.Append(errs, err)
				}
			}
		}

		p.closeErr = errs
	})

	return p.closeErr
}

func (p *pool) Borrow() (Conn, error) {
	return p.borrow(nil)
}

func (p *pool) BorrowTimeout(timeout time.Duration) (Conn, error) {
	return p.borrow(&timeout)
}

func (p *pool) Release(conn Conn) {
	atomic.AddInt64(&p.inUse, -1)

	if conn == nil {
		p.nilConnections <- conn
	} else {
		p.connections <- conn
	}
}

func (p *pool) Stats() PoolStats {
	return PoolStats{
		Capacity: p.capacity,
		Idle:     len(p.connections),
		InUse:    int(atomic.LoadInt64(&p.inUse)),
	}
}

//
// Pool Helper Functions

func (p *pool) borrow(timeout *time.Duration) (Conn, error) {
	conn, err := p.get(timeout)
	if err != nil {
		return nil, err
	}

	if conn == nil {
		if conn, err = p.dial(); err != nil {
			return nil, err
		}
	}

	atomic.AddInt64(&p.inUse, 1)
	return conn, nil
}

// Get a value from the pool. If timeout is nil, no timeout is applied.
// This method attempts to read from the non-nil connection channel first
// in order to minimize the number of open connections when the pool is
// not under heavy concurrent load.
func (p *pool) get(timeout *time.Duration) (Conn, error) {
	select {
	case <-p.done:
		return nil, ErrPoolClosed
	default:
	}

	select {
	case conn := <-p.connections:
		return conn, nil
	default:
	}

	select {
	case conn := <-p.connections:
		return conn, nil

	case conn := <-p.nilConnections:
		return conn, nil

	case <-makeTimeoutChan(timeout, p.clock):
		return nil, ErrPoolExhausted

	case <-p.done:
		return nil, ErrPoolClosed
	}
}

// Take any value from the pool, blocking until one is released.
func (p *pool) take() Conn {
	select {
	case conn := <-p.connections:
		return conn
	case conn := <-p.nilConnections:
		return conn
	}
}

// Dial a new Redis connection. The call to the dialer function is wrapped
// in a circuit breaker so that if the remote end is down we are not going
// to hammer it.
func (p *pool) dial() (Conn, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var conn Conn
	err := p.breakerFunc(func(ctx context.Context) error {
		temp, err := p.dialer()
		conn = temp
		return err
	})

	if err != nil {
		// We were dialing a nil connection, put this back in the pool
		// so that we're not draining our pool on connection errors.
		p.nilConnections <- nil

		p.logger.Printf("Could not connect to Redis (%s)", err.Error())
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	p.logger.Printf("Established a new connection with Redis")
	return conn, nil
}

// Dial count connections and return them to the pool so they are
// idle and ready when the first commands arrive. Each connection is
// attempted up to attempts times, waiting between failed attempts.
func (p *pool) prewarm(count, attempts int, backoff backoff.Backoff) error {
	conns := make([]Conn, 0, count)

	defer func() {
		for _, conn := range conns {
			p.Release(conn)
		}
	}()

	for len(conns) < count {
		conn, err := p.borrowWithRetry(attempts, backoff)
		if err != nil {
			return err
		}

		conns = append(conns, conn)
	}

	return nil
}

func (p *pool) borrowWithRetry(attempts int, backoff backoff.Backoff) (Conn, error) {
	backoff.Reset()

	for attempt := 1; ; attempt++ {
		conn, err := p.Borrow()
		if err == nil || attempt >= attempts || !errors.Is(err, ErrConnection) {
			return conn, err
		}

		interval := backoff.NextInterval()
		p.logger.Printf("Could not establish connection (attempt %d of %d), retrying in %s", attempt, attempts, interval)

		if interval > 0 {
			<-p.clock.After(interval)
		}
	}
}

var blockingChan = make(chan time.Time)

// Wraps time.After around a possibly nil-timeout. When timeout is nil this
// method will return a channel which is always open but never written to.
func makeTimeoutChan(timeout *time.Duration, clock glock.Clock) <-chan time.Time {
	if timeout == nil {
		return blockingChan
	}

	return clock.After(*timeout)
}
