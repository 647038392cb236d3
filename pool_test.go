package redpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aphistic/sweet"
	"github.com/efritz/backoff"
	"github.com/efritz/glock"
	. "github.com/efritz/go-mockgen/matchers"
	"github.com/efritz/overcurrent"
	. "github.com/onsi/gomega"

	"github.com/efritz/redpool/mocks"
)

type PoolSuite struct{}

func (s *PoolSuite) TestNewPoolAtCapacity(t sweet.T) {
	var (
		clock  = glock.NewMockClock()
		result = make(chan error, 1)
		pool   = NewPool(
			testDial,
			20,
			NilLogger,
			noopBreakerFunc,
			clock,
		)
	)

	for i := 0; i < 20; i++ {
		_, err := pool.Borrow()
		Expect(err).To(BeNil())
	}

	go func() {
		_, err := pool.BorrowTimeout(time.Second * 10)
		result <- err
	}()

	clock.BlockingAdvance(time.Second * 10)
	Eventually(result).Should(Receive(Equal(ErrPoolExhausted)))
}

func (s *PoolSuite) TestPoolDialOnNilConnection(t sweet.T) {
	var (
		conn = mocks.NewMockConn()
		dial = func() (Conn, error) { return conn, nil }
		pool = NewPool(
			dial,
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	c, err := pool.Borrow()
	Expect(err).To(BeNil())
	Expect(c).To(BeIdenticalTo(conn))
}

func (s *PoolSuite) TestPoolDialOnNilConnectionAfterRelease(t sweet.T) {
	var (
		dials = 0
		conn  = mocks.NewMockConn()
		dial  = func() (Conn, error) { dials++; return conn, nil }
		pool  = NewPool(
			dial,
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	for i := 0; i < 20; i++ {
		pool.Borrow()
	}

	Expect(dials).To(Equal(20))

	for i := 0; i < 10; i++ {
		pool.Release(nil)
	}

	for i := 0; i < 10; i++ {
		pool.Release(conn)
	}

	for i := 0; i < 20; i++ {
		pool.Borrow()
	}

	// re-dial the 10 released nils
	Expect(dials).To(Equal(30))
}

func (s *PoolSuite) TestClose(t sweet.T) {
	var (
		conn = mocks.NewMockConn()
		pool = NewPool(
			testDial,
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	for i := 0; i < 15; i++ {
		pool.Borrow()
	}

	for i := 0; i < 5; i++ {
		pool.Release(nil)
	}

	for i := 0; i < 10; i++ {
		pool.Release(conn)
	}

	// Release the 10 live connections in pool
	Expect(pool.Close()).To(BeNil())
	Expect(conn.CloseFunc).To(BeCalledN(10))
}

func (s *PoolSuite) TestCloseIdempotent(t sweet.T) {
	var (
		conn = mocks.NewMockConn()
		pool = NewPool(
			func() (Conn, error) { return conn, nil },
			2,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	c, _ := pool.Borrow()
	pool.Release(c)

	Expect(pool.Close()).To(BeNil())
	Expect(pool.Close()).To(BeNil())
	Expect(conn.CloseFunc).To(BeCalledOnce())
}

func (s *PoolSuite) TestCloseAggregatesErrors(t sweet.T) {
	var (
		conn1 = mocks.NewMockConn()
		conn2 = mocks.NewMockConn()
		pool  = NewPool(
			testDial,
			2,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	conn1.CloseFunc.SetDefaultReturn(errors.New("utoh1"))
	conn2.CloseFunc.SetDefaultReturn(errors.New("utoh2"))

	pool.Borrow()
	pool.Borrow()
	pool.Release(conn1)
	pool.Release(conn2)

	err := pool.Close()
	Expect(err).NotTo(BeNil())
	Expect(err.Error()).To(ContainSubstring("utoh1"))
	Expect(err.Error()).To(ContainSubstring("utoh2"))
}

func (s *PoolSuite) TestCloseBlocks(t sweet.T) {
	var (
		sync  = make(chan struct{})
		block = make(chan struct{})
		conn  = mocks.NewMockConn()
		pool  = NewPool(
			testDial,
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	conn.CloseFunc.SetDefaultHook(func() error {
		<-block
		return nil
	})

	for i := 0; i < 5; i++ {
		pool.Borrow()
	}

	for i := 0; i < 5; i++ {
		pool.Release(conn)
	}

	go func() {
		pool.Close()
		close(sync)
	}()

	Consistently(sync).ShouldNot(Receive())
	close(block)
	Eventually(sync).Should(BeClosed())
}

func (s *PoolSuite) TestCloseWaitsForBorrowedConnections(t sweet.T) {
	var (
		sync = make(chan struct{})
		pool = NewPool(
			testDial,
			2,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	conn, err := pool.Borrow()
	Expect(err).To(BeNil())

	go func() {
		pool.Close()
		close(sync)
	}()

	Consistently(sync).ShouldNot(BeClosed())
	pool.Release(conn)
	Eventually(sync).Should(BeClosed())
	Expect(conn.(*mocks.MockConn).CloseFunc).To(BeCalledOnce())
}

func (s *PoolSuite) TestBorrowAfterClose(t sweet.T) {
	pool := NewPool(
		testDial,
		2,
		NilLogger,
		noopBreakerFunc,
		nil,
	)

	Expect(pool.Close()).To(BeNil())

	_, err := pool.Borrow()
	Expect(err).To(Equal(ErrPoolClosed))
}

func (s *PoolSuite) TestBorrowFavorsNonNil(t sweet.T) {
	var (
		dials = 0
		conn  = mocks.NewMockConn()
		pool  = NewPool(
			func() (Conn, error) { dials++; return conn, nil },
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	// Dial one
	c1, _ := pool.Borrow()
	Expect(dials).To(Equal(1))

	// Still borrowed, dial another
	c2, _ := pool.Borrow()
	Expect(dials).To(Equal(2))

	// Return both, will get these back immediately
	pool.Release(c1)
	pool.Release(c2)
	pool.Borrow()
	pool.Borrow()
	Expect(dials).To(Equal(2))

	// Two borrowed, dial a third
	pool.Borrow()
	Expect(dials).To(Equal(3))
}

func (s *PoolSuite) TestPoolCapacity(t sweet.T) {
	var (
		sync = make(chan struct{})
		pool = NewPool(
			testDial,
			20,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	for i := 0; i < 20; i++ {
		pool.Borrow()
	}

	go func() {
		pool.Borrow()
		close(sync)
	}()

	Consistently(sync).ShouldNot(BeClosed())
	pool.Release(nil)
	Eventually(sync).Should(BeClosed())
}

func (s *PoolSuite) TestExclusiveCheckout(t sweet.T) {
	var (
		capacity = 3
		active   int64
		peak     int64
		wg       sync.WaitGroup
		pool     = NewPool(
			testDial,
			capacity,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	for i := 0; i < 12; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 10; j++ {
				conn, err := pool.Borrow()
				if err != nil {
					return
				}

				current := atomic.AddInt64(&active, 1)
				for {
					old := atomic.LoadInt64(&peak)
					if current <= old || atomic.CompareAndSwapInt64(&peak, old, current) {
						break
					}
				}

				time.Sleep(time.Millisecond)
				atomic.AddInt64(&active, -1)
				pool.Release(conn)
			}
		}()
	}

	wg.Wait()
	Expect(atomic.LoadInt64(&peak)).To(BeNumerically("<=", capacity))
	Expect(atomic.LoadInt64(&peak)).To(BeNumerically(">", 0))
	Expect(pool.Stats().InUse).To(Equal(0))
}

func (s *PoolSuite) TestBorrowTimeout(t sweet.T) {
	var (
		result = make(chan error)
		clock  = glock.NewMockClock()
		pool   = NewPool(
			testDial,
			20,
			NilLogger,
			noopBreakerFunc,
			clock,
		)
	)

	for i := 0; i < 20; i++ {
		pool.Borrow()
	}

	go func() {
		defer close(result)
		_, err := pool.BorrowTimeout(time.Second * 30)
		result <- err
	}()

	Consistently(result).ShouldNot(BeClosed())
	clock.BlockingAdvance(time.Second * 30)
	Eventually(result).Should(Receive(Equal(ErrPoolExhausted)))
}

func (s *PoolSuite) TestCircuitBreaker(t sweet.T) {
	var (
		count       = 5
		breakerFunc = func(f overcurrent.BreakerFunc) error {
			if count <= 0 {
				return overcurrent.ErrCircuitOpen
			}

			count--
			return f(context.Background())
		}

		pool = NewPool(
			testDial,
			20,
			NilLogger,
			breakerFunc,
			nil,
		)
	)

	for i := 0; i < 5; i++ {
		_, err := pool.Borrow()
		Expect(err).To(BeNil())
	}

	for i := 0; i < 100; i++ {
		_, err := pool.Borrow()
		Expect(errors.Is(err, ErrConnection)).To(BeTrue())
		Expect(errors.Is(err, overcurrent.ErrCircuitOpen)).To(BeTrue())
	}
}

func (s *PoolSuite) TestDialFailureKeepsCapacity(t sweet.T) {
	var (
		fail = true
		pool = NewPool(
			func() (Conn, error) {
				if fail {
					return nil, errors.New("utoh")
				}

				return mocks.NewMockConn(), nil
			},
			2,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	for i := 0; i < 10; i++ {
		_, err := pool.Borrow()
		Expect(errors.Is(err, ErrConnection)).To(BeTrue())
	}

	Expect(pool.Stats().InUse).To(Equal(0))

	fail = false
	for i := 0; i < 2; i++ {
		_, err := pool.Borrow()
		Expect(err).To(BeNil())
	}
}

func (s *PoolSuite) TestStats(t sweet.T) {
	pool := NewPool(
		testDial,
		5,
		NilLogger,
		noopBreakerFunc,
		nil,
	)

	Expect(pool.Stats()).To(Equal(PoolStats{Capacity: 5}))

	c1, _ := pool.Borrow()
	pool.Borrow()
	pool.Borrow()
	pool.Release(c1)

	Expect(pool.Stats()).To(Equal(PoolStats{Capacity: 5, Idle: 1, InUse: 2}))
}

func (s *PoolSuite) TestPrewarm(t sweet.T) {
	var (
		dials = 0
		pool  = newPool(
			func() (Conn, error) { dials++; return mocks.NewMockConn(), nil },
			5,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	Expect(pool.prewarm(3, 1, backoff.NewZeroBackoff())).To(BeNil())
	Expect(dials).To(Equal(3))
	Expect(pool.Stats()).To(Equal(PoolStats{Capacity: 5, Idle: 3, InUse: 0}))

	// Idle connections are reused before new ones are dialed
	for i := 0; i < 3; i++ {
		pool.Borrow()
	}

	Expect(dials).To(Equal(3))
}

func (s *PoolSuite) TestPrewarmRetries(t sweet.T) {
	var (
		dials = 0
		pool  = newPool(
			func() (Conn, error) {
				if dials++; dials < 3 {
					return nil, errors.New("utoh")
				}

				return mocks.NewMockConn(), nil
			},
			5,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	Expect(pool.prewarm(1, 3, backoff.NewZeroBackoff())).To(BeNil())
	Expect(dials).To(Equal(3))
	Expect(pool.Stats().Idle).To(Equal(1))
}

func (s *PoolSuite) TestPrewarmFailure(t sweet.T) {
	var (
		dials = 0
		pool  = newPool(
			func() (Conn, error) { dials++; return nil, errors.New("utoh") },
			5,
			NilLogger,
			noopBreakerFunc,
			nil,
		)
	)

	err := pool.prewarm(2, 2, backoff.NewZeroBackoff())
	Expect(errors.Is(err, ErrConnection)).To(BeTrue())
	Expect(dials).To(Equal(2))
	Expect(pool.Stats()).To(Equal(PoolStats{Capacity: 5, Idle: 0, InUse: 0}))
}

func testDial() (Conn, error) {
	return mocks.NewMockConn(), nil
}
