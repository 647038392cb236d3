package redpool

import (
	"github.com/gomodule/redigo/redis"

	"github.com/efritz/redpool/iface"
)

type (
	// Conn abstracts a single, feature-minimal connection to Redis.
	Conn = iface.Conn

	redigoShim struct {
		conn redis.Conn
	}

	connErr struct{ error }

	// DialFunc creates a connection to Redis or returns an error.
	DialFunc func() (Conn, error)

	// DialerFactory creates a dial function from a set of addresses.
	DialerFactory func(addrs []string) DialFunc
)

func makeDialerFactory(config *clientConfig) DialerFactory {
	return func(addrs []string) DialFunc {
		return makeDialer(addrs, config)
	}
}

// Each call to the returned function dials a random address from the
// given list (there is only one address for a primary).
func makeDialer(addrs []string, config *clientConfig) DialFunc {
	return func() (Conn, error) {
		conn, err := redis.Dial(
			"tcp",
			chooseRandom(addrs),
			redis.DialPassword(config.password),
			redis.DialDatabase(config.database),
			redis.DialConnectTimeout(config.connectTimeout),
			redis.DialReadTimeout(config.readTimeout),
			redis.DialWriteTimeout(config.writeTimeout),
		)

		if err != nil {
			return nil, err
		}

		return &redigoShim{conn}, nil
	}
}

func (s *redigoShim) Close() error {
	return s.conn.Close()
}

func (s *redigoShim) Do(command string, args ...interface{}) (interface{}, error) {
	result, err := s.conn.Do(command, args...)
	return result, s.wrapError(err)
}

func (s *redigoShim) Send(command string, args ...interface{}) error {
	return s.wrapError(s.conn.Send(command, args...))
}

func (s *redigoShim) wrapError(err error) error {
	// A fatal error on the underlying connection (I/O failure, timeout,
	// unparseable reply) leaves it unusable. Flag it so the guard will
	// discard the connection instead of returning it to the pool.

	if s.conn.Err() != nil {
		return connErr{s.conn.Err()}
	}

	return err
}

func (e connErr) Unwrap() error {
	return e.error
}
