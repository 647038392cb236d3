package redpool

import (
	"fmt"
	"strings"
	"time"

	"github.com/efritz/backoff"
	"github.com/efritz/glock"
	"github.com/efritz/overcurrent"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	// Client is a goroutine-safe, minimal, and pooled Redis client. The
	// client owns its connection pool; it is only ever handled through
	// this interface, so the pool cannot be duplicated by copying.
	Client interface {
		// Close will close all open connections to the remote Redis
		// server. It blocks until every in-flight command has returned
		// its connection to the pool. Metrics registered with
		// WithMetrics are unregistered.
		Close() error

		// ReadReplica returns a client that points to the set of
		// configured read replicas. If no read replicas are configured,
		// this returns the current client. The client returned from this
		// method does NOT need to be independently closed (closing the
		// source client will also close replica clients).
		ReadReplica() Client

		// Do runs the command on the remote Redis server and returns
		// its reply. The caller owns the reply and should Close it.
		Do(command string, args ...interface{}) (*Reply, error)

		// Commandf expands a printf-style command template (e.g.
		// "SET %s %s") and runs the resulting command.
		Commandf(template string, args ...interface{}) (*Reply, error)

		// Set sets key to value and returns the status reply.
		Set(key, value string) (string, error)

		// Get returns the value of key, or the empty string if the key
		// does not exist.
		Get(key string) (string, error)

		// Lookup is like Get but reports whether the key exists.
		Lookup(key string) (string, bool, error)

		// Incr increments the integer value of key and returns the new
		// value.
		Incr(key string) (int64, error)

		// Pipeline returns a builder object to which commands can be
		// attached. All commands in the pipeline are sent to the remote
		// server over a single connection, wrapped in MULTI/EXEC.
		Pipeline() Pipeline

		// Stats returns a snapshot of the connection pool.
		Stats() PoolStats
	}

	// Command is a struct that bundles the command and the command arguments
	// together to be used in a pipeline.
	Command struct {
		Command string
		Args    []interface{}
	}

	client struct {
		noCopy            noCopy
		pool              Pool
		borrowTimeout     *time.Duration
		logger            Logger
		metrics           *metrics
		replyObserver     FreeFunc
		readReplicaClient *client
	}

	clientConfig struct {
		password         string
		database         int
		connectTimeout   time.Duration
		readTimeout      time.Duration
		writeTimeout     time.Duration
		poolCapacity     int
		minIdle          int
		dialAttempts     int
		backoff          backoff.Backoff
		breakerFunc      BreakerFunc
		clock            glock.Clock
		borrowTimeout    *time.Duration
		logger           Logger
		registerer       prometheus.Registerer
		readReplicaAddrs []string
		dialerFactory    DialerFactory
		replyObserver    FreeFunc
	}

	// ConfigFunc is a function used to initialize a new client.
	ConfigFunc func(*clientConfig)
)

// NewClient creates a new Client. If the configuration is invalid or the
// configured minimum number of idle connections cannot be dialed, an error
// wrapping ErrPoolCreationFailed is returned.
func NewClient(addr string, configs ...ConfigFunc) (Client, error) {
	config := &clientConfig{
		password:       "",
		database:       0,
		connectTimeout: time.Second * 5,
		writeTimeout:   time.Second * 5,
		readTimeout:    time.Second * 5,
		poolCapacity:   10,
		minIdle:        0,
		dialAttempts:   3,
		backoff:        backoff.NewExponentialBackoff(time.Millisecond*100, time.Second*5),
		breakerFunc:    noopBreakerFunc,
		clock:          glock.NewRealClock(),
		borrowTimeout:  nil,
		logger:         newDefaultLogger(),
	}

	for _, f := range configs {
		f(config)
	}

	if config.dialerFactory == nil {
		config.dialerFactory = makeDialerFactory(config)
	}

	if err := validate(addr, config); err != nil {
		return nil, err
	}

	client, err := newClient(addr, []string{addr}, config)
	if err != nil {
		return nil, err
	}

	if len(config.readReplicaAddrs) > 0 {
		replica, err := newClient(strings.Join(config.readReplicaAddrs, ","), config.readReplicaAddrs, config)
		if err != nil {
			client.Close()
			return nil, err
		}

		client.readReplicaClient = replica
	}

	return client, nil
}

func validate(addr string, config *clientConfig) error {
	if addr == "" {
		return fmt.Errorf("%w: no address given", ErrPoolCreationFailed)
	}

	if config.poolCapacity <= 0 {
		return fmt.Errorf("%w: pool capacity must be positive (got %d)", ErrPoolCreationFailed, config.poolCapacity)
	}

	if config.minIdle < 0 || config.minIdle > config.poolCapacity {
		return fmt.Errorf("%w: min idle connections must be between 0 and %d (got %d)", ErrPoolCreationFailed, config.poolCapacity, config.minIdle)
	}

	if config.dialAttempts <= 0 {
		return fmt.Errorf("%w: dial attempts must be positive (got %d)", ErrPoolCreationFailed, config.dialAttempts)
	}

	return nil
}

func newClient(name string, addrs []string, config *clientConfig) (*client, error) {
	pool := newPool(
		config.dialerFactory(addrs),
		config.poolCapacity,
		config.logger,
		config.breakerFunc,
		config.clock,
	)

	if err := pool.prewarm(config.minIdle, config.dialAttempts, config.backoff); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", ErrPoolCreationFailed, err)
	}

	metrics := newMetrics(name, pool)
	if err := metrics.register(config.registerer); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: could not register metrics: %w", ErrPoolCreationFailed, err)
	}

	return &client{
		pool:          pool,
		borrowTimeout: config.borrowTimeout,
		logger:        config.logger,
		metrics:       metrics,
		replyObserver: config.replyObserver,
	}, nil
}

// WithPassword sets the password (default is "").
func WithPassword(password string) ConfigFunc {
	return func(c *clientConfig) { c.password = password }
}

// WithDatabase sets the database index (default is 0).
func WithDatabase(database int) ConfigFunc {
	return func(c *clientConfig) { c.database = database }
}

// WithConnectTimeout sets the connect timeout for new connections
// (default is 5 seconds).
func WithConnectTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.connectTimeout = timeout }
}

// WithReadTimeout sets the read timeout for all connections in the
// pool (default is 5 seconds).
func WithReadTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.readTimeout = timeout }
}

// WithWriteTimeout sets the write timeout for all connections in the
// pool (default is 5 seconds).
func WithWriteTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.writeTimeout = timeout }
}

// WithPoolCapacity sets the maximum number of concurrent connections
// that can be in use at once (default is 10).
func WithPoolCapacity(capacity int) ConfigFunc {
	return func(c *clientConfig) { c.poolCapacity = capacity }
}

// WithMinIdle sets the number of connections dialed when the client is
// created (default is 0, connections are dialed lazily).
func WithMinIdle(count int) ConfigFunc {
	return func(c *clientConfig) { c.minIdle = count }
}

// WithDialAttempts sets the number of times each initial connection is
// attempted before client creation fails (default is 3).
func WithDialAttempts(attempts int) ConfigFunc {
	return func(c *clientConfig) { c.dialAttempts = attempts }
}

// WithBackoff sets the backoff used between failed initial connection
// attempts (default is exponential between 100ms and 5s).
func WithBackoff(backoff backoff.Backoff) ConfigFunc {
	return func(c *clientConfig) { c.backoff = backoff }
}

// WithBreaker sets the circuit breaker instance to use around new
// connections. The default uses a no-op circuit breaker.
func WithBreaker(breaker overcurrent.CircuitBreaker) ConfigFunc {
	return func(c *clientConfig) { c.breakerFunc = breaker.Call }
}

// WithBreakerRegistry sets the overcurrent registry to use and the
// name of the circuit breaker config to use around new connections.
// The default uses a no-op circuit breaker.
func WithBreakerRegistry(registry overcurrent.Registry, name string) ConfigFunc {
	return func(c *clientConfig) {
		c.breakerFunc = func(f overcurrent.BreakerFunc) error {
			return registry.Call(name, f, nil)
		}
	}
}

// WithBorrowTimeout sets the maximum time to wait for a connection
// from the pool. Commands fail with ErrPoolExhausted after waiting
// this long. The default waits indefinitely.
func WithBorrowTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.borrowTimeout = &timeout }
}

// WithLogger sets the logger instance (the default writes debug
// messages to the "redpool" go-log logger).
func WithLogger(logger Logger) ConfigFunc {
	return func(c *clientConfig) { c.logger = logger }
}

// WithMetrics registers the client's Prometheus collectors with the
// given registerer until the client is closed. Collectors are labeled
// with the client's address; creating a second live client for the
// same address on the same registerer fails. Collectors are not
// exported by default.
func WithMetrics(registerer prometheus.Registerer) ConfigFunc {
	return func(c *clientConfig) { c.registerer = registerer }
}

// WithReadReplicaAddrs sets the addresses of the read replicas used by
// the client returned from ReadReplica.
func WithReadReplicaAddrs(addrs ...string) ConfigFunc {
	return func(c *clientConfig) { c.readReplicaAddrs = addrs }
}

// WithDialerFactory sets the factory used to create the dial function
// of each pool. The default dials over TCP with redigo.
func WithDialerFactory(factory DialerFactory) ConfigFunc {
	return func(c *clientConfig) { c.dialerFactory = factory }
}

func withClock(clock glock.Clock) ConfigFunc {
	return func(c *clientConfig) { c.clock = clock }
}

func withReplyObserver(observer FreeFunc) ConfigFunc {
	return func(c *clientConfig) { c.replyObserver = observer }
}

// NewCommand creates a Command instance.
func NewCommand(command string, args ...interface{}) Command {
	return Command{
		Command: command,
		Args:    args,
	}
}

//
// Client Implementation

func (c *client) Close() error {
	var errs error
	if err := c.pool.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	// The pool gauges would otherwise keep reporting (and referencing)
	// the closed pool.
	c.metrics.unregister()

	if c.readReplicaClient != nil {
		if err := c.readReplicaClient.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *client) ReadReplica() Client {
	if c.readReplicaClient != nil {
		return c.readReplicaClient
	}

	return c
}

func (c *client) Do(command string, args ...interface{}) (*Reply, error) {
	return c.dispatch(command, args)
}

func (c *client) Commandf(template string, args ...interface{}) (*Reply, error) {
	command, expanded, err := formatCommand(template, args...)
	if err != nil {
		return nil, err
	}

	return c.dispatch(command, expanded)
}

func (c *client) Pipeline() Pipeline {
	return newPipeline(c)
}

func (c *client) Stats() PoolStats {
	return c.pool.Stats()
}
