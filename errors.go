package redpool

import "errors"

var (
	// ErrPoolCreationFailed is returned when a client cannot be
	// constructed, either because the configuration is invalid or
	// because the initial connections could not be established.
	ErrPoolCreationFailed = errors.New("could not create connection pool")

	// ErrPoolExhausted is returned when the borrow timeout elapses
	// before a connection is returned to the pool.
	ErrPoolExhausted = errors.New("no connection available in pool")

	// ErrPoolClosed is returned when borrowing from a closed pool.
	ErrPoolClosed = errors.New("connection pool is closed")

	// ErrConnection is returned when a connection could not be dialed
	// or failed (or timed out) during a round trip. The connection is
	// discarded before this error is returned.
	ErrConnection = errors.New("connection error")

	// ErrProtocolViolation is returned when a reply is not of the type
	// required by the caller.
	ErrProtocolViolation = errors.New("unexpected reply type")

	// ErrMalformedCommand is returned when a command template cannot
	// be expanded with the given arguments.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrUseAfterRelease is the panic value raised when reading from a
	// reply handle which no longer owns a reply.
	ErrUseAfterRelease = errors.New("reply handle does not own a reply")
)
