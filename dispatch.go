package redpool

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

// Run a single command on a borrowed connection and wrap its reply. The
// connection is back in the pool before the reply is returned. A reply is
// returned only if the round trip completed; an error reply from the
// server is a reply (of kind KindError), not a failure.
func (c *client) dispatch(command string, args []interface{}) (*Reply, error) {
	var raw *RawReply

	err := c.withConn(func(g *connGuard) error {
		value, err := g.Conn().Do(command, args...)
		if err != nil {
			if isServerError(err) {
				raw = &RawReply{Value: err}
				return nil
			}

			g.discard()
			return wrapConnectionError(command, err)
		}

		raw = &RawReply{Value: value}
		return nil
	})

	if err != nil {
		c.metrics.observeCommand(resultFailure)
		return nil, err
	}

	return c.wrap(raw), nil
}

func (c *client) wrap(raw *RawReply) *Reply {
	if isServerError(raw.Value) {
		c.metrics.observeCommand(resultServerError)
	} else {
		c.metrics.observeCommand(resultSuccess)
	}

	c.metrics.repliesOutstanding.Inc()
	return WrapReply(raw, c.freeReply)
}

// Replies decoded by redigo hold no resources beyond memory, so freeing
// drops the value and updates the bookkeeping.
func (c *client) freeReply(raw *RawReply) {
	c.metrics.repliesOutstanding.Dec()
	raw.Value = nil

	if c.replyObserver != nil {
		c.replyObserver(raw)
	}
}

// An error reply read from a healthy connection. Anything else returned
// as an error by the connection means the round trip did not complete.
func isServerError(value interface{}) bool {
	_, ok := value.(redis.Error)
	return ok
}

func wrapConnectionError(command string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConnection, command, err)
}
