package redpool

type (
	// Pipeline wraps an ordered sequence of commands to be processed
	// over a single connection. This reduces bandwidth and latency
	// around communication with the remote server.
	Pipeline interface {
		// Add will attach a command to this pipeline. This command is
		// not sent to the remote server until Run is invoked.
		Add(command string, args ...interface{})

		// Run will send all commands attached to this pipeline wrapped
		// in MULTI/EXEC and return the EXEC reply, an array holding the
		// reply of each command.
		Run() (*Reply, error)
	}

	pipeline struct {
		client   *client
		commands []Command
	}
)

func newPipeline(client *client) Pipeline {
	return &pipeline{
		client:   client,
		commands: []Command{},
	}
}

func (p *pipeline) Add(command string, args ...interface{}) {
	p.commands = append(p.commands, NewCommand(command, args...))
}

func (p *pipeline) Run() (*Reply, error) {
	return p.client.transaction(p.commands)
}

// Commands are buffered with Send and flushed by the final Do. If any
// send fails the connection is in an unknown state, so it is discarded
// rather than reused with a half-written transaction.
func (c *client) transaction(commands []Command) (*Reply, error) {
	var raw *RawReply

	err := c.withConn(func(g *connGuard) error {
		conn := g.Conn()

		if err := conn.Send("MULTI"); err != nil {
			g.discard()
			return wrapConnectionError("MULTI", err)
		}

		for _, command := range commands {
			if err := conn.Send(command.Command, command.Args...); err != nil {
				g.discard()
				return wrapConnectionError(command.Command, err)
			}
		}

		value, err := conn.Do("EXEC")
		if err != nil {
			if isServerError(err) {
				raw = &RawReply{Value: err}
				return nil
			}

			g.discard()
			return wrapConnectionError("EXEC", err)
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
