package redpool

func (c *client) Set(key, value string) (string, error) {
	reply, err := c.Commandf("SET %s %s", key, value)
	if err != nil {
		return "", err
	}

	defer reply.Close()
	return reply.Status()
}

// Absent keys and keys holding the empty string are indistinguishable
// here; use Lookup to tell them apart.
func (c *client) Get(key string) (string, error) {
	value, _, err := c.Lookup(key)
	return value, err
}

func (c *client) Lookup(key string) (string, bool, error) {
	reply, err := c.Commandf("GET %s", key)
	if err != nil {
		return "", false, err
	}

	defer reply.Close()

	if reply.IsNil() {
		return "", false, nil
	}

	value, err := reply.Text()
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (c *client) Incr(key string) (int64, error) {
	reply, err := c.Commandf("INCR %s", key)
	if err != nil {
		return 0, err
	}

	defer reply.Close()
	return reply.Integer()
}
