package iface

// Logger receives diagnostic messages from the pool and the client.
type Logger interface {
	// Printf logs a message. Arguments should be handled in the manner of fmt.Printf.
	Printf(format string, args ...interface{})
}
