package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/efritz/redpool"
)

var doCommand = &cli.Command{
	Name:      "do",
	Usage:     "run a raw command and print its reply",
	ArgsUsage: "COMMAND [ARG...]",
	Action: withClient(func(cCtx *cli.Context, client redpool.Client) error {
		if cCtx.NArg() == 0 {
			return errors.New("no command given")
		}

		args := make([]interface{}, 0, cCtx.NArg()-1)
		for _, arg := range cCtx.Args().Tail() {
			args = append(args, arg)
		}

		reply, err := client.Do(cCtx.Args().First(), args...)
		if err != nil {
			return err
		}

		defer reply.Close()
		fmt.Fprintln(cCtx.App.Writer, formatReply(reply.Value(), ""))
		return nil
	}),
}

var setCommand = &cli.Command{
	Name:      "set",
	Usage:     "set a key to a value",
	ArgsUsage: "KEY VALUE",
	Action: withClient(func(cCtx *cli.Context, client redpool.Client) error {
		if cCtx.NArg() != 2 {
			return errors.New("expected KEY and VALUE")
		}

		status, err := client.Set(cCtx.Args().Get(0), cCtx.Args().Get(1))
		if err != nil {
			return err
		}

		fmt.Fprintln(cCtx.App.Writer, status)
		return nil
	}),
}

var getCommand = &cli.Command{
	Name:      "get",
	Usage:     "print the value of a key",
	ArgsUsage: "KEY",
	Action: withClient(func(cCtx *cli.Context, client redpool.Client) error {
		if cCtx.NArg() != 1 {
			return errors.New("expected KEY")
		}

		value, ok, err := client.Lookup(cCtx.Args().First())
		if err != nil {
			return err
		}

		if !ok {
			fmt.Fprintln(cCtx.App.Writer, "(nil)")
			return nil
		}

		fmt.Fprintln(cCtx.App.Writer, strconv.Quote(value))
		return nil
	}),
}

var incrCommand = &cli.Command{
	Name:      "incr",
	Usage:     "increment the integer value of a key",
	ArgsUsage: "KEY",
	Action: withClient(func(cCtx *cli.Context, client redpool.Client) error {
		if cCtx.NArg() != 1 {
			return errors.New("expected KEY")
		}

		value, err := client.Incr(cCtx.Args().First())
		if err != nil {
			return err
		}

		fmt.Fprintf(cCtx.App.Writer, "(integer) %d\n", value)
		return nil
	}),
}

var benchCommand = &cli.Command{
	Name:      "bench",
	Usage:     "increment a key concurrently and report throughput",
	ArgsUsage: "KEY",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "workers", Value: 20, Usage: "number of concurrent goroutines"},
		&cli.IntFlag{Name: "requests", Value: 1000, Usage: "number of INCR commands per goroutine"},
	},
	Action: withClient(func(cCtx *cli.Context, client redpool.Client) error {
		if cCtx.NArg() != 1 {
			return errors.New("expected KEY")
		}

		var (
			key      = cCtx.Args().First()
			workers  = cCtx.Int("workers")
			requests = cCtx.Int("requests")
		)

		if workers < 1 || requests < 1 {
			return fmt.Errorf("workers and requests must be positive (got %d and %d)", workers, requests)
		}

		var (
			errs  = make(chan error, workers)
			wg    sync.WaitGroup
			start = time.Now()
		)

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for j := 0; j < requests; j++ {
					if _, err := client.Incr(key); err != nil {
						errs <- err
						return
					}
				}
			}()
		}

		wg.Wait()
		close(errs)

		if err := <-errs; err != nil {
			return err
		}

		elapsed := time.Since(start)
		total := workers * requests
		fmt.Fprintf(cCtx.App.Writer, "%d commands in %s (%.0f/s)\n", total, elapsed, float64(total)/elapsed.Seconds())
		return nil
	}),
}

func withClient(f func(*cli.Context, redpool.Client) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		config, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		client, err := redpool.NewClientFromConfig(config)
		if err != nil {
			return err
		}

		defer client.Close()
		return f(cCtx, client)
	}
}

// Defaults, then the configuration file, then the environment, then
// the command line.
func loadConfig(cCtx *cli.Context) (redpool.Config, error) {
	config := redpool.DefaultConfig()

	if path := cCtx.String("config"); path != "" {
		loaded, err := redpool.LoadConfig(path)
		if err != nil {
			return config, err
		}

		config = loaded
	}

	if err := config.ApplyEnvironment(); err != nil {
		return config, err
	}

	if addr := cCtx.String("addr"); addr != "" {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return config, err
		}

		if config.Port, err = strconv.Atoi(port); err != nil {
			return config, fmt.Errorf("illegal port in %s", addr)
		}

		config.Host = host
	}

	return config, nil
}

// Render a reply value in the style of redis-cli.
func formatReply(value interface{}, indent string) string {
	switch v := value.(type) {
	case nil:
		return "(nil)"
	case string:
		return v
	case int64:
		return fmt.Sprintf("(integer) %d", v)
	case []byte:
		return strconv.Quote(string(v))
	case error:
		return fmt.Sprintf("(error) %s", v.Error())
	case []interface{}:
		if len(v) == 0 {
			return "(empty array)"
		}

		lines := make([]string, 0, len(v))
		for i, element := range v {
			prefix := fmt.Sprintf("%d) ", i+1)
			nested := indent + strings.Repeat(" ", len(prefix))
			line := prefix + formatReply(element, nested)

			if i > 0 {
				line = indent + line
			}

			lines = append(lines, line)
		}

		return strings.Join(lines, "\n")
	}

	return fmt.Sprint(value)
}
