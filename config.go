package redpool

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ghodss/yaml"
)

type (
	// Config is the complete set of settings needed to construct a
	// client. It can be loaded from a YAML file and overridden from
	// the environment.
	Config struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		Password       string   `json:"password,omitempty"`
		Database       int      `json:"database"`
		PoolCapacity   int      `json:"poolCapacity"`
		MinIdle        int      `json:"minIdle"`
		DialAttempts   int      `json:"dialAttempts"`
		ConnectTimeout Duration `json:"connectTimeout"`
		ReadTimeout    Duration `json:"readTimeout"`
		WriteTimeout   Duration `json:"writeTimeout"`
		BorrowTimeout  Duration `json:"borrowTimeout,omitempty"`
		ReadReplicas   []string `json:"readReplicas,omitempty"`
	}

	// Duration is a time.Duration which is written as a Go duration
	// string (e.g. "1.5s") in configuration files.
	Duration time.Duration
)

// EnvPrefix prefixes the environment variables read by ApplyEnvironment.
const EnvPrefix = "REDPOOL_"

// DefaultConfig returns the configuration used by NewClient when no
// options are given.
func DefaultConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           6379,
		PoolCapacity:   10,
		DialAttempts:   3,
		ConnectTimeout: Duration(time.Second * 5),
		ReadTimeout:    Duration(time.Second * 5),
		WriteTimeout:   Duration(time.Second * 5),
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnvironment overrides fields with the REDPOOL_* environment
// variables that are set (REDPOOL_HOST, REDPOOL_PORT, REDPOOL_PASSWORD,
// REDPOOL_DATABASE, REDPOOL_POOL_CAPACITY, REDPOOL_MIN_IDLE,
// REDPOOL_DIAL_ATTEMPTS, REDPOOL_CONNECT_TIMEOUT, REDPOOL_READ_TIMEOUT,
// REDPOOL_WRITE_TIMEOUT, REDPOOL_BORROW_TIMEOUT and the comma-separated
// REDPOOL_READ_REPLICAS).
func (c *Config) ApplyEnvironment() error {
	if value, ok := lookupEnv("HOST"); ok {
		c.Host = value
	}

	if value, ok := lookupEnv("PASSWORD"); ok {
		c.Password = value
	}

	if value, ok := lookupEnv("READ_REPLICAS"); ok {
		c.ReadReplicas = nil
		for _, addr := range strings.Split(value, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				c.ReadReplicas = append(c.ReadReplicas, addr)
			}
		}
	}

	ints := map[string]*int{
		"PORT":          &c.Port,
		"DATABASE":      &c.Database,
		"POOL_CAPACITY": &c.PoolCapacity,
		"MIN_IDLE":      &c.MinIdle,
		"DIAL_ATTEMPTS": &c.DialAttempts,
	}

	for name, target := range ints {
		if value, ok := lookupEnv(name); ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("illegal value for %s%s: %w", EnvPrefix, name, err)
			}

			*target = parsed
		}
	}

	durations := map[string]*Duration{
		"CONNECT_TIMEOUT": &c.ConnectTimeout,
		"READ_TIMEOUT":    &c.ReadTimeout,
		"WRITE_TIMEOUT":   &c.WriteTimeout,
		"BORROW_TIMEOUT":  &c.BorrowTimeout,
	}

	for name, target := range durations {
		if value, ok := lookupEnv(name); ok {
			parsed, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("illegal value for %s%s: %w", EnvPrefix, name, err)
			}

			*target = Duration(parsed)
		}
	}

	return nil
}

func lookupEnv(name string) (string, bool) {
	return os.LookupEnv(EnvPrefix + name)
}

// Addr returns the host:port address of the primary server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate returns an error describing the first invalid field.
func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("no host configured")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("illegal port %d", c.Port)
	}

	if c.PoolCapacity <= 0 {
		return fmt.Errorf("pool capacity must be positive (got %d)", c.PoolCapacity)
	}

	if c.MinIdle < 0 || c.MinIdle > c.PoolCapacity {
		return fmt.Errorf("min idle connections must be between 0 and %d (got %d)", c.PoolCapacity, c.MinIdle)
	}

	if c.DialAttempts <= 0 {
		return fmt.Errorf("dial attempts must be positive (got %d)", c.DialAttempts)
	}

	for name, value := range map[string]Duration{
		"connect timeout": c.ConnectTimeout,
		"read timeout":    c.ReadTimeout,
		"write timeout":   c.WriteTimeout,
		"borrow timeout":  c.BorrowTimeout,
	} {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	return nil
}

// Options converts the configuration into client options. A zero
// borrow timeout waits indefinitely for a connection.
func (c Config) Options() []ConfigFunc {
	configs := []ConfigFunc{
		WithPassword(c.Password),
		WithDatabase(c.Database),
		WithPoolCapacity(c.PoolCapacity),
		WithMinIdle(c.MinIdle),
		WithDialAttempts(c.DialAttempts),
		WithConnectTimeout(time.Duration(c.ConnectTimeout)),
		WithReadTimeout(time.Duration(c.ReadTimeout)),
		WithWriteTimeout(time.Duration(c.WriteTimeout)),
	}

	if c.BorrowTimeout > 0 {
		configs = append(configs, WithBorrowTimeout(time.Duration(c.BorrowTimeout)))
	}

	if len(c.ReadReplicas) > 0 {
		configs = append(configs, WithReadReplicaAddrs(c.ReadReplicas...))
	}

	return configs
}

// NewClientFromConfig validates the configuration and creates a client
// for it. Additional options are applied after the configuration.
func NewClientFromConfig(config Config, configs ...ConfigFunc) (Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoolCreationFailed, err)
	}

	return NewClient(config.Addr(), append(config.Options(), configs...)...)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil

	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}

		*d = Duration(parsed)
		return nil
	}

	return fmt.Errorf("illegal duration %s", string(data))
}
