package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rayonlabs/fiber/internal/nodes"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FIBER_CHAIN_ENDPOINT.
const EnvPrefix = "fiber"

const FinneyEndpoint = "wss://entrypoint-finney.opentensor.ai:443"

type Config struct {
	Chain struct {
		Endpoint   string `yaml:"endpoint"`
		SS58Format uint16 `yaml:"ss58Format" envconfig:"ss58_format"`
		Schema     string `yaml:"schema"`
	} `yaml:"chain"`
	Fetch struct {
		MaxAttempts int           `yaml:"maxAttempts" envconfig:"max_attempts"`
		MinWait     time.Duration `yaml:"minWait" envconfig:"min_wait"`
		MaxWait     time.Duration `yaml:"maxWait" envconfig:"max_wait"`
	} `yaml:"fetch"`
	Logger struct {
		Verbosity string `yaml:"verbosity"`
		Encoding  string `yaml:"encoding"`
	} `yaml:"logger"`
	Metrics struct {
		ListenAddress string `yaml:"listenAddress" envconfig:"listen_address"`
	} `yaml:"metrics"`
	Watch struct {
		Netuid       uint16        `yaml:"netuid"`
		PollInterval time.Duration `yaml:"pollInterval" envconfig:"poll_interval"`
	} `yaml:"watch"`
}

func Default() *Config {
	var c Config
	c.Chain.Endpoint = FinneyEndpoint
	c.Chain.SS58Format = 42
	c.Chain.Schema = nodes.SchemaMetagraph.String()
	retry := nodes.DefaultRetryConfig()
	c.Fetch.MaxAttempts = retry.MaxAttempts
	c.Fetch.MinWait = retry.MinWait
	c.Fetch.MaxWait = retry.MaxWait
	c.Logger.Verbosity = "info"
	c.Logger.Encoding = "json"
	c.Metrics.ListenAddress = ":9100"
	c.Watch.PollInterval = 12 * time.Second
	return &c
}

// LoadConfig reads path over the defaults, then applies environment
// overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Chain.Endpoint == "" {
		return errors.New("chain.endpoint is required")
	}
	if _, err := c.Schema(); err != nil {
		return err
	}
	if c.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("fetch.maxAttempts must be at least 1, got %d", c.Fetch.MaxAttempts)
	}
	if c.Fetch.MinWait <= 0 {
		return fmt.Errorf("fetch.minWait must be positive, got %s", c.Fetch.MinWait)
	}
	if c.Fetch.MinWait > c.Fetch.MaxWait {
		return fmt.Errorf("fetch.minWait %s must not exceed fetch.maxWait %s", c.Fetch.MinWait, c.Fetch.MaxWait)
	}
	if c.Watch.PollInterval <= 0 {
		return fmt.Errorf("watch.pollInterval must be positive, got %s", c.Watch.PollInterval)
	}
	return nil
}

func (c *Config) Schema() (nodes.Schema, error) {
	return nodes.ParseSchema(c.Chain.Schema)
}

func (c *Config) Retry() nodes.RetryConfig {
	return nodes.RetryConfig{
		MaxAttempts: c.Fetch.MaxAttempts,
		MinWait:     c.Fetch.MinWait,
		MaxWait:     c.Fetch.MaxWait,
	}
}
