package config

import "time"

// Defaults offered at the credential prompt and used when nothing else is set.
const (
	DefaultUser     = "esm"
	DefaultPassword = "Orion123"
	DefaultDatabase = "esm"
	DefaultHost     = "localhost"
	DefaultPort     = 15432
	DefaultSSLMode  = "disable"

	DefaultInterval        = 10 * time.Second
	DefaultOthersThreshold = 0.05
	DefaultStartAngle      = 140.0
)

// Config represents the resolved workmon configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Interval is the fixed wait between polls. It applies equally after a
	// poll with data, an empty poll, and a recoverable error.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	Chart  ChartConfig  `yaml:"chart" mapstructure:"chart"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// DatabaseConfig holds the connection settings passed through to PostgreSQL.
type DatabaseConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Name     string `yaml:"name" mapstructure:"name"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`

	// SSLMode is handed to lib/pq unchanged.
	SSLMode string `yaml:"sslmode" mapstructure:"sslmode"`

	// ConnectTimeout bounds the dial only; zero waits forever.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

// ChartConfig controls how the breakdown is drawn.
type ChartConfig struct {
	// OthersThreshold is the share at or below which a user is folded into
	// the Others wedge.
	OthersThreshold float64 `yaml:"others_threshold" mapstructure:"others_threshold"`

	// StartAngle is where the first wedge begins, in degrees
	// counter-clockwise from three o'clock.
	StartAngle float64 `yaml:"start_angle" mapstructure:"start_angle"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     DefaultHost,
			Port:     DefaultPort,
			Name:     DefaultDatabase,
			User:     DefaultUser,
			Password: DefaultPassword,
			SSLMode:  DefaultSSLMode,
		},
		Interval: DefaultInterval,
		Chart: ChartConfig{
			OthersThreshold: DefaultOthersThreshold,
			StartAngle:      DefaultStartAngle,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Redacted returns a copy safe to print, with the password masked.
func (c Config) Redacted() Config {
	if c.Database.Password != "" {
		c.Database.Password = "********"
	}
	return c
}
