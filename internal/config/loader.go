package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".workmon.yaml"
	// GlobalConfigDir is the directory for the user-wide config.
	GlobalConfigDir = ".config/workmon"
	// GlobalConfigFile is the user-wide config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides, e.g. WORKMON_DATABASE_HOST.
	EnvPrefix = "WORKMON"
	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// NewViper returns a viper instance with every key defaulted and environment
// overrides enabled. Callers bind their flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.connect_timeout", "0s")
	v.SetDefault("interval", d.Interval.String())
	v.SetDefault("chart.others_threshold", d.Chart.OthersThreshold)
	v.SetDefault("chart.start_angle", d.Chart.StartAngle)
	v.SetDefault("output.color", d.Output.Color)
}

// Load resolves the configuration from defaults, an optional config file,
// .env, WORKMON_* variables and whatever flags were bound to v. Credential
// fields come back sanitized.
func Load(v *viper.Viper, explicit string) (*Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+displayPath(path))
	}
	cfg.Database.ExpandEnv()
	cfg.Database.Sanitize()

	return cfg, nil
}

// LoadDotEnv exports the variables in path without overriding anything
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.WrapWithCode(err, errors.ErrConfig,
		"Failed to parse "+path,
		"Use KEY=value lines, e.g. WORKMON_DATABASE_HOST=db.internal")
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .workmon.yaml in current directory
// 3. ~/.config/workmon/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	local := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

func displayPath(path string) string {
	if path == "" {
		return "your environment overrides"
	}
	return path
}
