package config

import (
	"strconv"
	"strings"

	"github.com/rileyhilliard/workmon/internal/errors"
)

// Sanitize removes embedded NUL characters and surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}

// OrDefault sanitizes input and falls back to def when nothing is left.
func OrDefault(input, def string) string {
	if s := Sanitize(input); s != "" {
		return s
	}
	return def
}

// ParsePort sanitizes and parses a port typed at a prompt or read from env.
func ParsePort(s string) (int, error) {
	s = Sanitize(s)
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			"'"+s+"' is not a valid port",
			"Use a number between 1 and 65535, e.g. 15432")
	}
	if port < 1 || port > 65535 {
		return 0, errors.New(errors.ErrConfig,
			"Port "+s+" is out of range",
			"Use a number between 1 and 65535, e.g. 15432")
	}
	return port, nil
}

// Sanitize cleans every credential field in place and restores defaults for
// any field left blank.
func (d *DatabaseConfig) Sanitize() {
	d.Host = OrDefault(d.Host, DefaultHost)
	d.Name = OrDefault(d.Name, DefaultDatabase)
	d.User = OrDefault(d.User, DefaultUser)
	d.Password = OrDefault(d.Password, DefaultPassword)
	d.SSLMode = OrDefault(d.SSLMode, DefaultSSLMode)
	if d.Port == 0 {
		d.Port = DefaultPort
	}
}
