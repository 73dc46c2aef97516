package store

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"strconv"

	"github.com/rileyhilliard/workmon/internal/config"
)

// DSN builds a lib/pq connection URL. Every credential is escaped, so
// passwords may contain '@', '/' or spaces.
func DSN(db config.DatabaseConfig) string {
	return dsnURL(db).String()
}

// RedactedDSN is DSN with the password replaced, for logs.
func RedactedDSN(db config.DatabaseConfig) string {
	return dsnURL(db).Redacted()
}

// Target names the connection in messages: user@host:port/dbname.
func Target(db config.DatabaseConfig) string {
	return fmt.Sprintf("%s@%s/%s", db.User, net.JoinHostPort(db.Host, strconv.Itoa(db.Port)), db.Name)
}

func dsnURL(db config.DatabaseConfig) *url.URL {
	q := url.Values{}
	if db.SSLMode != "" {
		q.Set("sslmode", db.SSLMode)
	}
	if db.ConnectTimeout > 0 {
		// lib/pq takes whole seconds.
		q.Set("connect_timeout", strconv.Itoa(int(math.Ceil(db.ConnectTimeout.Seconds()))))
	}

	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: q.Encode(),
	}
}
