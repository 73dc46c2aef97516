package store

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"io"
	"net"
	"strings"

	"github.com/lib/pq"
)

// ConnectHint is shown whenever the loop stops on a connection failure.
const ConnectHint = "Please check your database credentials or connection settings."

// fatalClasses are SQLSTATE classes that mean the session itself is unusable.
var fatalClasses = map[pq.ErrorClass]bool{
	"08": true, // connection_exception
	"28": true, // invalid_authorization_specification
	"3D": true, // invalid_catalog_name
}

// IsConnectionFailure reports whether err means the database can't be
// reached or won't let us in, as opposed to a problem with one query.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		if fatalClasses[pqErr.Code.Class()] {
			return true
		}
		// 57P01 admin_shutdown, 57P02 crash_shutdown, 57P03 cannot_connect_now
		return strings.HasPrefix(string(pqErr.Code), "57P")
	}

	if stderrors.Is(err, driver.ErrBadConn) || stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	return stderrors.As(err, &netErr)
}
