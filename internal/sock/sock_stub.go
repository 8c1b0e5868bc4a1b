// File: internal/sock/sock_stub.go
//go:build !unix

package sock

import "github.com/scratchnet/httpd/api"

// New reports raw sockets as unsupported on non-unix platforms.
func New() (api.Socket, error) {
	return nil, api.ErrNotSupported
}
