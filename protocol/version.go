// File: protocol/version.go

package protocol

import "fmt"

// Version is the HTTP major.minor protocol version.
type Version struct {
	Major uint8
	Minor uint8
}

// DefaultVersion is HTTP/1.1, the version assumed when none was parsed.
func DefaultVersion() Version {
	return Version{Major: 1, Minor: 1}
}

// String renders the version in wire form, e.g. "HTTP/1.1".
func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
