// File: protocol/method.go

package protocol

// Method is an HTTP request method token.
type Method string

// The fixed method set. CONNECT parses and routes like any other method;
// nothing downstream special-cases it.
const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

var methods = map[string]Method{
	"OPTIONS": MethodOptions,
	"GET":     MethodGet,
	"HEAD":    MethodHead,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"TRACE":   MethodTrace,
	"CONNECT": MethodConnect,
}

// ParseMethod maps a token to its Method, or ErrParse for anything outside
// the fixed set.
func ParseMethod(tok string) (Method, error) {
	m, ok := methods[tok]
	if !ok {
		return "", ErrParse
	}
	return m, nil
}
