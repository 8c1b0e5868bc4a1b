// File: protocol/doc.go
//
// Package protocol holds the HTTP/1.x message model: request grammar and
// its strict left-to-right parser, the response builder and its wire
// serialization, and the status-code table. The parser consumes exactly
// one request from a raw text buffer in four sequential stages (method,
// URL, version, headers) with no backtracking; whatever follows the blank
// line is the body, verbatim and unvalidated.
package protocol
