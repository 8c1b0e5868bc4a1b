// File: internal/sock/doc.go
//
// Package sock is the OS-backed implementation of api.Socket. It wraps the
// raw socket/bind/listen/accept/read/write syscalls with no buffering, no
// retries, and no timeouts; every failure surfaces as a generic syscall
// error. Descriptor ownership is exclusive: a descriptor is closed exactly
// once, enforced by an atomic swap to an invalid fd.
package sock
