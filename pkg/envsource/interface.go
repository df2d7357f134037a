package envsource

import "github.com/pkg/errors"

// Source is a generic interface implemented by the process environment,
// dot-env files and an in-memory mock.
type Source interface {
	// Get returns the value stored under name.
	Get(name string) (string, error)
	// Keys lists every name this source can resolve.
	Keys() ([]string, error)
}

// ErrNotFound is wrapped by Get for names a source does not carry.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err means the name was absent, as opposed to the
// source itself being unreadable.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
