package errors

import (
	"errors"
)

// withKeyVals attaches structured logging context to an error
type withKeyVals struct {
	error
	keyvals []interface{}
}

// With returns an error that carries the given key/value pairs alongside err.
// The pairs are meant for structured logging and do not change the error message.
func With(err error, keyvals ...interface{}) error {
	if err == nil {
		return nil
	}

	return withKeyVals{error: err, keyvals: keyvals}
}

// Unwrap returns the wrapped error
func (e withKeyVals) Unwrap() error {
	return e.error
}

// Cause returns the wrapped error, so github.com/pkg/errors can walk through it
func (e withKeyVals) Cause() error {
	return e.error
}

// KeyVals returns all key/value pairs attached anywhere in err's chain, outermost first
func KeyVals(err error) []interface{} {
	var keyvals []interface{}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if kv, ok := e.(withKeyVals); ok {
			keyvals = append(keyvals, kv.keyvals...)
		}
	}

	return keyvals
}
