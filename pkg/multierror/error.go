package multierror

import (
	"errors"
	"strings"
)

// MultiError bundles several independent failures into one error value.
type MultiError struct {
	Errors []error
}

// MultiAppend merges two errors, flattening MultiErrors on either side.
func MultiAppend(a error, b error) error {
	var multiA MultiError
	var multiB MultiError
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if errors.As(a, &multiA) && errors.As(b, &multiB) {
		return MultiError{Errors: append(multiA.Errors, multiB.Errors...)}
	}
	if errors.As(a, &multiA) {
		return MultiError{Errors: append(multiA.Errors, b)}
	}
	if errors.As(b, &multiB) {
		return MultiError{Errors: append(multiB.Errors, a)}
	}
	return MultiError{Errors: []error{a, b}}
}

// Append folds any number of possibly-nil errors into one.
func Append(errs ...error) error {
	var out error
	for _, e := range errs {
		out = MultiAppend(out, e)
	}
	return out
}

// List returns the individual errors inside err: nil gives an empty list, a
// MultiError gives its parts, anything else gives a single-element list.
func List(err error) []error {
	if err == nil {
		return nil
	}
	var multi MultiError
	if errors.As(err, &multi) {
		return multi.Errors
	}
	return []error{err}
}

func (me MultiError) Error() string {
	txts := []string{}
	for _, e := range me.Errors {
		txts = append(txts, "- "+e.Error())
	}
	return "Multiple errors:\n" + strings.Join(txts, "\n")
}
