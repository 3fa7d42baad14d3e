package extract

import "fmt"

// OpenError reports a failure to open the archive at a path
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// DecodeError reports a failure to read or decode a single package entry
type DecodeError struct {
	Entry string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Entry, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
