// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "fmt"

// DecodeError reports an input image that could not be opened or decoded.
// Batches skip the file and continue.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError reports a text file that could not be written. Batches stop
// at the first WriteError.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
