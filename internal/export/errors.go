// Package export is the static rendering path. It produces a standalone HTML
// document for a projection plan and packages it with its companion files into
// a downloadable archive.
package export

import "fmt"

// PackagingError is returned when an archive cannot be produced. No partial
// archive accompanies it.
type PackagingError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *PackagingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("packaging error at %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("packaging error at %s: %s", e.Stage, e.Message)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}
