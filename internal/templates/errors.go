package templates

import "fmt"

// UnknownTemplateError is returned when a template id is not registered
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %q", e.ID)
}
