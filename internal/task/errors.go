package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTask is returned when a workflow ID is not registered.
var ErrUnknownTask = errors.New("unknown task")

// ErrMissingFields is matched by every *MissingFieldsError.
var ErrMissingFields = errors.New("missing required parameters")

// MissingFieldsError reports that a request payload lacks required fields.
// Required lists every field the workflow needs, in the order they are
// reported to clients; Missing holds the ones that were actually absent.
type MissingFieldsError struct {
	Task     ID
	Required []string
	Missing  []string
}

// Error lists the required parameters, e.g.
// "Missing required parameters: jsonData and siteDescription".
func (e *MissingFieldsError) Error() string {
	var names string
	switch len(e.Required) {
	case 0:
		names = strings.Join(e.Missing, ", ")
	case 2:
		names = e.Required[0] + " and " + e.Required[1]
	default:
		names = strings.Join(e.Required, ", ")
	}
	return fmt.Sprintf("Missing required parameters: %s", names)
}

// Is lets errors.Is match ErrMissingFields.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
