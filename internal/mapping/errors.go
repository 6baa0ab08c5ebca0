package mapping

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrMappingNotFound      = errors.New("webhook mapping not found")
	ErrRevisionNotFound     = errors.New("last seen revision not found")
	ErrBuildServiceNotFound = errors.New("build service not found")
)

// ValidationErrors maps field names to human-readable violations. A
// mapping and its revision record are validated as a pair; if either
// side fails, neither is persisted.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// AsValidationErrors unwraps err into ValidationErrors when possible.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
