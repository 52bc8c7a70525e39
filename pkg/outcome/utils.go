package outcome

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// ErrorLines returns one message per error joined into err, nested joins
// flattened depth first. A nil err gives an empty slice.
func ErrorLines(err error) []string {
	if IsNil(err) {
		return []string{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	lines := make([]string, 0)
	for _, inner := range e.Unwrap() {
		lines = append(lines, ErrorLines(inner)...)
	}
	return lines
}
