package typecheck

import (
	"fmt"
	"reflect"
	"strings"
)

// oxfordComma renders whitelist entries the way failure messages quote them:
//
//   - "int" for one entry
//   - "int or string" for two
//   - "int, string, or bool" for three or more
//
// An empty whitelist reads "nothing", since nothing can match it.
func oxfordComma(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}

	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

// formatMessage builds failure text like:
//
//	'x' must be int, string, or bool (is 5.5 that is float64)
func formatMessage(name, constraint, expected, compliment string, value any) string {
	return fmt.Sprintf("'%s' %s %s (%s %v that is %s)",
		name, constraint, expected, compliment, value, typeName(value))
}

// typeName names the dynamic type of v for message rendering. reflect.Type
// values are named as such rather than by their unexported implementation
// type.
func typeName(v any) string {
	if _, ok := v.(reflect.Type); ok {
		return "reflect.Type"
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
