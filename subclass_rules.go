package typecheck

import "reflect"

// SubclassOf returns a validator accepting values that are themselves a
// reflect.Type assignable to at least one of the given types. A value that
// is not a reflect.Type fails with a TypeError wrapping ErrNotType.
func SubclassOf(types ...reflect.Type) Validator {
	whitelist := NewWhitelist(types...)
	return func(_ any, field Field, value any) error {
		t, ok := value.(reflect.Type)
		if !ok {
			return &TypeError{
				Field: field.Name,
				Value: value,
				cause: ErrNotType,
			}
		}
		if !whitelist.matchesType(t) {
			return &ValidationError{
				Field:      field.Name,
				Value:      t,
				Whitelist:  whitelist.Types(),
				constraint: "must be a subclass of",
				compliment: "is",
			}
		}
		return nil
	}
}

// AllSubclassOf returns a validator accepting iterable values every element
// of which satisfies SubclassOf of the same types. An empty iterable passes;
// a non-iterable value fails with a TypeError wrapping ErrNotIterable, and a
// non-type element with one wrapping ErrNotType.
func AllSubclassOf(types ...reflect.Type) Validator {
	whitelist := NewWhitelist(types...)
	return func(_ any, field Field, value any) error {
		items, ok := elements(value)
		if !ok {
			return &TypeError{
				Field: field.Name,
				Value: value,
				cause: ErrNotIterable,
			}
		}
		for _, item := range items {
			t, ok := item.(reflect.Type)
			if !ok {
				return &TypeError{
					Field: field.Name,
					Value: item,
					cause: ErrNotType,
					elem:  true,
				}
			}
			if !whitelist.matchesType(t) {
				return &ValidationError{
					Field:      field.Name,
					Value:      t,
					Whitelist:  whitelist.Types(),
					constraint: "must contain subclasses of",
					compliment: "has",
				}
			}
		}
		return nil
	}
}
