package typecheck

import "reflect"

// InstanceOf returns a validator accepting values whose dynamic type is
// assignable to at least one of the given types.
func InstanceOf(types ...reflect.Type) Validator {
	whitelist := NewWhitelist(types...)
	return func(_ any, field Field, value any) error {
		if !whitelist.matchesInstance(value) {
			return &ValidationError{
				Field:      field.Name,
				Value:      value,
				Whitelist:  whitelist.Types(),
				constraint: "must be",
				compliment: "is",
			}
		}
		return nil
	}
}

// AllInstanceOf returns a validator accepting iterable values every element
// of which satisfies InstanceOf of the same types. An empty iterable passes;
// a non-iterable value fails with a TypeError wrapping ErrNotIterable.
func AllInstanceOf(types ...reflect.Type) Validator {
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
			if !whitelist.matchesInstance(item) {
				return &ValidationError{
					Field:      field.Name,
					Value:      item,
					Whitelist:  whitelist.Types(),
					constraint: "must contain",
					compliment: "has",
				}
			}
		}
		return nil
	}
}
