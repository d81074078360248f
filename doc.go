// Package typecheck provides validators that check a value, or every element
// of an iterable value, against a whitelist of acceptable types.
//
// The package targets attribute-declaration frameworks: a Validator is a
// callback attached to a field definition, invoked by the host framework with
// the owning object, the field descriptor, and the candidate value whenever
// the field is assigned. It returns nil when the value matches the whitelist
// and a typed error otherwise; the error propagates through the host
// framework unchanged.
//
// # Architecture
//
// Four constructors cover the two check modes times the two cardinalities:
//
//   - InstanceOf      – the value's dynamic type matches the whitelist
//   - AllInstanceOf   – every element of an iterable value matches
//   - SubclassOf      – the value is itself a reflect.Type matching the whitelist
//   - AllSubclassOf   – every element is a reflect.Type matching the whitelist
//
// Matching is a logical OR over the whitelist using Go assignability: a
// candidate type matches an entry when it is the identical type or when the
// entry is an interface the candidate implements. Go has no subtyping between
// concrete types, so interface satisfaction is the "subtype counts as a
// match" relation here; a defined type does not match its underlying type.
//
// Each constructor copies its whitelist once and returns a closure over it.
// Validators hold no other state, never mutate the whitelist, and are safe to
// invoke concurrently.
//
// # Usage
//
//	type Account struct {
//		ID    any
//		Tags  []any
//	}
//
//	idOk := typecheck.InstanceOf(typecheck.Type[uuid.UUID](), typecheck.Type[string]())
//	tagsOk := typecheck.AllInstanceOf(typecheck.Type[string]())
//
//	func NewAccount(id any, tags []any) (*Account, error) {
//		a := &Account{ID: id, Tags: tags}
//		if err := idOk(a, typecheck.Field{Name: "id"}, id); err != nil {
//			return nil, err
//		}
//		if err := tagsOk(a, typecheck.Field{Name: "tags"}, tags); err != nil {
//			return nil, err
//		}
//		return a, nil
//	}
//
// Use Type to build whitelist entries; unlike reflect.TypeOf it also works
// for interface types, so behavioral whitelists like
// Type[fmt.Stringer]() are possible.
//
// # Error Handling
//
// Failures come in two kinds. ValidationError means the candidate's type
// matched no whitelist entry; it carries the failing value, the field name,
// and the whitelist, and unwraps to ErrValidationFailed. TypeError means the
// candidate had the wrong shape for the check: not iterable for the All*
// variants (ErrNotIterable) or not a reflect.Type for the subclass variants
// (ErrNotType). Both support errors.Is/As, and the Extract/Is helpers mirror
// that for callers that prefer not to spell out target types.
//
// An empty whitelist is legal at construction time and rejects every
// candidate, since a vacuous OR is false. An empty iterable passes the All*
// variants vacuously.
//
// # Performance Considerations
//
// Checks are plain reflect.Type comparisons with no allocation on the
// success path of the scalar variants. The All* variants materialize the
// elements of the candidate once per call.
package typecheck
