package typecheck

import "reflect"

// Field identifies the attribute a validator is attached to. The host
// framework passes it on every invocation so that failures can name the
// field they belong to.
type Field struct {
	Name string
}

// Validator is the callback contract of the host attribute-declaration
// framework. It is invoked with the owning object, the field descriptor, and
// the candidate value at assignment time. A nil return means the value
// passed; any non-nil error is propagated by the host framework.
type Validator func(owner any, field Field, value any) error

// Type returns the reflect.Type of T. Unlike reflect.TypeOf it works for
// interface types, which makes it the way to put an interface on a
// whitelist:
//
//	typecheck.InstanceOf(typecheck.Type[fmt.Stringer]())
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Whitelist is the fixed set of acceptable types a validator checks
// candidates against. It is sealed at construction: the input is copied, nil
// entries are dropped, and duplicates are removed keeping the first
// occurrence.
type Whitelist struct {
	types []reflect.Type
}

// NewWhitelist builds a whitelist from the given types. An empty whitelist
// is legal; validators built from it reject every candidate, since matching
// is an OR over the entries.
func NewWhitelist(types ...reflect.Type) Whitelist {
	list := make([]reflect.Type, 0, len(types))
	seen := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if t == nil || seen[t] {
			continue
		}
		seen[t] = true
		list = append(list, t)
	}
	return Whitelist{types: list}
}

// Types returns a copy of the whitelist entries in construction order.
func (w Whitelist) Types() []reflect.Type {
	out := make([]reflect.Type, len(w.types))
	copy(out, w.types)
	return out
}

// Len reports the number of entries.
func (w Whitelist) Len() int {
	return len(w.types)
}

// String renders the entries the way failure messages quote them.
func (w Whitelist) String() string {
	return oxfordComma(w.types)
}

// matchesInstance reports whether the dynamic type of v is assignable to
// some entry. A nil v has no dynamic type and matches nothing.
func (w Whitelist) matchesInstance(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	return w.matchesType(t)
}

// matchesType reports whether t is assignable to some entry: the identical
// type, or an interface entry that t implements.
func (w Whitelist) matchesType(t reflect.Type) bool {
	for _, allowed := range w.types {
		if t.AssignableTo(allowed) {
			return true
		}
	}
	return false
}

// elements returns the items of an iterable candidate: slice and array
// elements, or map keys. ok is false for any other kind, including nil.
func elements(v any) (items []any, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items = make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	case reflect.Map:
		keys := rv.MapKeys()
		items = make([]any, len(keys))
		for i, k := range keys {
			items[i] = k.Interface()
		}
		return items, true
	default:
		return nil, false
	}
}
