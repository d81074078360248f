package typecheck_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrkit/typecheck"
)

type sounder interface {
	Sound() string
}

type dog struct{}

func (dog) Sound() string { return "woof" }

type cat struct{}

func (cat) Sound() string { return "meow" }

type rock struct{}

type celsius float64

func TestType(t *testing.T) {
	t.Run("concrete type", func(t *testing.T) {
		assert.Equal(t, reflect.TypeOf(0), typecheck.Type[int]())
		assert.Equal(t, reflect.TypeOf(""), typecheck.Type[string]())
	})

	t.Run("interface type", func(t *testing.T) {
		ty := typecheck.Type[fmt.Stringer]()
		require.NotNil(t, ty)
		assert.Equal(t, reflect.Interface, ty.Kind())
		assert.Equal(t, "fmt.Stringer", ty.String())
	})

	t.Run("defined type is distinct from its underlying type", func(t *testing.T) {
		assert.NotEqual(t, typecheck.Type[float64](), typecheck.Type[celsius]())
	})
}

func TestNewWhitelist(t *testing.T) {
	t.Run("preserves construction order", func(t *testing.T) {
		w := typecheck.NewWhitelist(typecheck.Type[int](), typecheck.Type[string]())
		require.Equal(t, 2, w.Len())
		assert.Equal(t, []reflect.Type{typecheck.Type[int](), typecheck.Type[string]()}, w.Types())
	})

	t.Run("drops nil entries", func(t *testing.T) {
		w := typecheck.NewWhitelist(typecheck.Type[int](), nil, typecheck.Type[string]())
		assert.Equal(t, 2, w.Len())
	})

	t.Run("removes duplicates keeping first occurrence", func(t *testing.T) {
		w := typecheck.NewWhitelist(
			typecheck.Type[int](),
			typecheck.Type[string](),
			typecheck.Type[int](),
		)
		assert.Equal(t, []reflect.Type{typecheck.Type[int](), typecheck.Type[string]()}, w.Types())
	})

	t.Run("empty whitelist is legal", func(t *testing.T) {
		w := typecheck.NewWhitelist()
		assert.Equal(t, 0, w.Len())
		assert.Empty(t, w.Types())
	})

	t.Run("types returns a copy", func(t *testing.T) {
		w := typecheck.NewWhitelist(typecheck.Type[int](), typecheck.Type[string]())
		got := w.Types()
		got[0] = typecheck.Type[bool]()
		assert.Equal(t, typecheck.Type[int](), w.Types()[0])
	})

	t.Run("mutating the input slice does not affect the whitelist", func(t *testing.T) {
		input := []reflect.Type{typecheck.Type[int](), typecheck.Type[string]()}
		w := typecheck.NewWhitelist(input...)
		input[0] = typecheck.Type[bool]()
		assert.Equal(t, typecheck.Type[int](), w.Types()[0])
	})
}

func TestWhitelistString(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "nothing", typecheck.NewWhitelist().String())
	})

	t.Run("single entry", func(t *testing.T) {
		w := typecheck.NewWhitelist(typecheck.Type[int]())
		assert.Equal(t, "int", w.String())
	})

	t.Run("two entries joined with or", func(t *testing.T) {
		w := typecheck.NewWhitelist(typecheck.Type[int](), typecheck.Type[string]())
		assert.Equal(t, "int or string", w.String())
	})

	t.Run("three entries use the oxford comma", func(t *testing.T) {
		w := typecheck.NewWhitelist(
			typecheck.Type[int](),
			typecheck.Type[string](),
			typecheck.Type[bool](),
		)
		assert.Equal(t, "int, string, or bool", w.String())
	})
}

func TestValidatorContract(t *testing.T) {
	t.Run("owner is not inspected", func(t *testing.T) {
		check := typecheck.InstanceOf(typecheck.Type[int]())

		assert.NoError(t, check(nil, typecheck.Field{Name: "x"}, 5))
		assert.NoError(t, check(struct{}{}, typecheck.Field{Name: "x"}, 5))
	})

	t.Run("validators from the same whitelist are interchangeable", func(t *testing.T) {
		types := []reflect.Type{typecheck.Type[int](), typecheck.Type[string]()}
		a := typecheck.InstanceOf(types...)
		b := typecheck.InstanceOf(types...)

		for _, value := range []any{5, "five", 5.0, nil} {
			errA := a(nil, typecheck.Field{Name: "x"}, value)
			errB := b(nil, typecheck.Field{Name: "x"}, value)
			if errA == nil {
				assert.NoError(t, errB)
			} else {
				require.Error(t, errB)
				assert.Equal(t, errA.Error(), errB.Error())
			}
		}
	})
}
