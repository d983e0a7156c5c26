package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowplan/primitive"
)

func Example() {
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	// Output:
	// KindInt32
	// KindString
	// KindTime
	// KindEnum(0)
	// KindEnum(0)
}

func TestBoxed(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		boxed, ok := primitive.Boxed(k)
		require.True(t, ok, k.String())
		assert.Equal(t, reflect.Ptr, boxed.Kind())
		assert.Equal(t, k.RuntimeType(), boxed.Elem())
	}

	_, ok := primitive.Boxed(0)
	assert.False(t, ok)
}

func TestHasPrimitiveArray(t *testing.T) {
	count := 0

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.HasPrimitiveArray() {
			count++
		}
	}

	// all numeric kinds plus bool
	assert.Equal(t, 7, count)
	assert.False(t, primitive.KindString.HasPrimitiveArray())
	assert.False(t, primitive.KindTime.HasPrimitiveArray())
}

func TestBits(t *testing.T) {
	assert.Equal(t, 8, primitive.KindInt8.Bits())
	assert.Equal(t, 16, primitive.KindInt16.Bits())
	assert.Equal(t, 32, primitive.KindInt32.Bits())
	assert.Equal(t, 64, primitive.KindInt64.Bits())
	assert.Equal(t, 32, primitive.KindFloat32.Bits())
	assert.Equal(t, 64, primitive.KindFloat64.Bits())
	assert.Panics(t, func() { primitive.KindString.Bits() })
}

func TestFromReflectTypeRoundTrip(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.Equal(t, k, primitive.FromReflectType(k.RuntimeType()), k.String())
	}
}
