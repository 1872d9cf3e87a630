package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionary_GetOrAdd_Monotonicity(t *testing.T) {
	d := New()

	idA := d.GetOrAdd("alpha")
	idB := d.GetOrAdd("beta")
	idA2 := d.GetOrAdd("alpha")
	idC := d.GetOrAdd("gamma")

	require.Equal(t, 0, idA)
	require.Equal(t, 1, idB)
	require.Equal(t, idA, idA2, "re-adding an existing key returns its original ID")
	require.Equal(t, 2, idC)
	require.Equal(t, 3, d.Len())
}

func TestDictionary_KeysInsertionOrder(t *testing.T) {
	d := New()
	d.GetOrAdd("z")
	d.GetOrAdd("a")
	d.GetOrAdd("m")

	require.Equal(t, []string{"z", "a", "m"}, d.Keys())
}

func TestDictionary_At(t *testing.T) {
	d := New()
	d.GetOrAdd("one")
	d.GetOrAdd("two")

	v, ok := d.At(1)
	require.True(t, ok)
	require.Equal(t, "two", v)

	_, ok = d.At(2)
	require.False(t, ok)

	_, ok = d.At(-1)
	require.False(t, ok)
}

func TestDictionary_Lookup(t *testing.T) {
	d := New()
	d.GetOrAdd("present")

	id, ok := d.Lookup("present")
	require.True(t, ok)
	require.Equal(t, 0, id)

	_, ok = d.Lookup("absent")
	require.False(t, ok)
}

func TestDictionary_DenseIDs(t *testing.T) {
	d := New()
	values := []string{"a", "b", "c", "a", "d", "b", "e"}
	for i, v := range values {
		id := d.GetOrAdd(v)
		require.Less(t, id, d.Len())
		require.GreaterOrEqual(t, id, 0)
		_ = i
	}
	require.Equal(t, 5, d.Len())
}
