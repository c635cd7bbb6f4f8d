package bloomgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindInt, Int(1).Kind())
	assert.Equal(t, KindFloat, Float(1.5).Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindCollection, Collection().Kind())
	assert.Equal(t, KindInvalid, Value{}.Kind())
}

func TestScalarCanonicalForms(t *testing.T) {
	// Distinct kinds with overlapping textual forms must not all collide:
	// Int(1) and String("1") deliberately share a canonical form (scalar
	// coercion), while Float keeps full precision.
	assert.Equal(t, "1", Int(1).canonical())
	assert.Equal(t, "1", String("1").canonical())
	assert.Equal(t, "1", Bool(true).canonical())
	assert.Equal(t, "", Bool(false).canonical())
	assert.Equal(t, "2.5", Float(2.5).canonical())
	assert.Equal(t, "0.30000000000000004", Float(0.1+0.2).canonical())
}

func TestVisitOrder(t *testing.T) {
	v := Collection(
		String("a"),
		Collection(String("b"), Collection(String("c")), String("d")),
		String("e"),
	)

	var got []string
	require.NoError(t, visit(v, func(s Value) error {
		got = append(got, s.canonical())
		return nil
	}))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got, "pre-order, insertion order preserved")
}

func TestVisitDeepNesting(t *testing.T) {
	// Deep legitimate nesting must not exhaust the stack; traversal is
	// iterative.
	v := String("leaf")
	for i := 0; i < 100_000; i++ {
		v = Collection(v)
	}

	count := 0
	require.NoError(t, visit(v, func(Value) error {
		count++
		return nil
	}))
	assert.Equal(t, 1, count)
}

func TestVisitRejectsInvalid(t *testing.T) {
	var invalid *ErrInvalidInput
	err := visit(Collection(String("ok"), Value{}), func(Value) error { return nil })
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "invalid input shape: invalid", err.Error())
}

func TestMapShape(t *testing.T) {
	v := Collection(String("a"), Collection(), Collection(String("b")))

	res, err := mapShape(v, func(s Value) (Result, error) {
		return Result{OK: s.canonical() == "a"}, nil
	})
	require.NoError(t, err)

	require.True(t, res.IsCollection())
	require.Len(t, res.Items, 3)
	assert.True(t, res.Items[0].OK)
	assert.True(t, res.Items[1].IsCollection())
	assert.Empty(t, res.Items[1].Items)
	require.Len(t, res.Items[2].Items, 1)
	assert.False(t, res.Items[2].Items[0].OK)
}

func TestMapShapeStopsOnError(t *testing.T) {
	boom := fmt.Errorf("boom")
	_, err := mapShape(Strings("a", "b"), func(s Value) (Result, error) {
		if s.canonical() == "b" {
			return Result{}, boom
		}
		return Result{OK: true}, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestCollectionCopiesItems(t *testing.T) {
	items := []Value{String("a")}
	v := Collection(items...)
	items[0] = String("mutated")

	var got []string
	require.NoError(t, visit(v, func(s Value) error {
		got = append(got, s.canonical())
		return nil
	}))
	assert.Equal(t, []string{"a"}, got)
}
