package pure

import (
	"math"
	"testing"
	"weak"

	"github.com/stretchr/testify/assert"
)

type labelled struct {
	parts []string
}

func (l labelled) String() string {
	return "labelled"
}

// tag renders every value the same way.
type tag struct {
	id int
}

func (tag) String() string {
	return "tag"
}

type celsius float64

func TestKeyOf_Classification(t *testing.T) {
	x := 1
	tests := []struct {
		name string
		arg  any
		want argKind
	}{
		{"untyped nil", nil, primitiveArg},
		{"int", 1, primitiveArg},
		{"string", "a", primitiveArg},
		{"struct value", struct{ A int }{1}, primitiveArg},
		{"nil pointer", (*int)(nil), primitiveArg},
		{"nil slice", []int(nil), primitiveArg},
		{"nil func", (func())(nil), primitiveArg},
		{"pointer", &x, objectArg},
		{"map", map[int]int{}, objectArg},
		{"chan", make(chan int), objectArg},
		{"slice", []int{1}, objectArg},
		{"func", func() {}, objectArg},
		{"comparable stringer", tag{id: 1}, primitiveArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyOf(0, tt.arg).kind)
		})
	}
}

func TestKeyOf_FloatKeys(t *testing.T) {
	assert.Equal(t, keyOf(0, math.NaN()).primitive, keyOf(0, math.NaN()).primitive)
	assert.Equal(t, keyOf(0, float32(math.NaN())).primitive, keyOf(0, float32(math.NaN())).primitive)
	assert.NotEqual(t, keyOf(0, 0.0).primitive, keyOf(0, math.Copysign(0, -1)).primitive)
	assert.NotEqual(t, keyOf(0, 1.5).primitive, keyOf(0, celsius(1.5)).primitive)
	assert.NotEqual(t, keyOf(0, float32(1)).primitive, keyOf(0, float64(1)).primitive)
}

func TestKeyOf_ObjectKeys(t *testing.T) {
	a, b := new(int), new(int)
	assert.Equal(t, keyOf(0, a).object, keyOf(1, a).object)
	assert.NotEqual(t, keyOf(0, a).object, keyOf(0, b).object)

	s := make([]int, 4)
	assert.Equal(t, keyOf(0, s).object, keyOf(0, s).object)
	assert.NotEqual(t, keyOf(0, s).object, keyOf(0, s[:2]).object)
	assert.NotEqual(t, keyOf(0, s).object, keyOf(0, s[1:]).object)
}

func TestKeyOf_StringersKeyByValueNotByString(t *testing.T) {
	assert.Equal(t, keyOf(0, tag{id: 1}).primitive, keyOf(0, tag{id: 1}).primitive)
	assert.NotEqual(t, keyOf(0, tag{id: 1}).primitive, keyOf(0, tag{id: 2}).primitive)
}

func TestKeyOf_PanicsOnUnkeyable(t *testing.T) {
	assert.PanicsWithValue(t,
		"pure: argument 2 of type struct { A []int } is not comparable",
		func() { keyOf(2, struct{ A []int }{}) },
	)
	assert.PanicsWithValue(t,
		"pure: argument 0 of type pure.labelled is not comparable",
		func() { keyOf(0, labelled{parts: []string{"x"}}) },
	)
}

func TestTrie_SweepDropsOnlyLiveEntries(t *testing.T) {
	tr := newTrie[int]()
	a := new(int)
	node := tr.traverse([]any{a})
	node.terminate(1)

	key := keyOf(0, a)
	tr.reclaim.push(reclaimTicket[int]{
		queue:  tr.reclaim,
		branch: weakBranch(tr.root),
		key:    key.object,
	})
	assert.Equal(t, 1, tr.sweep())
	assert.Equal(t, 0, tr.sweep())
	assert.Empty(t, tr.root.objects.entries)

	// a fresh node is created for the same object
	fresh := tr.traverse([]any{a})
	_, ok := fresh.result()
	assert.False(t, ok)
}

func TestTrie_ResetBumpsGeneration(t *testing.T) {
	tr := newTrie[string]()
	old := tr.traverse([]any{"k"})
	old.terminate("v")

	assert.Equal(t, uint64(1), tr.reset())
	_, ok := tr.traverse([]any{"k"}).result()
	assert.False(t, ok)

	v, ok := old.result()
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func weakBranch[R any](n *cacheNode[R]) weak.Pointer[objectBranch[R]] {
	return weak.Make(n.objects)
}
