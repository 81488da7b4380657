package elm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

type countingRenderer[S any] struct {
	setups   int
	rendered []S
}

func (r *countingRenderer[S]) Setup(_ struct{}, _ Dispatcher[string]) { r.setups++ }
func (r *countingRenderer[S]) Render(s S)                             { r.rendered = append(r.rendered, s) }

func TestRenderCacheSkipsEqualState(t *testing.T) {
	inner := &countingRenderer[point]{}
	c := NewComparableRenderCache[struct{}, point, string](inner)

	c.Render(point{1, 2})
	c.Render(point{1, 2})

	assert.Equal(t, []point{{1, 2}}, inner.rendered)
}

func TestRenderCacheFirstRenderAlwaysForwards(t *testing.T) {
	inner := &countingRenderer[point]{}
	c := NewComparableRenderCache[struct{}, point, string](inner)

	// The zero value is still rendered the first time.
	c.Render(point{})

	assert.Len(t, inner.rendered, 1)
}

func TestRenderCacheForwardsChanges(t *testing.T) {
	inner := &countingRenderer[point]{}
	c := NewComparableRenderCache[struct{}, point, string](inner)

	for _, p := range []point{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {0, 0}} {
		c.Render(p)
	}

	assert.Equal(t, []point{{0, 0}, {1, 0}, {0, 0}}, inner.rendered)
}

func TestRenderCacheWithEqualityFunction(t *testing.T) {
	inner := &countingRenderer[[]int]{}
	c := NewRenderCache[struct{}, []int, string](inner, slices.Equal[[]int])

	c.Render([]int{1, 2})
	c.Render([]int{1, 2})
	c.Render([]int{1, 2, 3})

	require.Len(t, inner.rendered, 2)
	assert.Equal(t, []int{1, 2, 3}, inner.rendered[1])
}

func TestRenderCacheResetAndSetup(t *testing.T) {
	inner := &countingRenderer[point]{}
	c := NewComparableRenderCache[struct{}, point, string](inner)

	c.Setup(struct{}{}, DispatcherFunc[string](func(string) {}))
	assert.Equal(t, 1, inner.setups)

	c.Render(point{3, 3})
	c.Reset()
	c.Render(point{3, 3})

	assert.Len(t, inner.rendered, 2)
	assert.Same(t, inner, c.Inner())
}

func TestNewRenderCacheRejectsNilEquality(t *testing.T) {
	inner := &countingRenderer[point]{}
	assert.Panics(t, func() {
		NewRenderCache[struct{}, point, string](inner, nil)
	})
}
