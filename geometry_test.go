package bitgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderAlive(t *testing.T) {
	tests := []struct {
		name  string
		width int
		cell  Point
		want  Border
	}{
		{"top left", 32, Point{0, 0}, Border{Left: true, Top: true}},
		{"inner", 32, Point{1, 1}, Border{}},
		{"left", 64, Point{0, 1}, Border{Left: true}},
		{"left lower", 64, Point{0, 32}, Border{Left: true}},
		{"inner second word", 64, Point{1, 32}, Border{}},
		{"bottom left", 64, Point{0, 63}, Border{Left: true, Bottom: true}},
		{"bottom", 64, Point{20, 63}, Border{Bottom: true}},
		{"right", 64, Point{63, 20}, Border{Right: true}},
		{"almost right", 64, Point{62, 20}, Border{}},
		{"bottom right", 64, Point{63, 63}, Border{Right: true, Bottom: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Make(tt.width, tt.width)
			require.NoError(t, err)
			assert.False(t, g.HasAliveCellAtBorder())

			require.NoError(t, g.Set(tt.cell.X, tt.cell.Y))
			assert.Equal(t, tt.want, g.BorderAlive())
			assert.Equal(t, tt.want.Any(), g.HasAliveCellAtBorder())
		})
	}

	t.Run("empty grid", func(t *testing.T) {
		g, err := NewZeroed(0, 0)
		require.NoError(t, err)
		assert.Equal(t, Border{}, g.BorderAlive())
		assert.False(t, g.HasAliveCellAtBorder())
	})
}

func TestBoundingBox(t *testing.T) {
	g, err := Make(32, 32)
	require.NoError(t, err)

	_, ok := g.BoundingBox()
	assert.False(t, ok)

	require.NoError(t, g.Set(2, 5))
	r, ok := g.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, Rect{MinX: 2, MinY: 5, MaxX: 2, MaxY: 5}, r)
	assert.Equal(t, 1, r.Width())
	assert.Equal(t, 1, r.Height())

	require.NoError(t, g.Set(6, 3))
	r, _ = g.BoundingBox()
	assert.Equal(t, Rect{MinX: 2, MinY: 3, MaxX: 6, MaxY: 5}, r)

	t.Run("across words", func(t *testing.T) {
		g, err := Make(64, 10)
		require.NoError(t, err)

		require.NoError(t, g.Set(37, 5))
		r, ok := g.BoundingBox()
		require.True(t, ok)
		assert.Equal(t, Rect{MinX: 37, MinY: 5, MaxX: 37, MaxY: 5}, r)

		require.NoError(t, g.Set(2, 9))
		r, _ = g.BoundingBox()
		assert.Equal(t, Rect{MinX: 2, MinY: 5, MaxX: 37, MaxY: 9}, r)
		assert.Equal(t, 36, r.Width())
		assert.Equal(t, 5, r.Height())
	})
}

func TestTopRowLeftCell(t *testing.T) {
	g, err := Make(64, 4)
	require.NoError(t, err)

	_, ok := g.TopRowLeftCell()
	assert.False(t, ok)

	require.NoError(t, g.SetAll([]Point{{50, 1}, {40, 1}, {3, 2}}))
	p, ok := g.TopRowLeftCell()
	require.True(t, ok)
	assert.Equal(t, Point{X: 40, Y: 1}, p)
}

func TestExpanded(t *testing.T) {
	t.Run("expandX", func(t *testing.T) {
		g, err := Make(32, 5)
		require.NoError(t, err)
		ng, err := g.Expanded(32, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 64, ng.Width())
		assert.Equal(t, 5, ng.Height())
	})

	t.Run("expandY", func(t *testing.T) {
		g, err := Make(32, 5)
		require.NoError(t, err)
		ng, err := g.Expanded(0, 7, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 32, ng.Width())
		assert.Equal(t, 12, ng.Height())
	})

	t.Run("offsetY", func(t *testing.T) {
		g, err := Make(32, 5)
		require.NoError(t, err)
		require.NoError(t, g.Set(1, 1))

		ng, err := g.Expanded(0, 7, 0, 2)
		require.NoError(t, err)
		alive, _ := ng.Get(1, 1)
		assert.False(t, alive)
		alive, _ = ng.Get(1, 3)
		assert.True(t, alive)
		assert.Equal(t, 12, ng.Height())
	})

	t.Run("offsetX", func(t *testing.T) {
		g, err := Make(32, 5)
		require.NoError(t, err)
		require.NoError(t, g.Set(1, 1))

		ng, err := g.Expanded(32, 7, 32, 0)
		require.NoError(t, err)
		alive, _ := ng.Get(1, 1)
		assert.False(t, alive)
		alive, _ = ng.Get(33, 1)
		assert.True(t, alive)
		assert.Equal(t, 12, ng.Height())
		assert.Equal(t, 64, ng.Width())

		// The source grid is untouched.
		alive, _ = g.Get(1, 1)
		assert.True(t, alive)
	})

	t.Run("negative offset clips", func(t *testing.T) {
		g, err := Make(64, 2)
		require.NoError(t, err)
		require.NoError(t, g.SetAll([]Point{{1, 0}, {33, 1}}))

		ng, err := g.Expanded(0, 0, -32, -1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), ng.PopulationCount())
		alive, _ := ng.Get(1, 0)
		assert.True(t, alive)
	})

	t.Run("offset past the edge does not wrap", func(t *testing.T) {
		g, err := Make(64, 1)
		require.NoError(t, err)
		require.NoError(t, g.Set(40, 0))

		ng, err := g.Expanded(0, 1, 32, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), ng.PopulationCount())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		g, err := Make(32, 5)
		require.NoError(t, err)

		_, err = g.Expanded(-1, 0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = g.Expanded(0, 0, 5, 0)
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})
}

func TestSamePatternIgnoreTranslation(t *testing.T) {
	glider := []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	shift := func(pts []Point, dx, dy int) []Point {
		out := make([]Point, len(pts))
		for i, p := range pts {
			out[i] = Point{p.X + dx, p.Y + dy}
		}
		return out
	}

	a, err := Make(64, 16)
	require.NoError(t, err)
	require.NoError(t, a.SetAll(glider))

	b, err := Make(64, 16)
	require.NoError(t, err)
	require.NoError(t, b.SetAll(shift(glider, 37, 9)))

	assert.True(t, a.SamePatternIgnoreTranslation(b))
	assert.True(t, b.SamePatternIgnoreTranslation(a))

	// Same population, different shape.
	c, err := Make(64, 16)
	require.NoError(t, err)
	require.NoError(t, c.SetAll([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}))
	assert.False(t, a.SamePatternIgnoreTranslation(c))

	// Different population.
	require.NoError(t, b.Set(0, 0))
	assert.False(t, a.SamePatternIgnoreTranslation(b))

	// Empty grids match each other but not a populated one.
	e1, _ := Make(32, 4)
	e2, _ := Make(64, 8)
	assert.True(t, e1.SamePatternIgnoreTranslation(e2))
	assert.False(t, e1.SamePatternIgnoreTranslation(a))
}
