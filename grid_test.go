package carve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a grid from literal rows and fails the test on invalid input.
func mustGrid[T any](t testing.TB, rows [][]T) *Grid[T] {
	t.Helper()
	g, err := GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func TestGrid_NewGridRejectsEmptySizes(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := NewGrid[uint8](size[0], size[1])
		assert.True(t, IsKind(err, KindEmptyInput), "size %v", size)
	}
}

func TestGrid_FromRows(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.At(2, 1))
	assert.Equal(t, []int{4, 5, 6}, g.Row(1))

	_, err := GridFromRows([][]int{{1, 2}, {3}})
	assert.True(t, IsKind(err, KindShapeMismatch))

	_, err = GridFromRows([][]int{})
	assert.True(t, IsKind(err, KindEmptyInput))

	_, err = GridFromRows([][]int{{}})
	assert.True(t, IsKind(err, KindEmptyInput))
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	c := g.Clone()
	c.Set(0, 0, 42)

	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 42, c.At(0, 0))
}

func TestGrid_RowsIsDeepCopy(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	rows := g.Rows()
	rows[1][1] = 0

	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}}, g.Rows()); diff != "" {
		t.Errorf("grid changed through Rows (-want +got):\n%s", diff)
	}
}

func TestGrid_RowCannotGrowIntoNextRow(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	row := append(g.Row(0), 9)
	row[0] = 7

	assert.Equal(t, 3, g.At(0, 1))
	assert.Equal(t, 1, g.At(0, 0))
}
