package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRLEBasic(t *testing.T) {
	l := New(8, "a")
	assert.EqualValues(t, 8, l.Size())
	assert.Equal(t, "a", l.At(0))
	assert.Equal(t, "a", l.At(7))
	assert.Len(t, l.Runs(), 1)
}

func TestRLEReplaceMiddle(t *testing.T) {
	l := New(8, "a")
	l.Replace(2, 5, "b")

	assert.Equal(t, "a", l.At(1))
	assert.Equal(t, "b", l.At(2))
	assert.Equal(t, "b", l.At(4))
	assert.Equal(t, "a", l.At(5))
	assert.Equal(t, []Run[string]{
		{Length: 2, Value: "a"},
		{Length: 3, Value: "b"},
		{Length: 3, Value: "a"},
	}, l.Runs())
}

func TestRLEReplaceMergesNeighbors(t *testing.T) {
	l := New(6, "a")
	l.Replace(2, 4, "b")
	l.Replace(2, 4, "a")
	assert.Len(t, l.Runs(), 1, "runs should merge back into one")

	// Replacing across several runs collapses them.
	l.Replace(0, 2, "b")
	l.Replace(4, 6, "c")
	l.Replace(0, 6, "d")
	assert.Equal(t, []Run[string]{{Length: 6, Value: "d"}}, l.Runs())
}

func TestRLEReplaceEmptyRangeIsNoop(t *testing.T) {
	l := New(4, "a")
	l.Replace(2, 2, "b")
	assert.Len(t, l.Runs(), 1)
}

func TestRLEReplaceValues(t *testing.T) {
	l := New(6, "a")
	l.Replace(2, 4, "b")
	l.ReplaceValues("b", "a")
	assert.Len(t, l.Runs(), 1)
	assert.Equal(t, "a", l.At(3))

	l.Replace(0, 3, "x")
	l.ReplaceValues("a", "x")
	assert.Equal(t, []Run[string]{{Length: 6, Value: "x"}}, l.Runs())
}

func TestRLEResizeTrailingExtent(t *testing.T) {
	l := New(5, "a")
	l.Replace(3, 5, "b")

	l.ResizeTrailingExtent(8)
	assert.EqualValues(t, 8, l.Size())
	assert.Equal(t, "b", l.At(7), "grow extends the final run's value")

	l.ResizeTrailingExtent(4)
	assert.EqualValues(t, 4, l.Size())
	assert.Equal(t, []Run[string]{
		{Length: 3, Value: "a"},
		{Length: 1, Value: "b"},
	}, l.Runs())

	l.ResizeTrailingExtent(3)
	assert.Equal(t, []Run[string]{{Length: 3, Value: "a"}}, l.Runs())
}

func TestRLECloneIsIndependent(t *testing.T) {
	l := New(4, "a")
	c := l.Clone()
	c.Replace(0, 4, "b")
	assert.Equal(t, "a", l.At(0))
	assert.Equal(t, "b", c.At(0))
}
