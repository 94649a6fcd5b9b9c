package hyperlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddAndLookup(t *testing.T) {
	set := NewSet()
	link := Hyperlink{URI: "https://example.com"}

	_, found := set.Lookup(link)
	assert.False(t, found, "expected link not to be found before adding")

	id := set.Add(link)
	assert.NotEqual(t, NoID, id, "expected non-zero id")
	assert.Equal(t, 1, set.Count())

	foundID, found := set.Lookup(link)
	assert.True(t, found)
	assert.Equal(t, id, foundID)
	assert.Equal(t, link, set.Get(id))
}

func TestSet_AddDuplicateIncrementsRef(t *testing.T) {
	set := NewSet()
	link := Hyperlink{URI: "https://example.com", ExplicitID: "a"}

	id1 := set.Add(link)
	id2 := set.Add(link)
	assert.Equal(t, id1, id2, "expected same id for duplicate add")
	assert.Equal(t, 1, set.Count())

	// Two references now, so one release keeps it alive.
	set.Release(id1)
	assert.Equal(t, 1, set.Count())
	set.Release(id1)
	assert.Equal(t, 0, set.Count())

	_, found := set.Lookup(link)
	assert.False(t, found, "expected link gone after final release")
}

func TestSet_UseAndRelease(t *testing.T) {
	set := NewSet()
	id := set.Add(Hyperlink{URI: "https://example.com"})

	set.Use(id)
	set.Release(id)
	assert.Equal(t, 1, set.Count(), "expected link alive while references remain")

	set.Release(id)
	assert.Equal(t, 0, set.Count())
}

func TestSet_ReusesSmallestFreedID(t *testing.T) {
	set := NewSet()
	a := set.Add(Hyperlink{URI: "a"})
	b := set.Add(Hyperlink{URI: "b"})
	c := set.Add(Hyperlink{URI: "c"})
	assert.True(t, a < b && b < c)

	set.Release(b)
	set.Release(a)

	d := set.Add(Hyperlink{URI: "d"})
	assert.Equal(t, a, d, "expected smallest freed id to be re-used")
}

func TestSet_DistinctLinksDistinctIDs(t *testing.T) {
	set := NewSet()
	a := set.Add(Hyperlink{URI: "https://example.com"})
	b := set.Add(Hyperlink{URI: "https://example.com", ExplicitID: "x"})
	assert.NotEqual(t, a, b, "explicit id distinguishes links with the same URI")
	assert.Equal(t, 2, set.Count())
}
