package hyperlink

import (
	"github.com/hnimtadd/termbuf/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// ID identifies a hyperlink within the owning screen buffer's set. Cell
// attributes store this id instead of the URI so that attribute values
// stay small and comparable.
type ID uint16

// NoID marks a cell that is not part of any hyperlink.
const NoID ID = 0

// Hyperlink is an OSC 8 style link target. The explicit id is the
// id parameter given by the application, if any; links sharing an explicit
// id and URI are the same link even across rows.
type Hyperlink struct {
	URI        string
	ExplicitID string
}

func (h Hyperlink) hash() uint64 {
	hashed, err := hashstructure.Hash(h, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "hyperlink must be hashable")
	return hashed
}

type entry struct {
	link Hyperlink
	ref  int64
}

// Set is a ref-counted collection of hyperlinks. Adding an existing link
// increments its reference count and returns the same id; releasing the
// final reference frees the id for re-use. The owning screen buffer keeps
// one Set; rows only hold the ids it hands out.
type Set struct {
	// items maps id to entry. Index 0 is never used: id zero is reserved
	// to mean "no hyperlink".
	items []*entry

	// table maps a link's hash to its id.
	table map[uint64]ID

	// free holds ids whose entries died and can be re-used, preferring
	// the smallest available id.
	free []ID

	living int
}

func NewSet() *Set {
	return &Set{
		items: []*entry{nil},
		table: make(map[uint64]ID),
	}
}

// Add registers a hyperlink and returns its id, incrementing the ref count
// if it is already present.
func (s *Set) Add(link Hyperlink) ID {
	hash := link.hash()
	if id, ok := s.table[hash]; ok && s.items[id].link == link {
		s.items[id].ref++
		return id
	}

	id := s.nextID()
	s.items[id] = &entry{link: link, ref: 1}
	s.table[hash] = id
	s.living++
	return id
}

// Lookup returns the id for a link without touching its ref count.
func (s *Set) Lookup(link Hyperlink) (ID, bool) {
	id, ok := s.table[link.hash()]
	if !ok || s.items[id].link != link {
		return NoID, false
	}
	return id, true
}

// Get returns the hyperlink for an id. The id must be live.
func (s *Set) Get(id ID) Hyperlink {
	utils.Assert(int(id) < len(s.items) && s.items[id] != nil, "unknown hyperlink id")
	return s.items[id].link
}

// Use increments the ref count of a live id. Callers do this when copying
// an attribute that references the link into another row.
func (s *Set) Use(id ID) {
	utils.Assert(int(id) < len(s.items) && s.items[id] != nil, "unknown hyperlink id")
	s.items[id].ref++
}

// Release decrements an id's ref count, deleting the link when it reaches
// zero.
func (s *Set) Release(id ID) {
	utils.Assert(int(id) < len(s.items) && s.items[id] != nil, "unknown hyperlink id")
	e := s.items[id]
	e.ref--
	if e.ref > 0 {
		return
	}

	delete(s.table, e.link.hash())
	s.items[id] = nil
	s.free = append(s.free, id)
	s.living--
}

// Count returns the number of living hyperlinks.
func (s *Set) Count() int {
	return s.living
}

func (s *Set) nextID() ID {
	if n := len(s.free); n > 0 {
		// Prefer the smallest freed id.
		best := 0
		for i, id := range s.free {
			if id < s.free[best] {
				best = i
			}
		}
		id := s.free[best]
		s.free[best] = s.free[n-1]
		s.free = s.free[:n-1]
		return id
	}
	s.items = append(s.items, nil)
	return ID(len(s.items) - 1)
}
