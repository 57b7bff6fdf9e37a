package gpp

import "sort"

// IdSet is a sorted set of uint16, the canonical representation for every
// "set of numeric IDs" produced by a bitfield or range read: vendor
// consents, purpose consents, disclosed vendors, and so on. Ascending
// iteration and O(log n) membership come from keeping the backing slice
// sorted at all times.
type IdSet struct {
	ids []uint16
}

// NewIdSet builds an IdSet from an unsorted, possibly duplicate-containing
// slice of ids.
func NewIdSet(ids []uint16) IdSet {
	s := IdSet{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *IdSet) add(id uint16) {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	if i < len(s.ids) && s.ids[i] == id {
		return
	}
	s.ids = append(s.ids, 0)
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id
}

// Contains reports whether id is a member of the set.
func (s IdSet) Contains(id uint16) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// Ids returns the set's members in ascending order. The returned slice
// must not be mutated by the caller.
func (s IdSet) Ids() []uint16 {
	return s.ids
}

// Len returns the number of members in the set.
func (s IdSet) Len() int {
	return len(s.ids)
}
