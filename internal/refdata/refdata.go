// Package refdata holds the static specialty and governorate lists. Both are
// built once at startup and injected where validation needs them; nothing in
// the process mutates them afterwards.
package refdata

import "github.com/google/uuid"

type Label struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type Entry struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label Label  `json:"label"`
}

// Set is an ordered list of entries plus an O(1) membership view keyed on
// the entry value.
type Set struct {
	entries []Entry
	byValue map[string]Entry
}

func newSet(entries []Entry) *Set {
	s := &Set{
		entries: entries,
		byValue: make(map[string]Entry, len(entries)),
	}
	for i := range entries {
		entries[i].ID = uuid.NewString()
		s.byValue[entries[i].Value] = entries[i]
	}
	return s
}

func (s *Set) Entries() []Entry {
	return s.entries
}

func (s *Set) Contains(value string) bool {
	_, ok := s.byValue[value]
	return ok
}

type Lists struct {
	Specialties  *Set
	Governorates *Set
}

func Load() *Lists {
	return &Lists{
		Specialties:  newSet(specialties()),
		Governorates: newSet(governorates()),
	}
}
