package cost

import (
	"fmt"
	"sort"

	"github.com/ChicagoDave/raccoonshelter/pkg/analytics"
)

// Kind says whether a cost recurs every year or is paid once.
type Kind string

const (
	Recurring Kind = "recurring"
	OneTime   Kind = "one_time"
)

// Entry is one named cost category.
type Entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Kind  Kind    `json:"kind"`
}

// Model is the complete, immutable set of cost entries plus the land area
// the cages need.
type Model struct {
	entries    map[string]Entry
	landAreaM2 float64
	params     *analytics.ResolvedParameters
}

// NewModel builds a model from entries. Names must be unique.
func NewModel(entries []Entry, landAreaM2 float64) (*Model, error) {
	m := &Model{
		entries:    make(map[string]Entry, len(entries)),
		landAreaM2: landAreaM2,
	}
	for _, e := range entries {
		if _, dup := m.entries[e.Name]; dup {
			return nil, fmt.Errorf("duplicate cost category %q", e.Name)
		}
		m.entries[e.Name] = e
	}
	return m, nil
}

// Get returns the entry with the given name.
func (m *Model) Get(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

func (m *Model) Len() int {
	return len(m.entries)
}

func (m *Model) LandAreaM2() float64 {
	return m.landAreaM2
}

// Parameters returns the derived quantities the model was built from, or nil
// for a model made with NewModel.
func (m *Model) Parameters() *analytics.ResolvedParameters {
	if m.params == nil {
		return nil
	}
	p := *m.params
	return &p
}

// Sorted returns a copy of the entries ordered by name.
func (m *Model) Sorted() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Total sums every entry. Summation runs in name order so the result does
// not depend on map iteration.
func (m *Model) Total() float64 {
	total := 0.0
	for _, e := range m.Sorted() {
		total += e.Value
	}
	return total
}

// OneTimeSubtotal sums the entries of kind OneTime.
func (m *Model) OneTimeSubtotal() float64 {
	total := 0.0
	for _, e := range m.Sorted() {
		if e.Kind == OneTime {
			total += e.Value
		}
	}
	return total
}

// Yearly is the recurring cost: everything that is not one-time.
func (m *Model) Yearly() float64 {
	return m.Total() - m.OneTimeSubtotal()
}
