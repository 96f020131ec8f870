package seeder

import (
	"math/rand/v2"
)

// FirstNames and LastNames are the candidate values for generated users.
var (
	FirstNames = []string{"John", "Jane", "Bob", "Alice", "Mike", "Sarah", "Tom", "Emma"}
	LastNames  = []string{"Smith", "Johnson", "Brown", "Davis", "Wilson", "Miller", "Moore"}
)

// Picker draws a first and last name independently and uniformly.
type Picker struct {
	r     *rand.Rand
	first []string
	last  []string
}

// NewPicker returns a Picker over FirstNames and LastNames with a random seed.
func NewPicker() *Picker {
	return NewSeededPicker(rand.Uint64(), rand.Uint64())
}

// NewSeededPicker returns a deterministic Picker, for tests.
func NewSeededPicker(seed1, seed2 uint64) *Picker {
	return &Picker{
		r:     rand.New(rand.NewPCG(seed1, seed2)),
		first: FirstNames,
		last:  LastNames,
	}
}

// Pick returns one first name and one last name.
func (p *Picker) Pick() (string, string) {
	return p.first[p.r.IntN(len(p.first))], p.last[p.r.IntN(len(p.last))]
}
