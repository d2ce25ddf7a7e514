package heredity

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// MaxIndividuals bounds the size of a pedigree that this package will run
// inference over. The hypothesis space is 2^n * 3^n for n individuals, so
// anything near this bound is already an enormous amount of work.
const MaxIndividuals = 20

// Individual is one person in a pedigree. Mother and Father are names of
// other individuals in the same pedigree; they must either both be set or
// both be empty.
type Individual struct {
	Name   string
	Mother string
	Father string
	Trait  Trait
}

// Founder reports whether the individual has no recorded parents.
func (ind *Individual) Founder() bool {
	return ind.Mother == "" && ind.Father == ""
}

// Pedigree is the main object that inference runs against. It holds the
// individuals keyed by name, plus a fixed ordering of those names so that
// hypothesis bitmask positions are stable across runs.
type Pedigree struct {
	individuals map[string]*Individual
	names       []string
	index       map[string]int
}

// NewPedigree validates the given individuals and, if they form a
// well-formed pedigree, returns a Pedigree ready for inference. Individuals
// are ordered by name internally so that repeated runs on the same input
// enumerate hypotheses identically.
func NewPedigree(individuals []Individual) (*Pedigree, error) {
	p := &Pedigree{
		individuals: make(map[string]*Individual, len(individuals)),
		index:       make(map[string]int, len(individuals)),
	}

	for i := range individuals {
		ind := individuals[i]
		if ind.Name == "" {
			return nil, pfx.Err(fmt.Errorf("individual %d has an empty name", i))
		}
		if _, exists := p.individuals[ind.Name]; exists {
			return nil, pfx.Err(fmt.Errorf("duplicate individual %q", ind.Name))
		}
		p.individuals[ind.Name] = &ind
		p.names = append(p.names, ind.Name)
	}

	sort.Strings(p.names)
	for i, name := range p.names {
		p.index[name] = i
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Len is the number of individuals in the pedigree.
func (p *Pedigree) Len() int {
	return len(p.names)
}

// Names returns the individuals' names in the pedigree's fixed order. The
// returned slice is shared; callers must not modify it.
func (p *Pedigree) Names() []string {
	return p.names
}

// Individual returns the named individual, or nil if no such individual
// exists in the pedigree.
func (p *Pedigree) Individual(name string) *Individual {
	return p.individuals[name]
}

// IndexOf returns the position of the named individual in the pedigree's
// fixed order, which is also that individual's bit position in hypothesis
// masks. The second return is false if the name is unknown.
func (p *Pedigree) IndexOf(name string) (int, bool) {
	i, ok := p.index[name]
	return i, ok
}

func (p *Pedigree) validate() error {
	if len(p.names) > MaxIndividuals {
		return pfx.Err(fmt.Errorf("pedigree has %d individuals which exceeds the limit of %d", len(p.names), MaxIndividuals))
	}

	for _, name := range p.names {
		ind := p.individuals[name]

		// Parents come in pairs or not at all
		if (ind.Mother == "") != (ind.Father == "") {
			return pfx.Err(fmt.Errorf("individual %q has only one recorded parent", name))
		}

		if ind.Founder() {
			continue
		}

		if _, ok := p.individuals[ind.Mother]; !ok {
			return pfx.Err(fmt.Errorf("individual %q references unknown mother %q", name, ind.Mother))
		}
		if _, ok := p.individuals[ind.Father]; !ok {
			return pfx.Err(fmt.Errorf("individual %q references unknown father %q", name, ind.Father))
		}
	}

	return p.checkAcyclic()
}

// checkAcyclic walks the child-to-parent edges from every individual and
// confirms that nobody is their own ancestor.
func (p *Pedigree) checkAcyclic() error {
	const (
		unvisited = iota
		inProgress
		finished
	)

	state := make(map[string]int, len(p.names))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case finished:
			return nil
		case inProgress:
			return pfx.Err(fmt.Errorf("individual %q is their own ancestor", name))
		}

		state[name] = inProgress
		ind := p.individuals[name]
		if !ind.Founder() {
			if err := visit(ind.Mother); err != nil {
				return err
			}
			if err := visit(ind.Father); err != nil {
				return err
			}
		}
		state[name] = finished

		return nil
	}

	for _, name := range p.names {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}

// evidenceMasks converts the observed traits into a pair of bitmasks over
// the pedigree's fixed ordering: knownMask has a bit set for every
// individual whose trait was observed, and presentMask has a bit set for
// the subset of those who were observed to have the trait.
func (p *Pedigree) evidenceMasks() (knownMask, presentMask uint64) {
	for i, name := range p.names {
		switch p.individuals[name].Trait {
		case TraitPresent:
			knownMask |= 1 << uint(i)
			presentMask |= 1 << uint(i)
		case TraitAbsent:
			knownMask |= 1 << uint(i)
		}
	}

	return knownMask, presentMask
}
