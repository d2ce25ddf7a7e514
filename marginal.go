package heredity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// Marginal holds one individual's distributions: Gene is indexed by copy
// count, Trait by presence (0 = absent, 1 = present). Inside an accumulator
// the values are unnormalized weights; after Normalize they sum to 1.
type Marginal struct {
	Gene  [NCopyCounts]float64
	Trait [2]float64
}

// GeneDistribution returns P(copy count) keyed by copy count.
func (m *Marginal) GeneDistribution() map[CopyCount]float64 {
	return map[CopyCount]float64{
		ZeroCopies: m.Gene[ZeroCopies],
		OneCopy:    m.Gene[OneCopy],
		TwoCopies:  m.Gene[TwoCopies],
	}
}

// TraitDistribution returns P(trait presence) keyed by presence.
func (m *Marginal) TraitDistribution() map[bool]float64 {
	return map[bool]float64{
		true:  m.Trait[1],
		false: m.Trait[0],
	}
}

// Marginals maps each individual's name to their normalized distributions.
type Marginals map[string]*Marginal

// String renders the distributions in a stable order, one individual per
// block, gene values from 2 down to 0 and trait True before False.
func (m Marginals) String() string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return renderMarginals(names, m)
}

// MarginalAccumulator collects unnormalized marginal weights over one
// enumeration pass. It is owned by a single pass; partial accumulators from
// parallel passes are combined with Merge before a single Normalize.
type MarginalAccumulator struct {
	ped       *Pedigree
	marginals Marginals
}

// NewMarginalAccumulator returns an accumulator with every bucket at zero.
func NewMarginalAccumulator(ped *Pedigree) *MarginalAccumulator {
	marginals := make(Marginals, ped.Len())
	for _, name := range ped.Names() {
		marginals[name] = &Marginal{}
	}

	return &MarginalAccumulator{
		ped:       ped,
		marginals: marginals,
	}
}

// Add contributes one hypothesis's joint probability to each individual's
// assigned gene bucket and trait bucket. Buckets only ever grow.
func (a *MarginalAccumulator) Add(h *Hypothesis, joint float64) {
	for i, name := range a.ped.Names() {
		m := a.marginals[name]
		m.Gene[h.Copies(i)] += joint
		if h.HasTrait(i) {
			m.Trait[1] += joint
		} else {
			m.Trait[0] += joint
		}
	}
}

// Merge adds another accumulator's weights into this one. Accumulation is
// commutative and associative, so merge order does not matter.
func (a *MarginalAccumulator) Merge(other *MarginalAccumulator) {
	for name, om := range other.marginals {
		m := a.marginals[name]
		for c := range m.Gene {
			m.Gene[c] += om.Gene[c]
		}
		m.Trait[0] += om.Trait[0]
		m.Trait[1] += om.Trait[1]
	}
}

// Normalize rescales each individual's gene and trait distributions to sum
// to 1 and returns the result. A zero sum means no enumerated hypothesis
// was consistent with the evidence, which is reported as an error rather
// than being allowed to turn into NaN.
func (a *MarginalAccumulator) Normalize() (Marginals, error) {
	for name, m := range a.marginals {
		geneSum := floats.Sum(m.Gene[:])
		if geneSum == 0 {
			return nil, pfx.Err(fmt.Errorf("gene distribution for %q sums to zero; the observed traits are jointly unsatisfiable", name))
		}
		for c := range m.Gene {
			m.Gene[c] /= geneSum
		}

		traitSum := floats.Sum(m.Trait[:])
		if traitSum == 0 {
			return nil, pfx.Err(fmt.Errorf("trait distribution for %q sums to zero; the observed traits are jointly unsatisfiable", name))
		}
		m.Trait[0] /= traitSum
		m.Trait[1] /= traitSum
	}

	return a.marginals, nil
}

func renderMarginals(names []string, m Marginals) string {
	var b strings.Builder
	for _, name := range names {
		marg := m[name]
		fmt.Fprintf(&b, "%s:\n", name)
		fmt.Fprintf(&b, "  Gene:\n")
		fmt.Fprintf(&b, "    2: %.4f\n", marg.Gene[TwoCopies])
		fmt.Fprintf(&b, "    1: %.4f\n", marg.Gene[OneCopy])
		fmt.Fprintf(&b, "    0: %.4f\n", marg.Gene[ZeroCopies])
		fmt.Fprintf(&b, "  Trait:\n")
		fmt.Fprintf(&b, "    True: %.4f\n", marg.Trait[1])
		fmt.Fprintf(&b, "    False: %.4f\n", marg.Trait[0])
	}

	return b.String()
}
