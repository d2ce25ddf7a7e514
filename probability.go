package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// ProbabilityModel carries the fixed conditional probability tables for the
// gene/trait network. It is constructed once and then treated as read-only;
// the same model is consulted for every hypothesis in a run.
type ProbabilityModel struct {
	// GenePriors is the population probability that an individual with no
	// recorded parents carries 0, 1, or 2 copies of the gene.
	GenePriors [NCopyCounts]float64

	// TraitProbabilities[c] is P(trait present | c copies of the gene).
	TraitProbabilities [NCopyCounts]float64

	// MutationRate is the probability that a transmitted allele flips state
	// in transit from parent to child.
	MutationRate float64
}

// DefaultProbabilityModel returns the reference model constants.
func DefaultProbabilityModel() *ProbabilityModel {
	return &ProbabilityModel{
		GenePriors:         [NCopyCounts]float64{0.96, 0.03, 0.01},
		TraitProbabilities: [NCopyCounts]float64{0.01, 0.56, 0.65},
		MutationRate:       0.01,
	}
}

// GenePrior is the population probability that a founder carries the given
// number of copies of the gene.
func (m *ProbabilityModel) GenePrior(copies CopyCount) float64 {
	return m.GenePriors[copies]
}

// TraitGivenCopies is P(trait presence = hasTrait | the given copy count).
func (m *ProbabilityModel) TraitGivenCopies(copies CopyCount, hasTrait bool) float64 {
	if hasTrait {
		return m.TraitProbabilities[copies]
	}

	return 1 - m.TraitProbabilities[copies]
}

// TransmissionProbability is the probability that a parent carrying the
// given number of copies passes the variant gene to one child. A parent
// with two copies can fail to pass it only by mutation; a parent with no
// copies can pass it only by mutation. A heterozygous parent transmits it
// with probability exactly 0.5: this is a fixed constant of the model, not
// a value derived from the mutation rate, because mutation applies
// symmetrically to whichever of the two alleles is passed.
func (m *ProbabilityModel) TransmissionProbability(parentCopies CopyCount) float64 {
	switch parentCopies {
	case TwoCopies:
		return 1 - m.MutationRate
	case OneCopy:
		return 0.5

	default:
		return m.MutationRate
	}
}

// Validate confirms that the model's tables describe probabilities: the
// gene prior sums to 1, each trait entry is a probability, and the
// mutation rate is a probability.
func (m *ProbabilityModel) Validate() error {
	var priorSum float64
	for c, p := range m.GenePriors {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("gene prior for %d copies is %f which is not a probability", c, p))
		}
		priorSum += p
	}
	if math.Abs(priorSum-1) > 1e-9 {
		return pfx.Err(fmt.Errorf("gene priors sum to %f, expected 1", priorSum))
	}

	for c, p := range m.TraitProbabilities {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("trait probability for %d copies is %f which is not a probability", c, p))
		}
	}

	if m.MutationRate < 0 || m.MutationRate > 1 {
		return pfx.Err(fmt.Errorf("mutation rate is %f which is not a probability", m.MutationRate))
	}

	return nil
}
