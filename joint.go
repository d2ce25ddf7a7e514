package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// JointProbability computes the probability that every individual's copy
// count and trait value match exactly what the hypothesis specifies.
//
// A founder's copy count is drawn from the population prior. A child's copy
// count is conditioned on both parents: each parent independently transmits
// the variant with TransmissionProbability of that parent's own hypothesized
// copy count, and the two transmissions combine into the child's count
// (neither transmits → 0 copies, both → 2, exactly one → 1). Each
// individual additionally contributes the probability of their hypothesized
// trait value given their copy count. Individuals are conditionally
// independent given their own and their parents' genotypes, so the joint is
// the product over all individuals.
//
// Zero is a legitimate result for a self-contradictory hypothesis. Anything
// outside [0,1] indicates a defective model and is returned as an error.
func JointProbability(ped *Pedigree, model *ProbabilityModel, h *Hypothesis) (float64, error) {
	joint := 1.0

	for i, name := range ped.Names() {
		ind := ped.Individual(name)
		copies := h.Copies(i)

		var geneP float64
		if ind.Founder() {
			geneP = model.GenePrior(copies)
		} else {
			mi, _ := ped.IndexOf(ind.Mother)
			fi, _ := ped.IndexOf(ind.Father)
			fromMother := model.TransmissionProbability(h.Copies(mi))
			fromFather := model.TransmissionProbability(h.Copies(fi))

			switch copies {
			case ZeroCopies:
				geneP = (1 - fromMother) * (1 - fromFather)
			case TwoCopies:
				geneP = fromMother * fromFather
			default:
				// Exactly one of the two transmitted alleles is the variant
				geneP = fromMother*(1-fromFather) + (1-fromMother)*fromFather
			}
		}

		joint *= geneP * model.TraitGivenCopies(copies, h.HasTrait(i))
	}

	if joint < 0 || joint > 1 {
		return 0, pfx.Err(fmt.Errorf("joint probability %g is outside [0,1]", joint))
	}

	return joint, nil
}
