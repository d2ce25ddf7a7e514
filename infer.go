// Package heredity computes exact marginal distributions over gene copy
// count and trait presence for every individual in a pedigree, by
// exhaustive enumeration of the joint hypothesis space.
package heredity

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/carbocation/pfx"
)

// Infer runs the full serial pipeline: enumerate every hypothesis
// consistent with the pedigree's observed traits, evaluate each one's joint
// probability, accumulate the joints into per-individual marginal weights,
// and normalize. The result maps each individual's name to their posterior
// gene-count and trait distributions.
func Infer(ped *Pedigree, model *ProbabilityModel) (Marginals, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	acc := NewMarginalAccumulator(ped)
	hr := ped.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		joint, err := JointProbability(ped, model, h)
		if err != nil {
			return nil, err
		}
		acc.Add(h, joint)
	}

	return acc.Normalize()
}

// InferParallel behaves like Infer but splits the outer trait-subset loop
// across the given number of workers, each owning a private accumulator.
// The partials are merged before a single normalization, so the result
// agrees with Infer up to floating-point summation order. workers <= 0
// means one worker per CPU.
func InferParallel(ped *Pedigree, model *ProbabilityModel, workers int) (Marginals, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	nTraitMasks := uint64(1) << uint(ped.Len())
	if uint64(workers) > nTraitMasks {
		workers = int(nTraitMasks)
	}

	partials := make(chan *MarginalAccumulator, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	span := nTraitMasks / uint64(workers)
	for w := 0; w < workers; w++ {
		lo := uint64(w) * span
		hi := lo + span
		if w == workers-1 {
			hi = nTraitMasks
		}

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()

			acc := NewMarginalAccumulator(ped)
			hr := ped.NewHypothesisReaderRange(lo, hi)
			for h := hr.Read(); h != nil; h = hr.Read() {
				joint, err := JointProbability(ped, model, h)
				if err != nil {
					errs <- err
					return
				}
				acc.Add(h, joint)
			}
			partials <- acc
		}(lo, hi)
	}
	wg.Wait()
	close(partials)
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	var acc *MarginalAccumulator
	for partial := range partials {
		if acc == nil {
			acc = partial
			continue
		}
		acc.Merge(partial)
	}
	if acc == nil {
		return nil, pfx.Err(fmt.Errorf("no worker produced a partial accumulator"))
	}

	return acc.Normalize()
}
