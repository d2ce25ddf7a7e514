package heredity

// Hypothesis is one fully specified assignment of a copy count and a trait
// value to every individual in a pedigree. Individuals are identified by
// their bit position in the pedigree's fixed ordering. OneMask and TwoMask
// are always disjoint; anyone in neither carries zero copies, and anyone
// not in TraitMask does not have the trait.
type Hypothesis struct {
	TraitMask uint64
	OneMask   uint64
	TwoMask   uint64
}

// Copies returns the copy count this hypothesis assigns to the individual
// at bit position i.
func (h *Hypothesis) Copies(i int) CopyCount {
	bit := uint64(1) << uint(i)
	switch {
	case h.TwoMask&bit != 0:
		return TwoCopies
	case h.OneMask&bit != 0:
		return OneCopy

	default:
		return ZeroCopies
	}
}

// HasTrait returns the trait value this hypothesis assigns to the
// individual at bit position i.
func (h *Hypothesis) HasTrait(i int) bool {
	return h.TraitMask&(1<<uint(i)) != 0
}

// HypothesisReader lazily enumerates every hypothesis that is consistent
// with the pedigree's observed evidence, without repeats and without
// materializing any subset collections. The outer loop walks trait masks
// and discards those that contradict an observation; for each surviving
// trait mask, the inner loops walk every one-copy mask and, within it,
// every two-copy mask drawn from the remaining individuals.
type HypothesisReader struct {
	HypothesesSeen uint64

	full        uint64
	knownMask   uint64
	presentMask uint64

	// traitHi is exclusive, so workers can split [0, 2^n) into ranges.
	traitLo uint64
	traitHi uint64

	trait   uint64
	one     uint64
	two     uint64
	started bool
	done    bool
}

// NewHypothesisReader returns a reader over the full hypothesis space for
// this pedigree, filtered by its observed traits.
func (p *Pedigree) NewHypothesisReader() *HypothesisReader {
	return p.NewHypothesisReaderRange(0, uint64(1)<<uint(p.Len()))
}

// NewHypothesisReaderRange restricts the reader to trait masks in the
// half-open range [traitLo, traitHi). Readers over a partition of the full
// range collectively enumerate exactly the hypotheses of a full reader.
func (p *Pedigree) NewHypothesisReaderRange(traitLo, traitHi uint64) *HypothesisReader {
	known, present := p.evidenceMasks()
	full := uint64(1)<<uint(p.Len()) - 1
	if traitHi > full+1 {
		traitHi = full + 1
	}

	return &HypothesisReader{
		full:        full,
		knownMask:   known,
		presentMask: present,
		traitLo:     traitLo,
		traitHi:     traitHi,
	}
}

// Read returns the next hypothesis, or nil once the space is exhausted.
func (hr *HypothesisReader) Read() *Hypothesis {
	if hr.done {
		return nil
	}

	if !hr.started {
		hr.started = true
		hr.trait = hr.traitLo
		if hr.trait >= hr.traitHi {
			hr.done = true
			return nil
		}
		if !hr.consistent(hr.trait) && !hr.nextTrait() {
			return nil
		}
		hr.one = 0
		hr.two = hr.full
	} else if !hr.advance() {
		return nil
	}

	hr.HypothesesSeen++

	return &Hypothesis{
		TraitMask: hr.trait,
		OneMask:   hr.one,
		TwoMask:   hr.two,
	}
}

// consistent reports whether a trait mask agrees with every observed trait.
func (hr *HypothesisReader) consistent(trait uint64) bool {
	return trait&hr.knownMask == hr.presentMask
}

// advance steps the innermost loop first: the two-copy mask walks the
// submasks of the one-copy complement in decreasing order via
// (two-1)&complement, which visits each submask exactly once and ends at 0.
func (hr *HypothesisReader) advance() bool {
	comp := hr.full &^ hr.one
	if hr.two != 0 {
		hr.two = (hr.two - 1) & comp
		return true
	}

	if hr.one < hr.full {
		hr.one++
		hr.two = hr.full &^ hr.one
		return true
	}

	if !hr.nextTrait() {
		return false
	}
	hr.one = 0
	hr.two = hr.full

	return true
}

func (hr *HypothesisReader) nextTrait() bool {
	for hr.trait++; hr.trait < hr.traitHi; hr.trait++ {
		if hr.consistent(hr.trait) {
			return true
		}
	}

	hr.done = true

	return false
}
