package heredity

import (
	"math/bits"
	"testing"
)

func mustPedigree(t *testing.T, individuals []Individual) *Pedigree {
	t.Helper()

	ped, err := NewPedigree(individuals)
	if err != nil {
		t.Fatal(err)
	}

	return ped
}

func TestEnumerationIsExhaustiveAndDistinct(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "a"}, {Name: "b"}})

	want, ok := HypothesisSpaceSize(ped.Len())
	if !ok {
		t.Fatal("space size overflowed for 2 individuals")
	}

	seen := make(map[Hypothesis]bool)
	hr := ped.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		if h.OneMask&h.TwoMask != 0 {
			t.Errorf("One-copy mask %b and two-copy mask %b overlap", h.OneMask, h.TwoMask)
		}
		if seen[*h] {
			t.Errorf("Hypothesis %+v was emitted twice", *h)
		}
		seen[*h] = true
	}

	if uint64(len(seen)) != want {
		t.Errorf("Got %d hypotheses, expected %d", len(seen), want)
	}
	if hr.HypothesesSeen != want {
		t.Errorf("Got HypothesesSeen %d, expected %d", hr.HypothesesSeen, want)
	}
}

func TestTraitSubsetCountsMatchChoose(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	// With no evidence, trait masks of popcount k should appear 3^n times
	// each, and there are Choose(n, k) such masks.
	countsBySize := make(map[int]map[uint64]bool)
	hr := ped.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		k := bits.OnesCount64(h.TraitMask)
		if countsBySize[k] == nil {
			countsBySize[k] = make(map[uint64]bool)
		}
		countsBySize[k][h.TraitMask] = true
	}

	for k := 0; k <= 3; k++ {
		want := Choose(3, k)
		if got := len(countsBySize[k]); got != want {
			t.Errorf("Got %d trait masks of size %d, expected %d", got, k, want)
		}
	}
}

func TestEnumerationHonorsEvidence(t *testing.T) {
	ped := mustPedigree(t, []Individual{
		{Name: "a", Trait: TraitPresent},
		{Name: "b", Trait: TraitAbsent},
		{Name: "c"},
	})
	ai, _ := ped.IndexOf("a")
	bi, _ := ped.IndexOf("b")

	n := 0
	hr := ped.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		if !h.HasTrait(ai) {
			t.Fatalf("Hypothesis %+v contradicts a's observed trait", *h)
		}
		if h.HasTrait(bi) {
			t.Fatalf("Hypothesis %+v contradicts b's observed trait", *h)
		}
		n++
	}

	// Two fixed traits leave one free individual: 2 trait masks * 3^3 gene
	// assignments.
	if want := 2 * 27; n != want {
		t.Errorf("Got %d hypotheses, expected %d", n, want)
	}
}

func TestRangePartitionCoversFullSpace(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	full := make(map[Hypothesis]bool)
	hr := ped.NewHypothesisReader()
	for h := hr.Read(); h != nil; h = hr.Read() {
		full[*h] = true
	}

	split := make(map[Hypothesis]bool)
	for _, r := range [][2]uint64{{0, 3}, {3, 8}} {
		hr := ped.NewHypothesisReaderRange(r[0], r[1])
		for h := hr.Read(); h != nil; h = hr.Read() {
			if split[*h] {
				t.Errorf("Hypothesis %+v appeared in two ranges", *h)
			}
			split[*h] = true
		}
	}

	if len(split) != len(full) {
		t.Errorf("Got %d hypotheses from the partition, expected %d", len(split), len(full))
	}
}

func TestEmptyRangeReadsNothing(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "a"}})

	hr := ped.NewHypothesisReaderRange(1, 1)
	if h := hr.Read(); h != nil {
		t.Errorf("Got %+v from an empty range, expected nil", *h)
	}
}
