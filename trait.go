package heredity

// Trait indicates whether an individual has been observed to express the
// trait associated with the gene. Most individuals in a pedigree have no
// observation at all, so the zero value is TraitUnknown.
type Trait uint8

const (
	TraitUnknown Trait = iota
	TraitAbsent
	TraitPresent
)

// Known reports whether the trait was actually observed.
func (t Trait) Known() bool {
	return t != TraitUnknown
}

func (t Trait) String() string {
	switch t {
	case TraitAbsent:
		return "False"
	case TraitPresent:
		return "True"

	default:
		return "Unknown"
	}
}
