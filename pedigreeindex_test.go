package heredity

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPedigreeIndexRoundTrip(t *testing.T) {
	ped, err := ReadPedigree(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "family.pdi")
	if err := CreatePedigreeIndex(path, ped, "family.csv"); err != nil {
		t.Fatal(err)
	}

	idx, err := OpenPedigreeIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	if idx.Metadata.SourceFilename != "family.csv" {
		t.Errorf("Got source %q, expected family.csv", idx.Metadata.SourceFilename)
	}
	if idx.Metadata.NIndividuals != 3 {
		t.Errorf("Got %d individuals in metadata, expected 3", idx.Metadata.NIndividuals)
	}

	reloaded, err := idx.Read()
	if err != nil {
		t.Fatal(err)
	}

	if reloaded.Len() != ped.Len() {
		t.Fatalf("Got %d individuals, expected %d", reloaded.Len(), ped.Len())
	}
	for _, name := range ped.Names() {
		want := ped.Individual(name)
		got := reloaded.Individual(name)
		if got == nil {
			t.Fatalf("Individual %q was lost in the round trip", name)
		}
		if *got != *want {
			t.Errorf("Got %+v, expected %+v", *got, *want)
		}
	}
}
