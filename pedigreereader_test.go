package heredity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const familyCSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func TestReadPedigree(t *testing.T) {
	ped, err := ReadPedigree(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	if ped.Len() != 3 {
		t.Fatalf("Got %d individuals, expected 3", ped.Len())
	}

	harry := ped.Individual("Harry")
	if harry.Mother != "Lily" || harry.Father != "James" {
		t.Errorf("Got parents %q and %q, expected Lily and James", harry.Mother, harry.Father)
	}
	if harry.Trait != TraitUnknown {
		t.Errorf("Got trait %s, expected Unknown", harry.Trait)
	}

	if got := ped.Individual("James").Trait; got != TraitPresent {
		t.Errorf("Got trait %s, expected True", got)
	}
	if got := ped.Individual("Lily").Trait; got != TraitAbsent {
		t.Errorf("Got trait %s, expected False", got)
	}
}

func TestReadPedigreeRejectsBadTrait(t *testing.T) {
	_, err := ReadPedigree(strings.NewReader("name,mother,father,trait\nHarry,,,yes\n"))
	if err == nil {
		t.Error("Expected an error for a trait marker other than 1, 0, or blank")
	}
}

func TestReadPedigreeRejectsMissingColumn(t *testing.T) {
	_, err := ReadPedigree(strings.NewReader("name,mother,father\nHarry,,\n"))
	if err == nil {
		t.Error("Expected an error for a missing trait column")
	}
}

func TestOpenPedigree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	if err := os.WriteFile(path, []byte(familyCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	ped, err := OpenPedigree(path)
	if err != nil {
		t.Fatal(err)
	}
	if ped.Len() != 3 {
		t.Errorf("Got %d individuals, expected 3", ped.Len())
	}
}

func TestOpenPedigreeGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(familyCSV)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ped, err := OpenPedigree(path)
	if err != nil {
		t.Fatal(err)
	}
	if ped.Len() != 3 {
		t.Errorf("Got %d individuals, expected 3", ped.Len())
	}
}
