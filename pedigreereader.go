package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// ReadPedigree parses pedigree records from r and validates them. The
// expected format is CSV with a header naming the columns name, mother,
// father, and trait. mother and father must both be blank or both be names
// that appear in the file. trait is "1" if the individual was observed to
// have the trait, "0" if observed not to, and blank if unobserved.
func ReadPedigree(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("pedigree header is missing the %q column", required))
		}
	}

	var individuals []Individual
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		trait, err := parseTrait(record[col["trait"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("row %d: %v", row, err))
		}

		individuals = append(individuals, Individual{
			Name:   record[col["name"]],
			Mother: record[col["mother"]],
			Father: record[col["father"]],
			Trait:  trait,
		})
	}

	return NewPedigree(individuals)
}

// OpenPedigree reads a pedigree from a local CSV file, transparently
// decompressing files with a .gz suffix.
func OpenPedigree(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	}

	return ReadPedigree(r)
}

func parseTrait(field string) (Trait, error) {
	switch strings.TrimSpace(field) {
	case "1":
		return TraitPresent, nil
	case "0":
		return TraitAbsent, nil
	case "":
		return TraitUnknown, nil
	}

	return TraitUnknown, fmt.Errorf("trait value %q is not \"1\", \"0\", or blank", field)
}
