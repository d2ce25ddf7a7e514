package heredity

import (
	"fmt"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeIndex is a SQLite-backed store for a pedigree, so that a pedigree
// assembled once (e.g. from a large CSV) can be reopened without reparsing.
type PedigreeIndex struct {
	DB       *sqlx.DB
	Metadata *PedigreeIndexMetadata
}

func (idx *PedigreeIndex) Close() error {
	return idx.DB.Close()
}

// PedigreeRow conforms to the rows of the SQLite table "Pedigree" and can
// be easily parsed with sqlx. Blank mother/father mean a founder; Trait
// uses the same "1"/"0"/blank markers as the CSV format.
type PedigreeRow struct {
	Name   string `db:"Name"`
	Mother string `db:"Mother"`
	Father string `db:"Father"`
	Trait  string `db:"Trait"`
}

// PedigreeIndexMetadata conforms to the rows of the SQLite table "Metadata".
type PedigreeIndexMetadata struct {
	SourceFilename    string `db:"source_filename"`
	NIndividuals      uint32 `db:"n_individuals"`
	IndexCreationTime Time   `db:"index_creation_time"`
}

// Read loads the indexed rows back into a validated Pedigree.
func (idx *PedigreeIndex) Read() (*Pedigree, error) {
	rows, err := idx.DB.Queryx("SELECT * FROM Pedigree ORDER BY Name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var individuals []Individual
	var row PedigreeRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		trait, err := parseTrait(row.Trait)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("individual %q: %v", row.Name, err))
		}

		individuals = append(individuals, Individual{
			Name:   row.Name,
			Mother: row.Mother,
			Father: row.Father,
			Trait:  trait,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return NewPedigree(individuals)
}

// CreatePedigreeIndex writes the pedigree to a new SQLite index file at
// path, along with a Metadata row recording where it came from and when.
func CreatePedigreeIndex(path string, ped *Pedigree, sourceFilename string) error {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect(whichSQLiteDriver, path)
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE Pedigree (
		Name TEXT PRIMARY KEY,
		Mother TEXT NOT NULL,
		Father TEXT NOT NULL,
		Trait TEXT NOT NULL
	)`); err != nil {
		return pfx.Err(err)
	}
	if _, err := db.Exec(`CREATE TABLE Metadata (
		source_filename TEXT,
		n_individuals INTEGER,
		index_creation_time INTEGER
	)`); err != nil {
		return pfx.Err(err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	for _, name := range ped.Names() {
		ind := ped.Individual(name)

		var trait string
		switch ind.Trait {
		case TraitPresent:
			trait = "1"
		case TraitAbsent:
			trait = "0"
		}

		if _, err := tx.Exec("INSERT INTO Pedigree (Name, Mother, Father, Trait) VALUES (?, ?, ?, ?)",
			ind.Name, ind.Mother, ind.Father, trait); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}
	if _, err := tx.Exec("INSERT INTO Metadata (source_filename, n_individuals, index_creation_time) VALUES (?, ?, ?)",
		sourceFilename, ped.Len(), time.Now().Unix()); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
