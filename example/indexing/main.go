package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to index")
	idxPath := flag.String("index", "", "Filename of the SQLite index to create or read")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	if *idxPath == "" {
		*idxPath = *path + ".pdi"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Opening pedigree:", *path)
	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Writing index with driver", heredity.WhichSQLiteDriver())
	if err := heredity.CreatePedigreeIndex(*idxPath, ped, filepath.Base(*path)); err != nil {
		log.Fatalln(err)
	}

	idx, err := heredity.OpenPedigreeIndex(*idxPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()

	log.Printf("Index Metadata: source=%s n=%d created=%s\n",
		idx.Metadata.SourceFilename, idx.Metadata.NIndividuals, idx.Metadata.IndexCreationTime)

	reloaded, err := idx.Read()
	if err != nil {
		log.Fatalln(err)
	}

	for i, name := range reloaded.Names() {
		ind := reloaded.Individual(name)
		fmt.Printf("%d) %s mother=%q father=%q trait=%s\n", i, ind.Name, ind.Mother, ind.Father, ind.Trait)
	}

	log.Println("Round-tripped", reloaded.Len(), "individuals through the index")
}
