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
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to process (.gz permitted)")
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

	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", ped.Len(), "individuals from", *path)

	if size, ok := heredity.HypothesisSpaceSize(ped.Len()); ok {
		log.Println("Hypothesis space holds up to", size, "hypotheses")
	}

	marginals, err := heredity.Infer(ped, heredity.DefaultProbabilityModel())
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Print(marginals)
}
